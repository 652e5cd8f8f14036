package service

import (
	"fmt"

	"github.com/hance08/otusbank/internal/model"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AccountOperations is the part of AccountService the payment processor
// relies on.
type AccountOperations interface {
	GetAgreementAccounts(agreement model.Agreement) ([]*model.Account, error)
	MakeTransfer(sourceID, destinationID int64, amount decimal.Decimal) (bool, error)
}

type PaymentProcessor struct {
	accounts AccountOperations
	log      *pterm.Logger
}

func NewPaymentProcessor(accounts AccountOperations, cfg Config) *PaymentProcessor {
	return &PaymentProcessor{accounts: accounts, log: cfg.logger()}
}

// MakeTransfer moves amount between the first account of sourceType owned by
// source and the first account of destinationType owned by destination.
func (p *PaymentProcessor) MakeTransfer(source, destination model.Agreement, sourceType, destinationType int, amount decimal.Decimal) (bool, error) {
	from, to, err := p.resolve(source, destination, sourceType, destinationType)
	if err != nil {
		return false, err
	}

	return p.accounts.MakeTransfer(from.ID, to.ID, amount)
}

// MakeTransferWithCommission debits amount plus commissionPercent of it from
// the source side as a single transfer. The destination is credited with the
// same combined sum; the commission is not routed anywhere else.
func (p *PaymentProcessor) MakeTransferWithCommission(source, destination model.Agreement, sourceType, destinationType int, amount, commissionPercent decimal.Decimal) (bool, error) {
	from, to, err := p.resolve(source, destination, sourceType, destinationType)
	if err != nil {
		return false, err
	}

	commission := Commission(amount, commissionPercent)
	total := amount.Add(commission)

	p.log.Debug("transfer with commission", p.log.Args(
		"source_agreement", source.ID,
		"destination_agreement", destination.ID,
		"amount", amount.String(),
		"commission", commission.String(),
		"total", total.String(),
	))

	return p.accounts.MakeTransfer(from.ID, to.ID, total)
}

// Commission returns percent% of amount.
func Commission(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(hundred)
}

func (p *PaymentProcessor) resolve(source, destination model.Agreement, sourceType, destinationType int) (*model.Account, *model.Account, error) {
	from, err := p.accountOfType(source, sourceType)
	if err != nil {
		return nil, nil, err
	}
	to, err := p.accountOfType(destination, destinationType)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func (p *PaymentProcessor) accountOfType(agreement model.Agreement, accType int) (*model.Account, error) {
	accounts, err := p.accounts.GetAgreementAccounts(agreement)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts of agreement %d: %w", agreement.ID, err)
	}

	acc, ok := findFirst(accounts, func(a *model.Account) bool { return a.Type == accType })
	if !ok {
		return nil, fmt.Errorf("agreement %d, type %d: %w", agreement.ID, accType, ErrNoAccountOfType)
	}
	return acc, nil
}

func findFirst(accounts []*model.Account, match func(*model.Account) bool) (*model.Account, bool) {
	for _, a := range accounts {
		if match(a) {
			return a, true
		}
	}
	return nil, false
}
