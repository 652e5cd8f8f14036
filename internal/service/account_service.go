package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hance08/otusbank/internal/model"
	"github.com/hance08/otusbank/internal/store"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	repo   store.Repository
	locks  *accountLocker
	strict bool
	log    *pterm.Logger
}

func NewAccountService(repo store.Repository, cfg Config) *AccountService {
	return &AccountService{
		repo:   repo,
		locks:  newAccountLocker(),
		strict: cfg.StrictTransfers,
		log:    cfg.logger(),
	}
}

// GetAccounts returns every account in the order storage yields them.
func (as *AccountService) GetAccounts() ([]*model.Account, error) {
	return as.repo.FindAll()
}

// GetAgreementAccounts returns the accounts owned by agreement, or an empty
// slice when it owns none.
func (as *AccountService) GetAgreementAccounts(agreement model.Agreement) ([]*model.Account, error) {
	accounts, err := as.repo.FindByAgreementID(agreement.ID)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []*model.Account{}
	}
	return accounts, nil
}

// AddAccount persists a new account. Number uniqueness is left to storage.
func (as *AccountService) AddAccount(agreement model.Agreement, number string, accType int, amount decimal.Decimal) (*model.Account, error) {
	acc := &model.Account{
		AgreementID: agreement.ID,
		Type:        accType,
		Number:      number,
		Amount:      amount,
	}
	if err := as.repo.Save(acc); err != nil {
		return nil, err
	}

	as.log.Debug("account added", as.log.Args(
		"account_id", acc.ID,
		"agreement_id", acc.AgreementID,
		"type", acc.Type,
		"number", acc.Number,
		"amount", acc.Amount.String(),
	))
	return acc, nil
}

// Charge takes amount from the account. It returns false, and stores
// nothing, when the balance would drop below zero.
func (as *AccountService) Charge(accountID int64, amount decimal.Decimal) (bool, error) {
	unlock := as.locks.lock(accountID)
	defer unlock()

	opID := uuid.NewString()

	acc, err := as.repo.FindByID(accountID)
	if err != nil {
		return false, notFound(err, ErrNoSourceAccount)
	}

	newAmount := acc.Amount.Sub(amount)
	if newAmount.IsNegative() {
		as.log.Warn("charge rejected: insufficient funds", as.log.Args(
			"op", opID,
			"account_id", accountID,
			"balance", acc.Amount.String(),
			"amount", amount.String(),
		))
		return false, nil
	}

	acc.Amount = newAmount
	if err := as.repo.Save(acc); err != nil {
		return false, fmt.Errorf("failed to save charged account %d: %w", accountID, err)
	}

	as.log.Debug("account charged", as.log.Args(
		"op", opID,
		"account_id", accountID,
		"amount", amount.String(),
		"balance", newAmount.String(),
	))
	return true, nil
}

// MakeTransfer moves amount from source to destination. Both accounts are
// saved in one storage transaction.
//
// Unlike Charge, the default mode does not check the source balance: a
// transfer may leave the source negative. With Config.StrictTransfers the
// transfer is refused (false, nil) instead.
func (as *AccountService) MakeTransfer(sourceID, destinationID int64, amount decimal.Decimal) (bool, error) {
	unlock := as.locks.lock(sourceID, destinationID)
	defer unlock()

	opID := uuid.NewString()
	rejected := false

	err := as.repo.ExecTx(func(r store.AccountRepository) error {
		source, err := r.FindByID(sourceID)
		if err != nil {
			return notFound(err, ErrNoSourceAccount)
		}
		destination, err := r.FindByID(destinationID)
		if err != nil {
			return notFound(err, ErrNoDestinationAccount)
		}

		newSource := source.Amount.Sub(amount)
		if as.strict && newSource.IsNegative() {
			rejected = true
			return nil
		}

		// Same account on both sides nets to zero.
		if sourceID == destinationID {
			return nil
		}

		source.Amount = newSource
		destination.Amount = destination.Amount.Add(amount)

		if err := r.Save(source); err != nil {
			return fmt.Errorf("failed to save source account %d: %w", sourceID, err)
		}
		if err := r.Save(destination); err != nil {
			return fmt.Errorf("failed to save destination account %d: %w", destinationID, err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	if rejected {
		as.log.Warn("transfer rejected: insufficient funds", as.log.Args(
			"op", opID,
			"source_id", sourceID,
			"destination_id", destinationID,
			"amount", amount.String(),
		))
		return false, nil
	}

	as.log.Debug("transfer applied", as.log.Args(
		"op", opID,
		"source_id", sourceID,
		"destination_id", destinationID,
		"amount", amount.String(),
	))
	return true, nil
}

// notFound maps a storage miss to the given AccountError and wraps anything
// else.
func notFound(err error, missing *AccountError) error {
	if errors.Is(err, store.ErrRecordNotFound) {
		return missing
	}
	return fmt.Errorf("failed to load account: %w", err)
}
