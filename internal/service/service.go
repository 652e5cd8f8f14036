package service

import (
	"github.com/hance08/otusbank/internal/store"
	"github.com/pterm/pterm"
)

type Config struct {
	// StrictTransfers makes MakeTransfer refuse to overdraw the source
	// account, the same way Charge does.
	StrictTransfers bool
	Logger          *pterm.Logger
}

func (c Config) logger() *pterm.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelWarn)
}

type Service struct {
	Account *AccountService
	Payment *PaymentProcessor
}

func NewService(repo store.Repository, cfg Config) *Service {
	accounts := NewAccountService(repo, cfg)
	return &Service{
		Account: accounts,
		Payment: NewPaymentProcessor(accounts, cfg),
	}
}
