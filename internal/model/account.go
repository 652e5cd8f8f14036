package model

import "github.com/shopspring/decimal"

const (
	TypeChecking   = 0
	TypeCommission = 1
)

type Account struct {
	ID          int64
	AgreementID int64
	Type        int
	Number      string
	Amount      decimal.Decimal
}

// Clone returns a copy that shares no state with a.
func (a *Account) Clone() *Account {
	cp := *a
	return &cp
}
