package store

import "github.com/hance08/otusbank/internal/model"

// AccountRepository is the DAO contract the account service is written against.
type AccountRepository interface {
	// FindByID returns ErrRecordNotFound (wrapped) when no account has the id.
	FindByID(id int64) (*model.Account, error)
	FindAll() ([]*model.Account, error)
	FindByAgreementID(agreementID int64) ([]*model.Account, error)
	// Save inserts the account when its ID is zero and assigns the new ID,
	// otherwise it updates the existing row.
	Save(acc *model.Account) error
}

type Repository interface {
	AccountRepository

	// ExecTx runs fn against a transactional view of the repository. Every
	// Save made through that view is applied, or none is.
	ExecTx(fn func(AccountRepository) error) error
	Close() error
}
