package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/otusbank/internal/model"
	sqlite "github.com/mattn/go-sqlite3"
)

const accountColumns = "id, agreement_id, type, number, amount"

func (s *Store) FindByID(id int64) (*model.Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE id = ?", id)

	acc := &model.Account{}
	err := row.Scan(&acc.ID, &acc.AgreementID, &acc.Type, &acc.Number, &acc.Amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account with ID %d: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account with ID %d: %w", id, err)
	}

	return acc, nil
}

func (s *Store) FindAll() ([]*model.Account, error) {
	rows, err := s.db.Query("SELECT " + accountColumns + " FROM accounts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanAccounts(rows)
}

func (s *Store) FindByAgreementID(agreementID int64) ([]*model.Account, error) {
	rows, err := s.db.Query(`
        SELECT `+accountColumns+`
        FROM accounts
        WHERE agreement_id = ?
        ORDER BY id
    `, agreementID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts of agreement %d: %w", agreementID, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanAccounts(rows)
}

func (s *Store) Save(acc *model.Account) error {
	if acc.ID == 0 {
		return s.insertAccount(acc)
	}

	_, err := s.db.Exec(`
        INSERT INTO accounts (id, agreement_id, type, number, amount)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT (id) DO UPDATE SET
            agreement_id = excluded.agreement_id,
            type         = excluded.type,
            number       = excluded.number,
            amount       = excluded.amount;
    `, acc.ID, acc.AgreementID, acc.Type, acc.Number, acc.Amount.String())
	if err != nil {
		return mapConstraintErr(fmt.Sprintf("failed to save account %d", acc.ID), err)
	}

	return nil
}

func (s *Store) insertAccount(acc *model.Account) error {
	stmt, err := s.db.Prepare(`
        INSERT INTO accounts (agreement_id, type, number, amount)
        VALUES (?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	err = stmt.QueryRow(acc.AgreementID, acc.Type, acc.Number, acc.Amount.String()).Scan(&newID)
	if err != nil {
		return mapConstraintErr(fmt.Sprintf("failed to create account '%s'", acc.Number), err)
	}

	acc.ID = newID
	return nil
}

func (s *Store) scanAccounts(rows *sql.Rows) ([]*model.Account, error) {
	accounts := []*model.Account{}
	for rows.Next() {
		acc := &model.Account{}

		err := rows.Scan(&acc.ID, &acc.AgreementID, &acc.Type, &acc.Number, &acc.Amount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func mapConstraintErr(msg string, err error) error {
	var sqliteErr sqlite.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode == sqlite.ErrConstraintUnique {
			return fmt.Errorf("%s: %w", msg, ErrAccountExists)
		}
		if sqliteErr.Code == sqlite.ErrConstraint {
			return fmt.Errorf("%s: %w", msg, ErrConstraintViolation)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
