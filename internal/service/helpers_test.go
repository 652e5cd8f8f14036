package service

import (
	"io"
	"testing"

	"github.com/hance08/otusbank/internal/model"
	"github.com/hance08/otusbank/internal/store"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

func quietConfig() Config {
	return Config{Logger: pterm.DefaultLogger.WithWriter(io.Discard)}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// recordingRepo wraps a MemoryStore, counts saves and can fail the n-th one.
type recordingRepo struct {
	*store.MemoryStore
	saves  []model.Account
	failOn int
	failFn func() error
}

func newRecordingRepo() *recordingRepo {
	return &recordingRepo{MemoryStore: store.NewMemoryStore()}
}

func (r *recordingRepo) Save(acc *model.Account) error {
	return r.record(acc, r.MemoryStore.Save)
}

func (r *recordingRepo) ExecTx(fn func(store.AccountRepository) error) error {
	return r.MemoryStore.ExecTx(func(tx store.AccountRepository) error {
		return fn(&recordingTx{AccountRepository: tx, parent: r})
	})
}

func (r *recordingRepo) record(acc *model.Account, save func(*model.Account) error) error {
	if r.failFn != nil && len(r.saves)+1 == r.failOn {
		return r.failFn()
	}
	if err := save(acc); err != nil {
		return err
	}
	r.saves = append(r.saves, *acc)
	return nil
}

type recordingTx struct {
	store.AccountRepository
	parent *recordingRepo
}

func (t *recordingTx) Save(acc *model.Account) error {
	return t.parent.record(acc, t.AccountRepository.Save)
}

// seed stores accounts directly, bypassing the save counter.
func seed(t *testing.T, r *recordingRepo, accounts ...*model.Account) {
	t.Helper()
	for _, a := range accounts {
		if err := r.MemoryStore.Save(a); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func balance(t *testing.T, r store.AccountRepository, id int64) decimal.Decimal {
	t.Helper()
	a, err := r.FindByID(id)
	if err != nil {
		t.Fatalf("FindByID(%d) err=%v", id, err)
	}
	return a.Amount
}
