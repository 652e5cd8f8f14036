package store

import (
	"fmt"
	"sync"

	"github.com/hance08/otusbank/internal/model"
)

// MemoryStore is a map-backed Repository. It keeps insertion order and
// enforces unique account numbers like the SQLite schema does.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	order  []int64
	accts  map[int64]*model.Account
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accts: make(map[int64]*model.Account)}
}

func (m *MemoryStore) FindByID(id int64) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lookup(m.accts, id)
}

func (m *MemoryStore) FindAll() ([]*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return collect(m.order, m.accts, func(*model.Account) bool { return true }), nil
}

func (m *MemoryStore) FindByAgreementID(agreementID int64) ([]*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return collect(m.order, m.accts, func(a *model.Account) bool { return a.AgreementID == agreementID }), nil
}

func (m *MemoryStore) Save(acc *model.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return upsert(&m.nextID, &m.order, m.accts, acc)
}

// ExecTx applies fn to a staging copy and publishes it only when fn succeeds.
func (m *MemoryStore) ExecTx(fn func(AccountRepository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	staged := &memoryTx{
		nextID: m.nextID,
		order:  append([]int64(nil), m.order...),
		accts:  make(map[int64]*model.Account, len(m.accts)),
	}
	for id, a := range m.accts {
		staged.accts[id] = a.Clone()
	}

	if err := fn(staged); err != nil {
		return err
	}

	m.nextID = staged.nextID
	m.order = staged.order
	m.accts = staged.accts
	return nil
}

func (m *MemoryStore) Close() error { return nil }

// memoryTx is the view handed to ExecTx callbacks. The parent lock is held
// for its whole life, so it needs none of its own.
type memoryTx struct {
	nextID int64
	order  []int64
	accts  map[int64]*model.Account
}

func (t *memoryTx) FindByID(id int64) (*model.Account, error) {
	return lookup(t.accts, id)
}

func (t *memoryTx) FindAll() ([]*model.Account, error) {
	return collect(t.order, t.accts, func(*model.Account) bool { return true }), nil
}

func (t *memoryTx) FindByAgreementID(agreementID int64) ([]*model.Account, error) {
	return collect(t.order, t.accts, func(a *model.Account) bool { return a.AgreementID == agreementID }), nil
}

func (t *memoryTx) Save(acc *model.Account) error {
	return upsert(&t.nextID, &t.order, t.accts, acc)
}

func lookup(accts map[int64]*model.Account, id int64) (*model.Account, error) {
	a, ok := accts[id]
	if !ok {
		return nil, fmt.Errorf("account with ID %d: %w", id, ErrRecordNotFound)
	}
	return a.Clone(), nil
}

func collect(order []int64, accts map[int64]*model.Account, keep func(*model.Account) bool) []*model.Account {
	out := []*model.Account{}
	for _, id := range order {
		if a := accts[id]; keep(a) {
			out = append(out, a.Clone())
		}
	}
	return out
}

func upsert(nextID *int64, order *[]int64, accts map[int64]*model.Account, acc *model.Account) error {
	for id, existing := range accts {
		if existing.Number == acc.Number && id != acc.ID {
			return fmt.Errorf("failed to save account '%s': %w", acc.Number, ErrAccountExists)
		}
	}

	if acc.ID == 0 {
		*nextID++
		acc.ID = *nextID
	} else if acc.ID > *nextID {
		*nextID = acc.ID
	}

	if _, ok := accts[acc.ID]; !ok {
		*order = append(*order, acc.ID)
	}
	accts[acc.ID] = acc.Clone()
	return nil
}
