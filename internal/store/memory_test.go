package store

import (
	"errors"
	"testing"

	"github.com/hance08/otusbank/internal/model"
	"github.com/shopspring/decimal"
)

func TestMemoryStoreKeepsInsertionOrder(t *testing.T) {
	m := NewMemoryStore()
	for _, n := range []string{"z", "a", "m"} {
		if err := m.Save(&model.Account{AgreementID: 1, Number: n}); err != nil {
			t.Fatal(err)
		}
	}

	all, _ := m.FindAll()
	if len(all) != 3 || all[0].Number != "z" || all[1].Number != "a" || all[2].Number != "m" {
		t.Fatalf("all=%+v", all)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	m := NewMemoryStore()
	acc := &model.Account{Number: "1", Amount: decimal.NewFromInt(5)}
	_ = m.Save(acc)

	got, _ := m.FindByID(acc.ID)
	got.Amount = decimal.Zero

	again, _ := m.FindByID(acc.ID)
	if !again.Amount.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("stored account was mutated through a returned pointer")
	}
}

func TestMemoryStoreExecTx(t *testing.T) {
	m := NewMemoryStore()
	a := &model.Account{Number: "a", Amount: decimal.NewFromInt(10)}
	b := &model.Account{Number: "b", Amount: decimal.NewFromInt(10)}
	_ = m.Save(a)
	_ = m.Save(b)

	boom := errors.New("boom")
	err := m.ExecTx(func(r AccountRepository) error {
		x, _ := r.FindByID(a.ID)
		x.Amount = decimal.Zero
		_ = r.Save(x)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
	got, _ := m.FindByID(a.ID)
	if !got.Amount.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("rolled back tx leaked: %s", got.Amount)
	}

	err = m.ExecTx(func(r AccountRepository) error {
		x, _ := r.FindByID(a.ID)
		x.Amount = decimal.NewFromInt(1)
		return r.Save(x)
	})
	if err != nil {
		t.Fatal(err)
	}
	got, _ = m.FindByID(a.ID)
	if !got.Amount.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("committed tx not visible: %s", got.Amount)
	}
}

func TestMemoryStoreNotFoundAndDuplicate(t *testing.T) {
	m := NewMemoryStore()
	if _, err := m.FindByID(1); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
	_ = m.Save(&model.Account{Number: "x"})
	if err := m.Save(&model.Account{Number: "x"}); !errors.Is(err, ErrAccountExists) {
		t.Fatalf("want ErrAccountExists, got %v", err)
	}
}
