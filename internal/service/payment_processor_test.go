package service

import (
	"errors"
	"testing"

	"github.com/hance08/otusbank/internal/model"
	"github.com/hance08/otusbank/internal/store"
	"github.com/shopspring/decimal"
)

type transferCall struct {
	sourceID      int64
	destinationID int64
	amount        decimal.Decimal
}

type mockAccountOperations struct {
	byAgreement map[int64][]*model.Account
	transferFn  func(sourceID, destinationID int64, amount decimal.Decimal) (bool, error)
	calls       []transferCall
}

func (m *mockAccountOperations) GetAgreementAccounts(agreement model.Agreement) ([]*model.Account, error) {
	return m.byAgreement[agreement.ID], nil
}

func (m *mockAccountOperations) MakeTransfer(sourceID, destinationID int64, amount decimal.Decimal) (bool, error) {
	m.calls = append(m.calls, transferCall{sourceID, destinationID, amount})
	if m.transferFn != nil {
		return m.transferFn(sourceID, destinationID, amount)
	}
	return true, nil
}

func TestPaymentMakeTransferPicksFirstAccountOfType(t *testing.T) {
	ops := &mockAccountOperations{byAgreement: map[int64][]*model.Account{
		1: {
			{ID: 10, AgreementID: 1, Type: model.TypeCommission},
			{ID: 11, AgreementID: 1, Type: model.TypeChecking},
			{ID: 12, AgreementID: 1, Type: model.TypeChecking},
		},
		2: {
			{ID: 20, AgreementID: 2, Type: model.TypeChecking},
			{ID: 21, AgreementID: 2, Type: model.TypeCommission},
		},
	}}
	p := NewPaymentProcessor(ops, quietConfig())

	ok, err := p.MakeTransfer(model.Agreement{ID: 1}, model.Agreement{ID: 2}, model.TypeChecking, model.TypeCommission, dec("1"))
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if len(ops.calls) != 1 {
		t.Fatalf("calls=%d want=1", len(ops.calls))
	}
	c := ops.calls[0]
	if c.sourceID != 11 || c.destinationID != 21 || !c.amount.Equal(dec("1")) {
		t.Fatalf("call=%+v", c)
	}
}

func TestPaymentMakeTransferReturnsDelegateResult(t *testing.T) {
	ops := &mockAccountOperations{
		byAgreement: map[int64][]*model.Account{
			1: {{ID: 1, Type: 0}},
			2: {{ID: 2, Type: 0}},
		},
		transferFn: func(int64, int64, decimal.Decimal) (bool, error) { return false, nil },
	}
	p := NewPaymentProcessor(ops, quietConfig())

	ok, err := p.MakeTransfer(model.Agreement{ID: 1}, model.Agreement{ID: 2}, 0, 0, dec("1"))
	if err != nil || ok {
		t.Fatalf("ok=%v err=%v want false,nil", ok, err)
	}
}

func TestPaymentMakeTransferNoAccountOfType(t *testing.T) {
	tests := []struct {
		name        string
		byAgreement map[int64][]*model.Account
	}{
		{
			name: "source has no matching type",
			byAgreement: map[int64][]*model.Account{
				1: {{ID: 1, Type: model.TypeCommission}},
				2: {{ID: 2, Type: model.TypeChecking}},
			},
		},
		{
			name: "destination owns nothing",
			byAgreement: map[int64][]*model.Account{
				1: {{ID: 1, Type: model.TypeChecking}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := &mockAccountOperations{byAgreement: tt.byAgreement}
			p := NewPaymentProcessor(ops, quietConfig())

			ok, err := p.MakeTransfer(model.Agreement{ID: 1}, model.Agreement{ID: 2}, model.TypeChecking, model.TypeChecking, dec("1"))
			if ok || !errors.Is(err, ErrNoAccountOfType) {
				t.Fatalf("ok=%v err=%v", ok, err)
			}
			if len(ops.calls) != 0 {
				t.Fatalf("transfer should not be attempted")
			}
		})
	}
}

func TestPaymentMakeTransferWithCommission(t *testing.T) {
	ops := &mockAccountOperations{byAgreement: map[int64][]*model.Account{
		1: {{ID: 1, AgreementID: 1, Type: 0, Amount: dec("23")}},
		2: {{ID: 2, AgreementID: 2, Type: 0, Amount: dec("0")}},
	}}
	p := NewPaymentProcessor(ops, quietConfig())

	ok, err := p.MakeTransferWithCommission(model.Agreement{ID: 1}, model.Agreement{ID: 2}, 0, 0, dec("100"), dec("10"))
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if len(ops.calls) != 1 {
		t.Fatalf("calls=%d want a single combined transfer", len(ops.calls))
	}
	if c := ops.calls[0]; c.sourceID != 1 || c.destinationID != 2 || !c.amount.Equal(dec("110")) {
		t.Fatalf("call=%+v want 1->2 110", c)
	}
}

func TestCommission(t *testing.T) {
	tests := []struct {
		amount, percent, want string
	}{
		{"100", "10", "10"},
		{"100", "0", "0"},
		{"250.50", "2", "5.01"},
		{"1", "0.5", "0.005"},
		{"33.33", "100", "33.33"},
	}
	for _, tt := range tests {
		if got := Commission(dec(tt.amount), dec(tt.percent)); !got.Equal(dec(tt.want)) {
			t.Errorf("Commission(%s, %s)=%s want=%s", tt.amount, tt.percent, got, tt.want)
		}
	}
}

func TestServiceCommissionTransferEndToEnd(t *testing.T) {
	repo := store.NewMemoryStore()
	svc := NewService(repo, quietConfig())

	src, err := svc.Account.AddAccount(model.Agreement{ID: 1}, "40817-1", model.TypeChecking, dec("200"))
	if err != nil {
		t.Fatal(err)
	}
	dst, err := svc.Account.AddAccount(model.Agreement{ID: 2}, "40817-2", model.TypeChecking, dec("0"))
	if err != nil {
		t.Fatal(err)
	}

	ok, err := svc.Payment.MakeTransferWithCommission(model.Agreement{ID: 1}, model.Agreement{ID: 2}, model.TypeChecking, model.TypeChecking, dec("100"), dec("10"))
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}

	if got := balance(t, repo, src.ID); !got.Equal(dec("90")) {
		t.Fatalf("source=%s want=90", got)
	}
	if got := balance(t, repo, dst.ID); !got.Equal(dec("110")) {
		t.Fatalf("destination=%s want=110", got)
	}
}
