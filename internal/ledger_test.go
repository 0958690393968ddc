package internal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func entry(kind Kind, category string, amount int64) Transaction {
	return Transaction{
		Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Kind:     kind,
		Category: category,
		Amount:   decimal.NewFromInt(amount),
	}
}

func TestLedger_InsertAndGet(t *testing.T) {
	ledger := NewLedger()

	id := ledger.Insert(entry(Expense, "Food", 100))
	if id == "" {
		t.Fatal("Insert returned an empty id")
	}

	got, ok := ledger.Get(id)
	if !ok {
		t.Fatal("Get returned absent for a freshly inserted id")
	}
	if got.Category != "Food" || !got.Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Get = %+v", got)
	}

	if _, ok := ledger.Get("no-such-id"); ok {
		t.Error("Get returned present for an unknown id")
	}
}

func TestLedger_IDsAreUnique(t *testing.T) {
	ledger := NewLedger()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := ledger.Insert(entry(Expense, "Food", 1))
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestLedger_InsertionOrderPreserved(t *testing.T) {
	ledger := NewLedger()
	ledger.Insert(entry(Expense, "Food", 1))
	ledger.Insert(entry(Income, "Salary", 2))
	ledger.Insert(entry(Expense, "Transport", 3))

	txns := ledger.Transactions()
	if len(txns) != 3 {
		t.Fatalf("len = %d, want 3", len(txns))
	}
	for i, want := range []string{"Food", "Salary", "Transport"} {
		if txns[i].Category != want {
			t.Errorf("txns[%d].Category = %q, want %q", i, txns[i].Category, want)
		}
	}
}

func TestLedger_UpdateReplacesWholesale(t *testing.T) {
	ledger := NewLedger()
	id := ledger.Insert(entry(Expense, "Food", 100))

	if ok := ledger.Update(id, entry(Expense, "Transport", 250)); !ok {
		t.Fatal("Update returned false for an existing id")
	}
	got, _ := ledger.Get(id)
	if got.Category != "Transport" || !got.Amount.Equal(decimal.NewFromInt(250)) {
		t.Errorf("after update: %+v", got)
	}

	if ok := ledger.Update("no-such-id", entry(Expense, "Food", 1)); ok {
		t.Error("Update returned true for an unknown id")
	}
	if ledger.Len() != 1 {
		t.Errorf("Update on unknown id created an entry, Len = %d", ledger.Len())
	}
}

func TestLedger_DeleteIsIdempotent(t *testing.T) {
	ledger := NewLedger()
	id := ledger.Insert(entry(Expense, "Food", 100))
	keep := ledger.Insert(entry(Income, "Salary", 200))

	ledger.Delete(id)
	if ledger.Len() != 1 {
		t.Fatalf("Len = %d after delete, want 1", ledger.Len())
	}

	// Second delete of the same id is a no-op, not an error
	ledger.Delete(id)
	if ledger.Len() != 1 {
		t.Fatalf("Len = %d after double delete, want 1", ledger.Len())
	}

	if _, ok := ledger.Get(keep); !ok {
		t.Error("unrelated entry was removed")
	}
}

func TestLedger_AllReturnsSnapshot(t *testing.T) {
	ledger := NewLedger()
	id := ledger.Insert(entry(Expense, "Food", 100))

	snapshot := ledger.All()
	delete(snapshot, id)
	snapshot["fake"] = entry(Income, "Salary", 1)

	if _, ok := ledger.Get(id); !ok {
		t.Error("mutating the snapshot removed a store entry")
	}
	if ledger.Len() != 1 {
		t.Errorf("Len = %d, want 1", ledger.Len())
	}
}

func TestLedger_TotalsExact(t *testing.T) {
	ledger := NewLedger()
	ledger.Insert(entry(Expense, "Food", 100))
	ledger.Insert(entry(Income, "Salary", 250))
	ledger.Insert(entry(Expense, "Transport", 50))

	expense, income, net := ledger.Totals()
	if !expense.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expense = %s, want 150", expense)
	}
	if !income.Equal(decimal.NewFromInt(250)) {
		t.Errorf("income = %s, want 250", income)
	}
	if !net.Equal(decimal.NewFromInt(100)) {
		t.Errorf("net = %s, want 100", net)
	}
}

func TestLedger_TotalsKeepDecimalPrecision(t *testing.T) {
	ledger := NewLedger()
	for i := 0; i < 10; i++ {
		txn := entry(Expense, "Food", 0)
		txn.Amount = decimal.RequireFromString("1.1")
		ledger.Insert(txn)
	}

	expense, _, _ := ledger.Totals()
	if !expense.Equal(decimal.RequireFromString("11")) {
		t.Errorf("expense = %s, want exactly 11", expense)
	}
}

func TestLedger_EmptyTotals(t *testing.T) {
	expense, income, net := NewLedger().Totals()
	if !expense.IsZero() || !income.IsZero() || !net.IsZero() {
		t.Errorf("totals of empty ledger = %s, %s, %s, want zeros", expense, income, net)
	}
}
