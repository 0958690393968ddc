package internal

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger is the in-memory transaction store. It maps store-minted
// identifiers to transactions and iterates in insertion order. It is
// not safe for concurrent use; every operation runs to completion on
// the single interaction goroutine.
type Ledger struct {
	items map[string]Transaction
	order []string // insertion order of live ids
}

func NewLedger() *Ledger {
	return &Ledger{items: make(map[string]Transaction)}
}

// Insert stores a transaction and returns the identifier the store
// minted for it. Identifiers are unique for the store's lifetime and
// never reused after deletion.
func (l *Ledger) Insert(txn Transaction) string {
	id := uuid.NewString()
	l.items[id] = txn
	l.order = append(l.order, id)
	return id
}

// InsertAll inserts transactions in order and returns their ids.
func (l *Ledger) InsertAll(txns []Transaction) []string {
	ids := make([]string, 0, len(txns))
	for _, txn := range txns {
		ids = append(ids, l.Insert(txn))
	}
	return ids
}

// Update replaces the stored transaction wholesale. It reports false
// for an unknown id; updates never create entries.
func (l *Ledger) Update(id string, txn Transaction) bool {
	if _, ok := l.items[id]; !ok {
		return false
	}
	l.items[id] = txn
	return true
}

// Delete removes an entry. Deleting an unknown id is a no-op.
func (l *Ledger) Delete(id string) {
	if _, ok := l.items[id]; !ok {
		return
	}
	delete(l.items, id)
	for i, existing := range l.order {
		if existing == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

func (l *Ledger) Get(id string) (Transaction, bool) {
	txn, ok := l.items[id]
	return txn, ok
}

// All returns a snapshot copy of the id mapping. Mutating the snapshot
// never affects the store.
func (l *Ledger) All() map[string]Transaction {
	snapshot := make(map[string]Transaction, len(l.items))
	for id, txn := range l.items {
		snapshot[id] = txn
	}
	return snapshot
}

// Transactions returns the entries in insertion order.
func (l *Ledger) Transactions() []Transaction {
	txns := make([]Transaction, 0, len(l.order))
	for _, id := range l.order {
		txns = append(txns, l.items[id])
	}
	return txns
}

func (l *Ledger) Len() int {
	return len(l.items)
}

// Totals computes the expense sum, income sum and net (income minus
// expense) in a single pass. All arithmetic is exact decimal; the
// result is displayed as authoritative currency.
func (l *Ledger) Totals() (expense, income, net decimal.Decimal) {
	for _, id := range l.order {
		txn := l.items[id]
		if txn.Kind == Expense {
			expense = expense.Add(txn.Amount)
		} else {
			income = income.Add(txn.Amount)
		}
	}
	net = income.Sub(expense)
	return expense, income, net
}
