// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrNoEntries indicates that the input batch contains no entries.
	ErrNoEntries = errors.New("no entries provided")
	// ErrEmptyName indicates that an entry has an empty participant name.
	ErrEmptyName = errors.New("empty participant name")
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates negative amount.
	ErrNegativeAmount = errors.New("negative amount")
	// ErrInconsistentBalance indicates that the net balances do not sum to zero
	// within tolerance. It signals a defect in the balance calculation, not a
	// user input problem.
	ErrInconsistentBalance = errors.New("net balances do not sum to zero")
)

// Entry holds one contributed amount recorded under a participant name.
//
// Names need not be unique within a batch; amounts recorded under the same
// name are merged into a single participant.
type Entry struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Balance holds the net position of one participant relative to the equal
// share. Positive net means the participant is owed money, negative means
// the participant owes money.
type Balance struct {
	Name string  `json:"name"`
	Paid float64 `json:"paid"`
	Net  float64 `json:"net"`
}

// Transaction is a single payment instruction that reduces the payer's debt
// and the payee's credit by exactly Value. Value is always positive and
// From never equals To.
type Transaction struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Value float64 `json:"value"`
}

// SettlementPlan is the result of one settlement computation. It is never
// persisted; ID exists only to correlate logs with responses.
type SettlementPlan struct {
	ID           string        `json:"id"`
	Total        float64       `json:"total"`
	Share        float64       `json:"share"`
	Balances     []Balance     `json:"balances"`
	Transactions []Transaction `json:"transactions"`
	CreatedAt    time.Time     `json:"created_at"`
}
