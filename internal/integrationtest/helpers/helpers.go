// Package helpers provides shared fixtures used in delivery and integration tests.
package helpers

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-petr/pet-split/internal/domain"
	"github.com/go-petr/pet-split/pkg/randompkg"
)

// RandomEntries returns count expense entries with random names and amounts.
func RandomEntries(count int) []domain.Entry {
	entries := make([]domain.Entry, count)

	for i := range entries {
		entries[i] = domain.Entry{
			Name:   randompkg.Name(),
			Amount: randompkg.FloatBetween(1, 1_000),
		}
	}

	return entries
}

// RandomPlan returns a settlement plan for the given entries to be used in delivery tests.
func RandomPlan(entries []domain.Entry) domain.SettlementPlan {
	var total float64
	for _, e := range entries {
		total += e.Amount
	}

	share := total / float64(len(entries))

	balances := make([]domain.Balance, len(entries))
	for i, e := range entries {
		balances[i] = domain.Balance{Name: e.Name, Paid: e.Amount, Net: e.Amount - share}
	}

	transactions := []domain.Transaction{}
	if len(entries) > 1 {
		transactions = append(transactions, domain.Transaction{
			From:  entries[len(entries)-1].Name,
			To:    entries[0].Name,
			Value: randompkg.FloatBetween(1, 100),
		})
	}

	return domain.SettlementPlan{
		ID:           uuid.NewString(),
		Total:        total,
		Share:        share,
		Balances:     balances,
		Transactions: transactions,
		CreatedAt:    time.Now().Truncate(time.Second).UTC(),
	}
}
