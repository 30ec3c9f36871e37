package settlementservice

import (
	"github.com/go-petr/pet-split/internal/domain"
)

// computeBalances derives each participant's net position from the raw
// entries. Amounts recorded under the same name are merged into a single
// participant, and the equal share divides the total by the number of
// distinct participants so that the nets always sum to zero.
//
// Balances are returned in first-seen input order; the resolver relies on
// that order to break ties deterministically.
func computeBalances(entries []domain.Entry) ([]domain.Balance, float64, float64) {
	paid := make(map[string]float64, len(entries))
	order := make([]string, 0, len(entries))

	var total float64

	for _, e := range entries {
		if _, ok := paid[e.Name]; !ok {
			order = append(order, e.Name)
		}

		paid[e.Name] += e.Amount
		total += e.Amount
	}

	share := total / float64(len(order))

	balances := make([]domain.Balance, len(order))
	for i, name := range order {
		balances[i] = domain.Balance{
			Name: name,
			Paid: paid[name],
			Net:  paid[name] - share,
		}
	}

	return balances, total, share
}
