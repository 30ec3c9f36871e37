package settlementservice

import (
	"container/heap"
	"math"

	"github.com/go-petr/pet-split/internal/domain"
)

// tolerance is the threshold below which a balance counts as settled. It
// absorbs the floating-point drift of the share division.
const tolerance = 1e-6

// party is one side of an outstanding balance. amount is always positive;
// seen is the first-seen input position used to break ties.
type party struct {
	name   string
	amount float64
	seen   int
}

// partyQueue is a max-heap of outstanding amounts. Equal amounts pop in
// first-seen input order, which keeps the resolver output deterministic.
type partyQueue []party

func (q partyQueue) Len() int { return len(q) }

func (q partyQueue) Less(i, j int) bool {
	if q[i].amount != q[j].amount {
		return q[i].amount > q[j].amount
	}

	return q[i].seen < q[j].seen
}

func (q partyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *partyQueue) Push(x any) { *q = append(*q, x.(party)) }

func (q *partyQueue) Pop() any {
	old := *q
	n := len(old)
	p := old[n-1]
	*q = old[:n-1]

	return p
}

// resolve matches the largest creditor with the largest debtor until every
// balance is within tolerance of zero, emitting one transaction per match.
// Each match fully settles at least one of the two parties, which bounds
// the plan at len(balances)-1 transactions.
//
// The nets must sum to zero within tolerance; anything else means the
// balance calculation upstream is broken and resolving would produce a
// wrong plan.
func resolve(balances []domain.Balance) ([]domain.Transaction, error) {
	var sum float64
	for _, b := range balances {
		sum += b.Net
	}

	if math.Abs(sum) > tolerance {
		return nil, domain.ErrInconsistentBalance
	}

	var creditors, debtors partyQueue

	for i, b := range balances {
		switch {
		case b.Net > tolerance:
			creditors = append(creditors, party{name: b.Name, amount: b.Net, seen: i})
		case b.Net < -tolerance:
			debtors = append(debtors, party{name: b.Name, amount: -b.Net, seen: i})
		}
	}

	heap.Init(&creditors)
	heap.Init(&debtors)

	transactions := []domain.Transaction{}

	for creditors.Len() > 0 && debtors.Len() > 0 {
		creditor := heap.Pop(&creditors).(party)
		debtor := heap.Pop(&debtors).(party)

		settled := math.Min(creditor.amount, debtor.amount)

		transactions = append(transactions, domain.Transaction{
			From:  debtor.name,
			To:    creditor.name,
			Value: settled,
		})

		if creditor.amount-settled > tolerance {
			creditor.amount -= settled
			heap.Push(&creditors, creditor)
		}

		if debtor.amount-settled > tolerance {
			debtor.amount -= settled
			heap.Push(&debtors, debtor)
		}
	}

	return transactions, nil
}
