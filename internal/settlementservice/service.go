// Package settlementservice manages business logic layer of settlements.
package settlementservice

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-split/internal/domain"
)

var (
	plansComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlement_plans_computed_total",
		Help: "Number of settlement plans computed.",
	})
	transactionsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlement_transactions_emitted_total",
		Help: "Number of settlement transactions emitted across all plans.",
	})
)

// Service facilitates settlement service layer logic.
type Service struct{}

// New returns settlement service struct to manage settlement bussines logic.
func New() *Service {
	return &Service{}
}

// validEntries checks the input batch and returns a copy with participant
// names trimmed of surrounding whitespace.
func validEntries(entries []domain.Entry) ([]domain.Entry, error) {
	if len(entries) == 0 {
		return nil, domain.ErrNoEntries
	}

	normalized := make([]domain.Entry, len(entries))

	for i, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, domain.ErrEmptyName
		}

		if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
			return nil, domain.ErrInvalidAmount
		}

		if e.Amount < 0 {
			return nil, domain.ErrNegativeAmount
		}

		normalized[i] = domain.Entry{Name: name, Amount: e.Amount}
	}

	return normalized, nil
}

// Compute validates the input batch and produces the settlement plan that
// brings every participant's balance to zero. The computation is pure and
// deterministic: the same entries always yield the same transaction list.
func (s *Service) Compute(ctx context.Context, entries []domain.Entry) (domain.SettlementPlan, error) {
	l := zerolog.Ctx(ctx)

	normalized, err := validEntries(entries)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.SettlementPlan{}, err
	}

	balances, total, share := computeBalances(normalized)

	transactions, err := resolve(balances)
	if err != nil {
		l.Error().Err(err).Float64("total", total).Send()
		return domain.SettlementPlan{}, err
	}

	plansComputed.Inc()
	transactionsEmitted.Add(float64(len(transactions)))

	plan := domain.SettlementPlan{
		ID:           uuid.NewString(),
		Total:        total,
		Share:        share,
		Balances:     balances,
		Transactions: transactions,
		CreatedAt:    time.Now().UTC(),
	}

	return plan, nil
}
