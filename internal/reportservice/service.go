// Package reportservice manages business logic layer of settlement reports.
package reportservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-split/internal/domain"
	"github.com/go-petr/pet-split/internal/settlementdelivery"
	"github.com/go-petr/pet-split/pkg/configpkg"
	"github.com/go-petr/pet-split/pkg/moneypkg"
)

var reportsBuilt = promauto.NewCounter(prometheus.CounterOpts{
	Name: "settlement_reports_built_total",
	Help: "The total number of settlement reports built.",
})

const (
	reportWidth = 70
	// Net balances inside this range are presented as settled up.
	evenTolerance = 1e-6
)

// Service facilitates report service layer logic.
type Service struct {
	settlementService settlementdelivery.Service
	config            configpkg.Config
}

// New returns report service struct to manage report bussines logic.
func New(ss settlementdelivery.Service, config configpkg.Config) *Service {
	return &Service{
		settlementService: ss,
		config:            config,
	}
}

// Build computes a settlement plan for the given entries and renders it
// as a human readable report.
func (s *Service) Build(ctx context.Context, entries []domain.Entry) (domain.Report, error) {
	l := zerolog.Ctx(ctx)

	plan, err := s.settlementService.Compute(ctx, entries)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Report{}, err
	}

	lines := s.render(plan)

	reportsBuilt.Inc()

	return domain.Report{
		SettlementID: plan.ID,
		Lines:        lines,
		Text:         strings.Join(lines, "\n"),
	}, nil
}

func (s *Service) render(plan domain.SettlementPlan) []string {
	symbol := s.config.CurrencySymbol
	banner := strings.Repeat("=", reportWidth)

	lines := []string{
		banner,
		center("GROUP EXPENSE SUMMARY & SETTLEMENT REPORT", reportWidth),
		banner,
		"",
		"[OVERALL SUMMARY]",
		fmt.Sprintf("  Total Expense: %s%s", symbol, moneypkg.Format(plan.Total)),
		fmt.Sprintf("  Number of People: %d", len(plan.Balances)),
		fmt.Sprintf("  Equal Share per Person: %s%s", symbol, moneypkg.Format(plan.Share)),
		"",
		"[INDIVIDUAL SPENDING]",
	}

	for _, b := range plan.Balances {
		lines = append(lines, fmt.Sprintf("  %-20s spent %s%10s", b.Name, symbol, moneypkg.Format(b.Paid)))
	}

	lines = append(lines,
		"",
		"[BALANCE SHEET]",
		fmt.Sprintf("  %-20s %15s %15s %15s", "Name", "Amount Paid", "Equal Share", "Balance"),
		"  "+strings.Repeat("-", 65),
	)

	for _, b := range plan.Balances {
		var status string

		switch {
		case b.Net > evenTolerance:
			status = "(Receives)"
		case b.Net < -evenTolerance:
			status = "(Pays)"
		default:
			status = "(Even)"
		}

		lines = append(lines, fmt.Sprintf("  %-20s %15.2f %15.2f %+10.2f %s",
			b.Name, b.Paid, plan.Share, b.Net, status))
	}

	lines = append(lines, "", "[SETTLEMENT INSTRUCTIONS]")

	if len(plan.Transactions) == 0 {
		lines = append(lines, "  Everyone is settled! No payments needed.")
	} else {
		lines = append(lines, fmt.Sprintf("  Total transactions needed: %d", len(plan.Transactions)), "")

		for i, t := range plan.Transactions {
			lines = append(lines, fmt.Sprintf("  %d. %s should pay %s %s%s",
				i+1, t.From, t.To, symbol, moneypkg.Format(t.Value)))
		}
	}

	lines = append(lines, "", banner)

	return lines
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}

	left := (width - len(s)) / 2
	right := width - len(s) - left

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
