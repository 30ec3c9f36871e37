package reportservice

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-split/internal/domain"
	"github.com/go-petr/pet-split/internal/settlementdelivery"
	"github.com/go-petr/pet-split/pkg/configpkg"
	"github.com/go-petr/pet-split/pkg/errorspkg"
)

func TestBuild(t *testing.T) {
	testEntries := []domain.Entry{
		{Name: "alice", Amount: 1200},
		{Name: "bob", Amount: 600},
		{Name: "carol", Amount: 0},
	}

	testPlan := domain.SettlementPlan{
		ID:    uuid.NewString(),
		Total: 1800,
		Share: 600,
		Balances: []domain.Balance{
			{Name: "alice", Paid: 1200, Net: 600},
			{Name: "bob", Paid: 600, Net: 0},
			{Name: "carol", Paid: 0, Net: -600},
		},
		Transactions: []domain.Transaction{
			{From: "carol", To: "alice", Value: 600},
		},
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}

	settledPlan := domain.SettlementPlan{
		ID:    uuid.NewString(),
		Total: 300,
		Share: 100,
		Balances: []domain.Balance{
			{Name: "alice", Paid: 100, Net: 0},
			{Name: "bob", Paid: 100, Net: 0},
			{Name: "carol", Paid: 100, Net: 0},
		},
		Transactions: []domain.Transaction{},
		CreatedAt:    time.Now().Truncate(time.Second).UTC(),
	}

	config := configpkg.Config{CurrencySymbol: "₹"}

	testCases := []struct {
		name          string
		entries       []domain.Entry
		buildStubs    func(settlementService *settlementdelivery.MockService)
		checkResponse func(res domain.Report, err error)
	}{
		{
			name:    "OK",
			entries: testEntries,
			buildStubs: func(settlementService *settlementdelivery.MockService) {
				settlementService.EXPECT().
					Compute(gomock.Any(), gomock.Eq(testEntries)).
					Times(1).
					Return(testPlan, nil)
			},
			checkResponse: func(res domain.Report, err error) {
				require.NoError(t, err)
				require.Equal(t, testPlan.ID, res.SettlementID)
				require.Equal(t, strings.Join(res.Lines, "\n"), res.Text)

				require.Contains(t, res.Lines, "[OVERALL SUMMARY]")
				require.Contains(t, res.Lines, "  Total Expense: ₹1800.00")
				require.Contains(t, res.Lines, "  Number of People: 3")
				require.Contains(t, res.Lines, "  Equal Share per Person: ₹600.00")
				require.Contains(t, res.Lines, "  Total transactions needed: 1")
				require.Contains(t, res.Lines, "  1. carol should pay alice ₹600.00")

				require.Contains(t, res.Text, "(Receives)")
				require.Contains(t, res.Text, "(Pays)")
				require.Contains(t, res.Text, "(Even)")
			},
		},
		{
			name:    "EveryoneSettled",
			entries: testEntries,
			buildStubs: func(settlementService *settlementdelivery.MockService) {
				settlementService.EXPECT().
					Compute(gomock.Any(), gomock.Eq(testEntries)).
					Times(1).
					Return(settledPlan, nil)
			},
			checkResponse: func(res domain.Report, err error) {
				require.NoError(t, err)
				require.Contains(t, res.Lines, "  Everyone is settled! No payments needed.")
				require.NotContains(t, res.Text, "should pay")
			},
		},
		{
			name:    "ErrNoEntries",
			entries: nil,
			buildStubs: func(settlementService *settlementdelivery.MockService) {
				settlementService.EXPECT().
					Compute(gomock.Any(), gomock.Nil()).
					Times(1).
					Return(domain.SettlementPlan{}, domain.ErrNoEntries)
			},
			checkResponse: func(res domain.Report, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrNoEntries.Error())
			},
		},
		{
			name:    "InternalError",
			entries: testEntries,
			buildStubs: func(settlementService *settlementdelivery.MockService) {
				settlementService.EXPECT().
					Compute(gomock.Any(), gomock.Eq(testEntries)).
					Times(1).
					Return(domain.SettlementPlan{}, errorspkg.ErrInternal)
			},
			checkResponse: func(res domain.Report, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			settlementService := settlementdelivery.NewMockService(ctrl)
			reportService := New(settlementService, config)

			tc.buildStubs(settlementService)

			tc.checkResponse(reportService.Build(context.Background(), tc.entries))
		})
	}
}
