package aggregation

import (
	"time"

	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summarize computes the dashboard cards. A positive cash adjustment is
// applied to the receivables overdue total and to the operating result;
// open totals are never adjusted.
func Summarize(entries []domain.Entry, today time.Time, cash decimal.Decimal) domain.DashboardSummary {
	receivables := zeroKindTotals()
	payables := zeroKindTotals()

	for _, e := range entries {
		if !signed(e) {
			continue
		}
		t := &payables
		if e.Kind == domain.Inflow {
			t = &receivables
		}
		switch ClassifyStatus(e, today) {
		case domain.DerivedPaid:
			t.Settled = t.Settled.Add(e.Amount)
		case domain.DerivedOverdue:
			t.Overdue = t.Overdue.Add(e.Amount)
		default:
			t.Open = t.Open.Add(e.Amount)
		}
	}

	summary := domain.DashboardSummary{
		CashAdjustment:           cash,
		CashApplied:              cash.IsPositive(),
		ReceivablesOverdueNoCash: receivables.Overdue,
	}
	summary.OperatingResultWithoutCash = receivables.Open.Sub(payables.Open)
	summary.OperatingResult = summary.OperatingResultWithoutCash
	if summary.CashApplied {
		receivables.Overdue = receivables.Overdue.Add(cash)
		summary.OperatingResult = summary.OperatingResult.Add(cash)
	}
	receivables.Pending = receivables.Open.Add(receivables.Overdue)
	payables.Pending = payables.Open.Add(payables.Overdue)

	summary.Receivables = receivables
	summary.Payables = payables
	return summary
}

func zeroKindTotals() domain.KindTotals {
	return domain.KindTotals{
		Open:    decimal.Zero,
		Overdue: decimal.Zero,
		Settled: decimal.Zero,
		Pending: decimal.Zero,
	}
}
