package aggregation

import (
	"slices"
	"time"

	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummarizeList totals a payables or receivables listing and groups its
// entries by due date, dates ascending. Unit breakdowns are ordered by
// unit name.
func SummarizeList(entries []domain.Entry, today time.Time) domain.ListSummary {
	sorted := SortEntries(entries, domain.SortSpec{Field: domain.SortByDate, Direction: domain.SortAsc})

	summary := domain.ListSummary{
		Total:         decimal.Zero,
		OpenTotal:     decimal.Zero,
		OverdueTotal:  decimal.Zero,
		OpenByUnit:    []domain.UnitAmount{},
		OverdueByUnit: []domain.UnitAmount{},
		Groups:        []domain.DateGroup{},
	}
	open := map[string]decimal.Decimal{}
	overdue := map[string]decimal.Decimal{}

	for _, e := range sorted {
		amount := e.Amount
		if amount.IsNegative() {
			amount = decimal.Zero
		}
		summary.Total = summary.Total.Add(amount)

		switch ClassifyStatus(e, today) {
		case domain.DerivedDue:
			summary.OpenTotal = summary.OpenTotal.Add(amount)
			open[e.Unit] = open[e.Unit].Add(amount)
		case domain.DerivedOverdue:
			summary.OverdueTotal = summary.OverdueTotal.Add(amount)
			overdue[e.Unit] = overdue[e.Unit].Add(amount)
		}

		n := len(summary.Groups)
		if n == 0 || compareDates(summary.Groups[n-1].Date, e.Date) != 0 {
			summary.Groups = append(summary.Groups, domain.DateGroup{Date: e.Date, Total: decimal.Zero})
			n++
		}
		g := &summary.Groups[n-1]
		g.Entries = append(g.Entries, e)
		g.Total = g.Total.Add(amount)
	}

	summary.OpenByUnit = unitAmounts(open)
	summary.OverdueByUnit = unitAmounts(overdue)
	return summary
}

func unitAmounts(m map[string]decimal.Decimal) []domain.UnitAmount {
	units := make([]string, 0, len(m))
	for u := range m {
		units = append(units, u)
	}
	slices.Sort(units)

	out := make([]domain.UnitAmount, 0, len(units))
	for _, u := range units {
		out = append(out, domain.UnitAmount{Unit: u, Amount: m[u]})
	}
	return out
}
