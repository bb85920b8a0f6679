package aggregation

import (
	"strings"
	"time"

	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// costMarker tags an outflow as a cost when found in its notes.
const costMarker = "custo"

// IsCost reports whether an outflow is classified as a cost rather than
// an operating expense.
func IsCost(e domain.Entry) bool {
	return strings.Contains(strings.ToLower(e.Notes), costMarker)
}

// BuildIncomeStatement computes the DRE of month from the entries paid
// inside it. Paid entries without a payment date are left out.
func BuildIncomeStatement(entries []domain.Entry, month domain.YearMonth) domain.IncomeStatement {
	st := domain.IncomeStatement{
		Month:        month,
		GrossRevenue: decimal.Zero,
		Costs:        decimal.Zero,
		Expenses:     decimal.Zero,
	}

	for _, e := range entries {
		if !e.IsPaid() || e.PaidDate == nil || !month.Contains(*e.PaidDate) || !signed(e) {
			continue
		}
		switch {
		case e.Kind == domain.Inflow:
			st.GrossRevenue = st.GrossRevenue.Add(e.Amount)
		case IsCost(e):
			st.Costs = st.Costs.Add(e.Amount)
		default:
			st.Expenses = st.Expenses.Add(e.Amount)
		}
	}

	st.GrossProfit = st.GrossRevenue.Sub(st.Costs)
	st.NetResult = st.GrossProfit.Sub(st.Expenses)
	return st
}

// Competences lists the months offered by the income statement selector:
// every month from the earliest to the latest dated entry, newest first.
// With no dated entries it returns the month of today alone.
func Competences(entries []domain.Entry, today time.Time) []domain.YearMonth {
	var first, last domain.YearMonth
	found := false
	for _, e := range entries {
		if !e.HasDate() {
			continue
		}
		ym := domain.YearMonthOf(e.Date)
		if !found {
			first, last, found = ym, ym, true
			continue
		}
		if ym.Before(first) {
			first = ym
		}
		if last.Before(ym) {
			last = ym
		}
	}
	if !found {
		return []domain.YearMonth{domain.YearMonthOf(today)}
	}

	var out []domain.YearMonth
	for ym := last; !ym.Before(first); ym = ym.AddMonths(-1) {
		out = append(out, ym)
	}
	return out
}
