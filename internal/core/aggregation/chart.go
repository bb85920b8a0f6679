package aggregation

import (
	"time"

	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultChartSpan is the number of months charted when none is given.
const DefaultChartSpan = 6

// MonthlySeries sums the unpaid inflows and outflows falling due in each of
// span consecutive months starting with the month of today. The cash
// adjustment is added to the first month's inflow.
func MonthlySeries(entries []domain.Entry, today time.Time, span int, cash decimal.Decimal) []domain.MonthPoint {
	if span <= 0 {
		span = DefaultChartSpan
	}
	start := domain.YearMonthOf(today)

	points := make([]domain.MonthPoint, span)
	index := make(map[domain.YearMonth]int, span)
	for i := range points {
		ym := start.AddMonths(i)
		points[i] = domain.MonthPoint{Month: ym, Inflow: decimal.Zero, Outflow: decimal.Zero}
		index[ym] = i
	}

	for _, e := range entries {
		if e.IsPaid() || !e.HasDate() || !signed(e) {
			continue
		}
		i, ok := index[domain.YearMonthOf(e.Date)]
		if !ok {
			continue
		}
		if e.Kind == domain.Inflow {
			points[i].Inflow = points[i].Inflow.Add(e.Amount)
		} else {
			points[i].Outflow = points[i].Outflow.Add(e.Amount)
		}
	}

	points[0].Inflow = points[0].Inflow.Add(cash)
	return points
}
