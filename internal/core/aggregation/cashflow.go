package aggregation

import (
	"time"

	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildCashFlow projects the not-yet-paid entries of month onto one bucket
// per calendar day, preceded by a day-zero bucket carrying every entry
// left unpaid before the month started.
//
// A non-zero cash adjustment is always added to the day-zero inflow,
// whatever filters the caller uses elsewhere. unit pre-filters the entries
// unless it selects all units. Paid entries and entries that cannot be
// placed in a bucket are ignored.
func BuildCashFlow(entries []domain.Entry, month domain.YearMonth, unit string, cash decimal.Decimal) domain.CashFlowReport {
	firstDay := month.FirstDay(time.UTC)
	days := month.DaysIn()

	buckets := make([]domain.CashFlowBucket, days+1)
	for i := range buckets {
		buckets[i] = newBucket(i)
		if i > 0 {
			d := time.Date(month.Year, month.Month, i, 0, 0, 0, 0, time.UTC)
			buckets[i].Date = &d
		}
	}

	filterUnit := !domain.IsAllUnits(unit)
	for _, e := range entries {
		if filterUnit && e.Unit != unit {
			continue
		}
		if !signed(e) || !e.HasDate() {
			continue
		}

		var idx int
		switch ClassifyStatus(e, firstDay) {
		case domain.DerivedOverdue:
			idx = 0
		case domain.DerivedDue:
			if !month.Contains(e.Date) {
				continue
			}
			idx = e.Date.Day()
			if idx < 1 || idx > days {
				continue
			}
		default:
			continue
		}
		addToBucket(&buckets[idx], e)
	}

	if !cash.IsZero() {
		zero := &buckets[0]
		zero.Inflow = zero.Inflow.Add(cash)
		zero.InflowItems = append(zero.InflowItems, domain.BucketItem{
			EntryID:          domain.CashBucketItemID,
			Counterparty:     domain.CashLabel,
			Amount:           cash,
			IsCashAdjustment: true,
		})
	}

	report := domain.CashFlowReport{
		Month:          month,
		Unit:           unit,
		CashAdjustment: cash,
		TotalInflow:    decimal.Zero,
		TotalOutflow:   decimal.Zero,
	}
	running := decimal.Zero
	for i := range buckets {
		b := &buckets[i]
		b.DayBalance = b.Inflow.Sub(b.Outflow)
		running = running.Add(b.DayBalance)
		b.RunningBalance = running
		report.TotalInflow = report.TotalInflow.Add(b.Inflow)
		report.TotalOutflow = report.TotalOutflow.Add(b.Outflow)
	}
	report.Buckets = buckets
	report.ClosingBalance = running
	return report
}

func newBucket(day int) domain.CashFlowBucket {
	return domain.CashFlowBucket{
		Day:            day,
		Inflow:         decimal.Zero,
		Outflow:        decimal.Zero,
		DayBalance:     decimal.Zero,
		RunningBalance: decimal.Zero,
		InflowItems:    []domain.BucketItem{},
		OutflowItems:   []domain.BucketItem{},
	}
}

func addToBucket(b *domain.CashFlowBucket, e domain.Entry) {
	date := e.Date
	item := domain.BucketItem{
		EntryID:      e.ID,
		Date:         &date,
		Counterparty: e.Counterparty,
		Description:  e.Description,
		Unit:         e.Unit,
		Amount:       e.Amount,
	}
	if e.Kind == domain.Inflow {
		b.Inflow = b.Inflow.Add(e.Amount)
		b.InflowItems = append(b.InflowItems, item)
		return
	}
	b.Outflow = b.Outflow.Add(e.Amount)
	b.OutflowItems = append(b.OutflowItems, item)
}
