package aggregation

import (
	"slices"
	"time"

	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashRowApplies reports whether the cash adjustment shows up as a row of
// the filtered report: it must be positive and the active kind and status
// filters must admit an overdue inflow.
func CashRowApplies(f domain.EntryFilter, cash decimal.Decimal) bool {
	if !cash.IsPositive() {
		return false
	}
	kindOk := f.Kind == "" || f.Kind == domain.Inflow
	statusOk := f.Status == "" || f.Status == domain.DerivedOverdue
	return kindOk && statusOk
}

// BuildLedger filters entries, adds the cash adjustment row when
// CashRowApplies, and sorts the result. Totals are signed by kind.
func BuildLedger(entries []domain.Entry, f domain.EntryFilter, cash decimal.Decimal, today time.Time, sort domain.SortSpec) domain.LedgerReport {
	filtered := FilterEntries(entries, f, today)

	rows := make([]domain.LedgerRow, 0, len(filtered)+1)
	for _, e := range filtered {
		rows = append(rows, domain.LedgerRow{Entry: e, DerivedStatus: ClassifyStatus(e, today)})
	}

	report := domain.LedgerReport{
		TotalInflow:  decimal.Zero,
		TotalOutflow: decimal.Zero,
	}
	if CashRowApplies(f, cash) {
		report.CashApplied = true
		rows = append(rows, cashLedgerRow(cash))
	}

	cmpFn := entryComparator(sort)
	slices.SortStableFunc(rows, func(a, b domain.LedgerRow) int {
		return cmpFn(a.Entry, b.Entry)
	})

	for _, r := range rows {
		if !signed(r.Entry) {
			continue
		}
		if r.Entry.Kind == domain.Inflow {
			report.TotalInflow = report.TotalInflow.Add(r.Entry.Amount)
		} else {
			report.TotalOutflow = report.TotalOutflow.Add(r.Entry.Amount)
		}
	}
	report.Rows = rows
	report.Net = report.TotalInflow.Sub(report.TotalOutflow)
	return report
}

func cashLedgerRow(cash decimal.Decimal) domain.LedgerRow {
	return domain.LedgerRow{
		Entry: domain.Entry{
			ID:           domain.CashLedgerRowID,
			Kind:         domain.Inflow,
			Amount:       cash,
			Status:       domain.StatusDue,
			Counterparty: domain.CashLabel,
			Description:  domain.CashLedgerNote,
			Unit:         domain.CashLedgerUnitName,
		},
		DerivedStatus:    domain.DerivedOverdue,
		IsCashAdjustment: true,
	}
}
