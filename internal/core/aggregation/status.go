// Package aggregation turns flat lists of financial entries into the
// derived views the dashboard serves: status classification, filtered and
// sorted lists, the day-by-day cash-flow projection, dashboard totals, the
// managerial income statement and the monthly chart series.
//
// Every function is pure. Inputs are never mutated and results never
// alias caller-owned slices, so the same input always yields the same
// output.
package aggregation

import (
	"time"

	"github.com/SscSPs/def_finance/internal/core/domain"
)

// ClassifyStatus derives the lifecycle status of e relative to today.
// Entries without a usable date are never overdue.
func ClassifyStatus(e domain.Entry, today time.Time) domain.DerivedStatus {
	if e.IsPaid() {
		return domain.DerivedPaid
	}
	if e.HasDate() && dateBefore(e.Date, today) {
		return domain.DerivedOverdue
	}
	return domain.DerivedDue
}

// dayKey collapses t into a comparable calendar date, ignoring clock time
// and the location t carries.
func dayKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

func dateBefore(a, b time.Time) bool {
	return dayKey(a) < dayKey(b)
}

// signed reports whether e can contribute to kind-signed totals: the kind
// must be known and the amount non-negative.
func signed(e domain.Entry) bool {
	return e.Kind.IsValid() && !e.Amount.IsNegative()
}
