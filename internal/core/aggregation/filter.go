package aggregation

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/def_finance/internal/core/domain"
)

// FilterEntries returns the entries matching every criterion of f, in
// input order.
func FilterEntries(entries []domain.Entry, f domain.EntryFilter, today time.Time) []domain.Entry {
	out := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if Matches(e, f, today) {
			out = append(out, e)
		}
	}
	return out
}

// Matches reports whether e satisfies f. Entries without a date never
// match a date bound.
func Matches(e domain.Entry, f domain.EntryFilter, today time.Time) bool {
	if needle := strings.TrimSpace(f.Counterparty); needle != "" {
		if !strings.Contains(strings.ToLower(e.Counterparty), strings.ToLower(needle)) {
			return false
		}
	}
	if f.Status != "" && ClassifyStatus(e, today) != f.Status {
		return false
	}
	if !domain.IsAllUnits(f.Unit) && e.Unit != f.Unit {
		return false
	}
	if f.Kind != "" && e.Kind != f.Kind {
		return false
	}
	if f.From != nil && (!e.HasDate() || dateBefore(e.Date, *f.From)) {
		return false
	}
	if f.To != nil && (!e.HasDate() || dateBefore(*f.To, e.Date)) {
		return false
	}
	return true
}

// SortEntries returns a sorted copy of entries. The sort is stable, so
// ties keep their input order.
func SortEntries(entries []domain.Entry, spec domain.SortSpec) []domain.Entry {
	out := slices.Clone(entries)
	cmpFn := entryComparator(spec)
	slices.SortStableFunc(out, cmpFn)
	return out
}

func entryComparator(spec domain.SortSpec) func(a, b domain.Entry) int {
	field := spec.Field
	if !field.IsValid() {
		field = domain.SortByDate
	}
	desc := spec.Direction == domain.SortDesc
	return func(a, b domain.Entry) int {
		c := compareEntries(field, a, b)
		if desc {
			return -c
		}
		return c
	}
}

func compareEntries(field domain.SortField, a, b domain.Entry) int {
	switch field {
	case domain.SortByAmount:
		return a.Amount.Cmp(b.Amount)
	case domain.SortByCounterparty:
		return compareText(a.Counterparty, b.Counterparty)
	case domain.SortByDescription:
		return compareText(a.Description, b.Description)
	case domain.SortByUnit:
		return compareText(a.Unit, b.Unit)
	case domain.SortByKind:
		return compareText(string(a.Kind), string(b.Kind))
	case domain.SortByStatus:
		return compareText(string(a.Status), string(b.Status))
	default:
		return compareDates(a.Date, b.Date)
	}
}

// compareDates orders undated values first, then by calendar date.
func compareDates(a, b time.Time) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return -1
	case b.IsZero():
		return 1
	}
	return cmp.Compare(dayKey(a), dayKey(b))
}

func compareText(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
