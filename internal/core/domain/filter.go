package domain

import (
	"strings"
	"time"
)

// AllUnits is the unit selector value that disables unit filtering.
const AllUnits = "todas"

// IsAllUnits reports whether unit selects every unit.
func IsAllUnits(unit string) bool {
	unit = strings.TrimSpace(unit)
	return unit == "" || strings.EqualFold(unit, AllUnits)
}

// EntryFilter holds the optional, AND-combined criteria of a list or
// report view. Zero values disable the corresponding criterion.
type EntryFilter struct {
	Counterparty string        // case-insensitive substring
	Status       DerivedStatus // derived status equality
	Unit         string        // exact unit, AllUnits or empty for any
	Kind         EntryKind     // kind equality
	From         *time.Time    // inclusive lower bound on Date
	To           *time.Time    // inclusive upper bound on Date
}

// SortField names a sortable entry column.
type SortField string

const (
	SortByDate         SortField = "date"
	SortByAmount       SortField = "amount"
	SortByCounterparty SortField = "counterparty"
	SortByDescription  SortField = "description"
	SortByUnit         SortField = "unit"
	SortByKind         SortField = "kind"
	SortByStatus       SortField = "status"
)

// IsValid reports whether f is a known sort column.
func (f SortField) IsValid() bool {
	switch f {
	case SortByDate, SortByAmount, SortByCounterparty, SortByDescription, SortByUnit, SortByKind, SortByStatus:
		return true
	}
	return false
}

// SortDirection toggles ascending/descending order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec selects the sort column and direction. The zero value sorts
// by date ascending.
type SortSpec struct {
	Field     SortField
	Direction SortDirection
}
