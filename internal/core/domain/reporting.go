package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashAdjustmentKey is the fixed local-store key of the cash adjustment.
const CashAdjustmentKey = "defFinance:emCashValue"

// Identifiers and labels of the synthetic cash adjustment lines.
const (
	CashBucketItemID   = "em-cash-adjustment"
	CashLedgerRowID    = "em-cash"
	CashLabel          = "Saldo em Cash"
	CashLedgerNote     = "Ajuste manual confirmado no Dashboard"
	CashLedgerUnitName = "Todas"
)

// BucketItem is one detail line of a cash-flow bucket.
type BucketItem struct {
	EntryID          string          `json:"entryID"`
	Date             *time.Time      `json:"date,omitempty"`
	Counterparty     string          `json:"counterparty"`
	Description      string          `json:"description,omitempty"`
	Unit             string          `json:"unit,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	IsCashAdjustment bool            `json:"isCashAdjustment"`
}

// CashFlowBucket aggregates one day of the projected month. Day 0 is the
// overdue carry-forward bucket.
type CashFlowBucket struct {
	Day            int             `json:"day"`
	Date           *time.Time      `json:"date,omitempty"`
	Inflow         decimal.Decimal `json:"inflow"`
	Outflow        decimal.Decimal `json:"outflow"`
	DayBalance     decimal.Decimal `json:"dayBalance"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	InflowItems    []BucketItem    `json:"inflowItems"`
	OutflowItems   []BucketItem    `json:"outflowItems"`
}

// CashFlowReport is the day-by-day projection of a month.
type CashFlowReport struct {
	Month          YearMonth        `json:"month"`
	Unit           string           `json:"unit"`
	CashAdjustment decimal.Decimal  `json:"cashAdjustment"`
	Buckets        []CashFlowBucket `json:"buckets"`
	TotalInflow    decimal.Decimal  `json:"totalInflow"`
	TotalOutflow   decimal.Decimal  `json:"totalOutflow"`
	ClosingBalance decimal.Decimal  `json:"closingBalance"`
}

// LedgerRow is one line of the filtered report view.
type LedgerRow struct {
	Entry            Entry         `json:"entry"`
	DerivedStatus    DerivedStatus `json:"derivedStatus"`
	IsCashAdjustment bool          `json:"isCashAdjustment"`
}

// LedgerReport is the filtered, sorted tabular report.
type LedgerReport struct {
	Rows         []LedgerRow     `json:"rows"`
	CashApplied  bool            `json:"cashApplied"`
	TotalInflow  decimal.Decimal `json:"totalInflow"`
	TotalOutflow decimal.Decimal `json:"totalOutflow"`
	Net          decimal.Decimal `json:"net"`
}

// KindTotals are the dashboard totals of one kind.
type KindTotals struct {
	Open    decimal.Decimal `json:"open"`
	Overdue decimal.Decimal `json:"overdue"`
	Settled decimal.Decimal `json:"settled"`
	Pending decimal.Decimal `json:"pending"` // Open + Overdue
}

// DashboardSummary holds the dashboard cards.
type DashboardSummary struct {
	Receivables                KindTotals      `json:"receivables"`
	Payables                   KindTotals      `json:"payables"`
	CashAdjustment             decimal.Decimal `json:"cashAdjustment"`
	CashApplied                bool            `json:"cashApplied"`
	ReceivablesOverdueNoCash   decimal.Decimal `json:"receivablesOverdueWithoutCash"`
	OperatingResult            decimal.Decimal `json:"operatingResult"`
	OperatingResultWithoutCash decimal.Decimal `json:"operatingResultWithoutCash"`
}

// IncomeStatement is the managerial income statement (DRE) of a month.
type IncomeStatement struct {
	Month        YearMonth       `json:"month"`
	GrossRevenue decimal.Decimal `json:"grossRevenue"`
	Costs        decimal.Decimal `json:"costs"`
	GrossProfit  decimal.Decimal `json:"grossProfit"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetResult    decimal.Decimal `json:"netResult"`
}

// MonthPoint is one point of the payables/receivables chart.
type MonthPoint struct {
	Month   YearMonth       `json:"month"`
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
}

// UnitAmount is a total attributed to one unit.
type UnitAmount struct {
	Unit   string          `json:"unit"`
	Amount decimal.Decimal `json:"amount"`
}

// DateGroup holds the entries sharing one due date.
type DateGroup struct {
	Date    time.Time       `json:"date"`
	Entries []Entry         `json:"entries"`
	Total   decimal.Decimal `json:"total"`
}

// ListSummary backs the payables and receivables pages.
type ListSummary struct {
	Total         decimal.Decimal `json:"total"`
	OpenTotal     decimal.Decimal `json:"openTotal"`
	OverdueTotal  decimal.Decimal `json:"overdueTotal"`
	OpenByUnit    []UnitAmount    `json:"openByUnit"`
	OverdueByUnit []UnitAmount    `json:"overdueByUnit"`
	Groups        []DateGroup     `json:"groups"`
}

// Dashboard bundles the summary cards with the chart series.
type Dashboard struct {
	Summary DashboardSummary `json:"summary"`
	Chart   []MonthPoint     `json:"chart"`
}
