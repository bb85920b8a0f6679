package dto

import (
	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashFlowParams are the query parameters of the cash-flow report.
type CashFlowParams struct {
	Month    string `form:"month" binding:"omitempty,datetime=2006-01"`
	Unit     string `form:"unit"`
	Detailed bool   `form:"detailed"`
}

// DashboardParams are the query parameters of the dashboard.
type DashboardParams struct {
	Span int `form:"span" binding:"omitempty,min=1,max=36"`
}

// IncomeStatementParams are the query parameters of the income statement.
type IncomeStatementParams struct {
	Month string `form:"month" binding:"omitempty,datetime=2006-01"`
}

// CashFlowResponse is the cash-flow report. Bucket item lists are only
// filled in detailed mode.
type CashFlowResponse struct {
	Month          domain.YearMonth        `json:"month"`
	Unit           string                  `json:"unit"`
	CashAdjustment decimal.Decimal         `json:"cashAdjustment"`
	Buckets        []domain.CashFlowBucket `json:"buckets"`
	TotalInflow    decimal.Decimal         `json:"totalInflow"`
	TotalOutflow   decimal.Decimal         `json:"totalOutflow"`
	ClosingBalance decimal.Decimal         `json:"closingBalance"`
}

// ToCashFlowResponse converts a report, dropping detail lines unless detailed.
func ToCashFlowResponse(r domain.CashFlowReport, detailed bool) CashFlowResponse {
	buckets := make([]domain.CashFlowBucket, len(r.Buckets))
	for i, b := range r.Buckets {
		if !detailed {
			b.InflowItems = []domain.BucketItem{}
			b.OutflowItems = []domain.BucketItem{}
		}
		buckets[i] = b
	}
	return CashFlowResponse{
		Month:          r.Month,
		Unit:           r.Unit,
		CashAdjustment: r.CashAdjustment,
		Buckets:        buckets,
		TotalInflow:    r.TotalInflow,
		TotalOutflow:   r.TotalOutflow,
		ClosingBalance: r.ClosingBalance,
	}
}

// LedgerRowResponse is one ledger line.
type LedgerRowResponse struct {
	EntryResponse
	IsCashAdjustment bool `json:"isCashAdjustment"`
}

// LedgerResponse is the filtered, sorted report view.
type LedgerResponse struct {
	Rows         []LedgerRowResponse `json:"rows"`
	CashApplied  bool                `json:"cashApplied"`
	TotalInflow  decimal.Decimal     `json:"totalInflow"`
	TotalOutflow decimal.Decimal     `json:"totalOutflow"`
	Net          decimal.Decimal     `json:"net"`
}

// ToLedgerResponse converts a ledger report.
func ToLedgerResponse(r domain.LedgerReport) LedgerResponse {
	rows := make([]LedgerRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = LedgerRowResponse{
			EntryResponse:    ToEntryResponse(row.Entry, row.DerivedStatus),
			IsCashAdjustment: row.IsCashAdjustment,
		}
	}
	return LedgerResponse{
		Rows:         rows,
		CashApplied:  r.CashApplied,
		TotalInflow:  r.TotalInflow,
		TotalOutflow: r.TotalOutflow,
		Net:          r.Net,
	}
}

// CompetencesResponse lists the months selectable in the income statement.
type CompetencesResponse struct {
	Months []domain.YearMonth `json:"months"`
}
