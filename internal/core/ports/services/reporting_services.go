package services

import (
	"context"

	"github.com/SscSPs/def_finance/internal/core/domain"
)

// ReportingService defines operations for generating financial reports.
// Every report reads the current entry snapshot and cash adjustment.
type ReportingService interface {
	// CashFlow projects a month day by day. A nil month means the current month.
	CashFlow(ctx context.Context, month *domain.YearMonth, unit string) (*domain.CashFlowReport, error)

	// Ledger returns the filtered, sorted report view.
	Ledger(ctx context.Context, filter domain.EntryFilter, sort domain.SortSpec) (*domain.LedgerReport, error)

	// Dashboard returns the summary cards and a chart spanning span months
	// (the configured default when span is zero).
	Dashboard(ctx context.Context, span int) (*domain.Dashboard, error)

	// IncomeStatement builds the DRE of a month. A nil month means the current month.
	IncomeStatement(ctx context.Context, month *domain.YearMonth) (*domain.IncomeStatement, error)

	// Competences lists the months available to the income statement.
	Competences(ctx context.Context) ([]domain.YearMonth, error)
}
