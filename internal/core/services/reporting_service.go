package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/def_finance/internal/core/aggregation"
	"github.com/SscSPs/def_finance/internal/core/domain"
	portssvc "github.com/SscSPs/def_finance/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// EntrySource returns the full current entry list.
type EntrySource interface {
	Entries(ctx context.Context) ([]domain.Entry, error)
}

// CashSource returns the current cash adjustment.
type CashSource interface {
	Value(ctx context.Context) decimal.Decimal
}

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	entries   EntrySource
	cash      CashSource
	chartSpan int
}

// NewReportingService creates a reporting service reading from entries and
// cash. chartSpan is the dashboard chart length used when none is asked for.
func NewReportingService(entries EntrySource, cash CashSource, chartSpan int, opts ...ClockOption) portssvc.ReportingService {
	if chartSpan <= 0 {
		chartSpan = aggregation.DefaultChartSpan
	}
	svc := &reportingService{
		BaseService: newBaseService(),
		entries:     entries,
		cash:        cash,
		chartSpan:   chartSpan,
	}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) load(ctx context.Context, report string) ([]domain.Entry, error) {
	entries, err := s.entries.Entries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for report", slog.String("report", report))
		return nil, fmt.Errorf("failed to load entries for %s: %w", report, err)
	}
	return entries, nil
}

func (s *reportingService) cashValue(ctx context.Context) decimal.Decimal {
	if s.cash == nil {
		return decimal.Zero
	}
	return s.cash.Value(ctx)
}

func (s *reportingService) monthOrCurrent(month *domain.YearMonth) domain.YearMonth {
	if month != nil {
		return *month
	}
	return domain.YearMonthOf(s.TodayDate())
}

// CashFlow projects a month day by day.
func (s *reportingService) CashFlow(ctx context.Context, month *domain.YearMonth, unit string) (*domain.CashFlowReport, error) {
	entries, err := s.load(ctx, "cash flow")
	if err != nil {
		return nil, err
	}
	ym := s.monthOrCurrent(month)

	report := aggregation.BuildCashFlow(entries, ym, unit, s.cashValue(ctx))

	s.LogInfo(ctx, "Cash flow report generated",
		slog.String("month", ym.String()),
		slog.String("unit", unit),
		slog.String("closing_balance", report.ClosingBalance.StringFixed(2)))
	return &report, nil
}

// Ledger returns the filtered, sorted report view.
func (s *reportingService) Ledger(ctx context.Context, filter domain.EntryFilter, sort domain.SortSpec) (*domain.LedgerReport, error) {
	entries, err := s.load(ctx, "ledger")
	if err != nil {
		return nil, err
	}

	report := aggregation.BuildLedger(entries, filter, s.cashValue(ctx), s.TodayDate(), sort)

	s.LogInfo(ctx, "Ledger report generated",
		slog.Int("row_count", len(report.Rows)),
		slog.Bool("cash_applied", report.CashApplied))
	return &report, nil
}

// Dashboard returns the summary cards and the chart series.
func (s *reportingService) Dashboard(ctx context.Context, span int) (*domain.Dashboard, error) {
	entries, err := s.load(ctx, "dashboard")
	if err != nil {
		return nil, err
	}
	if span <= 0 {
		span = s.chartSpan
	}
	today := s.TodayDate()
	cash := s.cashValue(ctx)

	dashboard := &domain.Dashboard{
		Summary: aggregation.Summarize(entries, today, cash),
		Chart:   aggregation.MonthlySeries(entries, today, span, cash),
	}

	s.LogInfo(ctx, "Dashboard generated",
		slog.Int("entry_count", len(entries)),
		slog.Int("chart_span", span))
	return dashboard, nil
}

// IncomeStatement builds the DRE of a month.
func (s *reportingService) IncomeStatement(ctx context.Context, month *domain.YearMonth) (*domain.IncomeStatement, error) {
	entries, err := s.load(ctx, "income statement")
	if err != nil {
		return nil, err
	}
	ym := s.monthOrCurrent(month)

	st := aggregation.BuildIncomeStatement(entries, ym)

	s.LogInfo(ctx, "Income statement generated",
		slog.String("month", ym.String()),
		slog.String("net_result", st.NetResult.StringFixed(2)))
	return &st, nil
}

// Competences lists the months available to the income statement.
func (s *reportingService) Competences(ctx context.Context) ([]domain.YearMonth, error) {
	entries, err := s.load(ctx, "competences")
	if err != nil {
		return nil, err
	}
	return aggregation.Competences(entries, s.TodayDate()), nil
}
