package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/SscSPs/def_finance/internal/core/domain"
	portssvc "github.com/SscSPs/def_finance/internal/core/ports/services"
	"github.com/SscSPs/def_finance/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

var _ portssvc.EntrySvcFacade = (*MockEntryService)(nil)

func (m *MockEntryService) GetEntry(ctx context.Context, entryID string) (*domain.Entry, domain.DerivedStatus, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Entry), args.Get(1).(domain.DerivedStatus), args.Error(2)
}

func (m *MockEntryService) ListEntries(ctx context.Context, kind *domain.EntryKind, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, kind, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

func (m *MockEntryService) CreateEntry(ctx context.Context, req dto.EntryRequest, creatorUserID string) (*domain.Entry, domain.DerivedStatus, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Entry), args.Get(1).(domain.DerivedStatus), args.Error(2)
}

func (m *MockEntryService) UpdateEntry(ctx context.Context, entryID string, req dto.EntryRequest, userID string) (*domain.Entry, domain.DerivedStatus, error) {
	args := m.Called(ctx, entryID, req, userID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Entry), args.Get(1).(domain.DerivedStatus), args.Error(2)
}

func (m *MockEntryService) MarkAsPaid(ctx context.Context, entryID string, userID string) (*domain.Entry, domain.DerivedStatus, error) {
	args := m.Called(ctx, entryID, userID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Entry), args.Get(1).(domain.DerivedStatus), args.Error(2)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

func (m *MockReportingService) CashFlow(ctx context.Context, month *domain.YearMonth, unit string) (*domain.CashFlowReport, error) {
	args := m.Called(ctx, month, unit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowReport), args.Error(1)
}

func (m *MockReportingService) Ledger(ctx context.Context, filter domain.EntryFilter, sort domain.SortSpec) (*domain.LedgerReport, error) {
	args := m.Called(ctx, filter, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerReport), args.Error(1)
}

func (m *MockReportingService) Dashboard(ctx context.Context, span int) (*domain.Dashboard, error) {
	args := m.Called(ctx, span)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

func (m *MockReportingService) IncomeStatement(ctx context.Context, month *domain.YearMonth) (*domain.IncomeStatement, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}

func (m *MockReportingService) Competences(ctx context.Context) ([]domain.YearMonth, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.YearMonth), args.Error(1)
}

// --- Mock CashService ---
type MockCashService struct {
	mock.Mock
}

var _ portssvc.CashSvc = (*MockCashService)(nil)

func (m *MockCashService) GetCashAdjustment(ctx context.Context) decimal.Decimal {
	return m.Called(ctx).Get(0).(decimal.Decimal)
}

func (m *MockCashService) SetCashAdjustment(ctx context.Context, value decimal.Decimal, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, value, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock RegistryService ---
type MockRegistryService struct {
	mock.Mock
}

var _ portssvc.RegistrySvcFacade = (*MockRegistryService)(nil)

func (m *MockRegistryService) CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest, creatorUserID string) (*domain.Counterparty, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}

func (m *MockRegistryService) ListCounterparties(ctx context.Context, kind *domain.CounterpartyKind) ([]domain.Counterparty, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Counterparty), args.Error(1)
}

func (m *MockRegistryService) CreateUnit(ctx context.Context, req dto.CreateUnitRequest, creatorUserID string) (*domain.Unit, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}

func (m *MockRegistryService) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Unit), args.Error(1)
}

// --- Mock ImportService ---
type MockImportService struct {
	mock.Mock
}

var _ portssvc.ImportSvc = (*MockImportService)(nil)

func (m *MockImportService) ImportFromSheets(ctx context.Context, a1Range string, userID string) (*domain.ImportResult, error) {
	args := m.Called(ctx, a1Range, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportResult), args.Error(1)
}

// generateTestToken creates a signed JWT for userID.
func generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "def-finance-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		panic(err)
	}
	return signed
}

// doRequest serves one request, authenticated as userID unless it is empty.
func doRequest(r *gin.Engine, method, url, body, userID string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+generateTestToken(userID))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}
