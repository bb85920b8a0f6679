package services_test

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/SscSPs/def_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/def_finance/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

var _ portsrepo.EntryRepositoryFacade = (*MockEntryRepository)(nil)

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, kind *domain.EntryKind) ([]domain.Entry, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) UpsertEntriesByExternalRef(ctx context.Context, entries []domain.Entry) (int, error) {
	args := m.Called(ctx, entries)
	return args.Int(0), args.Error(1)
}

// --- Mock RegistryRepository ---
type MockRegistryRepository struct {
	mock.Mock
}

var _ portsrepo.RegistryRepositoryFacade = (*MockRegistryRepository)(nil)

func (m *MockRegistryRepository) SaveCounterparty(ctx context.Context, c domain.Counterparty) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRegistryRepository) ListCounterparties(ctx context.Context, kind *domain.CounterpartyKind) ([]domain.Counterparty, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Counterparty), args.Error(1)
}

func (m *MockRegistryRepository) SaveUnit(ctx context.Context, u domain.Unit) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRegistryRepository) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Unit), args.Error(1)
}

// --- Mock SheetSource ---
type MockSheetSource struct {
	mock.Mock
}

var _ portsrepo.SheetSource = (*MockSheetSource)(nil)

func (m *MockSheetSource) ReadRange(ctx context.Context, a1Range string) ([][]string, error) {
	args := m.Called(ctx, a1Range)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]string), args.Error(1)
}

// --- Mock CashState ---
type MockCashState struct {
	mock.Mock
}

func (m *MockCashState) Value(ctx context.Context) decimal.Decimal {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockCashState) Set(ctx context.Context, v decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// staticEntries serves a fixed entry list.
type staticEntries struct {
	entries []domain.Entry
	err     error
}

func (s staticEntries) Entries(context.Context) ([]domain.Entry, error) {
	return s.entries, s.err
}

// fixedCash serves a constant cash adjustment.
type fixedCash decimal.Decimal

func (c fixedCash) Value(context.Context) decimal.Decimal {
	return decimal.Decimal(c)
}

// countingInvalidator records Invalidate calls.
type countingInvalidator struct {
	calls atomic.Int32
}

func (c *countingInvalidator) Invalidate() {
	c.calls.Add(1)
}

func date(y int, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
