package services

import (
	"context"

	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/SscSPs/def_finance/internal/dto"
)

// EntryReaderSvc defines read operations for entries
type EntryReaderSvc interface {
	// GetEntry retrieves one entry and its derived status.
	GetEntry(ctx context.Context, entryID string) (*domain.Entry, domain.DerivedStatus, error)

	// ListEntries filters and sorts entries. A non-nil kind restricts the
	// list to payables or receivables.
	ListEntries(ctx context.Context, kind *domain.EntryKind, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// EntryWriterSvc defines write operations for entries. Each returns the
// stored entry and its derived status.
type EntryWriterSvc interface {
	CreateEntry(ctx context.Context, req dto.EntryRequest, creatorUserID string) (*domain.Entry, domain.DerivedStatus, error)
	UpdateEntry(ctx context.Context, entryID string, req dto.EntryRequest, userID string) (*domain.Entry, domain.DerivedStatus, error)

	// MarkAsPaid sets the status to paid with today as the paid date.
	MarkAsPaid(ctx context.Context, entryID string, userID string) (*domain.Entry, domain.DerivedStatus, error)
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
