package repositories

import (
	"context"

	"github.com/SscSPs/def_finance/internal/core/domain"
)

// EntryReader defines read operations for entries
type EntryReader interface {
	// FindEntryByID retrieves a single entry. Returns apperrors.ErrNotFound when absent.
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// ListEntries retrieves every entry, optionally restricted to one kind.
	ListEntries(ctx context.Context, kind *domain.EntryKind) ([]domain.Entry, error)
}

// EntryWriter defines write operations for entries
type EntryWriter interface {
	// SaveEntry persists a new entry.
	SaveEntry(ctx context.Context, entry domain.Entry) error

	// UpdateEntry replaces every mutable column of an existing entry.
	UpdateEntry(ctx context.Context, entry domain.Entry) error

	// UpsertEntriesByExternalRef inserts or updates imported entries keyed by
	// their external reference, in one transaction.
	UpsertEntriesByExternalRef(ctx context.Context, entries []domain.Entry) (int, error)
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
