package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/def_finance/internal/core/aggregation"
	"github.com/SscSPs/def_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/def_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/def_finance/internal/core/ports/services"
	"github.com/SscSPs/def_finance/internal/dto"
	"github.com/google/uuid"
)

// CacheInvalidator is told to drop cached entries after a successful write.
type CacheInvalidator interface {
	Invalidate()
}

// entryService implements the EntrySvcFacade interface
type entryService struct {
	BaseService
	entryRepo portsrepo.EntryRepositoryFacade
	cache     CacheInvalidator
}

// NewEntryService creates a new entry service. cache may be nil.
func NewEntryService(repo portsrepo.EntryRepositoryFacade, cache CacheInvalidator, opts ...ClockOption) portssvc.EntrySvcFacade {
	svc := &entryService{
		BaseService: newBaseService(),
		entryRepo:   repo,
		cache:       cache,
	}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

func (s *entryService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}

// CreateEntry validates the payload and stores a new entry.
func (s *entryService) CreateEntry(ctx context.Context, req dto.EntryRequest, creatorUserID string) (*domain.Entry, domain.DerivedStatus, error) {
	var entry domain.Entry
	if err := req.ApplyTo(&entry); err != nil {
		return nil, "", err
	}

	s.ensurePaidDate(&entry)
	now := s.Now()
	entry.ID = uuid.NewString()
	entry.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry", slog.String("kind", string(entry.Kind)))
		return nil, "", fmt.Errorf("failed to create entry: %w", err)
	}
	s.invalidate()

	s.LogInfo(ctx, "Entry created",
		slog.String("entry_id", entry.ID),
		slog.String("kind", string(entry.Kind)),
		slog.String("amount", entry.Amount.StringFixed(2)))
	return &entry, aggregation.ClassifyStatus(entry, s.TodayDate()), nil
}

// ensurePaidDate settles paid entries with no payment date today, so they
// still count in the income statement.
func (s *entryService) ensurePaidDate(e *domain.Entry) {
	if e.IsPaid() && e.PaidDate == nil {
		today := s.TodayDate()
		e.PaidDate = &today
	}
}

// GetEntry returns one entry with its status as of today.
func (s *entryService) GetEntry(ctx context.Context, entryID string) (*domain.Entry, domain.DerivedStatus, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get entry %s: %w", entryID, err)
	}
	return entry, aggregation.ClassifyStatus(*entry, s.TodayDate()), nil
}

// ListEntries filters, sorts and summarizes entries. A non-nil kind
// overrides any kind given in params.
func (s *entryService) ListEntries(ctx context.Context, kind *domain.EntryKind, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	filter, err := params.ToFilter()
	if err != nil {
		return nil, err
	}
	if kind != nil {
		filter.Kind = *kind
	}

	repoKind := kind
	if repoKind == nil && filter.Kind != "" {
		repoKind = &filter.Kind
	}
	entries, err := s.entryRepo.ListEntries(ctx, repoKind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries")
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	today := s.TodayDate()
	selected := aggregation.SortEntries(aggregation.FilterEntries(entries, filter, today), params.ToSort())

	resp := &dto.ListEntriesResponse{
		Entries: make([]dto.EntryResponse, len(selected)),
		Summary: aggregation.SummarizeList(selected, today),
	}
	for i, e := range selected {
		resp.Entries[i] = dto.ToEntryResponse(e, aggregation.ClassifyStatus(e, today))
	}

	s.LogDebug(ctx, "Entries listed", slog.Int("total", len(entries)), slog.Int("selected", len(selected)))
	return resp, nil
}

// UpdateEntry replaces the mutable fields of an entry.
func (s *entryService) UpdateEntry(ctx context.Context, entryID string, req dto.EntryRequest, userID string) (*domain.Entry, domain.DerivedStatus, error) {
	existing, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get entry %s: %w", entryID, err)
	}

	updated := *existing
	if err := req.ApplyTo(&updated); err != nil {
		return nil, "", err
	}
	s.ensurePaidDate(&updated)
	updated.LastUpdatedAt = s.Now()
	updated.LastUpdatedBy = userID

	if err := s.entryRepo.UpdateEntry(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update entry", slog.String("entry_id", entryID))
		return nil, "", fmt.Errorf("failed to update entry %s: %w", entryID, err)
	}
	s.invalidate()

	s.LogInfo(ctx, "Entry updated", slog.String("entry_id", entryID))
	return &updated, aggregation.ClassifyStatus(updated, s.TodayDate()), nil
}

// MarkAsPaid settles an entry today. Entries already paid are returned
// unchanged.
func (s *entryService) MarkAsPaid(ctx context.Context, entryID string, userID string) (*domain.Entry, domain.DerivedStatus, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get entry %s: %w", entryID, err)
	}
	if entry.IsPaid() {
		s.LogDebug(ctx, "Entry already paid", slog.String("entry_id", entryID))
		return entry, domain.DerivedPaid, nil
	}

	paidDate := s.TodayDate()
	entry.Status = domain.StatusPaid
	entry.PaidDate = &paidDate
	entry.LastUpdatedAt = s.Now()
	entry.LastUpdatedBy = userID

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to mark entry as paid", slog.String("entry_id", entryID))
		return nil, "", fmt.Errorf("failed to mark entry %s as paid: %w", entryID, err)
	}
	s.invalidate()

	s.LogInfo(ctx, "Entry marked as paid",
		slog.String("entry_id", entryID),
		slog.String("paid_date", paidDate.Format(dto.DateLayout)))
	return entry, domain.DerivedPaid, nil
}
