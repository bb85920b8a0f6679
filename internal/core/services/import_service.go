package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/def_finance/internal/apperrors"
	"github.com/SscSPs/def_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/def_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/def_finance/internal/core/ports/services"
	"github.com/SscSPs/def_finance/internal/core/sheetimport"
	"github.com/google/uuid"
)

type importService struct {
	BaseService
	source       portsrepo.SheetSource
	entryRepo    portsrepo.EntryWriter
	cache        CacheInvalidator
	defaultRange string
}

// NewImportService creates the spreadsheet import service. source may be
// nil when no spreadsheet is configured; imports then fail with
// apperrors.ErrUnavailable.
func NewImportService(source portsrepo.SheetSource, repo portsrepo.EntryWriter, cache CacheInvalidator, defaultRange string, opts ...ClockOption) portssvc.ImportSvc {
	svc := &importService{
		BaseService:  newBaseService(),
		source:       source,
		entryRepo:    repo,
		cache:        cache,
		defaultRange: defaultRange,
	}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

var _ portssvc.ImportSvc = (*importService)(nil)

// ImportFromSheets upserts every parseable row of the range. Blank rows are
// skipped silently; invalid rows are skipped and reported.
func (s *importService) ImportFromSheets(ctx context.Context, a1Range string, userID string) (*domain.ImportResult, error) {
	if s.source == nil {
		return nil, fmt.Errorf("%w: spreadsheet import is not configured", apperrors.ErrUnavailable)
	}
	a1Range = strings.TrimSpace(a1Range)
	if a1Range == "" {
		a1Range = s.defaultRange
	}
	ref, err := sheetimport.ParseRange(a1Range)
	if err != nil {
		return nil, err
	}

	rows, err := s.source.ReadRange(ctx, a1Range)
	if err != nil {
		s.LogError(ctx, err, "Failed to read spreadsheet", slog.String("range", a1Range))
		return nil, fmt.Errorf("%w: failed to read spreadsheet: %w", apperrors.ErrUnavailable, err)
	}

	now := s.Now()
	result := &domain.ImportResult{}
	batch := make([]domain.Entry, 0, len(rows))
	for i, row := range rows {
		if sheetimport.IsBlank(row) {
			result.Skipped++
			continue
		}
		e, err := sheetimport.ParseRow(row)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", ref.RowRef(i), err))
			continue
		}
		e.ID = uuid.NewString()
		e.ExternalRef = ref.RowRef(i)
		e.AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		}
		batch = append(batch, e)
	}

	if len(batch) > 0 {
		n, err := s.entryRepo.UpsertEntriesByExternalRef(ctx, batch)
		if err != nil {
			s.LogError(ctx, err, "Failed to upsert imported entries", slog.Int("count", len(batch)))
			return nil, fmt.Errorf("failed to store imported entries: %w", err)
		}
		result.Imported = n
		if s.cache != nil {
			s.cache.Invalidate()
		}
	}

	s.LogInfo(ctx, "Spreadsheet import finished",
		slog.String("range", a1Range),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", len(result.Errors)))
	return result, nil
}
