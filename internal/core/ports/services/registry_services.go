package services

import (
	"context"

	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/SscSPs/def_finance/internal/dto"
)

// RegistrySvcFacade manages the counterparty and unit registries.
type RegistrySvcFacade interface {
	CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest, creatorUserID string) (*domain.Counterparty, error)
	ListCounterparties(ctx context.Context, kind *domain.CounterpartyKind) ([]domain.Counterparty, error)
	CreateUnit(ctx context.Context, req dto.CreateUnitRequest, creatorUserID string) (*domain.Unit, error)
	ListUnits(ctx context.Context) ([]domain.Unit, error)
}

// ImportSvc pulls entries from the configured spreadsheet.
type ImportSvc interface {
	// ImportFromSheets reads a range (the configured one when empty) and
	// upserts every parseable row.
	ImportFromSheets(ctx context.Context, a1Range string, userID string) (*domain.ImportResult, error)
}
