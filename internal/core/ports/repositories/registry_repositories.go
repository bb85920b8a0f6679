package repositories

import (
	"context"

	"github.com/SscSPs/def_finance/internal/core/domain"
)

// CounterpartyRepository persists clients and suppliers.
type CounterpartyRepository interface {
	// SaveCounterparty returns apperrors.ErrDuplicate when kind and name are taken.
	SaveCounterparty(ctx context.Context, c domain.Counterparty) error
	ListCounterparties(ctx context.Context, kind *domain.CounterpartyKind) ([]domain.Counterparty, error)
}

// UnitRepository persists organizational units.
type UnitRepository interface {
	// SaveUnit returns apperrors.ErrDuplicate when the name is taken.
	SaveUnit(ctx context.Context, u domain.Unit) error
	ListUnits(ctx context.Context) ([]domain.Unit, error)
}

// RegistryRepositoryFacade combines the registry repositories
type RegistryRepositoryFacade interface {
	CounterpartyRepository
	UnitRepository
}
