package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/def_finance/internal/apperrors"
	"github.com/SscSPs/def_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/def_finance/internal/core/ports/repositories"
	"github.com/SscSPs/def_finance/internal/models"
	"github.com/SscSPs/def_finance/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRegistryRepository struct {
	BaseRepository
}

// newPgxRegistryRepository creates a new repository for counterparties and units.
func newPgxRegistryRepository(pool *pgxpool.Pool) portsrepo.RegistryRepositoryFacade {
	return &PgxRegistryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RegistryRepositoryFacade = (*PgxRegistryRepository)(nil)

func (r *PgxRegistryRepository) SaveCounterparty(ctx context.Context, c domain.Counterparty) error {
	m := mapping.ToModelCounterparty(c)
	query := `
		INSERT INTO clientes_fornecedores (id, tipo, nome, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`

	_, err := r.Pool.Exec(ctx, query, m.ID, m.Kind, m.Name, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s %q", apperrors.ErrDuplicate, m.Kind, m.Name)
		}
		return fmt.Errorf("failed to insert counterparty %s: %w", m.Name, err)
	}
	return nil
}

func (r *PgxRegistryRepository) ListCounterparties(ctx context.Context, kind *domain.CounterpartyKind) ([]domain.Counterparty, error) {
	query := `SELECT id, tipo, nome, created_at, created_by, last_updated_at, last_updated_by FROM clientes_fornecedores`
	args := []any{}
	if kind != nil {
		query += ` WHERE tipo = $1`
		args = append(args, string(*kind))
	}
	query += ` ORDER BY nome;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query counterparties: %w", err)
	}
	defer rows.Close()

	modelCounterparties, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Counterparty, error) {
		var c models.Counterparty
		err := row.Scan(&c.ID, &c.Kind, &c.Name, &c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan counterparties: %w", err)
	}
	return mapping.ToDomainCounterpartySlice(modelCounterparties), nil
}

func (r *PgxRegistryRepository) SaveUnit(ctx context.Context, u domain.Unit) error {
	m := mapping.ToModelUnit(u)
	query := `
		INSERT INTO unidades (id, nome, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);`

	_, err := r.Pool.Exec(ctx, query, m.ID, m.Name, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: unit %q", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to insert unit %s: %w", m.Name, err)
	}
	return nil
}

func (r *PgxRegistryRepository) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	query := `SELECT id, nome, created_at, created_by, last_updated_at, last_updated_by FROM unidades ORDER BY nome;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query units: %w", err)
	}
	defer rows.Close()

	modelUnits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Unit, error) {
		var u models.Unit
		err := row.Scan(&u.ID, &u.Name, &u.CreatedAt, &u.CreatedBy, &u.LastUpdatedAt, &u.LastUpdatedBy)
		return u, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan units: %w", err)
	}
	return mapping.ToDomainUnitSlice(modelUnits), nil
}
