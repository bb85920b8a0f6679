package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/def_finance/internal/apperrors"
	"github.com/SscSPs/def_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/def_finance/internal/core/ports/repositories"
	"github.com/SscSPs/def_finance/internal/models"
	"github.com/SscSPs/def_finance/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entryColumns = `id, data, tipo, unidade, cliente_fornecedor, descricao, valor, status, datapag,
	aluno, parcela, obs, desc_pontual, categoria, nota_fiscal, forma_pagamento, documento, external_ref,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for entries.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

func scanEntry(row pgx.Row) (models.Entry, error) {
	var m models.Entry
	err := row.Scan(
		&m.ID,
		&m.Date,
		&m.Kind,
		&m.Unit,
		&m.Counterparty,
		&m.Description,
		&m.Amount,
		&m.Status,
		&m.PaidDate,
		&m.Student,
		&m.Installment,
		&m.Notes,
		&m.Discount,
		&m.Category,
		&m.InvoiceNumber,
		&m.PaymentMethod,
		&m.Document,
		&m.ExternalRef,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// entryArgs returns the column values in entryColumns order.
func entryArgs(m models.Entry) []any {
	return []any{
		m.ID, m.Date, m.Kind, m.Unit, m.Counterparty, m.Description, m.Amount, m.Status, m.PaidDate,
		m.Student, m.Installment, m.Notes, m.Discount, m.Category, m.InvoiceNumber, m.PaymentMethod,
		m.Document, m.ExternalRef, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

// SaveEntry inserts a new entry.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	query := `INSERT INTO lancamentos (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);`

	if _, err := r.Pool.Exec(ctx, query, entryArgs(mapping.ToModelEntry(entry))...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: entry %s", apperrors.ErrDuplicate, entry.ID)
		}
		return fmt.Errorf("failed to insert entry %s: %w", entry.ID, err)
	}
	return nil
}

// UpdateEntry overwrites every mutable column. Creation audit fields and
// the external reference are preserved.
func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	m := mapping.ToModelEntry(entry)
	query := `
		UPDATE lancamentos SET
			data = $2, tipo = $3, unidade = $4, cliente_fornecedor = $5, descricao = $6, valor = $7,
			status = $8, datapag = $9, aluno = $10, parcela = $11, obs = $12, desc_pontual = $13,
			categoria = $14, nota_fiscal = $15, forma_pagamento = $16, documento = $17,
			last_updated_at = $18, last_updated_by = $19
		WHERE id = $1;`

	tag, err := r.Pool.Exec(ctx, query,
		m.ID, m.Date, m.Kind, m.Unit, m.Counterparty, m.Description, m.Amount,
		m.Status, m.PaidDate, m.Student, m.Installment, m.Notes, m.Discount,
		m.Category, m.InvoiceNumber, m.PaymentMethod, m.Document,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry %s: %w", entry.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindEntryByID retrieves a single entry.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM lancamentos WHERE id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	entry := mapping.ToDomainEntry(m)
	return &entry, nil
}

// ListEntries retrieves every entry ordered by due date, undated rows first.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, kind *domain.EntryKind) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM lancamentos`
	args := []any{}
	if kind != nil {
		query += ` WHERE tipo = $1`
		args = append(args, string(*kind))
	}
	query += ` ORDER BY data ASC NULLS FIRST, created_at ASC, id ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Entry, error) {
		return scanEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan entries: %w", err)
	}
	return mapping.ToDomainEntrySlice(modelEntries), nil
}

// UpsertEntriesByExternalRef inserts or updates imported entries in one
// transaction. Rows already present keep their id and creation audit.
func (r *PgxEntryRepository) UpsertEntriesByExternalRef(ctx context.Context, entries []domain.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	query := `INSERT INTO lancamentos (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT (external_ref) WHERE external_ref IS NOT NULL DO UPDATE SET
			data = EXCLUDED.data,
			tipo = EXCLUDED.tipo,
			unidade = EXCLUDED.unidade,
			cliente_fornecedor = EXCLUDED.cliente_fornecedor,
			descricao = EXCLUDED.descricao,
			valor = EXCLUDED.valor,
			status = EXCLUDED.status,
			datapag = EXCLUDED.datapag,
			aluno = EXCLUDED.aluno,
			parcela = EXCLUDED.parcela,
			obs = EXCLUDED.obs,
			desc_pontual = EXCLUDED.desc_pontual,
			categoria = EXCLUDED.categoria,
			nota_fiscal = EXCLUDED.nota_fiscal,
			forma_pagamento = EXCLUDED.forma_pagamento,
			documento = EXCLUDED.documento,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;`

	batch := &pgx.Batch{}
	for _, e := range entries {
		if e.ExternalRef == "" {
			return 0, fmt.Errorf("%w: imported entry %s has no external reference", apperrors.ErrValidation, e.ID)
		}
		batch.Queue(query, entryArgs(mapping.ToModelEntry(e))...)
	}

	results := tx.SendBatch(ctx, batch)
	for _, e := range entries {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return 0, fmt.Errorf("failed to upsert entry %s: %w", e.ExternalRef, err)
		}
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("failed to close upsert batch: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return len(entries), nil
}
