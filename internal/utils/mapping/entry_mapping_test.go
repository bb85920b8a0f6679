package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/SscSPs/def_finance/internal/models"
	"github.com/SscSPs/def_finance/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelEntry_NullableColumns(t *testing.T) {
	m := mapping.ToModelEntry(domain.Entry{
		ID:     "e1",
		Kind:   domain.Outflow,
		Amount: decimal.NewFromInt(10),
		Status: domain.StatusDue,
	})

	assert.Nil(t, m.Date)
	assert.Nil(t, m.ExternalRef)
	assert.Nil(t, m.PaidDate)
	assert.Equal(t, "Saida", m.Kind)
	assert.Equal(t, "A Vencer", m.Status)
}

func TestToDomainEntry_NormalizesDates(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	date := time.Date(2024, 3, 31, 23, 0, 0, 0, loc)
	paid := time.Date(2024, 4, 2, 0, 30, 0, 0, loc)
	ref := "Lancamentos!A7"

	d := mapping.ToDomainEntry(models.Entry{
		ID:          "e1",
		Date:        &date,
		Kind:        "Entrada",
		Amount:      decimal.NewFromInt(5),
		Status:      "Pago",
		PaidDate:    &paid,
		ExternalRef: &ref,
	})

	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), d.Date)
	require.NotNil(t, d.PaidDate)
	assert.Equal(t, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), *d.PaidDate)
	assert.Equal(t, domain.Inflow, d.Kind)
	assert.True(t, d.IsPaid())
	assert.Equal(t, ref, d.ExternalRef)
}

func TestToDomainEntry_MissingDateStaysZero(t *testing.T) {
	d := mapping.ToDomainEntry(models.Entry{ID: "e1", Kind: "Saida"})
	assert.False(t, d.HasDate())
	assert.Nil(t, d.PaidDate)
}
