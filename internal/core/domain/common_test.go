package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYearMonth(t *testing.T) {
	ym, err := domain.ParseYearMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, domain.YearMonth{Year: 2024, Month: time.February}, ym)
	assert.Equal(t, "2024-02", ym.String())
	assert.Equal(t, 29, ym.DaysIn())

	_, err = domain.ParseYearMonth("02/2024")
	assert.Error(t, err)
}

func TestYearMonth_AddMonths(t *testing.T) {
	tests := []struct {
		name string
		from domain.YearMonth
		n    int
		want domain.YearMonth
	}{
		{"same year", domain.YearMonth{Year: 2024, Month: time.March}, 2, domain.YearMonth{Year: 2024, Month: time.May}},
		{"rolls over the year", domain.YearMonth{Year: 2024, Month: time.November}, 3, domain.YearMonth{Year: 2025, Month: time.February}},
		{"backwards", domain.YearMonth{Year: 2024, Month: time.January}, -1, domain.YearMonth{Year: 2023, Month: time.December}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.AddMonths(tt.n))
		})
	}
}

func TestYearMonth_Contains(t *testing.T) {
	ym := domain.YearMonth{Year: 2024, Month: time.June}
	assert.True(t, ym.Contains(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)))
	assert.False(t, ym.Contains(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, ym.Contains(time.Time{}), "zero time belongs to no month")
	assert.True(t, ym.Before(domain.YearMonth{Year: 2025, Month: time.January}))
	assert.False(t, ym.Before(ym))
}

func TestIsAllUnits(t *testing.T) {
	assert.True(t, domain.IsAllUnits(""))
	assert.True(t, domain.IsAllUnits("todas"))
	assert.True(t, domain.IsAllUnits(" TODAS "))
	assert.False(t, domain.IsAllUnits("CNA Mangaratiba"))
}

func TestEntryEnums(t *testing.T) {
	assert.True(t, domain.Inflow.IsValid())
	assert.False(t, domain.EntryKind("Transferencia").IsValid())
	assert.True(t, domain.StatusPaid.IsValid())
	assert.False(t, domain.EntryStatus("Atrasado").IsValid())
	assert.True(t, domain.Entry{Status: domain.StatusPaid}.IsPaid())
	assert.False(t, domain.Entry{}.HasDate())
}

func TestYearMonth_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Month domain.YearMonth `json:"month"`
	}{domain.YearMonth{Year: 2024, Month: time.March}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"month":"2024-03"}`, string(b))

	var decoded struct {
		Month domain.YearMonth `json:"month"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"month":"2023-12"}`), &decoded))
	assert.Equal(t, domain.YearMonth{Year: 2023, Month: time.December}, decoded.Month)
	assert.Error(t, json.Unmarshal([]byte(`{"month":"12/2023"}`), &decoded))
}
