package mapping

import (
	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/SscSPs/def_finance/internal/models"
)

func ToModelCounterparty(d domain.Counterparty) models.Counterparty {
	return models.Counterparty{
		ID:          d.ID,
		Kind:        string(d.Kind),
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCounterparty(m models.Counterparty) domain.Counterparty {
	return domain.Counterparty{
		ID:          m.ID,
		Kind:        domain.CounterpartyKind(m.Kind),
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainCounterpartySlice(ms []models.Counterparty) []domain.Counterparty {
	ds := make([]domain.Counterparty, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCounterparty(m)
	}
	return ds
}

func ToModelUnit(d domain.Unit) models.Unit {
	return models.Unit{
		ID:          d.ID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainUnit(m models.Unit) domain.Unit {
	return domain.Unit{
		ID:          m.ID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainUnitSlice(ms []models.Unit) []domain.Unit {
	ds := make([]domain.Unit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUnit(m)
	}
	return ds
}
