package mapping

import (
	"time"

	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/SscSPs/def_finance/internal/models"
)

// ToModelEntry converts a domain Entry to a model Entry. A zero Date and
// an empty ExternalRef are stored as NULL.
func ToModelEntry(d domain.Entry) models.Entry {
	m := models.Entry{
		ID:            d.ID,
		Kind:          string(d.Kind),
		Unit:          d.Unit,
		Counterparty:  d.Counterparty,
		Description:   d.Description,
		Amount:        d.Amount,
		Status:        string(d.Status),
		PaidDate:      d.PaidDate,
		Student:       d.Student,
		Installment:   d.Installment,
		Notes:         d.Notes,
		Discount:      d.Discount,
		Category:      d.Category,
		InvoiceNumber: d.InvoiceNumber,
		PaymentMethod: d.PaymentMethod,
		Document:      d.Document,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.HasDate() {
		date := d.Date
		m.Date = &date
	}
	if d.ExternalRef != "" {
		ref := d.ExternalRef
		m.ExternalRef = &ref
	}
	return m
}

// ToDomainEntry converts a model Entry to a domain Entry. Dates are
// normalized to UTC midnight of their calendar day.
func ToDomainEntry(m models.Entry) domain.Entry {
	d := domain.Entry{
		ID:            m.ID,
		Kind:          domain.EntryKind(m.Kind),
		Unit:          m.Unit,
		Counterparty:  m.Counterparty,
		Description:   m.Description,
		Amount:        m.Amount,
		Status:        domain.EntryStatus(m.Status),
		Student:       m.Student,
		Installment:   m.Installment,
		Notes:         m.Notes,
		Discount:      m.Discount,
		Category:      m.Category,
		InvoiceNumber: m.InvoiceNumber,
		PaymentMethod: m.PaymentMethod,
		Document:      m.Document,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.Date != nil {
		d.Date = calendarDay(*m.Date)
	}
	if m.PaidDate != nil {
		paid := calendarDay(*m.PaidDate)
		d.PaidDate = &paid
	}
	if m.ExternalRef != nil {
		d.ExternalRef = *m.ExternalRef
	}
	return d
}

// ToDomainEntrySlice converts a slice of model Entries to domain Entries
func ToDomainEntrySlice(ms []models.Entry) []domain.Entry {
	ds := make([]domain.Entry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
