package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind is the direction of a financial entry.
type EntryKind string

const (
	Inflow  EntryKind = "Entrada" // Receivable / revenue
	Outflow EntryKind = "Saida"   // Payable / expense
)

// IsValid reports whether the kind is one of the known kinds.
func (k EntryKind) IsValid() bool {
	return k == Inflow || k == Outflow
}

// EntryStatus is the status persisted with an entry. Only Paid is
// authoritative; any other stored value means "not paid".
type EntryStatus string

const (
	StatusDue  EntryStatus = "A Vencer"
	StatusPaid EntryStatus = "Pago"
)

// IsValid reports whether the status is one the API accepts on writes.
func (s EntryStatus) IsValid() bool {
	return s == StatusDue || s == StatusPaid
}

// DerivedStatus is computed from the stored status and the entry date
// relative to a reference day. It is never persisted.
type DerivedStatus string

const (
	DerivedDue     DerivedStatus = "due"
	DerivedOverdue DerivedStatus = "overdue"
	DerivedPaid    DerivedStatus = "paid"
)

// IsValid reports whether d is a known derived status.
func (d DerivedStatus) IsValid() bool {
	return d == DerivedDue || d == DerivedOverdue || d == DerivedPaid
}

// Entry is a single financial obligation or receivable ("lancamento").
// Date is the due date; a zero Date marks a missing or unparseable date.
type Entry struct {
	ID            string           `json:"id"`
	Date          time.Time        `json:"date"`
	Kind          EntryKind        `json:"kind"`
	Amount        decimal.Decimal  `json:"amount"`
	Status        EntryStatus      `json:"status"`
	Unit          string           `json:"unit,omitempty"`
	Counterparty  string           `json:"counterparty,omitempty"`
	Description   string           `json:"description,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	Student       string           `json:"student,omitempty"`
	Installment   string           `json:"installment,omitempty"`
	Discount      *decimal.Decimal `json:"discount,omitempty"`
	PaidDate      *time.Time       `json:"paidDate,omitempty"`
	Category      string           `json:"category,omitempty"`
	InvoiceNumber string           `json:"invoiceNumber,omitempty"`
	PaymentMethod string           `json:"paymentMethod,omitempty"`
	Document      string           `json:"document,omitempty"`
	ExternalRef   string           `json:"externalRef,omitempty"`
	AuditFields
}

// IsPaid reports whether the stored status is Paid.
func (e Entry) IsPaid() bool {
	return e.Status == StatusPaid
}

// HasDate reports whether the entry carries a usable due date.
func (e Entry) HasDate() bool {
	return !e.Date.IsZero()
}
