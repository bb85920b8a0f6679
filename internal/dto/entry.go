package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/def_finance/internal/apperrors"
	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// EntryRequest is the full payload of an entry, used for create and update.
type EntryRequest struct {
	Date          string           `json:"date" binding:"required,datetime=2006-01-02"`
	Kind          domain.EntryKind `json:"kind" binding:"required,entrykind"`
	Amount        decimal.Decimal  `json:"amount"`
	Status        string           `json:"status" binding:"omitempty,entrystatus"`
	Unit          string           `json:"unit" binding:"max=120"`
	Counterparty  string           `json:"counterparty" binding:"max=255"`
	Description   string           `json:"description"`
	Notes         string           `json:"notes"`
	Student       string           `json:"student" binding:"max=255"`
	Installment   string           `json:"installment" binding:"max=30"`
	Discount      *decimal.Decimal `json:"discount"`
	PaidDate      string           `json:"paidDate" binding:"omitempty,datetime=2006-01-02"`
	Category      string           `json:"category" binding:"max=120"`
	InvoiceNumber string           `json:"invoiceNumber" binding:"max=60"`
	PaymentMethod string           `json:"paymentMethod" binding:"max=60"`
	Document      string           `json:"document" binding:"max=60"`
}

// ApplyTo copies the payload onto e. Status defaults to due; a paid date
// is kept only for paid entries, and a paid entry edited without one keeps
// the paid date e already had.
func (r EntryRequest) ApplyTo(e *domain.Entry) error {
	date, err := ParseDate(r.Date)
	if err != nil {
		return err
	}
	if r.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if r.Discount != nil && r.Discount.IsNegative() {
		return fmt.Errorf("%w: discount must not be negative", apperrors.ErrValidation)
	}

	status := domain.EntryStatus(r.Status)
	if status == "" {
		status = domain.StatusDue
	}

	var paidDate *time.Time
	if status == domain.StatusPaid {
		paidDate = e.PaidDate
		if r.PaidDate != "" {
			pd, err := ParseDate(r.PaidDate)
			if err != nil {
				return err
			}
			paidDate = &pd
		}
	}

	e.Date = date
	e.Kind = r.Kind
	e.Amount = r.Amount.Round(2)
	e.Status = status
	e.Unit = r.Unit
	e.Counterparty = r.Counterparty
	e.Description = r.Description
	e.Notes = r.Notes
	e.Student = r.Student
	e.Installment = r.Installment
	e.Discount = r.Discount
	e.PaidDate = paidDate
	e.Category = r.Category
	e.InvoiceNumber = r.InvoiceNumber
	e.PaymentMethod = r.PaymentMethod
	e.Document = r.Document
	return nil
}

// ParseDate parses a "YYYY-MM-DD" date to UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return t, nil
}

// ListEntriesParams are the query parameters of list and ledger views.
type ListEntriesParams struct {
	Kind         string `form:"kind" binding:"omitempty,entrykind"`
	Status       string `form:"status" binding:"omitempty,derivedstatus"`
	Unit         string `form:"unit"`
	Counterparty string `form:"counterparty"`
	From         string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To           string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Sort         string `form:"sort" binding:"omitempty,sortfield"`
	Direction    string `form:"direction" binding:"omitempty,oneof=asc desc"`
}

// ToFilter converts the parameters to an engine filter.
func (p ListEntriesParams) ToFilter() (domain.EntryFilter, error) {
	f := domain.EntryFilter{
		Counterparty: p.Counterparty,
		Status:       domain.DerivedStatus(p.Status),
		Unit:         p.Unit,
		Kind:         domain.EntryKind(p.Kind),
	}
	if p.From != "" {
		from, err := ParseDate(p.From)
		if err != nil {
			return f, err
		}
		f.From = &from
	}
	if p.To != "" {
		to, err := ParseDate(p.To)
		if err != nil {
			return f, err
		}
		f.To = &to
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return f, fmt.Errorf("%w: 'to' must not be before 'from'", apperrors.ErrValidation)
	}
	return f, nil
}

// ToSort converts the parameters to a sort spec.
func (p ListEntriesParams) ToSort() domain.SortSpec {
	return domain.SortSpec{
		Field:     domain.SortField(p.Sort),
		Direction: domain.SortDirection(p.Direction),
	}
}

// EntryResponse is an entry as returned by the API.
type EntryResponse struct {
	ID            string               `json:"id"`
	Date          string               `json:"date"`
	Kind          domain.EntryKind     `json:"kind"`
	Amount        decimal.Decimal      `json:"amount"`
	Status        domain.EntryStatus   `json:"status"`
	DerivedStatus domain.DerivedStatus `json:"derivedStatus"`
	Unit          string               `json:"unit"`
	Counterparty  string               `json:"counterparty"`
	Description   string               `json:"description"`
	Notes         string               `json:"notes,omitempty"`
	Student       string               `json:"student,omitempty"`
	Installment   string               `json:"installment,omitempty"`
	Discount      *decimal.Decimal     `json:"discount,omitempty"`
	PaidDate      string               `json:"paidDate,omitempty"`
	Category      string               `json:"category,omitempty"`
	InvoiceNumber string               `json:"invoiceNumber,omitempty"`
	PaymentMethod string               `json:"paymentMethod,omitempty"`
	Document      string               `json:"document,omitempty"`
	ExternalRef   string               `json:"externalRef,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy string               `json:"lastUpdatedBy"`
}

// ToEntryResponse converts a domain entry with its derived status.
func ToEntryResponse(e domain.Entry, derived domain.DerivedStatus) EntryResponse {
	resp := EntryResponse{
		ID:            e.ID,
		Kind:          e.Kind,
		Amount:        e.Amount,
		Status:        e.Status,
		DerivedStatus: derived,
		Unit:          e.Unit,
		Counterparty:  e.Counterparty,
		Description:   e.Description,
		Notes:         e.Notes,
		Student:       e.Student,
		Installment:   e.Installment,
		Discount:      e.Discount,
		Category:      e.Category,
		InvoiceNumber: e.InvoiceNumber,
		PaymentMethod: e.PaymentMethod,
		Document:      e.Document,
		ExternalRef:   e.ExternalRef,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		LastUpdatedAt: e.LastUpdatedAt,
		LastUpdatedBy: e.LastUpdatedBy,
	}
	if e.HasDate() {
		resp.Date = e.Date.Format(DateLayout)
	}
	if e.PaidDate != nil {
		resp.PaidDate = e.PaidDate.Format(DateLayout)
	}
	return resp
}

// ListEntriesResponse is a filtered entry list with page totals.
type ListEntriesResponse struct {
	Entries []EntryResponse    `json:"entries"`
	Summary domain.ListSummary `json:"summary"`
}
