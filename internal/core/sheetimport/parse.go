// Package sheetimport turns spreadsheet rows into entries.
//
// Expected column order (A to P): date, kind, unit, counterparty,
// description, amount, status, paid date, student, installment, notes,
// discount, category, invoice number, payment method, document.
package sheetimport

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/SscSPs/def_finance/internal/apperrors"
	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	colDate = iota
	colKind
	colUnit
	colCounterparty
	colDescription
	colAmount
	colStatus
	colPaidDate
	colStudent
	colInstallment
	colNotes
	colDiscount
	colCategory
	colInvoiceNumber
	colPaymentMethod
	colDocument
)

var dateLayouts = []string{"02/01/2006", "2/1/2006", "2006-01-02", "02-01-2006"}

var foldAccents = strings.NewReplacer("á", "a", "à", "a", "ã", "a", "â", "a", "é", "e", "ê", "e", "í", "i", "ó", "o", "õ", "o", "ô", "o", "ú", "u", "ç", "c")

// RangeRef locates the first data row of an A1 range.
type RangeRef struct {
	Sheet    string
	StartRow int
}

// ParseRange extracts the sheet name and first row from an A1 range such
// as "Lancamentos!A2:P" or "'Contas 2024'!B5:Q".
func ParseRange(a1 string) (RangeRef, error) {
	a1 = strings.TrimSpace(a1)
	if a1 == "" {
		return RangeRef{}, fmt.Errorf("%w: empty range", apperrors.ErrValidation)
	}
	ref := RangeRef{StartRow: 1}
	cells := a1
	if i := strings.LastIndex(a1, "!"); i >= 0 {
		ref.Sheet = strings.Trim(a1[:i], "'")
		cells = a1[i+1:]
	}
	start, _, _ := strings.Cut(cells, ":")
	digits := strings.TrimLeftFunc(start, unicode.IsLetter)
	if digits != "" {
		n, err := strconv.Atoi(digits)
		if err != nil || n < 1 {
			return RangeRef{}, fmt.Errorf("%w: invalid range %q", apperrors.ErrValidation, a1)
		}
		ref.StartRow = n
	}
	return ref, nil
}

// RowRef returns the stable external reference of the row at index i of
// the range, e.g. "Lancamentos!7".
func (r RangeRef) RowRef(i int) string {
	return fmt.Sprintf("%s!%d", r.Sheet, r.StartRow+i)
}

// IsBlank reports whether every cell of row is empty.
func IsBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ParseRow converts one row. A missing due date is kept as a zero date.
func ParseRow(row []string) (domain.Entry, error) {
	var e domain.Entry
	var errs []error

	if raw := cell(row, colDate); raw != "" {
		d, err := ParseDate(raw)
		if err != nil {
			errs = append(errs, err)
		}
		e.Date = d
	}

	kind, err := ParseKind(cell(row, colKind))
	if err != nil {
		errs = append(errs, err)
	}
	e.Kind = kind

	amount, err := ParseAmount(cell(row, colAmount))
	if err != nil {
		errs = append(errs, err)
	} else if amount.IsNegative() {
		errs = append(errs, fmt.Errorf("negative amount %s", amount))
	}
	e.Amount = amount

	status, err := ParseStatus(cell(row, colStatus))
	if err != nil {
		errs = append(errs, err)
	}
	e.Status = status

	if raw := cell(row, colPaidDate); raw != "" && status == domain.StatusPaid {
		pd, err := ParseDate(raw)
		if err != nil {
			errs = append(errs, err)
		} else {
			e.PaidDate = &pd
		}
	}

	if raw := cell(row, colDiscount); raw != "" {
		disc, err := ParseAmount(raw)
		if err != nil {
			errs = append(errs, err)
		} else {
			e.Discount = &disc
		}
	}

	e.Unit = cell(row, colUnit)
	e.Counterparty = cell(row, colCounterparty)
	e.Description = cell(row, colDescription)
	e.Student = cell(row, colStudent)
	e.Installment = cell(row, colInstallment)
	e.Notes = cell(row, colNotes)
	e.Category = cell(row, colCategory)
	e.InvoiceNumber = cell(row, colInvoiceNumber)
	e.PaymentMethod = cell(row, colPaymentMethod)
	e.Document = cell(row, colDocument)

	if len(errs) > 0 {
		return domain.Entry{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, errors.Join(errs...))
	}
	return e, nil
}

// ParseDate accepts dd/mm/yyyy and ISO dates.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// ParseAmount accepts Brazilian ("R$ 1.234,56") and plain ("1234.56") notation.
func ParseAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "R$")
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, " ", "")
	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}
	if clean == "" {
		return decimal.Zero, fmt.Errorf("missing amount")
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d.Round(2), nil
}

// ParseKind maps the sheet's kind labels.
func ParseKind(s string) (domain.EntryKind, error) {
	switch normalize(s) {
	case "entrada", "receita", "receber", "a receber":
		return domain.Inflow, nil
	case "saida", "despesa", "pagar", "a pagar":
		return domain.Outflow, nil
	}
	return "", fmt.Errorf("invalid kind %q", s)
}

// ParseStatus maps the sheet's status labels; empty means due.
func ParseStatus(s string) (domain.EntryStatus, error) {
	switch normalize(s) {
	case "", "a vencer", "aberto", "em aberto", "pendente", "vencido":
		return domain.StatusDue, nil
	case "pago", "paga", "quitado", "recebido":
		return domain.StatusPaid, nil
	}
	return "", fmt.Errorf("invalid status %q", s)
}

func normalize(s string) string {
	return foldAccents.Replace(strings.ToLower(strings.TrimSpace(s)))
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
