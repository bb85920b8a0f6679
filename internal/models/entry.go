package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a row of the lancamentos table. Nullable columns are pointers.
type Entry struct {
	ID            string           `db:"id"`
	Date          *time.Time       `db:"data"`
	Kind          string           `db:"tipo"`
	Unit          string           `db:"unidade"`
	Counterparty  string           `db:"cliente_fornecedor"`
	Description   string           `db:"descricao"`
	Amount        decimal.Decimal  `db:"valor"`
	Status        string           `db:"status"`
	PaidDate      *time.Time       `db:"datapag"`
	Student       string           `db:"aluno"`
	Installment   string           `db:"parcela"`
	Notes         string           `db:"obs"`
	Discount      *decimal.Decimal `db:"desc_pontual"`
	Category      string           `db:"categoria"`
	InvoiceNumber string           `db:"nota_fiscal"`
	PaymentMethod string           `db:"forma_pagamento"`
	Document      string           `db:"documento"`
	ExternalRef   *string          `db:"external_ref"`
	AuditFields
}
