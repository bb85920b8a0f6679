package models

// Counterparty is a row of clientes_fornecedores.
type Counterparty struct {
	ID   string `db:"id"`
	Kind string `db:"tipo"`
	Name string `db:"nome"`
	AuditFields
}

// Unit is a row of unidades.
type Unit struct {
	ID   string `db:"id"`
	Name string `db:"nome"`
	AuditFields
}
