package domain

// CounterpartyKind distinguishes clients from suppliers.
type CounterpartyKind string

const (
	CounterpartyClient   CounterpartyKind = "Cliente"
	CounterpartySupplier CounterpartyKind = "Fornecedor"
)

// IsValid reports whether k is a known counterparty kind.
func (k CounterpartyKind) IsValid() bool {
	return k == CounterpartyClient || k == CounterpartySupplier
}

// Counterparty is a registered client or supplier.
type Counterparty struct {
	ID   string           `json:"id"`
	Kind CounterpartyKind `json:"kind"`
	Name string           `json:"name"`
	AuditFields
}

// Unit is a registered organizational unit.
type Unit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	AuditFields
}

// ImportResult summarizes a spreadsheet import run.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
