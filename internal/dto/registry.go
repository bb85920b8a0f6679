package dto

import "github.com/SscSPs/def_finance/internal/core/domain"

// CreateCounterpartyRequest registers a client or supplier.
type CreateCounterpartyRequest struct {
	Kind domain.CounterpartyKind `json:"kind" binding:"required,counterpartykind"`
	Name string                  `json:"name" binding:"required,max=255"`
}

// ListCounterpartiesParams filters the counterparty list.
type ListCounterpartiesParams struct {
	Kind string `form:"kind" binding:"omitempty,counterpartykind"`
}

// CreateUnitRequest registers a unit.
type CreateUnitRequest struct {
	Name string `json:"name" binding:"required,max=120"`
}
