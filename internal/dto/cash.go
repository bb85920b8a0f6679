package dto

import "github.com/shopspring/decimal"

// CashAdjustmentRequest sets the manual cash adjustment. Negative values
// are accepted.
type CashAdjustmentRequest struct {
	Value *decimal.Decimal `json:"value" binding:"required"`
}

// CashAdjustmentResponse is the current cash adjustment.
type CashAdjustmentResponse struct {
	Value decimal.Decimal `json:"value"`
}
