package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// CashSvc reads and writes the manual cash adjustment.
type CashSvc interface {
	GetCashAdjustment(ctx context.Context) decimal.Decimal

	// SetCashAdjustment persists the value rounded to cents and returns what was stored.
	SetCashAdjustment(ctx context.Context, value decimal.Decimal, userID string) (decimal.Decimal, error)
}
