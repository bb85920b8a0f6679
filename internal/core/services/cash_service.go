package services

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/def_finance/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// CashState is the shared cash adjustment behind the cash service.
type CashState interface {
	CashSource
	Set(ctx context.Context, v decimal.Decimal) (decimal.Decimal, error)
}

type cashService struct {
	BaseService
	state CashState
}

// NewCashService creates a cash service over state.
func NewCashService(state CashState) portssvc.CashSvc {
	return &cashService{BaseService: newBaseService(), state: state}
}

var _ portssvc.CashSvc = (*cashService)(nil)

func (s *cashService) GetCashAdjustment(ctx context.Context) decimal.Decimal {
	return s.state.Value(ctx)
}

func (s *cashService) SetCashAdjustment(ctx context.Context, value decimal.Decimal, userID string) (decimal.Decimal, error) {
	stored, err := s.state.Set(ctx, value)
	if err != nil {
		s.LogError(ctx, err, "Failed to store cash adjustment", slog.String("user_id", userID))
		return stored, fmt.Errorf("failed to set cash adjustment: %w", err)
	}
	s.LogInfo(ctx, "Cash adjustment updated",
		slog.String("user_id", userID),
		slog.String("value", stored.StringFixed(2)))
	return stored, nil
}
