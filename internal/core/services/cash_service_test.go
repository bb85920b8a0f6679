package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/def_finance/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashService(t *testing.T) {
	ctx := context.Background()
	state := new(MockCashState)
	svc := services.NewCashService(state)

	state.On("Value", ctx).Return(dec("12.5")).Once()
	assert.True(t, svc.GetCashAdjustment(ctx).Equal(dec("12.5")))

	state.On("Set", ctx, dec("-3.333")).Return(dec("-3.33"), nil).Once()
	stored, err := svc.SetCashAdjustment(ctx, dec("-3.333"), "user-1")
	require.NoError(t, err)
	assert.True(t, stored.Equal(dec("-3.33")))

	state.On("Set", ctx, dec("7")).Return(dec("-3.33"), assert.AnError).Once()
	stored, err = svc.SetCashAdjustment(ctx, dec("7"), "user-1")
	assert.ErrorIs(t, err, assert.AnError)
	assert.True(t, stored.Equal(dec("-3.33")))

	state.AssertExpectations(t)
}
