package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/def_finance/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Now returns the current instant; Location decides which calendar day it falls on.
	Now      func() time.Time
	Location *time.Location
}

func newBaseService() BaseService {
	return BaseService{Now: time.Now, Location: time.UTC}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Today returns the current instant in the configured location. Only its
// calendar day is meaningful to the aggregation engine.
func (s *BaseService) Today() time.Time {
	return s.Now().In(s.Location)
}

// TodayDate returns the current calendar day as UTC midnight, the form
// dates are stored in.
func (s *BaseService) TodayDate() time.Time {
	t := s.Today()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ClockOption configures the time source of a service.
type ClockOption func(*BaseService)

// WithClock sets the time source.
func WithClock(now func() time.Time) ClockOption {
	return func(b *BaseService) {
		if now != nil {
			b.Now = now
		}
	}
}

// WithLocation sets the location used to derive the current day.
func WithLocation(loc *time.Location) ClockOption {
	return func(b *BaseService) {
		if loc != nil {
			b.Location = loc
		}
	}
}
