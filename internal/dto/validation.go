package dto

import (
	"fmt"

	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain validation tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	validators := map[string]validator.Func{
		"entrykind": func(fl validator.FieldLevel) bool {
			return domain.EntryKind(fl.Field().String()).IsValid()
		},
		"entrystatus": func(fl validator.FieldLevel) bool {
			return domain.EntryStatus(fl.Field().String()).IsValid()
		},
		"derivedstatus": func(fl validator.FieldLevel) bool {
			return domain.DerivedStatus(fl.Field().String()).IsValid()
		},
		"sortfield": func(fl validator.FieldLevel) bool {
			return domain.SortField(fl.Field().String()).IsValid()
		},
		"counterpartykind": func(fl validator.FieldLevel) bool {
			return domain.CounterpartyKind(fl.Field().String()).IsValid()
		},
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}
