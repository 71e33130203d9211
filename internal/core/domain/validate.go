package domain

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks a decoded record against its struct tags.
func Validate(record any) error {
	return validatorInstance().Struct(record)
}

// ValidateCart checks every item of the cart.
func ValidateCart(cart Cart) error {
	for i := range cart {
		if err := validatorInstance().Struct(cart[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}
