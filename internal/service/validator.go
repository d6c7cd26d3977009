package service

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	app_errors "rag-assistant/client/internal/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// checkVar validates one argument before a call is started, so a malformed
// argument never reaches the backend or the error slot.
func checkVar(name string, value any, tag string) error {
	if err := getValidator().Var(value, tag); err != nil {
		return fmt.Errorf("%w: %s must satisfy '%s'", app_errors.ErrValidation, name, tag)
	}
	return nil
}
