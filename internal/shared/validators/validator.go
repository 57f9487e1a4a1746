package validators

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance.
func New() *Validate {
	return validator.New()
}

var (
	sharedOnce sync.Once
	shared     *Validate
)

// Shared returns a process-wide validator. validator.Validate is safe for concurrent use.
func Shared() *Validate {
	sharedOnce.Do(func() {
		shared = New()
	})
	return shared
}
