// internal/services/errors.go
package services

import (
	"errors"
	"strings"

	"github.com/javajoker/commerce-dashboard/internal/utils"
)

// ErrNotFound is returned when an operation names a product or order id
// that the owning service does not hold.
var ErrNotFound = errors.New("not found")

// ErrPrecondition is returned when an index or position is outside the
// current sequence. Callers must not clamp and retry; the request is stale.
var ErrPrecondition = errors.New("precondition failed")

// ErrEmptySelection is returned by batch operations when no order is selected.
// Nothing is mutated.
var ErrEmptySelection = errors.New("no orders selected")

// ValidationError carries field-level messages for malformed input.
type ValidationError struct {
	Errors []utils.ValidationError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func validate(req interface{}) error {
	if errs := utils.GetValidationErrors(utils.ValidateStruct(req)); len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
