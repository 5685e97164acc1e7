package project

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRecord checks a project record against the structural tags on
// the record types before any graph is built from it.
func ValidateRecord(rec Record) error {
	if err := validate.Struct(rec); err != nil {
		return fmt.Errorf("invalid project record: %w", err)
	}
	return nil
}
