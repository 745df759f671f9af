package utils

import (
	"errors"
)

// CombineErrors drops nil errors and joins the rest. A single error is
// returned unwrapped.
func CombineErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	validErrors := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			validErrors = append(validErrors, err)
		}
	}

	switch len(validErrors) {
	case 0:
		return nil
	case 1:
		return validErrors[0]
	default:
		return errors.Join(validErrors...)
	}
}

// FillField sets *t to s when *t is still empty.
func FillField(s string, t *string) {
	if s == "" || *t != "" {
		return
	}

	*t = s
}
