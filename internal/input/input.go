// Package input rejects missing files and non-http(s) URLs before any
// document is acquired.
package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrMissingInput = errors.New("missing input")

var validate = validator.New()

func FileExists(path string) error {
	if err := validate.Var(path, "required,file"); err != nil {
		return fmt.Errorf("%w: %s does not exist", ErrMissingInput, path)
	}
	return nil
}

func ValidURL(raw string) error {
	if err := validate.Var(strings.TrimSpace(raw), "required,http_url"); err != nil {
		return fmt.Errorf("%w: %s does not look like a valid url", ErrMissingInput, raw)
	}
	return nil
}
