package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownQuery is returned for lookups of names the catalog does not define.
var ErrUnknownQuery = errors.New("unknown query")

// ValidationError reports an invalid query definition.
type ValidationError struct {
	Query, Field, Msg string
	Underlying        error
}

func (e *ValidationError) Error() string {
	if e.Query == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	return fmt.Sprintf("query %q: %s: %s", e.Query, e.Field, e.Msg)
}

func (e *ValidationError) Unwrap() error {
	return e.Underlying
}
