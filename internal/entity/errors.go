package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFieldRequired is wrapped by every EntityError.
var ErrFieldRequired = errors.New("required field did not populate")

// EntityError is returned when a field that an entity cannot exist without
// resolved to nothing under every strategy.
type EntityError struct {
	Entity    string
	Field     string
	Selectors []string
}

func (e *EntityError) Error() string {
	return fmt.Sprintf(
		"when building %s, field `%s` for selectors [%s] was empty, but it is required, check if the HTML changed",
		e.Entity,
		e.Field,
		strings.Join(e.Selectors, ", "),
	)
}

func (e *EntityError) Unwrap() error {
	return ErrFieldRequired
}
