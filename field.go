package valedictory

import (
	"context"
	"errors"
	"fmt"
)

// Field is the contract every validation unit satisfies: leaf fields,
// sequence fields, nested validators, all composed by a Validator.
type Field interface {
	// Clean validates one value and returns its normalized form. present is
	// false when the input mapping had no entry for this field; in that case
	// v is nil and the field decides between its default, a required failure,
	// and ErrNoData.
	Clean(ctx context.Context, v any, present bool) (any, error)

	// Clone returns an independent deep copy. Every mutable attribute
	// (error-message maps, field-specific configuration) must be recreated
	// fresh so reconfiguring a clone never affects the original.
	Clone() Field
}

// ErrNoData is the distinguishable non-failure signal returned by an optional
// field with no default when its input is absent. Containers omit the key
// from their output entirely rather than injecting a placeholder.
var ErrNoData = errors.New("valedictory: no data")

// ConfigError reports a schema-author mistake (for example, a field declared
// both required and defaulted). It is raised immediately and never collected
// into an ErrorTree.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return "valedictory: " + e.msg }

// Configf constructs a ConfigError.
func Configf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// AsConfigError extracts a *ConfigError from an error using errors.As.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// ConfigChecker is an optional interface fields may implement to surface
// configuration errors at schema Build() time instead of first use.
type ConfigChecker interface {
	ConfigCheck() error
}
