package config

import (
	"errors"
	"fmt"
)

// Validation errors returned by [Settings.validate] when the final merged
// settings are incomplete or inconsistent.
var (
	// ErrNoAllowedHosts indicates an empty allowed-hosts list (HOST was
	// set but contained no host names).
	ErrNoAllowedHosts = errors.New("no allowed hosts configured")
	// ErrInvalidStaticPaths indicates invalid static file settings (for
	// example, a URL prefix without leading/trailing slash or an empty
	// collection root).
	ErrInvalidStaticPaths = errors.New("invalid static file paths")
	// ErrInvalidMetadataTimeout indicates a non-positive metadata probe
	// timeout.
	ErrInvalidMetadataTimeout = errors.New("invalid metadata probe timeout")
)

// ErrMissingVariable is the sentinel all [MissingVariableError] values
// unwrap to, so callers can match the category with errors.Is without
// knowing the variable name.
var ErrMissingVariable = errors.New("required environment variable is not defined")

// MissingVariableError reports a required environment variable that was
// absent while no exempt command was present in the invocation arguments.
// It is fatal: the application cannot run correctly without the variable.
type MissingVariableError struct {
	// Name is the environment variable key that was not defined.
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("required environment variable %s is not defined", e.Name)
}

func (e *MissingVariableError) Unwrap() error {
	return ErrMissingVariable
}
