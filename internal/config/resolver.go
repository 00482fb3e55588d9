// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"slices"

	"github.com/MKhiriev/go-deploy-config/internal/logger"
)

// Placeholder is substituted for a missing required variable when the
// process was started with an exempt command, so commands like static file
// collection can run in build environments without real secrets.
const Placeholder = "PLACEHOLDER"

// DefaultExemptCommands lists the sub-commands that downgrade a missing
// required variable from fatal to tolerated.
func DefaultExemptCommands() []string {
	return []string{"collectstatic"}
}

// Resolver looks up configuration values in the process environment under
// the required/optional policy:
//
//   - a present variable is returned as-is;
//   - a missing optional variable is reported as absent, never as an error;
//   - a missing required variable aborts startup with a
//     [MissingVariableError], unless one of the exempt commands appears
//     among the invocation arguments, in which case [Placeholder] is
//     returned and an informational entry is logged.
type Resolver struct {
	lookup func(string) (string, bool)
	args   []string
	exempt []string
	logger *logger.Logger
}

// ResolverOptions overrides the environment lookup, the invocation
// arguments, and the exempt command set. Zero-value fields fall back to
// os.LookupEnv, os.Args[1:], and [DefaultExemptCommands]. Intended for
// tests; production code passes the zero value.
type ResolverOptions struct {
	Lookup         func(string) (string, bool)
	Args           []string
	ExemptCommands []string
}

// NewResolver constructs a Resolver with the given options and logger.
func NewResolver(opts ResolverOptions, log *logger.Logger) *Resolver {
	if opts.Lookup == nil {
		opts.Lookup = os.LookupEnv
	}
	if opts.Args == nil {
		opts.Args = os.Args[1:]
	}
	if opts.ExemptCommands == nil {
		opts.ExemptCommands = DefaultExemptCommands()
	}

	return &Resolver{
		lookup: opts.Lookup,
		args:   opts.Args,
		exempt: opts.ExemptCommands,
		logger: log,
	}
}

// Required returns the value of the environment variable name.
//
// If the variable is absent and no exempt command appears among the
// invocation arguments, a *MissingVariableError naming the variable is
// returned and startup must abort. If an exempt command is present, the
// bypass is logged at info level and [Placeholder] is returned instead.
func (r *Resolver) Required(name string) (string, error) {
	if value, ok := r.lookup(name); ok {
		return value, nil
	}

	matching := r.matchingExemptCommands()
	if len(matching) == 0 {
		return "", &MissingVariableError{Name: name}
	}

	r.logger.Info().
		Str("variable", name).
		Strs("commands", matching).
		Msg("required environment variable ignored for exempt command")

	return Placeholder, nil
}

// Optional returns the value of the environment variable name and whether
// it was present. An absent optional variable is not an error and is
// reported as ("", false), distinct from a present-but-empty value.
func (r *Resolver) Optional(name string) (string, bool) {
	return r.lookup(name)
}

// matchingExemptCommands computes the intersection of the exempt command
// set with the invocation arguments.
func (r *Resolver) matchingExemptCommands() []string {
	var matching []string
	for _, cmd := range r.exempt {
		if slices.Contains(r.args, cmd) {
			matching = append(matching, cmd)
		}
	}

	return matching
}
