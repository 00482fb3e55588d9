// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates the typed, optional fields of cfg from environment
// variables using the caarlos0/env library. Struct fields are mapped via
// their `env` and `envPrefix` tags defined on [Settings] and its nested
// types. Fields governed by the required-variable policy carry no tags and
// are resolved separately by [resolveEnv].
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *Settings) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// resolveEnv fills the fields of cfg that fall under the required/optional
// variable policy, using the given resolver:
//
//	SECRET_KEY  (required) -> SecretKey
//	DEBUG       (optional) -> Debug, true iff the raw value is exactly "1"
//	HOST        (required) -> AllowedHosts, comma-delimited
//	DB_NAME     (required) -> Database.Name
//	DB_USER     (required) -> Database.User
//	DB_PASSWORD (required) -> Database.Password
//	DB_HOST     (required) -> Database.Host
//
// Returns the resolver's *MissingVariableError unchanged when a required
// variable is absent and no exempt command is present.
func resolveEnv(cfg *Settings, r *Resolver) error {
	secretKey, err := r.Required("SECRET_KEY")
	if err != nil {
		return err
	}
	cfg.SecretKey = secretKey

	// only switch on debug if the DEBUG env var is '1'
	debug, _ := r.Optional("DEBUG")
	cfg.Debug = debug == "1"

	host, err := r.Required("HOST")
	if err != nil {
		return err
	}
	cfg.AllowedHosts = splitList(host)

	required := []struct {
		name string
		dst  *string
	}{
		{"DB_NAME", &cfg.Database.Name},
		{"DB_USER", &cfg.Database.User},
		{"DB_PASSWORD", &cfg.Database.Password},
		{"DB_HOST", &cfg.Database.Host},
	}
	for _, v := range required {
		value, err := r.Required(v.name)
		if err != nil {
			return err
		}
		*v.dst = value
	}

	return nil
}

// splitList splits a comma-delimited value into its non-empty, trimmed
// elements. A value without commas yields a single-element list.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}

	return items
}
