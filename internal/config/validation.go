// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [Settings] satisfies all
// invariants before it is handed to consumers.
//
// Returns nil if the settings are valid, or one of the sentinel errors
// declared in errors.go otherwise.
func (s *Settings) validate() error {
	if len(s.AllowedHosts) == 0 {
		return ErrNoAllowedHosts
	}

	if !strings.HasPrefix(s.Static.URL, "/") || !strings.HasSuffix(s.Static.URL, "/") {
		return ErrInvalidStaticPaths
	}

	if s.Static.Root == "" {
		return ErrInvalidStaticPaths
	}

	if s.Metadata.Timeout <= 0 {
		return ErrInvalidMetadataTimeout
	}

	return nil
}
