// Package config provides deployment settings loading, merging, and
// validation facilities for the application.
//
// Settings are assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables (after an optional .env file is loaded)
//  2. Command-line flags
//  3. JSON config file
//
// Secrets and the allowed-hosts list are resolved from the environment only,
// under the required-variable policy implemented by [Resolver]: a missing
// required variable aborts startup unless the process was started with an
// exempt command such as collectstatic, in which case a placeholder value is
// substituted.
//
// The main entry point is [GetSettings], which also performs the one-shot
// best-effort instance metadata probe that appends the host's private IP to
// the allowed-hosts list.
package config
