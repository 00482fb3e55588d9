// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"net/url"
	"time"

	"github.com/MKhiriev/go-deploy-config/internal/logger"
)

// Settings is the top-level configuration container for the application.
// It aggregates all deployment settings and is populated once at startup by
// merging values from an optional .env file, environment variables,
// command-line flags, and an optional JSON file. After GetSettings returns,
// the struct is treated as immutable and passed by reference to all
// consumers.
//
// Secrets (SecretKey, Database credentials) and the allowed-hosts list are
// resolved from the environment only, under the required-variable policy
// implemented by [Resolver]. Flags and the JSON file carry non-secret
// overrides exclusively.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Settings struct {
	// SecretKey is the application signing secret.
	// Env: SECRET_KEY (required).
	SecretKey string

	// Debug switches the application into debug mode. It is true if and
	// only if the DEBUG environment variable is exactly "1"; any other
	// value, including "true" and "0", leaves it false.
	// Env: DEBUG (optional).
	Debug bool

	// AllowedHosts is the list of host names the application accepts
	// requests for. Seeded from the HOST environment variable (required,
	// comma-delimited for multiple hosts) and enriched with the EC2
	// instance's private IP when the metadata probe succeeds, so the
	// load balancer health check passes.
	AllowedHosts []string

	// Database holds the PostgreSQL connection settings.
	Database Database

	// Templates holds template engine paths.
	Templates Templates `envPrefix:"TEMPLATES_"`

	// Static holds static file collection and serving paths.
	Static Static `envPrefix:"STATIC_"`

	// Auth holds login/logout redirect URLs.
	Auth Auth

	// Locale holds language and time zone defaults.
	Locale Locale

	// Metadata holds settings for the instance metadata probe.
	Metadata Metadata `envPrefix:"METADATA_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged with the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Database holds connection settings for the PostgreSQL backend.
// All four fields are required environment variables; when the process was
// started with an exempt command (e.g. collectstatic) missing values are
// filled with [Placeholder] instead of failing startup.
type Database struct {
	// Name is the database name. Env: DB_NAME (required).
	Name string

	// User is the database role. Env: DB_USER (required).
	User string

	// Password is the database password. Env: DB_PASSWORD (required).
	Password string

	// Host is the database host, optionally with a port
	// (e.g. "db.internal:5432"). Env: DB_HOST (required).
	Host string
}

// DSN builds the PostgreSQL connection URL from the individual fields.
// Credentials are percent-escaped, so passwords may contain any characters.
func (d Database) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   d.Host,
		Path:   "/" + d.Name,
	}

	return u.String()
}

// Templates holds template engine paths.
type Templates struct {
	// Dirs is the list of directories searched for templates.
	// Env: TEMPLATES_DIRS (comma-delimited). Default: ["templates"].
	Dirs []string `env:"DIRS"`
}

// Static holds static file paths, consumed by the collectstatic command and
// exposed to the web server configuration.
type Static struct {
	// URL is the public URL prefix under which static files are served.
	// Must start and end with "/". Env: STATIC_URL. Default: "/static/".
	URL string `env:"URL"`

	// Root is the directory static files are collected into.
	// Env: STATIC_ROOT. Default: "/var/www/static".
	Root string `env:"ROOT"`

	// SourceDirs is the list of directories collectstatic copies from.
	// Env: STATIC_SOURCE_DIRS (comma-delimited). Default: ["static"].
	SourceDirs []string `env:"SOURCE_DIRS"`
}

// Auth holds the authentication redirect URLs.
type Auth struct {
	// LoginURL is the route unauthenticated users are redirected to.
	LoginURL string

	// LoginRedirectURL is the default redirect target after login.
	LoginRedirectURL string

	// LogoutRedirectURL is the redirect target after logout.
	LogoutRedirectURL string
}

// Locale holds internationalization defaults.
type Locale struct {
	// LanguageCode is the default language (e.g. "en-us").
	LanguageCode string

	// TimeZone is the default time zone name (e.g. "UTC").
	TimeZone string
}

// Metadata holds settings for the EC2 instance metadata probe that enriches
// the allowed-hosts list with the host's private IP.
type Metadata struct {
	// Endpoint is the metadata URL queried for the private IPv4 address.
	// Env: METADATA_ENDPOINT. Default: the EC2 link-local local-ipv4 path.
	Endpoint string `env:"ENDPOINT"`

	// Timeout bounds the single probe attempt. Env: METADATA_TIMEOUT
	// (e.g. "500ms"). Default: 500ms.
	Timeout time.Duration `env:"TIMEOUT"`

	// Disabled skips the probe entirely. Env: METADATA_DISABLED.
	Disabled bool `env:"DISABLED"`
}

// Redacted returns a shallow copy of the settings with secret values masked,
// safe for logging.
func (s *Settings) Redacted() *Settings {
	c := *s
	c.SecretKey = mask(c.SecretKey)
	c.Database.Password = mask(c.Database.Password)

	return &c
}

func mask(v string) string {
	if v == "" {
		return ""
	}

	return "***"
}

// GetSettings loads, merges, validates, and enriches the application
// settings from all available sources in the following priority order
// (first source wins for non-zero fields, defaults fill the rest):
//  1. Environment variables (after an optional .env file is loaded)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// After validation the allowed-hosts list is enriched once with the
// instance's private IP via the metadata probe; probe failure is logged and
// never fails the call.
//
// Returns a fully populated *Settings or an error if any source fails to
// load, a required environment variable is missing without an exempt
// command, or the final settings fail validation.
func GetSettings(ctx context.Context, log *logger.Logger) (*Settings, error) {
	return newSettingsBuilder(ctx, log).
		withDotenv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
