// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// deployconf is the deployment configuration management command.
//
// Usage:
//
//	deployconf [flags] [command]
//
// Flags must precede the command: flag parsing stops at the first non-flag
// argument, so anything after the command is ignored (with a warning).
//
// Commands:
//
//	check         resolve, validate, and print the deployment settings
//	              (the default when no command is given); with -ping,
//	              also connect to and ping the database
//	collectstatic collect static assets into the configured root; runs
//	              without real secrets (missing required variables are
//	              replaced with placeholders)
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/MKhiriev/go-deploy-config/internal/config"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/internal/static"
	"github.com/MKhiriev/go-deploy-config/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const pingTimeout = 5 * time.Second

func main() {
	printBuildInfo()

	// registered before config.GetSettings triggers flag.Parse
	ping := flag.Bool("ping", false, "Connect to and ping the database during check")

	log := logger.NewLogger("deployconf")
	ctx := context.Background()

	cfg, err := config.GetSettings(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting settings")
	}

	log.Debug().Any("settings", cfg.Redacted()).Msg("resolved settings")

	cmd, trailing := splitArgs(flag.Args())
	if len(trailing) > 0 {
		log.Warn().
			Strs("args", trailing).
			Msg("ignoring trailing arguments, flags must precede the command")
	}

	switch cmd {
	case "", "check":
		check(ctx, cfg, log, *ping)
	case "collectstatic":
		collectStatic(cfg, log)
	default:
		log.Fatal().Str("command", cmd).Msg("unknown command")
	}
}

// splitArgs separates the sub-command from whatever followed it on the
// command line. Trailing arguments are never interpreted: flag parsing has
// already stopped, so a flag placed after the command would otherwise be
// dropped silently.
func splitArgs(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}

	return args[0], args[1:]
}

func check(ctx context.Context, cfg *config.Settings, log *logger.Logger, ping bool) {
	if _, err := pgx.ParseConfig(cfg.Database.DSN()); err != nil {
		log.Fatal().Err(err).Msg("invalid database configuration")
	}

	if ping {
		ctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()

		db, err := store.NewConnectPostgres(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("database connection check failed")
		}
		defer db.Close()
	}

	log.Info().
		Strs("allowed_hosts", cfg.AllowedHosts).
		Bool("debug", cfg.Debug).
		Msg("configuration OK")
}

func collectStatic(cfg *config.Settings, log *logger.Logger) {
	collector := static.NewCollector(cfg.Static, log)

	copied, err := collector.Collect()
	if err != nil {
		log.Fatal().Err(err).Msg("error collecting static files")
	}

	log.Info().Int("files", copied).Msg("static files collected")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
