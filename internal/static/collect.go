// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package static implements the collectstatic command: it gathers static
// assets from the configured source directories into the collection root
// the web server serves them from.
//
// collectstatic is the canonical exempt command of the configuration
// loader: it runs in CI and image-build contexts without real secrets, so
// missing required variables are tolerated with placeholder values.
package static

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-deploy-config/internal/config"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
)

// Collector copies static files from the configured source directories into
// the collection root.
type Collector struct {
	cfg    config.Static
	logger *logger.Logger
}

// NewCollector constructs a Collector for the given static file settings.
func NewCollector(cfg config.Static, log *logger.Logger) *Collector {
	return &Collector{cfg: cfg, logger: log}
}

// Collect walks every source directory and copies each file into the
// collection root, preserving paths relative to the source directory.
// Files whose destination is at least as new as the source are skipped.
// A missing source directory is logged and skipped; any other failure
// aborts the run.
//
// Returns the number of files copied.
func (c *Collector) Collect() (int, error) {
	copied := 0

	for _, dir := range c.cfg.SourceDirs {
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			c.logger.Warn().Str("dir", dir).Msg("static source directory does not exist, skipping")
			continue
		}

		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}

			ok, err := c.copyFile(path, filepath.Join(c.cfg.Root, rel))
			if err != nil {
				return err
			}
			if ok {
				copied++
			}

			return nil
		})
		if err != nil {
			return copied, fmt.Errorf("error collecting static files from %s: %w", dir, err)
		}
	}

	c.logger.Info().
		Int("copied", copied).
		Str("root", c.cfg.Root).
		Msg("static file collection finished")

	return copied, nil
}

// copyFile copies src to dst unless dst already exists and is at least as
// new as src. Reports whether a copy took place.
func (c *Collector) copyFile(src, dst string) (bool, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, err
	}

	if dstInfo, err := os.Stat(dst); err == nil {
		if !dstInfo.ModTime().Before(srcInfo.ModTime()) {
			c.logger.Debug().Str("file", dst).Msg("destination up to date, skipping")
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, err
	}

	in, err := os.Open(src)
	if err != nil {
		return false, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return false, err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return false, err
	}

	return true, out.Close()
}
