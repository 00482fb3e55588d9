// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metadata implements the best-effort probe of the EC2 instance
// metadata service used to discover the host's private IP address.
package metadata

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-deploy-config/internal/logger"
)

// DefaultEndpoint is the EC2 instance metadata path for the host's private
// IPv4 address.
// https://docs.aws.amazon.com/AWSEC2/latest/UserGuide/ec2-instance-metadata.html
const DefaultEndpoint = "http://169.254.169.254/latest/meta-data/local-ipv4"

// DefaultTimeout bounds the single probe attempt. The metadata endpoint is
// link-local, so anything slower than this means it is not there.
const DefaultTimeout = 500 * time.Millisecond

const traceIDHeader = "X-Trace-ID"

// ProberConfig holds the endpoint and timeout for a [Prober]. Zero-value
// fields fall back to [DefaultEndpoint] and [DefaultTimeout].
type ProberConfig struct {
	Endpoint string
	Timeout  time.Duration
}

// Prober issues a single HTTP GET to the instance metadata service.
//
// The probe is best-effort by contract: it returns either the discovered
// value or an absence marker, and never an error. Outside cloud VM hosting
// the endpoint does not exist, and that is an expected, non-exceptional
// outcome.
type Prober struct {
	client   *resty.Client
	endpoint string
	logger   *logger.Logger
}

// NewProber constructs a Prober with the given configuration and logger.
func NewProber(cfg ProberConfig, log *logger.Logger) *Prober {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	cli := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0) // single attempt per process startup

	return &Prober{client: cli, endpoint: cfg.Endpoint, logger: log}
}

// LocalIPv4 queries the metadata service for the host's private IPv4
// address. It returns the trimmed response body and true on success, or
// ("", false) after logging a warning on any failure: connection error,
// timeout, non-2xx status, or an empty body. It never returns an error and
// must never abort startup.
func (p *Prober) LocalIPv4(ctx context.Context) (string, bool) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, uuid.NewString()).
		Get(p.endpoint)
	if err != nil {
		p.logger.Warn().Err(err).Msg("could not obtain instance metadata")
		return "", false
	}

	if !resp.IsSuccess() {
		p.logger.Warn().
			Int("status", resp.StatusCode()).
			Msg("unexpected instance metadata response")
		return "", false
	}

	ip := strings.TrimSpace(string(resp.Body()))
	if ip == "" {
		p.logger.Warn().Msg("empty instance metadata response")
		return "", false
	}

	return ip, true
}
