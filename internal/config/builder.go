package config

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/internal/metadata"
)

type settingsBuilder struct {
	ctx      context.Context
	logger   *logger.Logger
	resolver *Resolver
	configs  []*Settings
	err      error
}

func newSettingsBuilder(ctx context.Context, log *logger.Logger) *settingsBuilder {
	return &settingsBuilder{
		ctx:      ctx,
		logger:   log,
		resolver: NewResolver(ResolverOptions{}, log),
		configs:  make([]*Settings, 0, 4),
	}
}

func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, cfg := range b.configs {
		if err := mergo.Merge(settings, cfg); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	// defaults fill whatever no source provided
	if err := mergo.Merge(settings, defaultSettings()); err != nil {
		return nil, fmt.Errorf("error merging default settings: %w", err)
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}

	b.enrichAllowedHosts(settings)

	return settings, nil
}

func (b *settingsBuilder) withDotenv() *settingsBuilder {
	if err := loadDotenv(envFilePath()); err != nil {
		b.err = errors.Join(b.err, err)
	}

	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envCfg := &Settings{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if err := resolveEnv(envCfg, b.resolver); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *settingsBuilder) withFlags() *settingsBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *settingsBuilder) withJSON() *settingsBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// enrichAllowedHosts performs the one-shot instance metadata probe and
// appends the host's private IP to the allowed-hosts list, so the load
// balancer health check (which targets the instance IP directly) passes.
// The probe is best-effort: outside cloud VM hosting the endpoint does not
// exist and the failure is logged and swallowed.
//
// The probe is skipped when the host list carries [Placeholder]: an exempt
// command is running without real configuration (CI, image builds), and the
// probe would only stall the command and decorate a bogus list.
func (b *settingsBuilder) enrichAllowedHosts(settings *Settings) {
	if settings.Metadata.Disabled {
		return
	}

	if slices.Contains(settings.AllowedHosts, Placeholder) {
		return
	}

	prober := metadata.NewProber(metadata.ProberConfig{
		Endpoint: settings.Metadata.Endpoint,
		Timeout:  settings.Metadata.Timeout,
	}, b.logger)

	if ip, ok := prober.LocalIPv4(b.ctx); ok {
		settings.AllowedHosts = append(settings.AllowedHosts, ip)
	}
}
