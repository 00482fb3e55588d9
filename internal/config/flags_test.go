package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *Settings)
	}{
		{
			name: "all flags set",
			args: []string{
				"-static-url", "/assets/",
				"-static-root", "/srv/assets",
				"-static-dirs", "static,vendor",
				"-template-dirs", "templates,shared",
				"-metadata-endpoint", "http://127.0.0.1:9999/local-ipv4",
				"-metadata-timeout", "250ms",
				"-no-metadata",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *Settings) {
				assert.Equal(t, "/assets/", cfg.Static.URL)
				assert.Equal(t, "/srv/assets", cfg.Static.Root)
				assert.Equal(t, []string{"static", "vendor"}, cfg.Static.SourceDirs)
				assert.Equal(t, []string{"templates", "shared"}, cfg.Templates.Dirs)
				assert.Equal(t, "http://127.0.0.1:9999/local-ipv4", cfg.Metadata.Endpoint)
				assert.Equal(t, 250*time.Millisecond, cfg.Metadata.Timeout)
				assert.True(t, cfg.Metadata.Disabled)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags leaves zero values",
			args: []string{},
			validate: func(t *testing.T, cfg *Settings) {
				assert.Empty(t, cfg.Static.URL)
				assert.Empty(t, cfg.Static.Root)
				assert.Nil(t, cfg.Static.SourceDirs)
				assert.Nil(t, cfg.Templates.Dirs)
				assert.False(t, cfg.Metadata.Disabled)
				assert.Empty(t, cfg.JSONFilePath)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/etc/deploy/config.json"},
			validate: func(t *testing.T, cfg *Settings) {
				assert.Equal(t, "/etc/deploy/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "sub-command after flags is not consumed",
			args: []string{"-static-root", "/srv/assets", "collectstatic"},
			validate: func(t *testing.T, cfg *Settings) {
				assert.Equal(t, "/srv/assets", cfg.Static.Root)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t, tt.args...)

			cfg := ParseFlags()

			tt.validate(t, cfg)
		})
	}
}
