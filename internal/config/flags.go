package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags. Flags carry non-secret
// overrides only; credentials and the allowed-hosts list come from the
// environment.
//
// Flags:
//
//	-static-url static files URL prefix
//	-static-root static files collection directory
//	-static-dirs comma-delimited static source directories
//	-template-dirs comma-delimited template directories
//	-metadata-endpoint instance metadata endpoint URL
//	-metadata-timeout instance metadata probe timeout (e.g., "500ms")
//	-no-metadata disable the instance metadata probe
//	-c/-config json file path with configs
//
// The first non-flag argument is the sub-command (e.g. "check",
// "collectstatic") and remains available via flag.Args after parsing.
func ParseFlags() *Settings {
	var staticURL string
	var staticRoot string
	var staticSourceDirs string
	var templateDirs string
	var metadataEndpoint string
	var metadataTimeout time.Duration
	var metadataDisabled bool
	var jsonConfigPath string

	flag.StringVar(&staticURL, "static-url", "", "Static files URL prefix")
	flag.StringVar(&staticRoot, "static-root", "", "Static files collection directory")
	flag.StringVar(&staticSourceDirs, "static-dirs", "", "Comma-delimited static source directories")
	flag.StringVar(&templateDirs, "template-dirs", "", "Comma-delimited template directories")
	flag.StringVar(&metadataEndpoint, "metadata-endpoint", "", "Instance metadata endpoint URL")
	flag.DurationVar(&metadataTimeout, "metadata-timeout", 0, "Instance metadata probe timeout (e.g., 500ms)")
	flag.BoolVar(&metadataDisabled, "no-metadata", false, "Disable the instance metadata probe")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Settings{
		Templates: Templates{
			Dirs: splitList(templateDirs),
		},
		Static: Static{
			URL:        staticURL,
			Root:       staticRoot,
			SourceDirs: splitList(staticSourceDirs),
		},
		Metadata: Metadata{
			Endpoint: metadataEndpoint,
			Timeout:  metadataTimeout,
			Disabled: metadataDisabled,
		},
		JSONFilePath: jsonConfigPath,
	}
}
