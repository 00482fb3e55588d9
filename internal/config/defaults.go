package config

import (
	"time"

	"github.com/MKhiriev/go-deploy-config/internal/metadata"
)

// defaultSettings returns the settings applied when no source provides a
// value. Merged last by the builder, so any source wins over these.
func defaultSettings() *Settings {
	return &Settings{
		Templates: Templates{
			Dirs: []string{"templates"},
		},
		Static: Static{
			URL:        "/static/",
			Root:       "/var/www/static",
			SourceDirs: []string{"static"},
		},
		Auth: Auth{
			LoginURL:          "/login/",
			LoginRedirectURL:  "/",
			LogoutRedirectURL: "/login/",
		},
		Locale: Locale{
			LanguageCode: "en-us",
			TimeZone:     "UTC",
		},
		Metadata: Metadata{
			Endpoint: metadata.DefaultEndpoint,
			Timeout:  500 * time.Millisecond,
		},
	}
}
