package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonSettings mirrors the non-secret parts of [Settings] with json tags.
// Credentials are deliberately absent: a config file checked into a deploy
// repository must never carry them.
type jsonSettings struct {
	Templates struct {
		Dirs []string `json:"dirs"`
	} `json:"templates,omitempty"`

	Static struct {
		URL        string   `json:"url"`
		Root       string   `json:"root"`
		SourceDirs []string `json:"source_dirs"`
	} `json:"static,omitempty"`

	Auth struct {
		LoginURL          string `json:"login_url"`
		LoginRedirectURL  string `json:"login_redirect_url"`
		LogoutRedirectURL string `json:"logout_redirect_url"`
	} `json:"auth,omitempty"`

	Locale struct {
		LanguageCode string `json:"language_code"`
		TimeZone     string `json:"time_zone"`
	} `json:"locale,omitempty"`

	Metadata struct {
		Endpoint string   `json:"endpoint"`
		Timeout  Duration `json:"timeout"`
		Disabled bool     `json:"disabled"`
	} `json:"metadata,omitempty"`
}

func parseJSON(jsonFilePath string) (*Settings, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonSettings
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Settings{
		Templates: Templates{
			Dirs: jsonCfg.Templates.Dirs,
		},
		Static: Static{
			URL:        jsonCfg.Static.URL,
			Root:       jsonCfg.Static.Root,
			SourceDirs: jsonCfg.Static.SourceDirs,
		},
		Auth: Auth{
			LoginURL:          jsonCfg.Auth.LoginURL,
			LoginRedirectURL:  jsonCfg.Auth.LoginRedirectURL,
			LogoutRedirectURL: jsonCfg.Auth.LogoutRedirectURL,
		},
		Locale: Locale{
			LanguageCode: jsonCfg.Locale.LanguageCode,
			TimeZone:     jsonCfg.Locale.TimeZone,
		},
		Metadata: Metadata{
			Endpoint: jsonCfg.Metadata.Endpoint,
			Timeout:  time.Duration(jsonCfg.Metadata.Timeout),
			Disabled: jsonCfg.Metadata.Disabled,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
