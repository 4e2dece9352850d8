// Package config loads the site's runtime settings once at start-up.
package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is threaded explicitly from main into every component that needs
// it; nothing reads settings from package state.
type Config struct {
	BackendURL           string
	OfflineMode          bool
	RequestTimeout       time.Duration
	PageLoadTimeout      time.Duration
	ConfirmationInterval time.Duration
	FormSessionTTL       time.Duration
	AdminEnabled         bool
	Site                 SiteInfo
}

// SiteInfo is the static contact block shown in the header, footer and
// contact page.
type SiteInfo struct {
	CompanyName string
	Phone       string
	Email       string
	Address     string
	Hours       string
}

var defaults = map[string]any{
	"OFFLINE_MODE":          false,
	"REQUEST_TIMEOUT":       "10s",
	"PAGE_LOAD_TIMEOUT":     "15s",
	"CONFIRMATION_INTERVAL": "3s",
	"FORM_SESSION_TTL":      "30m",
	"ADMIN_ENABLED":         false,
	"COMPANY_NAME":          "ZignEx",
	"CONTACT_PHONE":         "(281) 323-4099",
	"CONTACT_EMAIL":         "hiring@zignex.com",
	"CONTACT_ADDRESS":       "The Woodlands, TX, USA",
	"CONTACT_HOURS":         "Monday - Friday: 9:00 AM - 6:00 PM CST",
}

// Load reads path (a .env style file, optional) and then the process
// environment, which wins over the file.
func Load(path string) (Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Printf("config: %s not read, using environment only: %v", path, err)
		}
	}
	v.AutomaticEnv()
	v.BindEnv("BACKEND_URL", "BACKEND_URL", "REACT_APP_BACKEND_URL")

	cfg := Config{
		BackendURL:           strings.TrimRight(strings.TrimSpace(v.GetString("BACKEND_URL")), "/"),
		OfflineMode:          v.GetBool("OFFLINE_MODE"),
		RequestTimeout:       v.GetDuration("REQUEST_TIMEOUT"),
		PageLoadTimeout:      v.GetDuration("PAGE_LOAD_TIMEOUT"),
		ConfirmationInterval: v.GetDuration("CONFIRMATION_INTERVAL"),
		FormSessionTTL:       v.GetDuration("FORM_SESSION_TTL"),
		AdminEnabled:         v.GetBool("ADMIN_ENABLED"),
		Site: SiteInfo{
			CompanyName: v.GetString("COMPANY_NAME"),
			Phone:       v.GetString("CONTACT_PHONE"),
			Email:       v.GetString("CONTACT_EMAIL"),
			Address:     v.GetString("CONTACT_ADDRESS"),
			Hours:       v.GetString("CONTACT_HOURS"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	log.Printf("config: backend=%s offline=%t admin=%t", cfg.describeBackend(), cfg.OfflineMode, cfg.AdminEnabled)
	return cfg, nil
}

// Validate checks the settings that have no safe default.
func (c Config) Validate() error {
	if !c.OfflineMode {
		if c.BackendURL == "" {
			return errors.New("config: BACKEND_URL is required unless OFFLINE_MODE is set")
		}
		u, err := url.Parse(c.BackendURL)
		if err != nil {
			return fmt.Errorf("config: BACKEND_URL: %w", err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("config: BACKEND_URL must be an absolute http(s) URL, got %q", c.BackendURL)
		}
	}
	if c.ConfirmationInterval <= 0 {
		return errors.New("config: CONFIRMATION_INTERVAL must be positive")
	}
	if c.RequestTimeout < 0 || c.PageLoadTimeout < 0 || c.FormSessionTTL < 0 {
		return errors.New("config: timeouts must not be negative")
	}
	return nil
}

func (c Config) describeBackend() string {
	if c.OfflineMode {
		return "(bundled demo content)"
	}
	return c.BackendURL
}
