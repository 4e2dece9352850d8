package api

import (
	"log"
	"net/http"

	"zignexweb/config"
)

// NewSource returns the content source selected by cfg. Offline mode is the
// only way to get bundled content; a backend outage never falls back to it.
func NewSource(cfg config.Config) (Source, error) {
	if cfg.OfflineMode {
		log.Printf("api: offline mode enabled, serving bundled demo content")
		return NewDemoSource()
	}
	return NewClient(cfg.BackendURL, &http.Client{Timeout: cfg.RequestTimeout}), nil
}
