package gdn

import (
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTimeout bounds a single request when Configuration.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Configuration holds the connection settings shared by all client handles.
type Configuration struct {
	BaseURL string
	APIKey  string
	Fabric  string

	// Timeout bounds each HTTP request. Zero means DefaultTimeout.
	Timeout time.Duration

	// RateLimit caps requests per second issued by one handle. Zero means unlimited.
	RateLimit rate.Limit

	// HTTPClient overrides the default client. Timeout is ignored when set.
	HTTPClient *http.Client

	// Logger receives one debug line per request. Nil means slog.Default().
	Logger *slog.Logger
}

// NewConfiguration returns a configuration authenticated with an API key.
func NewConfiguration(baseURL, apiKey, fabric string) *Configuration {
	return &Configuration{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Fabric:  fabric,
		Timeout: DefaultTimeout,
	}
}
