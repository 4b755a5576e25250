package apiclient

import "time"

// Config holds the API client configuration loaded from the environment.
type Config struct {
	// BaseURL is the REST backend's base URL, including the API prefix.
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080/api/v1"` // e.g. https://cmms.example.com/api/v1

	// Timeout bounds each round trip, the refresh-and-resubmit path included.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
}
