package genai

import (
	"log"
	"os"
	"time"
)

const (
	// EnvAssistMode is the environment variable name for mode selection.
	EnvAssistMode = "ASSIST_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewClient creates a genai client based on the ASSIST_MODE environment
// variable. If ASSIST_MODE=MOCK, returns a MockClient; otherwise returns a
// real HTTP client.
func NewClient(baseURL, apiKey string, timeout time.Duration) Client {
	if os.Getenv(EnvAssistMode) == ModeMock {
		log.Println("ASSIST_MODE=MOCK detected, using mock genai client")
		return NewMockClient()
	}

	return NewHTTPClient(baseURL, apiKey, timeout)
}
