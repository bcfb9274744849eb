package openaichat

import "time"

const (
	// DefaultBaseURL is the default OpenAI API endpoint. Any
	// OpenAI-compatible gateway can be substituted via Config.BaseURL.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the default model to use.
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout bounds a single HTTP round trip.
	DefaultTimeout = 60 * time.Second
)
