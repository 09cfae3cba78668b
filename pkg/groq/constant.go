package groq

import "time"

const (
	// DefaultBaseURL is the Groq OpenAI-compatible API endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default model to use
	DefaultModel = "llama-3.1-8b-instant"

	// DefaultTimeout bounds a single completion call
	DefaultTimeout = 60 * time.Second

	// DefaultRequestsPerMin throttles outbound calls to the API
	DefaultRequestsPerMin = 60
)
