package openai

const (
	defaultAPIURL = "https://api.openai.com/v1"
	defaultModel  = "gpt-4o-mini"

	// Low temperature keeps the JSON output deterministic.
	defaultTemperature = 0.2
)
