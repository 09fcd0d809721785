package config

const (
	KeyAPIURL      = "clawdsbet_api_url"
	KeyAPIKey      = "clawdsbet_api_key"
	KeyHealthURL   = "clawdsbet_health_url"
	KeyLogLevel    = "log_level"
	KeyOTelEnabled = "otel_enabled"
)
