package config

const (
	defaultServerPort = 8080

	// 2 GiB.
	defaultMaxCapacity = 2 << 30

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",
		"server.cors_origins":  []string{},

		"log.level":  "info",
		"log.format": "json",

		"storage.driver":       "sqlite",
		"storage.dsn":          "data/projects.db",
		"storage.max_capacity": defaultMaxCapacity,
		"storage.machine_id":   1,

		"notifier.enabled":                                false,
		"notifier.events_path":                            "/events",
		"notifier.client.base_url":                        "http://localhost:8081",
		"notifier.client.timeout":                         "5s",
		"notifier.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"notifier.client.retry.initial_interval":          "100ms",
		"notifier.client.retry.max_interval":              "10s",
		"notifier.client.retry.multiplier":                defaultRetryMultiplier,
		"notifier.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"notifier.client.circuit_breaker.timeout":         "30s",
		"notifier.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"notifier.client.rate_limit.requests_per_second":  0,
		"notifier.client.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "project-service",
	}
}
