package ports

import "context"

// HealthChecker is a dependency the readiness probe consults: the SQL store
// pings its database, the notifier reports its circuit breaker.
type HealthChecker interface {
	// Name keys the checker's entry in the readiness response.
	Name() string
	// HealthCheck returns nil when the dependency can serve traffic. It must
	// honor ctx's deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects the checkers wired at startup.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll runs every checker and returns one entry per name; a nil
	// error means healthy.
	CheckAll(ctx context.Context) map[string]error
}
