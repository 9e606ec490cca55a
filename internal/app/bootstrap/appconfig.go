// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework side (ports, TLS, log level, body limits); everything here is
// specific to the program design service.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // e.g. mongodb://localhost:27017
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Planner session cookie
	SessionKey    string        // signing key (must be strong in production)
	SessionName   string        // cookie name
	SessionDomain string        // blank means current host
	SessionMaxAge time.Duration // how long an anonymous planner keeps their projects

	// List entry ids: "uuid" or "nanoid"
	IDStyle string

	// Audit logging for project events: "all", "db", "log" or "off"
	AuditLogProjects string

	// Write throttling per planner
	WriteRatePerMinute int
	WriteRateBurst     int

	// Store call timeouts
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
}
