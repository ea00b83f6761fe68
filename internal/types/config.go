package types

type RunMode string

const (
	// ModeLocal runs the HTTP API with local defaults
	ModeLocal RunMode = "local"
	// ModeAPI runs the HTTP API
	ModeAPI RunMode = "api"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
)
