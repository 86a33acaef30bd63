package config

import "time"

// app constants
const (
	AppName        = "opsdash"
	AppDescription = "terminal operations dashboard with a simulated live log stream"

	Version = "0.4.0"

	FileName    = "opsdash.yaml"
	EnvFileName = ".env"
	EnvPrefix   = "OPSDASH"
)

// logging constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// stream constants
const (
	DefaultTickInterval   = 1200 * time.Millisecond
	DefaultBufferCapacity = 120
	DefaultLevelFilter    = "ALL"
	DefaultBusBuffer      = 100
)

// catalog constants
const (
	DefaultCatalogDebounce = 300 * time.Millisecond
)

// service constants
const (
	ShutdownTimeout = 5 * time.Second
)
