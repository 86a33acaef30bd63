package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrFailedToLoadEnv     = errors.New("failed to load .env file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidCapacity    = errors.New("buffer capacity must be greater than zero")
	ErrInvalidInterval    = errors.New("tick interval must be greater than zero")
	ErrInvalidBusBuffer   = errors.New("bus buffer must be greater than zero")
	ErrInvalidDebounce    = errors.New("catalog debounce must not be negative")
	ErrInvalidLevel       = errors.New("invalid log level")
	ErrInvalidLevelFilter = errors.New("invalid level filter")

	ErrEmptyCatalog        = errors.New("template catalog is empty")
	ErrInvalidTemplate     = errors.New("invalid template")
	ErrNoCatalogFiles      = errors.New("no catalog files matched")
	ErrFailedToReadCatalog = errors.New("failed to read catalog file")
	ErrUnsupportedCatalog  = errors.New("unsupported catalog file format")
	ErrInvalidCatalogGlob  = errors.New("invalid catalog glob pattern")
	ErrNilRandomSource     = errors.New("random source is required")

	ErrSchedulerRunning = errors.New("scheduler already running")
	ErrFileExists       = errors.New("file already exists")
	ErrUnknownCommand   = errors.New("unknown command")
)

var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)
