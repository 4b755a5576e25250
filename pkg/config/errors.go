package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the config struct.
	ErrParsingConfig = errors.New("config.parsing_failed")

	// ErrEnvFile is returned when an explicitly requested .env file cannot
	// be loaded.
	ErrEnvFile = errors.New("config.env_file_load_failed")

	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("config.nil_pointer")
)
