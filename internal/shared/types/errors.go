package types

import "errors"

var (
	ErrConfigMissing       = errors.New("required configuration is missing")
	ErrProfileNotFound     = errors.New("config file not found for account")
	ErrInvalidTarget       = errors.New("invalid target values")
	ErrUnsupportedPlatform = errors.New("operation not supported on this platform")
)
