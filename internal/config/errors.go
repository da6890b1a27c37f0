package config

import "errors"

var (
	// ErrRequiredConfigMissing signals that a setting with no usable default
	// was absent from every configuration source.
	ErrRequiredConfigMissing = errors.New("required config value missing")

	// ErrInvalidConfigValue signals a setting that parsed but is out of range.
	ErrInvalidConfigValue = errors.New("invalid config value")

	// ErrUnsupportedDriver signals an unknown database driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
