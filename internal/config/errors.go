package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidLimitsConfigs indicates invalid business-rule settings
	// (non-positive caps, empty agency code, or an unknown reset policy).
	ErrInvalidLimitsConfigs = errors.New("invalid limits configuration")
	// ErrInvalidStorageConfigs indicates invalid session store settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
