package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates a missing API address or a
	// non-positive timeout or probe interval.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates an unusable sync policy (zero
	// interval, concurrency or attempts, or a backoff cap below its base).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
