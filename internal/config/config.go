// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// repair-minder sync client. It is populated by merging values from
// environment variables, command-line flags, an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote API address and transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local persistence settings for the mutation queue
	// and the session.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the sync engine policy values.
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds the optional local control API settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Headless disables the terminal status screen; the client then runs
	// until it receives SIGINT/SIGTERM.
	// Env: APP_HEADLESS
	Headless bool `env:"HEADLESS"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds settings of the outbound transport.
type Adapter struct {
	// HTTPAddress is the base URL of the repair-shop API
	// (e.g. "https://api.repairminder.com").
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout bounds every single request. A timeout is classified as
	// a transport error.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every request.
	// Env: ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// ProbeInterval is how often the reachability prober checks the API.
	// Env: ADAPTER_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// ProbePath is requested by the reachability prober. Any HTTP answer
	// counts as reachable.
	// Env: ADAPTER_PROBE_PATH
	ProbePath string `env:"PROBE_PATH"`
}

// Storage groups the local storage settings.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`

	// SessionSecret, when set, encrypts the stored session tokens.
	// Not available as a flag so it stays out of the process list.
	// Env: STORAGE_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET"`
}

// DB holds the local database settings.
type DB struct {
	// DSN is a SQLite file path. ":memory:" keeps everything in process
	// memory and a path ending in ".json" selects the JSON file store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds the sync engine policy.
type Workers struct {
	// SyncInterval is the period of the safety-net sync trigger.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// MaxConcurrency bounds the number of in-flight requests of a pass.
	// Env: WORKERS_MAX_CONCURRENCY
	MaxConcurrency int `env:"MAX_CONCURRENCY"`

	// MaxAttempts is the number of failed attempts after which a mutation is
	// dead-lettered.
	// Env: WORKERS_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// BackoffBase is the first retry delay; it doubles per attempt.
	// Env: WORKERS_BACKOFF_BASE
	BackoffBase time.Duration `env:"BACKOFF_BASE"`

	// BackoffCap caps the retry delay.
	// Env: WORKERS_BACKOFF_CAP
	BackoffCap time.Duration `env:"BACKOFF_CAP"`

	// CompletedReset is how long the completed status is shown before the
	// engine returns to idle.
	// Env: WORKERS_COMPLETED_RESET
	CompletedReset time.Duration `env:"COMPLETED_RESET"`
}

// Server holds the local control API settings.
type Server struct {
	// HTTPAddress is the listen address of the control API in "host:port"
	// form. The API is disabled when empty.
	// Env: SERVER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`
}

// Default policy values.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultUserAgent      = "RepairMinder-Sync/1.0"
	DefaultProbeInterval  = 10 * time.Second
	DefaultProbePath      = "/"
	DefaultDSN            = "repairminder.db"
	DefaultSyncInterval   = 30 * time.Second
	DefaultMaxConcurrency = 3
	DefaultMaxAttempts    = 5
	DefaultBackoffBase    = 2 * time.Second
	DefaultBackoffCap     = 60 * time.Second
	DefaultCompletedReset = 2 * time.Second
	DefaultLogLevel       = "info"
)

// Defaults returns the configuration used for every field no other source
// sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: DefaultLogLevel},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			UserAgent:      DefaultUserAgent,
			ProbeInterval:  DefaultProbeInterval,
			ProbePath:      DefaultProbePath,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Workers: Workers{
			SyncInterval:   DefaultSyncInterval,
			MaxConcurrency: DefaultMaxConcurrency,
			MaxAttempts:    DefaultMaxAttempts,
			BackoffBase:    DefaultBackoffBase,
			BackoffCap:     DefaultBackoffCap,
			CompletedReset: DefaultCompletedReset,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration. For
// every field the first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
