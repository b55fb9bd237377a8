package config

import (
	"fmt"
	"time"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	Headless bool
	LogLevel string
}

// ClientAdapter holds network settings used by the transport layer and the
// reachability prober.
type ClientAdapter struct {
	// HTTPAddress is the API base URL.
	HTTPAddress string
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
	// ProbeInterval is the reachability probe period.
	ProbeInterval time.Duration
	// ProbePath is requested by the reachability prober.
	ProbePath string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite path, ":memory:" or a ".json" file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
	// SessionSecret enables at-rest encryption of the session tokens.
	// Never logged.
	SessionSecret string `json:"-"`
}

// ClientWorkers is the sync engine policy.
type ClientWorkers struct {
	SyncInterval   time.Duration
	MaxConcurrency int
	MaxAttempts    int
	BackoffBase    time.Duration
	BackoffCap     time.Duration
	CompletedReset time.Duration
}

// ClientServer holds the control API settings.
type ClientServer struct {
	HTTPAddress string
}

// ClientConfig is the validated configuration view consumed by the client.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Server  ClientServer
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps a [StructuredConfig] onto the client view without
// validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Headless: cfg.App.Headless,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UserAgent:      cfg.Adapter.UserAgent,
			ProbeInterval:  cfg.Adapter.ProbeInterval,
			ProbePath:      cfg.Adapter.ProbePath,
		},
		Storage: ClientStorage{
			DB:            ClientDB{DSN: cfg.Storage.DB.DSN},
			SessionSecret: cfg.Storage.SessionSecret,
		},
		Workers: ClientWorkers{
			SyncInterval:   cfg.Workers.SyncInterval,
			MaxConcurrency: cfg.Workers.MaxConcurrency,
			MaxAttempts:    cfg.Workers.MaxAttempts,
			BackoffBase:    cfg.Workers.BackoffBase,
			BackoffCap:     cfg.Workers.BackoffCap,
			CompletedReset: cfg.Workers.CompletedReset,
		},
		Server: ClientServer{HTTPAddress: cfg.Server.HTTPAddress},
	}
}
