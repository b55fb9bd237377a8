package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON names and
// human-readable durations.
type StructuredJSONConfig struct {
	App struct {
		Headless bool   `json:"headless"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		UserAgent      string   `json:"user_agent"`
		ProbeInterval  Duration `json:"probe_interval"`
		ProbePath      string   `json:"probe_path"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		SessionSecret string `json:"session_secret"`
	} `json:"storage,omitempty"`

	Workers struct {
		SyncInterval   Duration `json:"sync_interval"`
		MaxConcurrency int      `json:"max_concurrency"`
		MaxAttempts    int      `json:"max_attempts"`
		BackoffBase    Duration `json:"backoff_base"`
		BackoffCap     Duration `json:"backoff_cap"`
		CompletedReset Duration `json:"completed_reset"`
	} `json:"workers,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Headless: jsonCfg.App.Headless,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			UserAgent:      jsonCfg.Adapter.UserAgent,
			ProbeInterval:  time.Duration(jsonCfg.Adapter.ProbeInterval),
			ProbePath:      jsonCfg.Adapter.ProbePath,
		},
		Storage: Storage{
			DB:            DB{DSN: jsonCfg.Storage.DB.DSN},
			SessionSecret: jsonCfg.Storage.SessionSecret,
		},
		Workers: Workers{
			SyncInterval:   time.Duration(jsonCfg.Workers.SyncInterval),
			MaxConcurrency: jsonCfg.Workers.MaxConcurrency,
			MaxAttempts:    jsonCfg.Workers.MaxAttempts,
			BackoffBase:    time.Duration(jsonCfg.Workers.BackoffBase),
			BackoffCap:     time.Duration(jsonCfg.Workers.BackoffCap),
			CompletedReset: time.Duration(jsonCfg.Workers.CompletedReset),
		},
		Server: Server{HTTPAddress: jsonCfg.Server.HTTPAddress},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
