// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged [StructuredConfig]. Group-level rules live on
// [ClientConfig]; here only values that are wrong regardless of the
// consumer are rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.MaxConcurrency < 0 || cfg.Workers.MaxAttempts < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.ProbeInterval <= 0 {
		return ErrInvalidAdapterConfigs
	}

	w := cfg.Workers
	if w.SyncInterval <= 0 || w.MaxConcurrency < 1 || w.MaxAttempts < 1 {
		return ErrInvalidWorkerConfigs
	}
	if w.BackoffBase <= 0 || w.BackoffCap < w.BackoffBase || w.CompletedReset < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
