// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultSyncInterval   = time.Hour
)

// validate normalises defaults and checks that the merged [StructuredConfig]
// can run the download pipeline.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = defaultSyncInterval
	}

	regions := make([]string, 0, len(cfg.Warnings.Regions))
	for _, r := range cfg.Warnings.Regions {
		if r = strings.ToUpper(strings.TrimSpace(r)); r != "" {
			regions = append(regions, r)
		}
	}
	cfg.Warnings.Regions = regions

	return nil
}

// Validate checks that every value needed at runtime is present.
func (cfg *StructuredConfig) Validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if len(cfg.Warnings.Regions) == 0 {
		return fmt.Errorf("%w: no regions configured", ErrInvalidWarningsConfigs)
	}
	for _, r := range cfg.Warnings.Regions {
		if len(r) != 2 {
			return fmt.Errorf("%w: region %q is not an ISO country code", ErrInvalidWarningsConfigs, r)
		}
	}
	if cfg.Warnings.PublicKeyPath == "" {
		return fmt.Errorf("%w: no package signing key", ErrInvalidWarningsConfigs)
	}

	return nil
}
