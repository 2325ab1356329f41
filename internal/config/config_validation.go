// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Limits.MaxWithdrawals <= 0 || cfg.Limits.WithdrawalCap <= 0 || cfg.Limits.Agency == "" {
		return ErrInvalidLimitsConfigs
	}

	if cfg.Limits.WithdrawalReset != ResetDaily && cfg.Limits.WithdrawalReset != ResetLifetime {
		return ErrInvalidLimitsConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
