// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package config

// Withdrawal-count reset policies accepted by [Limits.WithdrawalReset].
const (
	// ResetDaily counts only the withdrawals made since local midnight
	// against the withdrawal cap.
	ResetDaily = "daily"

	// ResetLifetime counts every withdrawal ever made on the account,
	// reproducing the behavior of the legacy system (which never reset
	// the counter).
	ResetLifetime = "lifetime"
)

// StructuredConfig is the top-level configuration container for the
// sistema-bancario application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string
	// and the demo-data seed toggle.
	App App `envPrefix:"APP_"`

	// Limits holds the business-rule constants of the ledger: the
	// withdrawal caps and the agency code.
	Limits Limits `envPrefix:"LIMITS_"`

	// Storage holds configuration for the session store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown in the version overlay.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// SeedDemoData enables seeding of the demo clients and accounts at
	// startup. Off by default.
	// Env: APP_SEED_DEMO_DATA
	SeedDemoData bool `env:"SEED_DEMO_DATA"`
}

// Limits holds the configurable business-rule constants applied by the
// account ledger.
type Limits struct {
	// MaxWithdrawals is the maximum number of withdrawals allowed per
	// reset period. Default: 3.
	// Env: LIMITS_MAX_WITHDRAWALS
	MaxWithdrawals int `env:"MAX_WITHDRAWALS"`

	// WithdrawalCap is the maximum amount of a single withdrawal, in
	// centavos. Default: 50000 (R$ 500,00).
	// Env: LIMITS_WITHDRAWAL_CAP
	WithdrawalCap int64 `env:"WITHDRAWAL_CAP"`

	// Agency is the fixed branch code stamped on every account.
	// Default: "0001".
	// Env: LIMITS_AGENCY
	Agency string `env:"AGENCY"`

	// WithdrawalReset selects when the withdrawal counter resets:
	// [ResetDaily] or [ResetLifetime]. Default: [ResetDaily].
	// Env: LIMITS_WITHDRAWAL_RESET
	WithdrawalReset string `env:"WITHDRAWAL_RESET"`
}

// Storage groups the configuration for the session store backend.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite session store.
type DB struct {
	// DSN is the SQLite Data Source Name. The default ":memory:" keeps
	// all state in process memory for the session, so nothing survives
	// process exit.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win; later sources fill remaining zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
