// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package config

import "flag"

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN (SQLite; default ":memory:")
//	-c/-config json file path with configs
//	-seed seed demo clients and accounts at startup
//	-agency agency code stamped on new accounts
//	-max-withdrawals maximum withdrawals per reset period
//	-withdrawal-cap maximum amount per withdrawal, in centavos
//	-withdrawal-reset withdrawal counter reset policy (daily|lifetime)
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var seedDemoData bool
	var agency string
	var maxWithdrawals int
	var withdrawalCap int64
	var withdrawalReset string

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.BoolVar(&seedDemoData, "seed", false, "Seed demo clients and accounts")
	flag.StringVar(&agency, "agency", "", "Agency code")
	flag.IntVar(&maxWithdrawals, "max-withdrawals", 0, "Max withdrawals per reset period")
	flag.Int64Var(&withdrawalCap, "withdrawal-cap", 0, "Max amount per withdrawal (centavos)")
	flag.StringVar(&withdrawalReset, "withdrawal-reset", "", "Withdrawal counter reset policy (daily|lifetime)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SeedDemoData: seedDemoData,
		},
		Limits: Limits{
			MaxWithdrawals:  maxWithdrawals,
			WithdrawalCap:   withdrawalCap,
			Agency:          agency,
			WithdrawalReset: withdrawalReset,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
