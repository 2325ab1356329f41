// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags for the
// optional configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version      string `json:"version"`
		SeedDemoData bool   `json:"seed_demo_data"`
	} `json:"app,omitempty"`

	Limits struct {
		MaxWithdrawals  int    `json:"max_withdrawals"`
		WithdrawalCap   int64  `json:"withdrawal_cap"`
		Agency          string `json:"agency"`
		WithdrawalReset string `json:"withdrawal_reset"`
	} `json:"limits,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
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
			Version:      jsonCfg.App.Version,
			SeedDemoData: jsonCfg.App.SeedDemoData,
		},
		Limits: Limits{
			MaxWithdrawals:  jsonCfg.Limits.MaxWithdrawals,
			WithdrawalCap:   jsonCfg.Limits.WithdrawalCap,
			Agency:          jsonCfg.Limits.Agency,
			WithdrawalReset: jsonCfg.Limits.WithdrawalReset,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
