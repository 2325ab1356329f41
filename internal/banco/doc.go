// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

// Package banco implements the interactive banking application runtime.
//
// It wires configuration, storage, services and the terminal UI into a
// single process lifecycle.
package banco
