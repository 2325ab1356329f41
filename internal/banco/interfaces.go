// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package banco

// Runner defines the minimal lifecycle contract for runnable terminal
// applications.
type Runner interface {
	// Run starts the application and blocks until exit.
	Run() error
}
