// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

// Package utils provides general-purpose helper utilities used across
// different parts of the application: Brazilian currency formatting and
// parsing, and identifier generation for statement entries.
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatBRL renders an amount in centavos as Brazilian currency text,
// e.g. 123456 → "R$ 1.234,56". Thousands are separated by "." and the
// decimal separator is ",".
func FormatBRL(centavos int64) string {
	neg := centavos < 0
	if neg {
		centavos = -centavos
	}

	reais := strconv.FormatInt(centavos/100, 10)

	var b strings.Builder
	for i := 0; i < len(reais); i++ {
		if i > 0 && (len(reais)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(reais[i])
	}

	out := fmt.Sprintf("R$ %s,%02d", b.String(), centavos%100)
	if neg {
		return "-" + out
	}
	return out
}

// ParseBRL parses user-entered currency text into centavos.
//
// Accepted forms include "1234", "1234,56", "1234.56", "1.234,56" and an
// optional "R$ " prefix. A trailing group of one or two digits after the
// last "," or "." is taken as centavos; any other "." and "," are treated
// as thousands separators.
func ParseBRL(input string) (int64, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, fmt.Errorf("parse amount: empty input")
	}

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart := s, ""
	if i := strings.LastIndexAny(s, ",."); i >= 0 && len(s)-i-1 <= 2 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	intPart = strings.NewReplacer(".", "", ",", "").Replace(intPart)
	if intPart == "" {
		intPart = "0"
	}
	if !isDigits(intPart) || (fracPart != "" && !isDigits(fracPart)) {
		return 0, fmt.Errorf("parse amount %q: not a number", input)
	}

	reais, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", input, err)
	}

	centavos := reais * 100
	if fracPart != "" {
		if len(fracPart) == 1 {
			fracPart += "0"
		}
		frac, fracErr := strconv.ParseInt(fracPart, 10, 64)
		if fracErr != nil {
			return 0, fmt.Errorf("parse amount %q: %w", input, fracErr)
		}
		centavos += frac
	}

	if neg {
		centavos = -centavos
	}
	return centavos, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
