// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package validators

import (
	"context"
	"strings"

	"github.com/paulobof/sistema-bancario/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldName targets the client's full name.
	FieldName = "name"

	// FieldCPF targets the 11-digit CPF key.
	FieldCPF = "cpf"

	// FieldBirthDate targets the free-text birth date.
	FieldBirthDate = "birth_date"

	// FieldAddress targets the free-text address.
	FieldAddress = "address"
)

// ClientValidator implements the Validator interface for [models.Client].
//
// It supports both value and pointer receivers and allows optional
// field-level scoping via variadic field name arguments.
type ClientValidator struct {
}

// NewClientValidator constructs a new ClientValidator
// and returns it as the Validator interface.
func NewClientValidator() Validator {
	return &ClientValidator{}
}

// Validate dispatches validation based on the dynamic type of obj. Both the
// value and pointer forms of [models.Client] are accepted, as is a raw CPF
// string (validated as a CPF).
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// every field is validated.
func (v *ClientValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Client:
		return v.validateClient(ctx, value, fields...)
	case *models.Client:
		return v.validateClient(ctx, *value, fields...)

	case string:
		return v.validateCPF(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *ClientValidator) validateClient(_ context.Context, client models.Client, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldBirthDate, FieldCPF, FieldAddress}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if err := v.validateFullName(client.Name); err != nil {
				return err
			}
		case FieldCPF:
			if err := v.validateCPF(client.CPF); err != nil {
				return err
			}
		case FieldBirthDate:
			if strings.TrimSpace(client.BirthDate) == "" {
				return ErrBirthDateRequired
			}
		case FieldAddress:
			if strings.TrimSpace(client.Address) == "" {
				return ErrAddressRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateFullName requires at least two space-separated name parts
// (first and last name), mirroring the registration rule of the legacy
// system.
func (v *ClientValidator) validateFullName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}

	if len(strings.Fields(name)) < 2 {
		return ErrIncompleteName
	}

	return nil
}

// validateCPF requires exactly 11 numeric digits. No checksum validation is
// performed: the CPF is used purely as a unique client key.
func (v *ClientValidator) validateCPF(cpf string) error {
	if strings.TrimSpace(cpf) == "" {
		return ErrCPFRequired
	}

	if len(cpf) != 11 {
		return ErrMalformedCPF
	}

	for i := 0; i < len(cpf); i++ {
		if cpf[i] < '0' || cpf[i] > '9' {
			return ErrMalformedCPF
		}
	}

	return nil
}
