// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package models

import "time"

// Client represents a registered bank client.
// A client is identified by CPF and is immutable after creation:
// the registry offers no update operation, only removal.
type Client struct {
	// CPF is the 11-digit numeric taxpayer identifier and the unique
	// key of the client. No checksum validation is performed.
	CPF string `json:"cpf"`

	// Name is the client's full name. Registration requires at least
	// a first and a last name.
	Name string `json:"name"`

	// BirthDate is the birth date as entered (free text, DD/MM/AAAA
	// by convention).
	BirthDate string `json:"birth_date"`

	// Address is the free-text postal address
	// (logradouro - nro - bairro - cidade/UF by convention).
	Address string `json:"address"`

	// CreatedAt is the timestamp when the client was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Client model.
func (c Client) TableName() string {
	return "clients"
}

// ClientSummary is a Client annotated with its current account count,
// as shown by the client listing.
type ClientSummary struct {
	Client

	// AccountCount is the number of accounts the client currently owns.
	AccountCount int `json:"account_count"`
}
