package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameRequired      = errors.New("name is required")
	ErrIncompleteName    = errors.New("full name must contain first and last name")
	ErrCPFRequired       = errors.New("CPF is required")
	ErrMalformedCPF      = errors.New("CPF must be exactly 11 digits")
	ErrBirthDateRequired = errors.New("birth date is required")
	ErrAddressRequired   = errors.New("address is required")
)
