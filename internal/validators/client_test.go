package validators

import (
	"context"
	"testing"

	"github.com/paulobof/sistema-bancario/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClient() models.Client {
	return models.Client{
		CPF:       "11122233344",
		Name:      "Pedro Souza Lima",
		BirthDate: "08/12/1978",
		Address:   "Praça da Liberdade - 789 - Centro - Belo Horizonte/MG",
	}
}

func TestClientValidator_ValidClient(t *testing.T) {
	v := NewClientValidator()

	require.NoError(t, v.Validate(context.Background(), validClient()))
}

func TestClientValidator_PointerClient(t *testing.T) {
	v := NewClientValidator()
	client := validClient()

	require.NoError(t, v.Validate(context.Background(), &client))
}

func TestClientValidator_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Client)
		wantErr error
	}{
		{"empty name", func(c *models.Client) { c.Name = "" }, ErrNameRequired},
		{"single name token", func(c *models.Client) { c.Name = "Pedro" }, ErrIncompleteName},
		{"empty cpf", func(c *models.Client) { c.CPF = "" }, ErrCPFRequired},
		{"short cpf", func(c *models.Client) { c.CPF = "123" }, ErrMalformedCPF},
		{"long cpf", func(c *models.Client) { c.CPF = "111222333445" }, ErrMalformedCPF},
		{"non numeric cpf", func(c *models.Client) { c.CPF = "1112223334a" }, ErrMalformedCPF},
		{"empty birth date", func(c *models.Client) { c.BirthDate = "  " }, ErrBirthDateRequired},
		{"empty address", func(c *models.Client) { c.Address = "" }, ErrAddressRequired},
	}

	v := NewClientValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := validClient()
			tt.mutate(&client)

			err := v.Validate(context.Background(), client)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientValidator_FieldScoping(t *testing.T) {
	v := NewClientValidator()
	client := validClient()
	client.Address = ""

	// scoped to CPF only, the empty address must not be reported
	require.NoError(t, v.Validate(context.Background(), client, FieldCPF))
	assert.ErrorIs(t, v.Validate(context.Background(), client, FieldAddress), ErrAddressRequired)
}

func TestClientValidator_RawCPFString(t *testing.T) {
	v := NewClientValidator()

	require.NoError(t, v.Validate(context.Background(), "12345678901"))
	assert.ErrorIs(t, v.Validate(context.Background(), "123"), ErrMalformedCPF)
}

func TestClientValidator_UnsupportedType(t *testing.T) {
	v := NewClientValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestClientValidator_UnknownField(t *testing.T) {
	v := NewClientValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), validClient(), "phone"), ErrUnknownField)
}
