package validators

import (
	"context"

	"github.com/MKhiriev/go-bank-clients/models"
)

// Field names accepted by [ClientValidator].
const (
	// FieldAccountNumber requires a non-empty account number.
	FieldAccountNumber = "account_number"
)

var defaultClientFields = []string{FieldAccountNumber}

// ClientValidator validates models.Client values. PIN, name, phone and
// balance are accepted as-is.
type ClientValidator struct {
}

func NewClientValidator() Validator {
	return &ClientValidator{}
}

// Validate accepts models.Client or *models.Client. Without fields every
// known rule is applied.
func (v *ClientValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Client:
		return v.validateClient(ctx, value, fields...)
	case *models.Client:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateClient(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ClientValidator) validateClient(_ context.Context, client models.Client, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultClientFields
	}

	for _, field := range fields {
		switch field {
		case FieldAccountNumber:
			if client.AccountNumber == "" {
				return ErrEmptyAccountNumber
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
