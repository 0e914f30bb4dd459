// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-bank-clients/models"
	"github.com/stretchr/testify/assert"
)

func TestClientValidator_Validate(t *testing.T) {
	v := NewClientValidator()
	ctx := context.Background()
	valid := models.Client{AccountNumber: "A100"}

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid value", obj: valid},
		{name: "valid pointer", obj: &valid},
		{name: "empty fields are accepted", obj: models.Client{AccountNumber: "A1", Balance: -5}},
		{name: "empty account number", obj: models.Client{Name: "Nobody"}, wantErr: ErrEmptyAccountNumber},
		{name: "explicit field", obj: models.Client{}, fields: []string{FieldAccountNumber}, wantErr: ErrEmptyAccountNumber},
		{name: "whitespace account number is kept", obj: models.Client{AccountNumber: " "}},
		{name: "unknown field", obj: valid, fields: []string{"pin"}, wantErr: ErrUnknownField},
		{name: "nil pointer", obj: (*models.Client)(nil), wantErr: ErrUnsupportedType},
		{name: "unsupported type", obj: "A100", wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
