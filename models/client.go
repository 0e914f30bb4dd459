// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Client is a single bank client record.
//
// AccountNumber is the logical key of the record: a store holds at most one
// client per account number, and the value never changes once the record
// has been added. Every other field may be overwritten by an update.
type Client struct {
	// AccountNumber uniquely identifies the client inside a store.
	AccountNumber string `json:"account_number"`

	// PinCode is the client's PIN. It is stored and exported verbatim.
	PinCode string `json:"pin_code"`

	// Name is the client's display name.
	Name string `json:"name"`

	// Phone is the client's contact phone number in free form.
	Phone string `json:"phone"`

	// Balance is the account balance in whole currency units.
	// Negative values are accepted as-is.
	Balance int64 `json:"balance"`
}

// ClientFields holds the mutable part of a [Client]: everything except the
// account number.
type ClientFields struct {
	PinCode string
	Name    string
	Phone   string
	Balance int64
}

// Fields returns the mutable part of c.
func (c Client) Fields() ClientFields {
	return ClientFields{
		PinCode: c.PinCode,
		Name:    c.Name,
		Phone:   c.Phone,
		Balance: c.Balance,
	}
}

// WithFields returns a copy of c whose mutable fields are replaced by f.
// The account number is kept.
func (c Client) WithFields(f ClientFields) Client {
	c.PinCode = f.PinCode
	c.Name = f.Name
	c.Phone = f.Phone
	c.Balance = f.Balance
	return c
}
