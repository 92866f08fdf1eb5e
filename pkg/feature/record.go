// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package feature

import (
	"fmt"
)

// Record is one customer's editable feature set. Every field is kept as the
// raw string the user entered; conversion happens only in ToPayload.
//
// Record has value semantics: Set returns a modified copy and never touches
// the receiver, so a record handed to a submission cannot change underneath it.
type Record struct {
	values map[string]string
}

// NewRecord creates a record populated with the form defaults.
func NewRecord() Record {
	return Record{values: DefaultValues()}
}

// NewRecordWithDefaults creates a record from the form defaults with the
// given overrides applied. Unknown fields are rejected.
func NewRecordWithDefaults(overrides map[string]string) (Record, error) {
	r := NewRecord()
	for field, value := range overrides {
		next, err := r.Set(field, value)
		if err != nil {
			return Record{}, err
		}
		r = next
	}
	return r, nil
}

// Set returns a copy of the record with field set to raw.
func (r Record) Set(field, raw string) (Record, error) {
	if !IsKnownField(field) {
		return r, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	values := r.Values()
	values[field] = raw
	return Record{values: values}, nil
}

// Get returns the raw value of field.
func (r Record) Get(field string) string {
	if r.values == nil {
		return DefaultValues()[field]
	}
	return r.values[field]
}

// Values returns a copy of all raw values keyed by field name.
func (r Record) Values() map[string]string {
	src := r.values
	if src == nil {
		src = DefaultValues()
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// CustomerID returns the parsed customer id, if the form holds a valid one.
func (r Record) CustomerID() (int64, bool) {
	return parseInteger(r.Get(FieldCustomerID))
}

// ToPayload converts the record into the typed request body expected by the
// prediction service. It fails with a *ValidationError naming the first
// numeric field that does not parse; nothing is coerced to zero.
//
// Gender and marital status are capitalized; the other categorical values
// are passed through unchanged. ToPayload has no side effects.
func (r Record) ToPayload() (Payload, error) {
	p := Payload{
		Gender:                 capitalize(r.Get(FieldGender)),
		MaritalStatus:          capitalize(r.Get(FieldMaritalStatus)),
		PaymentMode:            r.Get(FieldPaymentMode),
		PreferredLoginDevice:   r.Get(FieldPreferredLoginDevice),
		PreferredOrderCategory: r.Get(FieldPreferredOrderCategory),
	}

	for _, field := range NumericFields {
		raw := r.Get(field)

		if field == FieldCustomerID {
			if raw == "" {
				continue
			}
			id, ok := parseInteger(raw)
			if !ok {
				return Payload{}, &ValidationError{Field: field, Value: raw}
			}
			p.CustomerID = &id
			continue
		}

		v, ok := parseDecimal(raw)
		if !ok {
			return Payload{}, &ValidationError{Field: field, Value: raw}
		}
		*p.numeric(field) = v
	}

	return p, nil
}
