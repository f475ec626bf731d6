// Package model defines the core domain models used throughout the application.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFieldKind is returned when a field name does not map to a FieldKind.
var ErrUnknownFieldKind = errors.New("unknown field kind")

// FieldKind identifies which validator and stepper apply to an input buffer.
type FieldKind string

// Field kinds.
const (
	FieldDate     FieldKind = "date"
	FieldAmount   FieldKind = "amount"
	FieldTxMethod FieldKind = "tx_method"
	FieldTxType   FieldKind = "tx_type"
	FieldTags     FieldKind = "tags"
)

// FieldKinds lists every field kind in form order.
var FieldKinds = []FieldKind{FieldDate, FieldAmount, FieldTxMethod, FieldTxType, FieldTags}

// Label returns the prefix used in user-facing messages.
func (k FieldKind) Label() string {
	switch k {
	case FieldDate:
		return "Date"
	case FieldAmount:
		return "Amount"
	case FieldTxMethod:
		return "Tx Method"
	case FieldTxType:
		return "Tx Type"
	case FieldTags:
		return "Tags"
	default:
		return string(k)
	}
}

// ParseFieldKind resolves a user supplied field name.
func ParseFieldKind(name string) (FieldKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "date":
		return FieldDate, nil
	case "amount":
		return FieldAmount, nil
	case "tx_method", "tx-method", "method":
		return FieldTxMethod, nil
	case "tx_type", "tx-type", "type":
		return FieldTxType, nil
	case "tags", "tag":
		return FieldTags, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFieldKind, name)
}

// Direction is the way a stepper moves through the values of a field.
type Direction string

// Step directions.
const (
	Increase Direction = "increase"
	Decrease Direction = "decrease"
)
