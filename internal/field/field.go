// Package field validates and steps the text buffers of a transaction form.
//
// Every validator takes a pointer to the caller's buffer, may rewrite it
// toward a canonical form, and returns a model.Outcome. Steppers run the
// validator for the same field first and then move the buffer to the next or
// previous valid value. Nothing in this package keeps state between calls or
// performs I/O; the known methods and tags arrive through Store.
package field

import "github.com/Veraticus/ledgerfield/internal/model"

// Store is the read-only view of known transaction methods and tags.
type Store interface {
	TxMethods() []string
	Tags() []string
}

// Matcher finds the candidate closest to a query.
type Matcher interface {
	BestMatch(query string, candidates []string) string
}

// Validator normalizes and classifies field buffers.
type Validator interface {
	VerifyDate(buf *string) model.Outcome
	VerifyAmount(buf *string) model.Outcome
	VerifyTxMethod(buf *string, store Store) model.Outcome
	VerifyTxType(buf *string) model.Outcome
	// NormalizeTags trims and deduplicates a tag list without consulting the store.
	NormalizeTags(buf *string)
	VerifyTags(buf *string, store Store) model.Outcome
}

// Stepper moves field buffers to their next or previous valid value.
type Stepper interface {
	StepDate(buf *string, dir model.Direction) error
	StepAmount(buf *string, dir model.Direction) error
	StepTxMethod(buf *string, dir model.Direction, store Store) error
	StepTxType(buf *string, dir model.Direction) error
	StepTags(buf *string, autofill string, dir model.Direction, store Store) error
}

// Verifier is the default Validator.
type Verifier struct {
	matcher Matcher
}

// NewVerifier creates a Verifier that corrects unknown methods with matcher.
// A nil matcher leaves unknown methods as typed.
func NewVerifier(matcher Matcher) *Verifier {
	return &Verifier{matcher: matcher}
}

// FieldStepper is the default Stepper. It delegates validation to the
// Validator it holds.
type FieldStepper struct {
	validator Validator
}

// NewStepper creates a FieldStepper on top of validator.
func NewStepper(validator Validator) *FieldStepper {
	return &FieldStepper{validator: validator}
}

var (
	_ Validator = (*Verifier)(nil)
	_ Stepper   = (*FieldStepper)(nil)
)

// cycle returns the index after i (Increase) or before it (Decrease) in a
// list of n items, wrapping at both ends.
func cycle(i, n int, dir model.Direction) int {
	if dir == model.Decrease {
		return (i + n - 1) % n
	}
	return (i + 1) % n
}
