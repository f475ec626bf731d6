package field

import (
	"fmt"

	"github.com/Veraticus/ledgerfield/internal/model"
)

// Validate runs the validator for kind. Tags are checked against store.
func Validate(v Validator, kind model.FieldKind, buf *string, store Store) (model.Outcome, error) {
	switch kind {
	case model.FieldDate:
		return v.VerifyDate(buf), nil
	case model.FieldAmount:
		return v.VerifyAmount(buf), nil
	case model.FieldTxMethod:
		return v.VerifyTxMethod(buf, store), nil
	case model.FieldTxType:
		return v.VerifyTxType(buf), nil
	case model.FieldTags:
		return v.VerifyTags(buf, store), nil
	}
	return model.Outcome{}, fmt.Errorf("%w: %q", model.ErrUnknownFieldKind, kind)
}

// Step runs the stepper for kind. autofill is only used by tags.
func Step(s Stepper, kind model.FieldKind, buf *string, dir model.Direction, store Store, autofill string) error {
	switch kind {
	case model.FieldDate:
		return s.StepDate(buf, dir)
	case model.FieldAmount:
		return s.StepAmount(buf, dir)
	case model.FieldTxMethod:
		return s.StepTxMethod(buf, dir, store)
	case model.FieldTxType:
		return s.StepTxType(buf, dir)
	case model.FieldTags:
		return s.StepTags(buf, autofill, dir, store)
	}
	return fmt.Errorf("%w: %q", model.ErrUnknownFieldKind, kind)
}
