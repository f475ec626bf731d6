package field

import (
	"strings"

	"github.com/Veraticus/ledgerfield/internal/model"
)

// VerifyTxMethod accepts a buffer naming a known method, ignoring case, and
// rewrites it with the store's casing. Unknown names are replaced with the
// closest known method and rejected.
func (v *Verifier) VerifyTxMethod(buf *string, store Store) model.Outcome {
	*buf = strings.TrimSpace(*buf)
	if *buf == "" {
		return model.Empty(model.FieldTxMethod)
	}

	methods := store.TxMethods()
	for _, method := range methods {
		if strings.EqualFold(method, *buf) {
			*buf = method
			return model.Accepted(model.FieldTxMethod)
		}
	}

	if v.matcher != nil {
		*buf = v.matcher.BestMatch(*buf, methods)
	}
	return model.Rejected(model.FieldTxMethod, model.ReasonInvalidTxMethod)
}

// StepTxMethod moves to the next or previous method in store order, wrapping
// at both ends. An empty buffer becomes the first method.
func (s *FieldStepper) StepTxMethod(buf *string, dir model.Direction, store Store) error {
	methods := store.TxMethods()
	outcome := s.validator.VerifyTxMethod(buf, store)

	switch outcome.Status {
	case model.StatusRejected:
		return model.ErrStepInvalidTxMethod
	case model.StatusEmpty:
		if len(methods) == 0 {
			return model.ErrStepInvalidTxMethod
		}
		*buf = methods[0]
		return nil
	}

	idx := indexOf(methods, *buf)
	if idx < 0 {
		return model.ErrStepInvalidTxMethod
	}
	*buf = methods[cycle(idx, len(methods), dir)]
	return nil
}

func indexOf(list []string, s string) int {
	for i, item := range list {
		if item == s {
			return i
		}
	}
	return -1
}

// indexFold is indexOf ignoring case.
func indexFold(list []string, s string) int {
	for i, item := range list {
		if strings.EqualFold(item, s) {
			return i
		}
	}
	return -1
}
