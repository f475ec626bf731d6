package field

import (
	"strings"

	"github.com/Veraticus/ledgerfield/internal/model"
)

// VerifyTxType expands a buffer to Income, Expense or Transfer from its first
// letter. Anything else clears the buffer.
func (v *Verifier) VerifyTxType(buf *string) model.Outcome {
	*buf = strings.ReplaceAll(*buf, " ", "")
	if *buf == "" {
		return model.Empty(model.FieldTxType)
	}

	idx := txTypeIndex(*buf)
	if idx < 0 {
		*buf = ""
		return model.Rejected(model.FieldTxType, model.ReasonInvalidTxType)
	}
	*buf = model.TxTypes[idx]
	return model.Accepted(model.FieldTxType)
}

// StepTxType cycles through Income, Expense and Transfer. An empty buffer
// becomes Income whatever the direction.
func (s *FieldStepper) StepTxType(buf *string, dir model.Direction) error {
	outcome := s.validator.VerifyTxType(buf)

	if *buf == "" {
		*buf = model.TxTypeIncome
		return nil
	}

	idx := txTypeIndex(*buf)
	if idx < 0 {
		idx = 0
	}
	*buf = model.TxTypes[cycle(idx, len(model.TxTypes), dir)]

	if outcome.IsRejected() {
		return model.ErrStepInvalidTxType
	}
	return nil
}

// txTypeIndex maps the first letter of s to its position in model.TxTypes,
// or -1.
func txTypeIndex(s string) int {
	switch strings.ToLower(s[:1]) {
	case "i":
		return 0
	case "e":
		return 1
	case "t":
		return 2
	}
	return -1
}
