package field

import (
	"strconv"
	"strings"

	"github.com/Veraticus/ledgerfield/internal/model"
)

// Amount limits.
const (
	MaxAmount = 9999999999.99

	maxAmountDigits = 10
	amountStep      = 1.0
)

// VerifyAmount checks a monetary amount, evaluating any arithmetic it
// contains, and rewrites it with exactly two decimals.
func (v *Verifier) VerifyAmount(buf *string) model.Outcome {
	if *buf == "" {
		return model.Empty(model.FieldAmount)
	}

	*buf = keepRunes(*buf, func(r rune) bool {
		return isDigit(r) || r == '.' || (r < 0x80 && isCalcSymbol(byte(r)))
	})
	if *buf == "" {
		return model.Rejected(model.FieldAmount, model.ReasonParsingError)
	}

	if hasCalcSymbol(*buf) {
		result, err := evaluate(*buf)
		if err != nil {
			return model.Rejected(model.FieldAmount, model.ReasonParsingError)
		}
		*buf = result
	}

	if whole, frac, ok := strings.Cut(*buf, "."); ok {
		if frac == "" {
			*buf = whole + ".00"
		}
	} else {
		*buf += ".00"
	}

	value, err := strconv.ParseFloat(*buf, 64)
	if err != nil {
		return model.Rejected(model.FieldAmount, model.ReasonParsingError)
	}

	if value <= 0 {
		*buf = strconv.FormatFloat(value-value*2, 'f', 2, 64)
		return model.Rejected(model.FieldAmount, model.ReasonAmountBelowZero)
	}

	whole, frac, _ := strings.Cut(*buf, ".")
	switch {
	case len(frac) < 2:
		frac += "0"
	case len(frac) > 2:
		frac = frac[:2]
	}
	if whole = strings.TrimLeft(whole, "0"); whole == "" {
		whole = "0"
	}
	if len(whole) > maxAmountDigits {
		whole = whole[:maxAmountDigits]
	}
	*buf = whole + "." + frac

	// Truncation can leave nothing but zeros, e.g. "0.001".
	if value, err = strconv.ParseFloat(*buf, 64); err != nil || value <= 0 {
		*buf = "0.00"
		return model.Rejected(model.FieldAmount, model.ReasonAmountBelowZero)
	}

	return model.Accepted(model.FieldAmount)
}

// StepAmount adds or subtracts one from an accepted amount, staying within
// [0, MaxAmount]. An empty buffer, or an amount corrected from below zero
// when increasing, becomes 1.00.
func (s *FieldStepper) StepAmount(buf *string, dir model.Direction) error {
	outcome := s.validator.VerifyAmount(buf)

	switch outcome.Status {
	case model.StatusEmpty:
		*buf = "1.00"
		return nil
	case model.StatusRejected:
		if outcome.Reason != model.ReasonAmountBelowZero {
			return model.ErrStepInvalidAmount
		}
		if dir == model.Increase {
			*buf = "1.00"
		}
		return nil
	}

	current, err := strconv.ParseFloat(*buf, 64)
	if err != nil {
		return model.ErrStepUnknownAmountState
	}

	switch dir {
	case model.Increase:
		if current+amountStep <= MaxAmount {
			current += amountStep
		}
	case model.Decrease:
		if current-amountStep >= 0 {
			current -= amountStep
		}
	}

	*buf = strconv.FormatFloat(current, 'f', 2, 64)
	return nil
}
