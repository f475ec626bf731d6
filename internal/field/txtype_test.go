package field

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/ledgerfield/internal/model"
)

func TestVerifier_VerifyTxType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		outcome model.Outcome
	}{
		{name: "empty", input: "", want: "", outcome: model.Empty(model.FieldTxType)},
		{name: "spaces only", input: "   ", want: "", outcome: model.Empty(model.FieldTxType)},
		{name: "expense prefix", input: "exp", want: "Expense", outcome: model.Accepted(model.FieldTxType)},
		{name: "income with spaces", input: " i n", want: "Income", outcome: model.Accepted(model.FieldTxType)},
		{name: "transfer upper", input: "T", want: "Transfer", outcome: model.Accepted(model.FieldTxType)},
		{name: "canonical", input: "Expense", want: "Expense", outcome: model.Accepted(model.FieldTxType)},
		{name: "unknown clears", input: "x", want: "", outcome: model.Rejected(model.FieldTxType, model.ReasonInvalidTxType)},
	}

	v := newTestVerifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.input
			assert.Equal(t, tt.outcome, v.VerifyTxType(&buf))
			assert.Equal(t, tt.want, buf)
		})
	}
}

func TestFieldStepper_StepTxType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		dir   model.Direction
		want  string
	}{
		{name: "empty increase", input: "", dir: model.Increase, want: "Income"},
		{name: "empty decrease", input: "", dir: model.Decrease, want: "Income"},
		{name: "income next", input: "Income", dir: model.Increase, want: "Expense"},
		{name: "income previous wraps", input: "Income", dir: model.Decrease, want: "Transfer"},
		{name: "transfer next wraps", input: "transfer", dir: model.Increase, want: "Income"},
		{name: "abbreviation previous", input: "exp", dir: model.Decrease, want: "Income"},
		{name: "unknown becomes income", input: "x", dir: model.Decrease, want: "Income"},
	}

	s := newTestStepper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.input
			assert.NoError(t, s.StepTxType(&buf, tt.dir))
			assert.Equal(t, tt.want, buf)
		})
	}
}

// rejectingValidator rejects every tx type without touching the buffer.
type rejectingValidator struct {
	*Verifier
}

func (rejectingValidator) VerifyTxType(_ *string) model.Outcome {
	return model.Rejected(model.FieldTxType, model.ReasonInvalidTxType)
}

func TestFieldStepper_StepTxTypeReportsRejection(t *testing.T) {
	s := NewStepper(rejectingValidator{newTestVerifier()})
	buf := "expense"

	err := s.StepTxType(&buf, model.Increase)

	assert.ErrorIs(t, err, model.ErrStepInvalidTxType)
	assert.Equal(t, "Transfer", buf)
}
