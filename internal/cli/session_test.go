package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/ledgerfield/internal/field"
	"github.com/Veraticus/ledgerfield/internal/fuzzy"
	"github.com/Veraticus/ledgerfield/internal/model"
)

func newTestSession(kind model.FieldKind, input string, out *bytes.Buffer) *Session {
	store := model.NewCatalog([]string{"Bank", "Cash"}, []string{"food", "travel"})
	matcher := fuzzy.NewMatcher(0)
	verifier := field.NewVerifier(matcher)

	return NewSession(SessionConfig{
		Validator: verifier,
		Stepper:   field.NewStepper(verifier),
		Store:     store,
		Autofill: func(buf string) string {
			return field.TagAutofill(buf, store, matcher)
		},
		Reader: strings.NewReader(input),
		Writer: out,
		Kind:   kind,
	})
}

func TestSession_Run(t *testing.T) {
	tests := []struct {
		name       string
		kind       model.FieldKind
		input      string
		wantBuffer string
		wantOutput []string
	}{
		{
			name:       "date validate and step",
			kind:       model.FieldDate,
			input:      "2023-01-05\n+\n+\n-\nq\n",
			wantBuffer: "2023-01-06",
			wantOutput: []string{"Date session", "Date: Accepted", `"2023-01-07"`},
		},
		{
			name:       "date step after partial correction",
			kind:       model.FieldDate,
			input:      "2023-1-5\n+\n+\n",
			wantBuffer: "2023-01-06",
			wantOutput: []string{`"2023-01-5"`, "Date: Failed to step due to invalid date format", `"2023-01-05"`},
		},
		{
			name:       "amount arithmetic",
			kind:       model.FieldAmount,
			input:      "2+3*4\n",
			wantBuffer: "14.00",
			wantOutput: []string{"Amount: Accepted", `"14.00"`},
		},
		{
			name:       "amount step from empty",
			kind:       model.FieldAmount,
			input:      "+",
			wantBuffer: "1.00",
			wantOutput: []string{`"1.00"`},
		},
		{
			name:       "method corrected and cycled",
			kind:       model.FieldTxMethod,
			input:      "bnk\n+\n",
			wantBuffer: "Cash",
			wantOutput: []string{"Tx Method:", `"Bank"`, `"Cash"`},
		},
		{
			name:       "tags suggestion",
			kind:       model.FieldTags,
			input:      "fod\n+\n",
			wantBuffer: "food",
			wantOutput: []string{"Did you mean food?", `"food"`},
		},
		{
			name:       "quit ignores remaining lines",
			kind:       model.FieldTxType,
			input:      "q\nincome\n",
			wantBuffer: "",
			wantOutput: []string{"Tx Type session"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			session := newTestSession(tt.kind, tt.input, &out)

			require.NoError(t, session.Run(context.Background()))

			assert.Equal(t, tt.wantBuffer, session.Buffer())
			for _, want := range tt.wantOutput {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestSession_Apply(t *testing.T) {
	t.Run("type cycles backwards", func(t *testing.T) {
		var out bytes.Buffer
		session := newTestSession(model.FieldTxType, "", &out)

		quit, err := session.Apply("Income")
		require.NoError(t, err)
		assert.False(t, quit)

		quit, err = session.Apply("-")
		require.NoError(t, err)
		assert.False(t, quit)
		assert.Equal(t, "Transfer", session.Buffer())
		assert.Contains(t, out.String(), "Tx Type: Accepted")
	})

	t.Run("stepping without methods", func(t *testing.T) {
		var out bytes.Buffer
		verifier := field.NewVerifier(nil)
		session := NewSession(SessionConfig{
			Validator: verifier,
			Stepper:   field.NewStepper(verifier),
			Store:     model.NewCatalog(nil, nil),
			Reader:    strings.NewReader(""),
			Writer:    &out,
			Kind:      model.FieldTxMethod,
		})

		_, err := session.Apply("+")
		require.NoError(t, err)
		assert.Contains(t, out.String(), model.ErrStepInvalidTxMethod.Message())
		assert.Empty(t, session.Buffer())
	})

	t.Run("rejected date", func(t *testing.T) {
		var out bytes.Buffer
		session := newTestSession(model.FieldDate, "", &out)

		_, err := session.Apply("2023-02-30")
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Date:")
		assert.NotContains(t, out.String(), "Accepted")
	})

	t.Run("unknown kind", func(t *testing.T) {
		var out bytes.Buffer
		session := newTestSession(model.FieldKind("color"), "", &out)

		_, err := session.Apply("red")
		assert.ErrorIs(t, err, model.ErrUnknownFieldKind)
	})

	t.Run("quit", func(t *testing.T) {
		var out bytes.Buffer
		session := newTestSession(model.FieldDate, "", &out)

		quit, err := session.Apply(" q ")
		require.NoError(t, err)
		assert.True(t, quit)
	})
}

func TestSession_RunCanceled(t *testing.T) {
	var out bytes.Buffer
	session := newTestSession(model.FieldDate, "", &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := session.Run(ctx)
	assert.ErrorIs(t, err, ErrInputCancelled)
}
