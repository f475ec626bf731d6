package field

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/ledgerfield/internal/fuzzy"
	"github.com/Veraticus/ledgerfield/internal/model"
)

func TestVerifier_NormalizeTags(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: " a, b ,a,, c", want: "a, b, c"},
		{input: "food, Food", want: "food, Food"},
		{input: ",,", want: ""},
	}

	v := newTestVerifier()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			buf := tt.input
			v.NormalizeTags(&buf)
			assert.Equal(t, tt.want, buf)
		})
	}
}

func TestVerifier_VerifyTags(t *testing.T) {
	store := testStore(nil, []string{"food", "travel"})

	tests := []struct {
		name    string
		input   string
		want    string
		outcome model.Outcome
	}{
		{name: "empty", input: "", want: "", outcome: model.Empty(model.FieldTags)},
		{name: "separators only", input: " , ,", want: "", outcome: model.Empty(model.FieldTags)},
		{name: "known", input: "food, travel", want: "food, travel", outcome: model.Accepted(model.FieldTags)},
		{name: "case duplicate", input: "food, Food, travel", want: "food, travel", outcome: model.Accepted(model.FieldTags)},
		{name: "store casing", input: "TRAVEL", want: "travel", outcome: model.Accepted(model.FieldTags)},
		{name: "unknown dropped", input: "food, rent", want: "food", outcome: model.Rejected(model.FieldTags, model.ReasonNonExistingTag)},
		{name: "all unknown", input: "rent", want: "", outcome: model.Rejected(model.FieldTags, model.ReasonNonExistingTag)},
	}

	v := newTestVerifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.input
			got := v.VerifyTags(&buf, store)
			assert.Equal(t, tt.outcome, got)
			assert.Equal(t, tt.want, buf)

			if got.IsAccepted() {
				again := buf
				assert.True(t, v.VerifyTags(&again, store).IsAccepted())
				assert.Equal(t, buf, again)
			}
		})
	}
}

func TestFieldStepper_StepTags(t *testing.T) {
	store := testStore(nil, []string{"a", "b", "c"})

	tests := []struct {
		name     string
		input    string
		autofill string
		dir      model.Direction
		want     string
		wantErr  error
	}{
		{name: "next", input: "a", dir: model.Increase, want: "b"},
		{name: "previous wraps", input: "a", dir: model.Decrease, want: "c"},
		{name: "next wraps", input: "c", dir: model.Increase, want: "a"},
		{name: "case insensitive", input: "B", dir: model.Increase, want: "c"},
		{name: "only last segment", input: "x,a", dir: model.Increase, want: "x, b"},
		{name: "trailing comma", input: "b,", dir: model.Increase, want: "b, a"},
		{name: "empty", input: "", dir: model.Decrease, want: "a"},
		{name: "unknown uses autofill", input: "a, zz", autofill: "c", dir: model.Increase, want: "a, c", wantErr: model.ErrStepInvalidTags},
	}

	s := newTestStepper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.input
			err := s.StepTags(&buf, tt.autofill, tt.dir, store)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, buf)
		})
	}
}

func TestFieldStepper_StepTagsEmptyStore(t *testing.T) {
	s := newTestStepper()
	store := testStore(nil, nil)

	buf := ""
	assert.ErrorIs(t, s.StepTags(&buf, "", model.Increase, store), model.ErrStepInvalidTags)
	assert.Empty(t, buf)

	buf = "a,"
	assert.NoError(t, s.StepTags(&buf, "", model.Increase, store))
	assert.Equal(t, "a", buf)
}

func TestTagAutofill(t *testing.T) {
	store := testStore(nil, []string{"food", "travel"})
	matcher := fuzzy.NewMatcher(0)

	assert.Equal(t, "travel", TagAutofill("food, trav", store, matcher))
	assert.Equal(t, "food", TagAutofill("fod", store, matcher))
	assert.Empty(t, TagAutofill("food,", store, matcher))
	assert.Empty(t, TagAutofill("food", testStore(nil, nil), matcher))
	assert.Empty(t, TagAutofill("food", store, nil))
}
