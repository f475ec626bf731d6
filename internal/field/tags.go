package field

import (
	"strings"

	"github.com/Veraticus/ledgerfield/internal/model"
)

const tagSeparator = ", "

// NormalizeTags trims every comma separated tag, drops empty ones and removes
// exact duplicates, keeping the first occurrence.
func (v *Verifier) NormalizeTags(buf *string) {
	*buf = strings.Join(uniqueTags(splitTags(*buf)), tagSeparator)
}

// VerifyTags normalizes the buffer and keeps only tags the store knows.
// Tags matching a stored tag in a different case take the stored casing. The
// outcome is Accepted only when no tag had to be dropped.
func (v *Verifier) VerifyTags(buf *string, store Store) model.Outcome {
	if *buf == "" {
		return model.Empty(model.FieldTags)
	}

	known := store.Tags()
	tokens := splitTags(*buf)
	for i, token := range tokens {
		if indexOf(known, token) >= 0 {
			continue
		}
		if idx := indexFold(known, token); idx >= 0 {
			tokens[i] = known[idx]
		}
	}
	unique := uniqueTags(tokens)
	if len(unique) == 0 {
		*buf = ""
		return model.Empty(model.FieldTags)
	}

	kept := make([]string, 0, len(unique))
	for _, tag := range unique {
		if indexOf(known, tag) >= 0 {
			kept = append(kept, tag)
		}
	}
	*buf = strings.Join(kept, tagSeparator)

	if len(kept) != len(unique) {
		return model.Rejected(model.FieldTags, model.ReasonNonExistingTag)
	}
	return model.Accepted(model.FieldTags)
}

// StepTags replaces the last tag of the list with the next or previous
// stored tag. Earlier tags are left untouched. A trailing empty segment gets
// the first stored tag; an unknown last tag is replaced by autofill and
// reported as a failure.
func (s *FieldStepper) StepTags(buf *string, autofill string, dir model.Direction, store Store) error {
	known := store.Tags()

	if *buf == "" {
		if len(known) == 0 {
			return model.ErrStepInvalidTags
		}
		*buf = known[0]
		return nil
	}

	segments := strings.Split(*buf, ",")
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}
	last := segments[len(segments)-1]
	segments = segments[:len(segments)-1]

	idx := indexFold(known, last)
	switch {
	case idx >= 0:
		segments = append(segments, known[cycle(idx, len(known), dir)])
	case last == "":
		if len(known) > 0 {
			segments = append(segments, known[0])
		}
	default:
		*buf = strings.Join(append(segments, autofill), tagSeparator)
		return model.ErrStepInvalidTags
	}

	*buf = strings.Join(segments, tagSeparator)
	return nil
}

// TagAutofill suggests the stored tag closest to the last segment of buf.
// It returns "" when there is nothing to suggest.
func TagAutofill(buf string, store Store, matcher Matcher) string {
	known := store.Tags()
	if matcher == nil || len(known) == 0 {
		return ""
	}
	segments := strings.Split(buf, ",")
	last := strings.TrimSpace(segments[len(segments)-1])
	if last == "" {
		return ""
	}
	suggestion := matcher.BestMatch(last, known)
	if indexOf(known, suggestion) < 0 {
		return ""
	}
	return suggestion
}

func splitTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func uniqueTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	unique := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		unique = append(unique, tag)
	}
	return unique
}
