package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	var out bytes.Buffer
	bar := NewProgressBar(&out, 3, "Importing catalog...")

	advance := ProgressFunc(bar)
	for range 3 {
		advance()
	}

	assert.True(t, bar.IsFinished())
	assert.Contains(t, out.String(), "Importing catalog...")
	assert.Contains(t, out.String(), "3/3")
}
