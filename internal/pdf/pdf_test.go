package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageCount(out []byte) int {
	return bytes.Count(out, []byte("/Type /Page")) - bytes.Count(out, []byte("/Type /Pages"))
}

func TestSanitize(t *testing.T) {
	in := "range 1–2, pause — it’s fine"
	out := sanitize(in)

	assert.Equal(t, "range 1-2, pause - it's fine", out)
	for _, r := range []rune{'–', '—', '’'} {
		assert.NotContains(t, out, string(r))
	}
}

func TestRender_SinglePage(t *testing.T) {
	out, err := Render("# Title\n\nBody text with – dash", "Acme", "GRI")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.GreaterOrEqual(t, pageCount(out), 1)
}

func TestRender_PageBreaks(t *testing.T) {
	var markup strings.Builder
	markup.WriteString("# Long Report\n\n")
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&markup, "Paragraph %d with enough text to take a full line on the page and then some more.\n\n", i)
	}

	out, err := Render(markup.String(), "Acme", "GRI")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pageCount(out), 2)
}

func TestRender_HeadingLevelsAndEmphasis(t *testing.T) {
	markup := "# Top\n## Mid\n### Deep\n#### Deeper\nBody with **bold** words.\n"
	out, err := Render(markup, "Acme", "CSRD")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRender_OutOfRangeRunesAreSubstituted(t *testing.T) {
	// CJK falls outside the single-byte encoding; it must degrade, not fail.
	out, err := Render("# 報告\n\n本文 text", "Acme", "GRI")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFilename(t *testing.T) {
	name := Filename("Acme", "GRI")
	assert.Equal(t, fmt.Sprintf("%d Acme - GRI Report.pdf", time.Now().Year()), name)
}
