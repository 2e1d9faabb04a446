package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProgress_ClampsInput(t *testing.T) {
	assert.Contains(t, RenderProgress(-0.5, 10), "  0%")
	assert.Contains(t, RenderProgress(2.0, 10), "100%")

	full := RenderProgress(1, 10)
	assert.Equal(t, 10, strings.Count(full, filledBlock))
	assert.Equal(t, 0, strings.Count(full, emptyBlock))

	half := RenderProgress(0.5, 10)
	assert.Equal(t, 5, strings.Count(half, filledBlock))
	assert.Equal(t, 5, strings.Count(half, emptyBlock))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(3, 0))
	assert.Equal(t, 0.0, Ratio(0, 10))
	assert.Equal(t, 0.5, Ratio(5, 10))
	assert.Equal(t, 1.0, Ratio(10, 10))
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Title"},
		[][]string{
			{"1", "short"},
			{"22", "a much longer title"},
		},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header, separator, two rows")

	// Both data rows start their second column at the same offset.
	assert.Equal(t, strings.Index(lines[2], "short"), strings.Index(lines[3], "a much"))
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestRenderTable_ShortRowPadsMissingCells(t *testing.T) {
	out := RenderTable([]string{"A", "B", "C"}, [][]string{{"only"}})
	assert.Contains(t, out, "only")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0f52a1b3", ShortID("0f52a1b3-dead-beef-cafe-000000000000"))
	assert.Equal(t, "abc", ShortID("abc"))
}

func TestTimestamp_ZeroIsNone(t *testing.T) {
	assert.Equal(t, None, Timestamp(0))
	assert.NotEqual(t, None, Timestamp(1700000000000))
}

func TestScoreColor(t *testing.T) {
	assert.Equal(t, StyleGreen, ScoreColor(10))
	assert.Equal(t, StyleGreen, ScoreColor(7))
	assert.Equal(t, StyleYellow, ScoreColor(6))
	assert.Equal(t, StyleYellow, ScoreColor(4))
	assert.Equal(t, StyleRed, ScoreColor(3))
	assert.Equal(t, StyleRed, ScoreColor(1))
}

func TestRenderBox_ContainsTitleAndContent(t *testing.T) {
	out := RenderBox("scores", "profit 6")
	assert.Contains(t, out, "SCORES")
	assert.Contains(t, out, "profit 6")
}
