package biosvg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontTableCoverage(t *testing.T) {
	for _, ch := range fontTable {
		glyph, ok := fontPaths[ch]
		require.True(t, ok, "glyph %q missing from fontPaths", ch)
		assert.GreaterOrEqual(t, len(glyph.Commands), 3, "glyph %q", ch)
		assert.Greater(t, glyph.Width, 0.0, "glyph %q", ch)
		assert.Greater(t, glyph.Height, 0.0, "glyph %q", ch)
		assert.Equal(t, Move, glyph.Commands[0].Type, "glyph %q", ch)
	}
	assert.Len(t, fontPaths, len(fontTable))
}

func TestFontGlyphsAreCentered(t *testing.T) {
	for _, ch := range fontTable {
		glyph := fontPaths[ch]
		minX, maxX, minY, maxY := bounds(glyph)
		assert.InDelta(t, 0, minX+maxX, eps, "glyph %q x", ch)
		assert.InDelta(t, 0, minY+maxY, eps, "glyph %q y", ch)
	}
}
