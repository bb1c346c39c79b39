// Package biosvg generates SVG captchas: a random answer string plus a
// stroke-only vector image of that string, distorted and mixed with noise
// strokes. All transforms are baked into absolute coordinates; the output
// contains no raster pixels and has a transparent background.
//
// Usage:
//
//	answer, svg, err := biosvg.NewBuilder().
//		Length(4).
//		Difficulty(6).
//		Colors([]string{"#0078D6", "#aa3333", "#f08012", "#33aa00", "#aa33aa"}).
//		Build()
package biosvg

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Builder configures captcha generation. Set at least Length and two
// Colors; a Builder is single-use state-free, so one value may serve any
// number of Build calls.
type Builder struct {
	length     int
	difficulty int
	colors     []string
	rng        *rand.Rand
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Length sets the number of answer characters. Must be at least 1.
func (b *Builder) Length(length int) *Builder {
	b.length = length
	return b
}

// Difficulty controls visual clutter: difficulty-1 noise strokes are drawn.
func (b *Builder) Difficulty(difficulty int) *Builder {
	b.difficulty = difficulty
	return b
}

// Colors sets the palette shared between glyphs and noise strokes. At least
// two colors are required; four or more give better variety. The image has
// a transparent background, so pick colors that read well on yours.
func (b *Builder) Colors(colors []string) *Builder {
	b.colors = colors
	return b
}

// Rand injects the random source used by Build. Tests use this for
// reproducible output; when unset, every Build seeds its own source, so
// concurrent callers never share random state.
func (b *Builder) Rand(rng *rand.Rand) *Builder {
	b.rng = rng
	return b
}

// Build generates the answer text and its SVG image document.
func (b *Builder) Build() (answer, svg string, err error) {
	if b.length < 1 {
		return "", "", fmt.Errorf("%w: length must be at least 1", ErrConfig)
	}
	if len(b.colors) < 2 {
		return "", "", fmt.Errorf("%w: need at least 2 colors, got %d", ErrConfig, len(b.colors))
	}
	rng := b.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	table := []rune(fontTable)
	runes := make([]rune, b.length)
	for i := range runes {
		runes[i] = table[rng.Intn(len(table))]
	}
	answer = string(runes)

	charColors, lineColors := splitPalette(b.colors, rng)

	// per-glyph random stylization: color, scale, small rotation, jitter
	var glyphs []Path
	for _, ch := range runes {
		glyph, ok := fontPaths[ch]
		if !ok {
			continue
		}
		angle := -0.2 + 0.4*rng.Float64()
		jitter := 0.1 * glyph.Width * rng.Float64()
		color := charColors[rng.Intn(len(charColors))]
		scaleX := 0.8 + 0.4*rng.Float64()
		scaleY := 0.8 + 0.4*rng.Float64()
		glyphs = append(glyphs, glyph.
			WithColor(color).
			Scale(scaleX, scaleY).
			Rotate(angle).
			Offset(jitter, 0))
	}

	var width, maxHeight float64
	for _, g := range glyphs {
		width += g.Width
		if g.Height > maxHeight {
			maxHeight = g.Height
		}
	}
	width += 1.5 * maxHeight
	height := 1.5 * maxHeight

	// left-to-right layout, then fragmentation into broken strokes
	var paths []Path
	cursor := 0.55 * maxHeight
	for _, g := range glyphs {
		placed := g.Offset(cursor+g.Width/2, height/2)
		paths = append(paths, placed.RandomSplit(rng)...)
		cursor += g.Width + 0.4*maxHeight/float64(b.length)
	}

	for i := 1; i < b.difficulty; i++ {
		startX := rng.Float64() * width
		startY := rng.Float64() * height
		endX := startX + rng.Float64()*maxHeight
		endY := startY + rng.Float64()*maxHeight
		paths = append(paths, Path{
			Commands: []Command{
				{X: startX, Y: startY, Type: Move},
				{X: endX, Y: endY, Type: LineTo},
			},
			Width:  width,
			Height: maxHeight,
			Color:  lineColors[rng.Intn(len(lineColors))],
		})
	}

	// interleave glyph fragments and noise so draw order reveals nothing
	rng.Shuffle(len(paths), func(i, j int) {
		paths[i], paths[j] = paths[j], paths[i]
	})

	var content strings.Builder
	for _, p := range paths {
		content.WriteString(p.String())
	}
	svg = fmt.Sprintf(
		`<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg" version="1.1">%s</svg>`,
		ftoa(width), ftoa(height), ftoa(width), ftoa(height), content.String())
	return answer, svg, nil
}

// splitPalette deals colors into a glyph bucket and a noise bucket by coin
// flip, holding the last color back for whichever bucket came up short, so
// both buckets are non-empty for any palette of two or more colors.
func splitPalette(colors []string, rng *rand.Rand) (charColors, lineColors []string) {
	last := colors[len(colors)-1]
	for _, color := range colors[:len(colors)-1] {
		if rng.Intn(2) == 0 {
			charColors = append(charColors, color)
		} else {
			lineColors = append(lineColors, color)
		}
	}
	if len(charColors) > len(lineColors) {
		lineColors = append(lineColors, last)
	} else {
		charColors = append(charColors, last)
	}
	return charColors, lineColors
}
