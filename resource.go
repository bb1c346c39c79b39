package biosvg

import "fmt"

// fontTable is the answer alphabet. Shapes that stay ambiguous after
// distortion (0/O, 1/I, J) are left out on purpose.
const fontTable = "23456789ABCDEFGHKLMNPQRSTUVWXYZ"

// glyphSources holds the digitized outline of every alphabet character as
// pen strokes over a 40x70 design box (y grows downwards), written in the
// `M x y L x y ...` source grammar understood by ParsePath. Curves are
// approximated with short segments so fragmentation has points to cut at.
var glyphSources = map[rune]string{
	'2': "M 4 18 L 8 8 L 20 4 L 32 8 L 36 18 L 33 30 L 18 44 L 4 58 L 4 66 L 36 66",
	'3': "M 5 14 L 12 5 L 26 4 L 34 11 L 34 23 L 25 32 L 16 33 L 25 35 L 35 44 L 35 56 L 26 65 L 12 66 L 4 58",
	'4': "M 28 66 L 28 4 L 4 46 L 38 46",
	'5': "M 34 4 L 8 4 L 6 32 L 18 28 L 28 30 L 35 38 L 36 50 L 30 61 L 18 66 L 6 62",
	'6': "M 32 8 L 22 4 L 12 8 L 6 20 L 4 38 L 6 54 L 14 65 L 26 65 L 34 57 L 35 45 L 28 36 L 16 36 L 7 44",
	'7': "M 4 4 L 36 4 L 22 36 L 14 66",
	'8': "M 20 4 L 9 9 L 7 20 L 13 30 L 20 33 L 28 36 L 34 44 L 34 56 L 27 65 L 13 65 L 6 56 L 6 44 L 12 36 L 20 33 L 27 30 L 33 20 L 31 9 L 20 4",
	'9': "M 33 32 L 21 34 L 10 30 L 5 20 L 8 9 L 18 4 L 28 5 L 34 14 L 36 32 L 34 50 L 28 62 L 18 66",
	'A': "M 4 66 L 16 30 L 20 4 L 24 30 L 36 66 M 10 48 L 30 48",
	'B': "M 6 4 L 6 66 M 6 4 L 24 4 L 32 10 L 32 26 L 24 33 L 6 33 M 24 33 L 33 40 L 33 58 L 24 66 L 6 66",
	'C': "M 36 14 L 28 5 L 16 4 L 7 12 L 4 28 L 4 42 L 7 58 L 16 66 L 28 65 L 36 56",
	'D': "M 6 4 L 6 66 M 6 4 L 22 4 L 32 12 L 36 28 L 36 42 L 32 58 L 22 66 L 6 66",
	'E': "M 34 4 L 6 4 L 6 33 L 26 33 M 6 33 L 6 66 L 34 66",
	'F': "M 34 4 L 6 4 L 6 33 L 26 33 M 6 33 L 6 66",
	'G': "M 36 12 L 26 4 L 14 5 L 6 14 L 4 30 L 4 44 L 7 58 L 16 66 L 28 65 L 36 58 L 36 40 L 24 40",
	'H': "M 6 4 L 6 66 M 34 4 L 34 66 M 6 34 L 34 34",
	'K': "M 6 4 L 6 66 M 34 4 L 6 38 M 14 28 L 36 66",
	'L': "M 6 4 L 6 66 L 35 66",
	'M': "M 4 66 L 6 4 L 20 42 L 34 4 L 36 66",
	'N': "M 5 66 L 5 4 L 35 66 L 35 4",
	'P': "M 6 66 L 6 4 L 26 4 L 34 10 L 34 28 L 26 35 L 6 35",
	'Q': "M 20 4 L 9 8 L 4 22 L 4 46 L 9 61 L 20 66 L 31 61 L 36 46 L 36 22 L 31 8 L 20 4 M 24 50 L 38 68",
	'R': "M 6 66 L 6 4 L 26 4 L 34 10 L 34 27 L 26 34 L 6 34 M 20 34 L 36 66",
	'S': "M 34 12 L 24 4 L 12 5 L 5 13 L 6 24 L 14 32 L 26 37 L 34 45 L 34 57 L 26 65 L 13 66 L 4 58",
	'T': "M 4 4 L 36 4 M 20 4 L 20 66",
	'U': "M 5 4 L 5 50 L 10 62 L 20 66 L 30 62 L 35 50 L 35 4",
	'V': "M 4 4 L 14 40 L 20 66 L 26 40 L 36 4",
	'W': "M 3 4 L 9 66 L 20 26 L 31 66 L 37 4",
	'X': "M 5 4 L 35 66 M 35 4 L 5 66",
	'Y': "M 4 4 L 20 36 L 36 4 M 20 36 L 20 66",
	'Z': "M 5 4 L 35 4 L 5 66 L 35 66",
}

// fontPaths maps every alphabet character to its canonical origin-centered
// glyph path. Built once at package init and only ever read afterwards, so
// concurrent builds can share it without locking.
var fontPaths = mustBuildFontPaths()

// mustBuildFontPaths validates the glyph table at construction time. The
// sources above are trusted input; a parse failure here is a programming
// error, not a runtime condition.
func mustBuildFontPaths() map[rune]Path {
	paths := make(map[rune]Path, len(glyphSources))
	for ch, src := range glyphSources {
		p, err := ParsePath(src)
		if err != nil {
			panic(fmt.Sprintf("biosvg: glyph %q: %v", ch, err))
		}
		paths[ch] = p
	}
	return paths
}
