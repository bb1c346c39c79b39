package biosvg

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

// Path is an ordered command sequence with declared bounds and a stroke
// color. Width and Height describe the bounding box as of the last parse or
// scale; Rotate and Offset deliberately leave them untouched, so the derived
// stroke width stays stable across the random rotation draw.
type Path struct {
	Commands []Command
	Width    float64
	Height   float64
	Color    string
}

const pathTokenPattern = `([ML])\s*(-?\d+(?:\.\d+)?)\s+(-?\d+(?:\.\d+)?)`

// ParsePath scans source text for `M x y` / `L x y` tokens and builds a
// path recentered on its bounding-box midpoint, so the glyph sits on the
// local origin. Width and Height are the bounding-box extents. The default
// color is black until WithColor replaces it.
func ParsePath(text string) (Path, error) {
	rx, err := regexp.Compile(pathTokenPattern)
	if err != nil {
		return Path{}, fmt.Errorf("%w: %v", ErrRegex, err)
	}

	var commands []Command
	var minX, maxX, minY, maxY float64
	for i, m := range rx.FindAllStringSubmatch(text, -1) {
		var kind CommandType
		switch m[1] {
		case "M":
			kind = Move
		case "L":
			kind = LineTo
		default:
			return Path{}, ErrParse
		}
		x, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return Path{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
		y, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return Path{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if i == 0 {
			minX, maxX, minY, maxY = x, x, y, y
		} else {
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
		commands = append(commands, Command{X: x, Y: y, Type: kind})
	}

	// move the bounding-box midpoint onto the origin
	offsetX := (maxX + minX) / 2
	offsetY := (maxY + minY) / 2
	for i := range commands {
		commands[i].X -= offsetX
		commands[i].Y -= offsetY
	}

	return Path{
		Commands: commands,
		Width:    maxX - minX,
		Height:   maxY - minY,
		Color:    "black",
	}, nil
}

// Scale returns a copy scaled by (sx, sy); the declared bounds scale too.
func (p Path) Scale(sx, sy float64) Path {
	commands := make([]Command, len(p.Commands))
	for i, c := range p.Commands {
		commands[i] = c.Scale(sx, sy)
	}
	return Path{
		Commands: commands,
		Width:    p.Width * sx,
		Height:   p.Height * sy,
		Color:    p.Color,
	}
}

// Rotate returns a copy rotated by angle radians around the origin (0, 0).
func (p Path) Rotate(angle float64) Path {
	commands := make([]Command, len(p.Commands))
	for i, c := range p.Commands {
		commands[i] = c.Rotate(angle)
	}
	return Path{Commands: commands, Width: p.Width, Height: p.Height, Color: p.Color}
}

// Offset returns a copy translated by (dx, dy).
func (p Path) Offset(dx, dy float64) Path {
	commands := make([]Command, len(p.Commands))
	for i, c := range p.Commands {
		commands[i] = c.Offset(dx, dy)
	}
	return Path{Commands: commands, Width: p.Width, Height: p.Height, Color: p.Color}
}

// WithColor returns a copy drawn in the given color; commands are untouched.
func (p Path) WithColor(color string) Path {
	commands := append([]Command(nil), p.Commands...)
	return Path{Commands: commands, Width: p.Width, Height: p.Height, Color: color}
}

// RandomSplit breaks the path into short disjoint runs of 2-4 commands so a
// glyph renders as several disconnected strokes. A Move always closes the
// current run; a LineTo that hits the run limit is included in the run it
// closes. Each new run opens with a synthetic Move at the break point. Runs
// with a single command are dropped: a lone Move draws nothing. Every
// emitted sub-path keeps the source bounds and color.
func (p Path) RandomSplit(rng *rand.Rand) []Path {
	if len(p.Commands) == 0 {
		return nil
	}
	var paths []Path
	var run []Command
	limit := 2 + rng.Intn(3)
	start := p.Commands[0]
	for _, c := range p.Commands {
		if len(run) >= limit || c.Type == Move {
			if c.Type == LineTo {
				run = append(run, c)
			}
			if len(run) > 1 {
				paths = append(paths, Path{
					Commands: run,
					Width:    p.Width,
					Height:   p.Height,
					Color:    p.Color,
				})
			}
			run = nil
			start = c
			start.Type = Move
			limit = 2 + rng.Intn(3)
			continue
		}
		if len(run) == 0 {
			run = append(run, start)
		}
		run = append(run, c)
	}
	if len(run) > 1 {
		paths = append(paths, Path{
			Commands: run,
			Width:    p.Width,
			Height:   p.Height,
			Color:    p.Color,
		})
	}
	return paths
}

// String renders the path as a stroke-only SVG path element. The stroke
// width follows glyph size: one twelfth of the declared height.
func (p Path) String() string {
	var d strings.Builder
	for _, c := range p.Commands {
		d.WriteString(c.String())
	}
	return fmt.Sprintf(`<path d="%s" stroke="%s" stroke-width="%s" fill="none" />`,
		strings.TrimSpace(d.String()), p.Color, ftoa(p.Height/12))
}
