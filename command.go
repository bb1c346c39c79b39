package biosvg

import (
	"math"
	"strconv"
)

// CommandType identifies a path drawing instruction.
type CommandType int

const (
	// Move lifts the pen and starts a new sub-path at the target point.
	Move CommandType = iota
	// LineTo draws a straight segment from the current point.
	LineTo
)

// Command is a single vector drawing instruction aimed at a 2D point.
// Transforms never mutate the receiver; they return a fresh Command.
type Command struct {
	X, Y float64
	Type CommandType
}

// Offset returns the command translated by (dx, dy).
func (c Command) Offset(dx, dy float64) Command {
	return Command{X: c.X + dx, Y: c.Y + dy, Type: c.Type}
}

// Scale returns the command scaled by (sx, sy) relative to the origin.
func (c Command) Scale(sx, sy float64) Command {
	return Command{X: c.X * sx, Y: c.Y * sy, Type: c.Type}
}

// Rotate returns the command rotated by angle radians around the origin (0, 0).
func (c Command) Rotate(angle float64) Command {
	sin, cos := math.Sin(angle), math.Cos(angle)
	return Command{
		X:    c.X*cos - c.Y*sin,
		Y:    c.X*sin + c.Y*cos,
		Type: c.Type,
	}
}

// String renders the command as a path data fragment, trailing space
// included. The trailing space is trimmed at the Path level.
func (c Command) String() string {
	letter := "M"
	if c.Type == LineTo {
		letter = "L"
	}
	return letter + " " + ftoa(c.X) + " " + ftoa(c.Y) + " "
}

// ftoa formats a coordinate with the shortest decimal form that round-trips,
// never using exponent notation.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
