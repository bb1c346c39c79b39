package biosvg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestCommandIdentityTransforms(t *testing.T) {
	c := Command{X: 3.5, Y: -7.25, Type: LineTo}
	tests := []struct {
		name string
		got  Command
	}{
		{"scale(1,1)", c.Scale(1, 1)},
		{"rotate(0)", c.Rotate(0)},
		{"offset(0,0)", c.Offset(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, c.X, tt.got.X, eps)
			assert.InDelta(t, c.Y, tt.got.Y, eps)
			assert.Equal(t, c.Type, tt.got.Type)
		})
	}
}

func TestCommandRotateRoundTrip(t *testing.T) {
	c := Command{X: 12, Y: -5, Type: Move}
	for _, angle := range []float64{0.1, -0.2, math.Pi / 3, math.Pi, 2.5, -4} {
		back := c.Rotate(angle).Rotate(-angle)
		assert.InDelta(t, c.X, back.X, eps, "angle %v", angle)
		assert.InDelta(t, c.Y, back.Y, eps, "angle %v", angle)
		assert.Equal(t, c.Type, back.Type)
	}
}

func TestCommandRotateQuarterTurn(t *testing.T) {
	got := Command{X: 1, Y: 0, Type: LineTo}.Rotate(math.Pi / 2)
	assert.InDelta(t, 0, got.X, eps)
	assert.InDelta(t, 1, got.Y, eps)
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"move", Command{X: 1.5, Y: -2, Type: Move}, "M 1.5 -2 "},
		{"lineto", Command{X: 0, Y: 12.25, Type: LineTo}, "L 0 12.25 "},
		{"integral", Command{X: 40, Y: 70, Type: LineTo}, "L 40 70 "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}
