package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsobakin/battleship/internal/game/field"
)

func TestCoordParser(t *testing.T) {
	t.Run("Pattern", func(t *testing.T) {
		assert.Equal(t, "^[A-D][0-3]$", field.NewCoordParser(4).Pattern())
		assert.Equal(t, "^[A-E][0-4]$", field.NewCoordParser(5).Pattern())
		assert.Equal(t, "^[A-F][0-5]$", field.NewCoordParser(6).Pattern())
	})

	t.Run("Parse_Valid", func(t *testing.T) {
		p := field.NewCoordParser(4)

		cases := map[string]field.Coord{
			"A0":   {Row: 0, Col: 0},
			"D3":   {Row: 3, Col: 3},
			"B2":   {Row: 1, Col: 2},
			"c1":   {Row: 2, Col: 1},
			" A3 ": {Row: 0, Col: 3},
		}

		for input, expected := range cases {
			c, err := p.Parse(input)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, expected, c, "input %q", input)
		}
	})

	t.Run("Parse_Invalid", func(t *testing.T) {
		p := field.NewCoordParser(4)

		for _, input := range []string{"", "A", "E0", "A4", "AA", "00", "A10", "A-1", "Z9"} {
			_, err := p.Parse(input)
			assert.ErrorIs(t, err, field.ErrInvalidCoordinate, "input %q", input)
		}
	})

	t.Run("Parse_SizeBound", func(t *testing.T) {
		_, err := field.NewCoordParser(6).Parse("F5")
		assert.NoError(t, err)

		_, err = field.NewCoordParser(5).Parse("F5")
		assert.ErrorIs(t, err, field.ErrInvalidCoordinate)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		p := field.NewCoordParser(6)
		g := field.NewGrid(6)

		for c := range g.Cells() {
			parsed, err := p.Parse(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	})

	t.Run("UnsupportedSize", func(t *testing.T) {
		assert.Panics(t, func() { field.NewCoordParser(11) })
	})
}

func TestCoord_Step(t *testing.T) {
	c := field.Coord{Row: 2, Col: 2}

	assert.Equal(t, field.Coord{Row: 1, Col: 2}, c.Step(field.Up))
	assert.Equal(t, field.Coord{Row: 3, Col: 2}, c.Step(field.Down))
	assert.Equal(t, field.Coord{Row: 2, Col: 1}, c.Step(field.Left))
	assert.Equal(t, field.Coord{Row: 2, Col: 3}, c.Step(field.Right))
	assert.Equal(t, "C2", c.String())
}
