package field_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsobakin/battleship/internal/game/field"
)

func assertStraight(t *testing.T, g *field.Grid, ship field.Ship) {
	t.Helper()

	require.Len(t, ship.Cells, ship.Kind.Size())

	for i, c := range ship.Cells {
		assert.True(t, g.InBounds(c), "%v out of bounds", c)

		if i > 0 {
			assert.Equal(t, ship.Cells[i-1].Step(ship.Direction), c, "ship %v bends", ship.Cells)
		}

		cell, err := g.At(c)
		require.NoError(t, err)
		assert.Equal(t, ship.Kind, cell.Kind)
	}
}

func TestPlacer_Fleet(t *testing.T) {
	for _, size := range field.SupportedSizes {
		conf := field.Configuration{Size: size}

		for seed := uint64(0); seed < 200; seed++ {
			g := field.NewGrid(size)
			p := field.NewPlacer(field.WithRand(rand.New(rand.NewPCG(seed, 7))))

			ships, err := p.PlaceFleet(g, conf.Fleet())
			require.NoError(t, err)
			require.Len(t, ships, len(conf.Fleet()))

			claimed := make(map[field.Coord]bool)
			for i, ship := range ships {
				assert.Equal(t, conf.Fleet()[i], ship.Kind)
				assert.GreaterOrEqual(t, ship.Attempts, 1)
				assertStraight(t, g, ship)

				for _, c := range ship.Cells {
					assert.False(t, claimed[c], "%v claimed twice", c)
					claimed[c] = true
				}
			}

			assert.Equal(t, len(claimed), g.Count(field.Small)+g.Count(field.Large))
		}
	}
}

// . . .
// . . .
// . . .
//
// A large ship on 3x3 board spans a whole row or column, so walking
// up or left has to end on index 0.
func TestPlacer_ReachesIndexZero(t *testing.T) {
	seen := make(map[field.Direction]int)

	for seed := uint64(0); seed < 500; seed++ {
		g := field.NewGrid(3)
		p := field.NewPlacer(field.WithRand(rand.New(rand.NewPCG(seed, 3))))

		ship, err := p.Place(g, field.Large)
		require.NoError(t, err)
		assertStraight(t, g, ship)

		seen[ship.Direction]++
	}

	for _, dir := range []field.Direction{field.Up, field.Down, field.Left, field.Right} {
		assert.Positive(t, seen[dir], "no ship walked %s", dir)
	}
}

// Single cell grid has no room for a second cell.
func TestPlacer_Exhausted(t *testing.T) {
	g := field.NewGrid(1)
	p := field.NewPlacer(field.WithMaxAttempts(50))

	_, err := p.Place(g, field.Small)
	assert.ErrorIs(t, err, field.ErrPlacementExhausted)
	assert.Equal(t, 1, g.Count(field.Empty), "failed placement must leave grid untouched")
}

// Eleven free cells on a 4x4 board always contain two neighbours,
// so the last small ship always fits.
func TestPlacer_AvoidsClaimedCells(t *testing.T) {
	for seed := uint64(0); seed < 100; seed++ {
		g := field.NewGrid(4)
		p := field.NewPlacer(field.WithRand(rand.New(rand.NewPCG(seed, 11))))

		ships, err := p.PlaceFleet(g, []field.Kind{field.Large, field.Small, field.Small})
		require.NoError(t, err)

		seen := make(map[field.Coord]field.Kind)
		for _, ship := range ships {
			for _, c := range ship.Cells {
				_, dup := seen[c]
				assert.False(t, dup, "%v claimed twice", c)
				seen[c] = ship.Kind
			}
		}
		assert.Len(t, seen, 7)
	}
}

func TestPlacer_RejectsEmptyKind(t *testing.T) {
	g := field.NewGrid(4)

	_, err := field.NewPlacer().Place(g, field.Empty)
	assert.Error(t, err)
}
