package field

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

const DefaultMaxAttempts = 10000

// Source of randomness for placement. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

type Option func(*Placer)

func WithRand(r Rand) Option {
	return func(p *Placer) {
		p.rand = r
	}
}

func WithMaxAttempts(n int) Option {
	return func(p *Placer) {
		p.maxAttempts = n
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Placer) {
		p.log = log
	}
}

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Lays ships out on a grid as straight runs of free cells.
type Placer struct {
	rand        Rand
	maxAttempts int
	log         logrus.FieldLogger
}

func NewPlacer(opts ...Option) *Placer {
	p := &Placer{
		rand:        globalRand{},
		maxAttempts: DefaultMaxAttempts,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.log == nil {
		p.log = discardLogger()
	}

	return p
}

func (p *Placer) randomCoord(size int) Coord {
	return Coord{p.rand.IntN(size), p.rand.IntN(size)}
}

// Picks the second cell of a ship starting at start. Directions are
// drawn at random without repetition until one leads to a free cell.
func (p *Placer) pickDirection(g *Grid, start Coord) (Direction, bool) {
	left := directions
	n := len(left)

	for n > 0 {
		i := p.rand.IntN(n)
		dir := left[i]

		if g.isFree(start.Step(dir)) {
			return dir, true
		}

		n--
		left[i], left[n] = left[n], left[i]
	}

	return Up, false
}

// Single placement walk. Returns false on any dead end: occupied
// start, no free neighbour, or a blocked cell along the fixed
// direction.
func (p *Placer) walk(g *Grid, ship *Ship) bool {
	size := ship.Kind.Size()

	start := p.randomCoord(g.Size())
	if !g.isFree(start) {
		return false
	}

	ship.Cells = append(ship.Cells[:0], start)

	dir, ok := p.pickDirection(g, start)
	if !ok {
		return false
	}
	ship.Direction = dir

	for len(ship.Cells) < size {
		next := ship.Cells[len(ship.Cells)-1].Step(dir)
		if !g.isFree(next) {
			return false
		}
		ship.Cells = append(ship.Cells, next)
	}

	return true
}

// Places one ship of the given kind and writes it into the grid.
//
// If no placement is found within the attempt limit, the grid is left
// untouched and an error wrapping ErrPlacementExhausted is returned.
func (p *Placer) Place(g *Grid, kind Kind) (Ship, error) {
	if !kind.IsShip() {
		return Ship{}, fmt.Errorf("cannot place %s cell as a ship", kind)
	}

	ship := Ship{
		Kind:  kind,
		Cells: make([]Coord, 0, kind.Size()),
	}

	for ship.Attempts < p.maxAttempts {
		ship.Attempts++

		if !p.walk(g, &ship) {
			p.log.WithFields(logrus.Fields{
				"kind":    kind,
				"attempt": ship.Attempts,
			}).Trace("placement dead end, restarting")
			continue
		}

		g.claim(kind, ship.Cells)

		p.log.WithFields(logrus.Fields{
			"kind":      kind,
			"cells":     ship.Cells,
			"direction": ship.Direction,
			"attempts":  ship.Attempts,
		}).Debug("ship placed")

		return ship, nil
	}

	return Ship{}, fmt.Errorf("%w: %s after %d attempts", ErrPlacementExhausted, kind, ship.Attempts)
}

// Places ships in the given order on the same grid, so every ship
// avoids the ones placed before it. Stops at the first failure.
func (p *Placer) PlaceFleet(g *Grid, fleet []Kind) ([]Ship, error) {
	ships := make([]Ship, 0, len(fleet))

	for _, kind := range fleet {
		ship, err := p.Place(g, kind)
		if err != nil {
			return ships, err
		}
		ships = append(ships, ship)
	}

	return ships, nil
}
