package field

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Reads ships from a layout description, one ship per line:
//
//	<kind> <h|v> <coord>
//
// e.g. "large v B0". Horizontal ships walk right from coord, vertical
// ships walk down. Empty lines and lines starting with '#' are skipped.
// Iteration stops at the first malformed line.
func ParseShips(src io.Reader) iter.Seq[Ship] {
	return func(yield func(s Ship) bool) {
		lines := bufio.NewScanner(src)

		for lines.Scan() {
			line := strings.TrimSpace(lines.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			var kindStr, coordStr string
			var direction rune

			n, err := fmt.Sscanf(line, "%s %c %s", &kindStr, &direction, &coordStr)
			if err != nil || n != 3 {
				return
			}

			var ship Ship
			if err := ship.Kind.FromString(kindStr); err != nil || !ship.Kind.IsShip() {
				return
			}

			switch direction {
			case 'v':
				ship.Direction = Down
			case 'h':
				ship.Direction = Right
			default:
				return
			}

			start, err := parseCoord(coordStr)
			if err != nil {
				return
			}

			ship.Cells = make([]Coord, ship.Kind.Size())
			ship.Cells[0] = start
			for i := 1; i < len(ship.Cells); i++ {
				ship.Cells[i] = ship.Cells[i-1].Step(ship.Direction)
			}

			if !yield(ship) {
				return
			}
		}
	}
}

// Builds a board from a fixed ship sequence.
//
// If the layout is invalid, i.e. has ships intersecting, exceeds the
// board or the ships do not match the fleet of the configuration,
// returns an error wrapping ErrInvalidLayout.
func LoadGrid(conf Configuration, ships iter.Seq[Ship]) (*Board, error) {
	if err := conf.IsValid(); err != nil {
		return nil, err
	}

	b := newBoard(conf)
	counts := make(map[Kind]int)

	for ship := range ships {
		if !ship.Kind.IsShip() {
			return nil, fmt.Errorf("%w: %s is not a ship", ErrInvalidLayout, ship.Kind)
		}

		if len(ship.Cells) != ship.Kind.Size() {
			return nil, fmt.Errorf("%w: %s ship has %d cells", ErrInvalidLayout, ship.Kind, len(ship.Cells))
		}

		for i, c := range ship.Cells {
			if !b.InBounds(c) {
				return nil, fmt.Errorf("%w: ship out of bounds at %v", ErrInvalidLayout, c)
			}

			if i > 0 && ship.Cells[i-1].Step(ship.Direction) != c {
				return nil, fmt.Errorf("%w: ship is not straight at %v", ErrInvalidLayout, c)
			}

			if !b.isFree(c) {
				return nil, fmt.Errorf("%w: ships overlap at %v", ErrInvalidLayout, c)
			}
		}

		b.claim(ship.Kind, ship.Cells)
		counts[ship.Kind]++
	}

	expected := make(map[Kind]int)
	for _, kind := range conf.Fleet() {
		expected[kind]++
	}

	for _, kind := range []Kind{Small, Large} {
		if counts[kind] != expected[kind] {
			return nil, fmt.Errorf("%w: %d %s ships, expected %d", ErrInvalidLayout, counts[kind], kind, expected[kind])
		}
	}

	return b, nil
}
