package field

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedSize    = errors.New("unsupported board size")
	ErrOutOfBounds        = errors.New("coordinate out of bounds")
	ErrInvalidCoordinate  = errors.New("invalid coordinate")
	ErrPlacementExhausted = errors.New("could not place ship")
	ErrInvalidLayout      = errors.New("invalid layout")
)

const (
	SmallBoard  = 4
	MediumBoard = 5
	LargeBoard  = 6
)

var SupportedSizes = []int{SmallBoard, MediumBoard, LargeBoard}

type Kind int

const (
	Empty Kind = iota
	Small
	Large
)

func (k *Kind) FromString(str string) error {
	switch str {
	case "empty":
		*k = Empty
	case "small":
		*k = Small
	case "large":
		*k = Large
	default:
		return fmt.Errorf("invalid cell kind %q", str)
	}
	return nil
}

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Small:
		return "small"
	case Large:
		return "large"
	default:
		panic("invalid cell kind")
	}
}

// Number of cells a ship of this kind occupies. Zero for Empty.
func (k Kind) Size() int {
	switch k {
	case Small:
		return 2
	case Large:
		return 3
	default:
		return 0
	}
}

func (k Kind) IsShip() bool {
	return k == Small || k == Large
}

type GuessResult int

const (
	Miss GuessResult = iota
	Hit
	Repeat
)

func (r *GuessResult) FromString(str string) error {
	switch str {
	case "miss":
		*r = Miss
	case "hit":
		*r = Hit
	case "repeat":
		*r = Repeat
	default:
		return fmt.Errorf("invalid guess result")
	}
	return nil
}

func (r GuessResult) String() string {
	switch r {
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case Repeat:
		return "repeat"
	default:
		panic("invalid guess result")
	}
}

type Cell struct {
	Kind Kind
	Hit  bool
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		panic("invalid direction")
	}
}

type Coord struct {
	Row, Col int
}

// Returns the neighbouring coordinate in direction d. The result
// may lie outside of any grid.
func (c Coord) Step(d Direction) Coord {
	switch d {
	case Up:
		return Coord{c.Row - 1, c.Col}
	case Down:
		return Coord{c.Row + 1, c.Col}
	case Left:
		return Coord{c.Row, c.Col - 1}
	case Right:
		return Coord{c.Row, c.Col + 1}
	default:
		panic("invalid direction")
	}
}

// Formats coordinate the way players type it: row letter followed
// by column digit, e.g. "B3".
func (c Coord) String() string {
	return fmt.Sprintf("%c%d", rune('A'+c.Row), c.Col)
}

// Transient result of placing one ship. Only its effect on the grid
// outlives the placement.
type Ship struct {
	Kind      Kind
	Direction Direction
	Cells     []Coord

	// Number of placement walks tried, including the successful one.
	Attempts int
}

type Configuration struct {
	Size int
}

func (c *Configuration) IsValid() error {
	for _, size := range SupportedSizes {
		if c.Size == size {
			return nil
		}
	}

	return fmt.Errorf("%w: %d", ErrUnsupportedSize, c.Size)
}

// Returns the fleet for the board size in placement order.
func (c *Configuration) Fleet() []Kind {
	fleet := []Kind{Small, Large}

	if c.Size >= MediumBoard {
		fleet = append(fleet, Small)
	}

	if c.Size >= LargeBoard {
		fleet = append(fleet, Large)
	}

	return fleet
}

// Expected number of cells of the given kind on a freshly built board.
func (c *Configuration) CellCount(kind Kind) int {
	var n int
	for _, k := range c.Fleet() {
		if k == kind {
			n += k.Size()
		}
	}
	return n
}
