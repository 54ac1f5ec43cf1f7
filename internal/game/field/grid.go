package field

import (
	"fmt"
	"iter"

	"github.com/dolthub/swiss"
)

type packedPos int64

// Square grid of cells. Only cells that differ from {Empty, false}
// are stored; a missing key reads as an untouched empty cell.
//
// Grid is not thread safe.
type Grid struct {
	cells *swiss.Map[packedPos, Cell]
	size  int
}

func NewGrid(size int) *Grid {
	if size <= 0 {
		panic(fmt.Sprintf("non-positive grid size: %d", size))
	}

	return &Grid{
		cells: swiss.NewMap[packedPos, Cell](uint32(size * size)),
		size:  size,
	}
}

func (g *Grid) makePos(c Coord) packedPos {
	return packedPos(c.Row*g.size + c.Col)
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

func (g *Grid) cell(c Coord) Cell {
	cell, _ := g.cells.Get(g.makePos(c))
	return cell
}

func (g *Grid) At(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, c, g.size, g.size)
	}

	return g.cell(c), nil
}

// Reports whether c is inside the grid and holds no ship.
func (g *Grid) isFree(c Coord) bool {
	return g.InBounds(c) && g.cell(c).Kind == Empty
}

// Writes ship kind into the cells. Callers must have checked that
// every cell is free.
func (g *Grid) claim(kind Kind, cells []Coord) {
	for _, c := range cells {
		g.cells.Put(g.makePos(c), Cell{Kind: kind})
	}
}

// Yields every cell in row-major order.
func (g *Grid) Cells() iter.Seq2[Coord, Cell] {
	return func(yield func(Coord, Cell) bool) {
		for row := 0; row < g.size; row++ {
			for col := 0; col < g.size; col++ {
				c := Coord{row, col}
				if !yield(c, g.cell(c)) {
					return
				}
			}
		}
	}
}

func (g *Grid) Count(kind Kind) int {
	var n int

	if kind == Empty {
		n = g.size * g.size
		g.cells.Iter(func(_ packedPos, cell Cell) (stop bool) {
			if cell.Kind.IsShip() {
				n--
			}
			return
		})
		return n
	}

	g.cells.Iter(func(_ packedPos, cell Cell) (stop bool) {
		if cell.Kind == kind {
			n++
		}
		return
	})

	return n
}

// Applies a guess at c.
//
// A cell that was already guessed yields Repeat and is left as is.
// Otherwise the cell is marked hit and the result is Hit for ship
// cells and Miss for empty ones.
func (g *Grid) Guess(c Coord) (GuessResult, error) {
	cell, err := g.At(c)
	if err != nil {
		return Miss, err
	}

	if cell.Hit {
		return Repeat, nil
	}

	cell.Hit = true
	g.cells.Put(g.makePos(c), cell)

	if cell.Kind.IsShip() {
		return Hit, nil
	}

	return Miss, nil
}

// Returns whether any ship cell is still unhit.
func (g *Grid) ShipsRemain() bool {
	remain := false

	g.cells.Iter(func(_ packedPos, cell Cell) (stop bool) {
		if cell.Kind.IsShip() && !cell.Hit {
			remain = true
			return true
		}
		return false
	})

	return remain
}

// Returns whether every ship cell has been hit, i.e. the player won.
func (g *Grid) AllSunk() bool {
	return !g.ShipsRemain()
}
