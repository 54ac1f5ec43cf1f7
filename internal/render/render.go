package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mrsobakin/battleship/internal/game/field"
)

const (
	SymbolUnknown = "-"
	SymbolMiss    = "❗"
	SymbolSmall   = "🟠"
	SymbolLarge   = "🔵"
)

const banner = `__   _______ _   _   _    _ _____ _   _
\ \ / /  _  | | | | | |  | |_   _| \ | |
 \ V /| | | | | | | | |  | | | | |  \| |
  \ / | | | | | | | | |/\| | | | | . ' |
  | | \ \_/ / |_| | \  /\  /_| |_| |\  |
  \_/  \___/ \___/   \/  \/ \___/\_| \_/`

// Symbol a player sees for the cell. Ships stay hidden until hit
// unless reveal is set.
func Symbol(cell field.Cell, reveal bool) string {
	switch cell.Kind {
	case field.Small:
		if cell.Hit || reveal {
			return SymbolSmall
		}
	case field.Large:
		if cell.Hit || reveal {
			return SymbolLarge
		}
	default:
		if cell.Hit {
			return SymbolMiss
		}
	}
	return SymbolUnknown
}

// Writes the grid as a table with column digits on top and row
// letters on the left.
func Board(w io.Writer, g *field.Grid, reveal bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	header := make([]string, 0, g.Size()+1)
	header = append(header, "")
	for col := 0; col < g.Size(); col++ {
		header = append(header, fmt.Sprint(col))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	row := make([]string, 0, g.Size()+1)
	for c, cell := range g.Cells() {
		if c.Col == 0 {
			row = append(row[:0], string(rune('A'+c.Row)))
		}

		row = append(row, Symbol(cell, reveal))

		if c.Col == g.Size()-1 {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
	}

	return tw.Flush()
}

func Banner(w io.Writer) {
	fmt.Fprintln(w, banner)
}

// Clears an ANSI terminal and moves the cursor home.
func Clear(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}
