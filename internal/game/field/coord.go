package field

import (
	"fmt"
	"regexp"
	"strings"
)

// Accepts coordinates typed as a row letter and a column digit,
// restricted to one board size.
type CoordParser struct {
	size    int
	pattern *regexp.Regexp
}

// Builds parser for n×n board. Letters and digits are single
// characters, so n is limited to 10.
func NewCoordParser(n int) *CoordParser {
	if n <= 0 || n > 10 {
		panic(fmt.Sprintf("coordinate parser supports sizes 1..10, got %d", n))
	}

	expr := fmt.Sprintf("^[A-%c][0-%d]$", rune('A'+n-1), n-1)

	return &CoordParser{
		size:    n,
		pattern: regexp.MustCompile(expr),
	}
}

func (p *CoordParser) Pattern() string {
	return p.pattern.String()
}

// Returns a human readable range, e.g. "A0..D3".
func (p *CoordParser) Range() string {
	last := Coord{p.size - 1, p.size - 1}
	return fmt.Sprintf("%v..%v", Coord{}, last)
}

func (p *CoordParser) Parse(input string) (Coord, error) {
	s := strings.ToUpper(strings.TrimSpace(input))

	if !p.pattern.MatchString(s) {
		return Coord{}, fmt.Errorf("%w: %q, expected %s", ErrInvalidCoordinate, input, p.Range())
	}

	return Coord{Row: int(s[0] - 'A'), Col: int(s[1] - '0')}, nil
}

// Parses any letter+digit coordinate without a size restriction.
func parseCoord(s string) (Coord, error) {
	s = strings.ToUpper(s)
	if len(s) != 2 || s[0] < 'A' || s[0] > 'Z' || s[1] < '0' || s[1] > '9' {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}

	return Coord{Row: int(s[0] - 'A'), Col: int(s[1] - '0')}, nil
}
