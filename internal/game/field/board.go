package field

import "fmt"

// Grid together with everything derived from its size.
type Board struct {
	*Grid
	Conf   Configuration
	Parser *CoordParser
}

func newBoard(conf Configuration) *Board {
	return &Board{
		Grid:   NewGrid(conf.Size),
		Conf:   conf,
		Parser: NewCoordParser(conf.Size),
	}
}

// Builds a board of the configured size with the fleet placed at
// random. Options are passed to the Placer.
func NewBoard(conf Configuration, opts ...Option) (*Board, error) {
	if err := conf.IsValid(); err != nil {
		return nil, err
	}

	b := newBoard(conf)

	if _, err := NewPlacer(opts...).PlaceFleet(b.Grid, conf.Fleet()); err != nil {
		return nil, fmt.Errorf("failed to populate %dx%d board: %w", conf.Size, conf.Size, err)
	}

	return b, nil
}
