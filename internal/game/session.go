package game

import (
	"errors"

	"github.com/google/uuid"

	"github.com/mrsobakin/battleship/internal/game/field"
)

type Stats struct {
	Hits    int `json:"hits"`
	Misses  int `json:"misses"`
	Repeats int `json:"repeats"`
	Invalid int `json:"invalid"`
}

// Number of accepted guesses, repeats included.
func (s Stats) Turns() int {
	return s.Hits + s.Misses + s.Repeats
}

// One game against one board.
type Session struct {
	ID    string
	Board *field.Board
	stats Stats
}

func NewSession(board *field.Board) *Session {
	return &Session{
		ID:    uuid.NewString()[:8],
		Board: board,
	}
}

func (s *Session) Stats() Stats {
	return s.stats
}

func (s *Session) Over() bool {
	return s.Board.AllSunk()
}

// Parses the player's input against the board and applies the guess.
//
// Input that is not a coordinate of this board returns an error
// wrapping `field.ErrInvalidCoordinate` and changes nothing.
func (s *Session) Guess(input string) (field.Coord, field.GuessResult, error) {
	c, err := s.Board.Parser.Parse(input)
	if err != nil {
		s.stats.Invalid++
		return c, field.Miss, err
	}

	result, err := s.Board.Guess(c)
	if err != nil {
		return c, result, err
	}

	switch result {
	case field.Hit:
		s.stats.Hits++
	case field.Miss:
		s.stats.Misses++
	case field.Repeat:
		s.stats.Repeats++
	}

	return c, result, nil
}

// Text shown to the player after a guess.
func Message(result field.GuessResult, err error) string {
	if errors.Is(err, field.ErrInvalidCoordinate) {
		return "Invalid Input: Please guess again."
	}

	switch result {
	case field.Hit:
		return "Hit!"
	case field.Repeat:
		return "You've already chosen there."
	default:
		return "Miss."
	}
}
