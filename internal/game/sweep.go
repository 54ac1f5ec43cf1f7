package game

import (
	"context"

	"github.com/mrsobakin/battleship/internal/game/field"
)

// Guesses every cell of an n×n board once, row by row: A0, A1, ...
type SweepPlayer struct {
	size int
	next field.Coord
}

func NewSweepPlayer(size int) *SweepPlayer {
	return &SweepPlayer{size: size}
}

func (p *SweepPlayer) NextGuess(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if p.next.Row >= p.size {
		return "", ErrInputClosed
	}

	guess := p.next.String()

	p.next.Col++
	if p.next.Col == p.size {
		p.next.Col = 0
		p.next.Row++
	}

	return guess, nil
}
