package game

import (
	"context"
	"errors"

	"github.com/mrsobakin/battleship/internal/utils"
)

var ErrInputClosed = errors.New("player input closed")

type Player interface {
	// Blocks until the player submits a guess and returns it as typed,
	// e.g. "B2". The text is not validated.
	//
	// If the player has no more input, `ErrInputClosed` is returned.
	// If ctx is done first, ctx error is returned.
	NextGuess(ctx context.Context) (string, error)
}

// Counts time spent waiting on the wrapped player against a stopwatch.
type StopwatchPlayer struct {
	player    Player
	stopwatch *utils.Stopwatch
}

func NewStopwatchPlayer(player Player, stopwatch *utils.Stopwatch) *StopwatchPlayer {
	return &StopwatchPlayer{
		player,
		stopwatch,
	}
}

func (p *StopwatchPlayer) NextGuess(ctx context.Context) (string, error) {
	p.stopwatch.Resume()
	defer p.stopwatch.Pause()
	return p.player.NextGuess(ctx)
}
