package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mrsobakin/battleship/internal/game/field"
	"github.com/mrsobakin/battleship/internal/render"
)

// Drives a session turn by turn until every ship is sunk.
type Runner struct {
	Player Player
	Out    io.Writer

	// Pause after each guess so the player can read the result.
	Delay time.Duration

	// Clear the screen before each turn.
	Clear bool

	// Render ship cells even when they have not been hit.
	Reveal bool

	Log logrus.FieldLogger
}

func (r *Runner) logger() logrus.FieldLogger {
	if r.Log != nil {
		return r.Log
	}

	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}

// Plays the session to the end and returns its statistics.
//
// Returns an error if the player runs out of input or ctx is done
// before the last ship is sunk. In the latter case the error is the
// context cause.
func (r *Runner) Run(ctx context.Context, s *Session) (Stats, error) {
	log := r.logger().WithField("session", s.ID)
	log.WithField("size", s.Board.Conf.Size).Info("game started")

	started := time.Now()

	for s.Board.ShipsRemain() {
		if err := render.Board(r.Out, s.Board.Grid, r.Reveal); err != nil {
			return s.Stats(), err
		}

		input, err := r.Player.NextGuess(ctx)
		if err != nil {
			if ctx.Err() != nil {
				err = context.Cause(ctx)
			}
			log.WithError(err).Info("game abandoned")
			return s.Stats(), err
		}

		c, result, err := s.Guess(input)
		if err != nil && !errors.Is(err, field.ErrInvalidCoordinate) {
			return s.Stats(), err
		}

		entry := log.WithField("input", input)
		if err != nil {
			entry.Debug("invalid guess")
		} else {
			entry.WithFields(logrus.Fields{
				"coord":  c,
				"result": result,
			}).Debug("guess applied")
		}

		fmt.Fprintln(r.Out, Message(result, err))

		if err := wait(ctx, r.Delay); err != nil {
			return s.Stats(), err
		}

		if r.Clear {
			render.Clear(r.Out)
		}
	}

	stats := s.Stats()
	log.WithFields(logrus.Fields{
		"turns":   stats.Turns(),
		"elapsed": time.Since(started).Round(time.Millisecond),
	}).Info("game won")

	render.Banner(r.Out)

	return stats, nil
}
