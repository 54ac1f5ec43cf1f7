package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mrsobakin/battleship/internal/game"
	"github.com/mrsobakin/battleship/internal/game/field"
	"github.com/mrsobakin/battleship/internal/prompt"
	"github.com/mrsobakin/battleship/internal/utils"
)

var errThinkingTime = errors.New("thinking time limit exceeded")

type playOptions struct {
	size      int
	delay     time.Duration
	reveal    bool
	layout    string
	timeLimit time.Duration
	seed      int64
}

func loadLayout(path string, conf field.Configuration) (*field.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return field.LoadGrid(conf, field.ParseShips(f))
}

func buildBoard(opts playOptions, conf field.Configuration, log logrus.FieldLogger) (*field.Board, error) {
	if opts.layout != "" {
		return loadLayout(opts.layout, conf)
	}

	placerOpts := []field.Option{field.WithLogger(log)}
	if opts.seed >= 0 {
		placerOpts = append(placerOpts, field.WithRand(rand.New(rand.NewPCG(uint64(opts.seed), 0))))
	}

	return field.NewBoard(conf, placerOpts...)
}

func newPlayCommand(loggerFor func() (*logrus.Logger, error)) *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := loggerFor()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			player := prompt.NewPlayer(cmd.InOrStdin(), out)

			fmt.Fprintln(out, "Welcome to Battleship 🚢")
			fmt.Fprintln(out)

			if opts.size == 0 {
				if opts.size, err = player.SelectSize(ctx); err != nil {
					return err
				}
			}

			conf := field.Configuration{Size: opts.size}
			if err := conf.IsValid(); err != nil {
				return err
			}

			board, err := buildBoard(opts, conf, log)
			if err != nil {
				return err
			}

			session := game.NewSession(board)

			var guesser game.Player = player
			if opts.timeLimit > 0 {
				var sw *utils.Stopwatch
				ctx, sw = utils.NewStopwatchContext(ctx, opts.timeLimit, errThinkingTime)
				defer sw.Close()
				guesser = game.NewStopwatchPlayer(player, sw)
			}

			runner := game.Runner{
				Player: guesser,
				Out:    out,
				Delay:  opts.delay,
				Clear:  isTerminal(out),
				Reveal: opts.reveal,
				Log:    log,
			}

			stats, err := runner.Run(ctx, session)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\nSunk the fleet in %d turns (%d hits, %d misses).\n", stats.Turns(), stats.Hits, stats.Misses)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.size, "size", envInt(EnvSize, 0), "board size: 4, 5 or 6 (asks when unset)")
	flags.DurationVar(&opts.delay, "delay", envDuration(EnvDelay, DefaultDelay), "pause after each guess")
	flags.BoolVar(&opts.reveal, "reveal", false, "show ship positions")
	flags.StringVar(&opts.layout, "layout", "", "load fleet from a layout file instead of placing it at random")
	flags.DurationVar(&opts.timeLimit, "time-limit", 0, "total thinking time allowed, 0 for unlimited")
	flags.Int64Var(&opts.seed, "seed", -1, "random seed for ship placement, negative for random")

	return cmd
}
