package audit

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mrsobakin/battleship/internal/game"
	"github.com/mrsobakin/battleship/internal/game/field"
)

type Violation int

const (
	PlacementFailed Violation = iota
	CountMismatch
	WrongLength
	NotStraight
	OutOfBounds
	Overlap
	LayoutRejected
	WinMismatch
)

func (v Violation) String() string {
	switch v {
	case PlacementFailed:
		return "placement_failed"
	case CountMismatch:
		return "count_mismatch"
	case WrongLength:
		return "wrong_length"
	case NotStraight:
		return "not_straight"
	case OutOfBounds:
		return "out_of_bounds"
	case Overlap:
		return "overlap"
	case LayoutRejected:
		return "layout_rejected"
	case WinMismatch:
		return "win_mismatch"
	default:
		panic("invalid violation")
	}
}

func (v Violation) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

type Params struct {
	Conf   field.Configuration
	Boards int

	// Number of boards checked concurrently. Defaults to the number
	// of CPUs.
	Workers int

	// Board i is generated from PCG(Seed, i), so a report does not
	// depend on scheduling.
	Seed uint64

	MaxAttempts int
}

type Report struct {
	Size           int               `json:"size"`
	Boards         int               `json:"boards"`
	Violations     map[Violation]int `json:"violations"`
	MaxAttempts    int               `json:"max_attempts"`
	MeanAttempts   float64           `json:"mean_attempts"`
	MeanSweepTurns float64           `json:"mean_sweep_turns"`
}

func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

type boardResult struct {
	violations []Violation
	attempts   []int
	sweepTurns int
}

func checkShips(g *field.Grid, ships []field.Ship) []Violation {
	var violations []Violation
	claimed := make(map[field.Coord]bool)

	for _, ship := range ships {
		if len(ship.Cells) != ship.Kind.Size() {
			violations = append(violations, WrongLength)
		}

		for i, c := range ship.Cells {
			if !g.InBounds(c) {
				violations = append(violations, OutOfBounds)
			}

			if i > 0 && ship.Cells[i-1].Step(ship.Direction) != c {
				violations = append(violations, NotStraight)
			}

			if claimed[c] {
				violations = append(violations, Overlap)
			}
			claimed[c] = true
		}
	}

	return violations
}

// Index of the guess that must end a row-major sweep: the last ship
// cell in reading order, counted from one.
func expectedSweepTurns(size int, ships []field.Ship) int {
	last := 0
	for _, ship := range ships {
		for _, c := range ship.Cells {
			last = max(last, c.Row*size+c.Col+1)
		}
	}
	return last
}

func checkBoard(ctx context.Context, params Params, rnd field.Rand, log logrus.FieldLogger) (boardResult, error) {
	var res boardResult
	conf := params.Conf

	g := field.NewGrid(conf.Size)
	placer := field.NewPlacer(
		field.WithRand(rnd),
		field.WithMaxAttempts(params.MaxAttempts),
		field.WithLogger(log),
	)

	ships, err := placer.PlaceFleet(g, conf.Fleet())
	for _, ship := range ships {
		res.attempts = append(res.attempts, ship.Attempts)
	}
	if err != nil {
		res.violations = append(res.violations, PlacementFailed)
		return res, nil
	}

	if g.Count(field.Small) != conf.CellCount(field.Small) || g.Count(field.Large) != conf.CellCount(field.Large) {
		res.violations = append(res.violations, CountMismatch)
	}

	res.violations = append(res.violations, checkShips(g, ships)...)

	// Replaying the layout through the loader has to give the same
	// board, which is then played to the end.
	board, err := field.LoadGrid(conf, slices.Values(ships))
	if err != nil {
		res.violations = append(res.violations, LayoutRejected)
		return res, nil
	}

	r := game.Runner{
		Player: game.NewSweepPlayer(conf.Size),
		Out:    io.Discard,
	}

	stats, err := r.Run(ctx, game.NewSession(board))
	if err != nil {
		if ctx.Err() != nil {
			return res, err
		}
		res.violations = append(res.violations, WinMismatch)
		return res, nil
	}

	res.sweepTurns = stats.Turns()
	if res.sweepTurns != expectedSweepTurns(conf.Size, ships) {
		res.violations = append(res.violations, WinMismatch)
	}

	return res, nil
}

// Generates `params.Boards` boards concurrently and checks every
// placement invariant on each of them.
//
// Violations are reported, not returned as errors; an error means the
// audit itself could not complete.
func Run(ctx context.Context, params Params, log logrus.FieldLogger) (Report, error) {
	if err := params.Conf.IsValid(); err != nil {
		return Report{}, err
	}
	if params.Boards <= 0 {
		return Report{}, fmt.Errorf("non-positive board count: %d", params.Boards)
	}
	if params.Workers <= 0 {
		params.Workers = runtime.NumCPU()
	}
	if params.MaxAttempts <= 0 {
		params.MaxAttempts = field.DefaultMaxAttempts
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	results := make([]boardResult, params.Boards)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(params.Workers)

	for i := range params.Boards {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			rnd := rand.New(rand.NewPCG(params.Seed, uint64(i)))
			res, err := checkBoard(egCtx, params, rnd, log.WithField("board", i))
			if err != nil {
				return err
			}

			for _, v := range res.violations {
				log.WithFields(logrus.Fields{
					"board":     i,
					"violation": v,
				}).Warn("board violates placement invariant")
			}

			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return Report{}, err
	}

	return summarize(params, results), nil
}

func summarize(params Params, results []boardResult) Report {
	report := Report{
		Size:       params.Conf.Size,
		Boards:     len(results),
		Violations: make(map[Violation]int),
	}

	var ships, attempts, sweeps, turns int
	for _, res := range results {
		for _, v := range res.violations {
			report.Violations[v]++
		}

		for _, a := range res.attempts {
			ships++
			attempts += a
			report.MaxAttempts = max(report.MaxAttempts, a)
		}

		if res.sweepTurns > 0 {
			sweeps++
			turns += res.sweepTurns
		}
	}

	if ships > 0 {
		report.MeanAttempts = float64(attempts) / float64(ships)
	}
	if sweeps > 0 {
		report.MeanSweepTurns = float64(turns) / float64(sweeps)
	}

	return report
}
