package main

import (
	"encoding/json"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mrsobakin/battleship/internal/audit"
	"github.com/mrsobakin/battleship/internal/game/field"
)

func newAuditCommand(loggerFor func() (*logrus.Logger, error)) *cobra.Command {
	var (
		size   int
		params audit.Params
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Generate many boards and verify every placement invariant",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := loggerFor()
			if err != nil {
				return err
			}

			sizes := field.SupportedSizes
			if size != 0 {
				sizes = []int{size}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			ok := true
			for _, s := range sizes {
				params.Conf = field.Configuration{Size: s}
				params.Seed = uint64(seed)

				report, err := audit.Run(cmd.Context(), params, log.WithField("size", s))
				if err != nil {
					return err
				}

				if err := enc.Encode(report); err != nil {
					return err
				}

				ok = ok && report.OK()
			}

			if !ok {
				return errViolations
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&size, "size", 0, "board size to audit, all supported sizes when unset")
	flags.IntVar(&params.Boards, "boards", 10000, "boards generated per size")
	flags.IntVar(&params.Workers, "workers", runtime.NumCPU(), "boards checked concurrently")
	flags.IntVar(&params.MaxAttempts, "max-attempts", field.DefaultMaxAttempts, "placement attempts per ship")
	flags.Int64Var(&seed, "seed", 1, "base random seed")

	return cmd
}
