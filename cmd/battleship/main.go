package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	EnvSize     string = "BATTLESHIP_SIZE"
	EnvDelay    string = "BATTLESHIP_DELAY"
	EnvLogLevel string = "BATTLESHIP_LOG_LEVEL"
)

const (
	DefaultDelay    time.Duration = time.Second
	DefaultLogLevel string        = "warning"
)

var errViolations = errors.New("audit found violations")

func envInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envString(key string, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	return log, nil
}

func newRootCommand() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "battleship",
		Short:         "Single player battleship against a hidden random fleet",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", envString(EnvLogLevel, DefaultLogLevel), "log level (trace, debug, info, warning, error)")

	loggerFor := func() (*logrus.Logger, error) {
		return newLogger(logLevel)
	}

	root.AddCommand(newPlayCommand(loggerFor))
	root.AddCommand(newAuditCommand(loggerFor))

	return root
}

func main() {
	// .env is optional; absent file just means no defaults from it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "failed to load .env:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errViolations) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}
