// Command bncalc evaluates a single bignum operation and prints the result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const usage = `bncalc: arbitrary precision unsigned calculator

Usage: bncalc [options] <op> <a> [<b>]

Ops:
  add sub mul    a, b decimal
  divmod quo rem a, b decimal; prints quotient then remainder for divmod
  pow            a decimal, b uint64 exponent
  fact           a uint64
  cmp            a, b decimal; prints -1, 0 or 1
  even odd       a decimal; prints true or false

Options:
`

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		verbose  bool
		dump     bool
		logLevel = zerolog.InfoLevel.String()
	)

	fs := flag.NewFlagSet("bncalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&verbose, "v", verbose, "Print a summary table")
	fs.BoolVar(&dump, "dump", dump, "Dump the limbs of each result")
	fs.StringVar(&logLevel, "log-level", logLevel, "Log level (trace, debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	log, err := newLogger(stderr, logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	req, err := parseRequest(fs.Args())
	if err != nil {
		log.Error().Err(err).Msg("invalid arguments")
		fs.Usage()
		return exitUsage
	}

	start := time.Now()
	res, err := req.eval()
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("op", string(req.op)).Msg("operation failed")
		return exitError
	}

	log.Debug().
		Str("op", string(req.op)).
		Int("digits", res.digits()).
		Int("limbs", res.limbs()).
		Dur("elapsed", elapsed).
		Msg("evaluated")

	res.print(stdout)
	if verbose {
		printSummary(stdout, req, res, elapsed)
	}
	if dump {
		dumpLimbs(stdout, res)
	}
	return exitOK
}
