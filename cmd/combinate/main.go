// Command combinate enumerates cartesian products, power sets, combinations
// and permutations of collections given on the command line.
//
// Collections are written as comma-separated elements, e.g.:
//
//	combinate product 0,1,2 a,b
//	combinate powerset 0,1,2 --lazy --limit 4
//	combinate combinations a,b,c,d -k 2
//	combinate powerset 1,1,2 --distinct
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type cli struct {
	Verbose bool `short:"v" help:"Enable debug logging."`

	Product      productCmd      `cmd:"" help:"Enumerate the cartesian product of the given collections."`
	Powerset     powerSetCmd     `cmd:"" help:"Enumerate all subsets of the given collection."`
	Combinations combinationsCmd `cmd:"" help:"Enumerate the k-element subsets of the given collection."`
	Permutations permutationsCmd `cmd:"" help:"Enumerate all orderings of the given collection."`
}

func main() {
	var root cli
	kctx := kong.Parse(&root,
		kong.Name("combinate"),
		kong.Description("Combinatorial enumeration over command-line collections."),
		kong.UsageOnError(),
	)

	logger := newLogger(root.Verbose)
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	if err := kctx.Run(logger); err != nil {
		logger.Error("enumeration failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}
