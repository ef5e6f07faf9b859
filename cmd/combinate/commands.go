package main

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/on-the-ground/combinat_ive_go/enumerate"
	"github.com/on-the-ground/combinat_ive_go/seq"
	"github.com/on-the-ground/combinat_ive_go/subsetindex"
)

// parseCollection splits a comma-separated argument into elements.
// The empty string denotes the empty collection.
func parseCollection(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func formatTuple(tuple []string) string {
	return "(" + strings.Join(tuple, " ") + ")"
}

// printAll drains tuples to stdout, honoring a positive limit, and returns
// how many were printed.
func printAll(tuples iter.Seq[[]string], limit int) int {
	if limit > 0 {
		tuples = seq.Take(tuples, limit)
	}
	count := 0
	for tuple := range tuples {
		fmt.Println(formatTuple(tuple))
		count++
	}
	return count
}

type productCmd struct {
	Components []string `arg:"" optional:"" name:"component" help:"Comma-separated component collections."`
	Lazy       bool     `help:"Stream tuples one at a time instead of materializing the result."`
	Limit      int      `help:"Stop after this many tuples (0 means all)." default:"0"`
	Count      bool     `help:"Print only the number of tuples."`
}

func (c *productCmd) Run(logger *zap.Logger) error {
	components := make([][]string, len(c.Components))
	sizes := make([]int, len(c.Components))
	for i, raw := range c.Components {
		components[i] = parseCollection(raw)
		sizes[i] = len(components[i])
	}

	if c.Count {
		total, err := enumerate.ProductLen(sizes...)
		if err != nil {
			return err
		}
		fmt.Println(total)
		return nil
	}

	start := time.Now()
	var printed int
	if c.Lazy || c.Limit > 0 {
		printed = printAll(enumerate.ProductSeq(components...), c.Limit)
	} else {
		tuples, err := enumerate.Product(components...)
		if err != nil {
			return err
		}
		for _, tuple := range tuples {
			fmt.Println(formatTuple(tuple))
		}
		printed = len(tuples)
	}

	logger.Debug("product enumerated",
		zap.Int("components", len(components)),
		zap.Int("tuples", printed),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

type powerSetCmd struct {
	Elements string `arg:"" optional:"" help:"Comma-separated elements."`
	Lazy     bool   `help:"Stream subsets one at a time instead of materializing the result."`
	Limit    int    `help:"Stop after this many subsets (0 means all)." default:"0"`
	Count    bool   `help:"Print only the number of subsets."`
	Distinct bool   `help:"Collapse duplicate-looking subsets arising from duplicate elements."`
}

func (c *powerSetCmd) Run(logger *zap.Logger) error {
	elements := parseCollection(c.Elements)

	if c.Count {
		total, err := enumerate.PowerSetLen(len(elements))
		if err != nil {
			return err
		}
		fmt.Println(total)
		return nil
	}

	start := time.Now()
	var printed int
	switch {
	case c.Distinct:
		ix := subsetindex.New(func(s string) string { return s })
		printed = printAll(seq.Filter(enumerate.PowerSetSeq(elements), ix.Add), c.Limit)
	case c.Lazy || c.Limit > 0:
		printed = printAll(enumerate.PowerSetSeq(elements), c.Limit)
	default:
		subsets, err := enumerate.PowerSet(elements)
		if err != nil {
			return err
		}
		for _, subset := range subsets {
			fmt.Println(formatTuple(subset))
		}
		printed = len(subsets)
	}

	logger.Debug("power set enumerated",
		zap.Int("elements", len(elements)),
		zap.Int("subsets", printed),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

type combinationsCmd struct {
	Elements string `arg:"" help:"Comma-separated elements."`
	K        int    `short:"k" required:"" help:"Subset size."`
	Lazy     bool   `help:"Stream combinations one at a time."`
	Limit    int    `help:"Stop after this many combinations (0 means all)." default:"0"`
	Count    bool   `help:"Print only the number of combinations."`
}

func (c *combinationsCmd) Run(logger *zap.Logger) error {
	elements := parseCollection(c.Elements)

	if c.Count {
		total, err := enumerate.Binomial(len(elements), c.K)
		if err != nil {
			return err
		}
		fmt.Println(total)
		return nil
	}

	start := time.Now()
	var printed int
	if c.Lazy || c.Limit > 0 {
		printed = printAll(enumerate.CombinationsSeq(elements, c.K), c.Limit)
	} else {
		combos, err := enumerate.Combinations(elements, c.K)
		if err != nil {
			return err
		}
		for _, combo := range combos {
			fmt.Println(formatTuple(combo))
		}
		printed = len(combos)
	}

	logger.Debug("combinations enumerated",
		zap.Int("elements", len(elements)),
		zap.Int("k", c.K),
		zap.Int("combinations", printed),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

type permutationsCmd struct {
	Elements string `arg:"" optional:"" help:"Comma-separated elements."`
	Lazy     bool   `help:"Stream permutations one at a time."`
	Limit    int    `help:"Stop after this many permutations (0 means all)." default:"0"`
	Count    bool   `help:"Print only the number of permutations."`
}

func (c *permutationsCmd) Run(logger *zap.Logger) error {
	elements := parseCollection(c.Elements)

	if c.Count {
		total, err := enumerate.Factorial(len(elements))
		if err != nil {
			return err
		}
		fmt.Println(total)
		return nil
	}

	start := time.Now()
	var printed int
	if c.Lazy || c.Limit > 0 {
		printed = printAll(enumerate.PermutationsSeq(elements), c.Limit)
	} else {
		perms, err := enumerate.Permutations(elements)
		if err != nil {
			return err
		}
		for _, perm := range perms {
			fmt.Println(formatTuple(perm))
		}
		printed = len(perms)
	}

	logger.Debug("permutations enumerated",
		zap.Int("elements", len(elements)),
		zap.Int("permutations", printed),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
