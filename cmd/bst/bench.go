package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/urfave/cli/v2"

	"github.com/treelab/bstree"
)

var cmdBench = &cli.Command{
	Name:  "bench",
	Usage: "time insert/get/inorder/delete phases over generated keys",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "number of keys to generate",
			Value:   100_000,
			EnvVars: []string{"BST_BENCH_COUNT"},
		},
		&cli.StringFlag{
			Name:    "pattern",
			Usage:   "key insertion order (random, ascending, descending)",
			Value:   "random",
			EnvVars: []string{"BST_BENCH_PATTERN"},
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "seed for key shuffling and value generation",
			Value:   1,
			EnvVars: []string{"BST_BENCH_SEED"},
		},
	},
	Action: runBench,
}

// keysFor lays out the integers [0,count) in the requested insertion order.
func keysFor(pattern string, count int, r *rand.Rand) ([]int, error) {
	keys := make([]int, count)
	for i := range keys {
		keys[i] = i
	}
	switch pattern {
	case "ascending":
	case "descending":
		slices.Reverse(keys)
	case "random":
		r.Shuffle(len(keys), func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
	default:
		return nil, fmt.Errorf("unknown pattern: %s", pattern)
	}
	return keys, nil
}

func runBench(cctx *cli.Context) error {
	count := cctx.Int("count")
	pattern := cctx.String("pattern")
	seed := cctx.Int64("seed")
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	keys, err := keysFor(pattern, count, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	if pattern != "random" && count > 20_000 {
		slog.Warn("sorted insertion into an unbalanced tree costs O(n^2), this may take a while",
			"count", count, "pattern", pattern)
	}

	gofakeit.Seed(seed)
	vals := make([]string, count)
	for i := range vals {
		vals[i] = gofakeit.Word()
	}
	slog.Debug("bench data generated", "count", count, "pattern", pattern)

	tr := bstree.New[int, string]()

	start := time.Now()
	for i, k := range keys {
		tr.Insert(k, vals[i])
	}
	insertDur := time.Since(start)

	start = time.Now()
	for _, k := range keys {
		if _, ok := tr.Get(k); !ok {
			return fmt.Errorf("inserted key %d not found", k)
		}
	}
	getDur := time.Since(start)

	start = time.Now()
	walked := 0
	for range tr.InOrder() {
		walked++
	}
	inorderDur := time.Since(start)
	if walked != tr.Len() {
		return fmt.Errorf("inorder walk yielded %d of %d pairs", walked, tr.Len())
	}

	height := tr.Height()

	start = time.Now()
	for _, k := range keys {
		tr.Delete(k)
	}
	deleteDur := time.Since(start)
	if !tr.IsEmpty() {
		return fmt.Errorf("%d nodes left after deleting every key", tr.Len())
	}

	fmt.Printf("engine:  %s\n", bstree.EngineName())
	fmt.Printf("keys:    %d (%s)\n", count, pattern)
	fmt.Printf("height:  %d\n", height)
	printPhase("insert", insertDur, count)
	printPhase("get", getDur, count)
	printPhase("inorder", inorderDur, count)
	printPhase("delete", deleteDur, count)
	return nil
}

func printPhase(name string, dur time.Duration, ops int) {
	rate := float64(ops) / dur.Seconds()
	fmt.Printf("%-8s %12s %14.0f ops/s\n", name+":", dur.Round(time.Microsecond), rate)
}
