package main

import (
	"fmt"
	"iter"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/urfave/cli/v2"

	"github.com/treelab/bstree"
)

var cmdShow = &cli.Command{
	Name:      "show",
	Usage:     "print a tree rendering and its four traversal orders",
	ArgsUsage: "[key=value ...]",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "number of random word pairs when no key=value args are given",
			Value:   12,
			EnvVars: []string{"BST_SHOW_COUNT"},
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "seed for random word generation",
			Value:   1,
			EnvVars: []string{"BST_SHOW_SEED"},
		},
	},
	Action: runShow,
}

// parsePair splits a key=value argument.
func parsePair(arg string) (string, string, error) {
	key, val, ok := strings.Cut(arg, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", arg)
	}
	return key, val, nil
}

func runShow(cctx *cli.Context) error {
	tr := bstree.New[string, string]()

	if cctx.Args().Len() > 0 {
		for _, arg := range cctx.Args().Slice() {
			key, val, err := parsePair(arg)
			if err != nil {
				return err
			}
			tr.Insert(key, val)
		}
	} else {
		count := cctx.Int("count")
		gofakeit.Seed(cctx.Int64("seed"))
		for attempts := 0; tr.Len() < count; attempts++ {
			if attempts > count*100 {
				return fmt.Errorf("word list exhausted at %d keys, lower --count", tr.Len())
			}
			tr.Insert(gofakeit.Noun(), gofakeit.Adjective())
		}
	}

	fmt.Print(tr.String())
	fmt.Printf("len=%d height=%d engine=%s\n\n", tr.Len(), tr.Height(), bstree.EngineName())

	printOrder("preorder", tr.PreOrder())
	printOrder("inorder", tr.InOrder())
	printOrder("postorder", tr.PostOrder())
	printOrder("levelorder", tr.LevelOrder())
	return nil
}

func printOrder(name string, seq iter.Seq2[string, string]) {
	fmt.Printf("%-11s", name+":")
	for k, v := range seq {
		fmt.Printf(" (%s,%s)", k, v)
	}
	fmt.Println()
}
