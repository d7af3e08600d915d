package main

import (
	"context"
	"fmt"
	"io"

	"github.com/krisalay/mind-reader/registry"
	"github.com/urfave/cli/v3"
)

func readCommand(out, logOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "read",
		Usage:     "read files and print a summary of their content",
		ArgsUsage: "PATH...",
		Flags: []cli.Flag{
			kindFlag(),
			policyFlag(),
			&cli.IntFlag{
				Name:  "repeat",
				Usage: "read every path this many times",
				Value: 1,
			},
			&cli.IntFlag{
				Name:  "show",
				Usage: "print up to this many items per file",
				Value: 3,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return fmt.Errorf("read: at least one PATH is required")
			}
			a, err := setup(cmd, out, logOut)
			if err != nil {
				return err
			}

			kind, pol := cmd.String("kind"), cmd.String("policy")
			repeat, show := int(cmd.Int("repeat")), int(cmd.Int("show"))

			var failed int
			for i := 0; i < max(repeat, 1); i++ {
				for _, path := range cmd.Args().Slice() {
					res, err := a.dispatcher.Read(ctx, path, kind, pol)
					if err != nil {
						failed++
						fmt.Fprintf(a.out, "ERROR  → %v\n", err)
						continue
					}
					if i == 0 {
						printResult(a.out, path, res, show)
					}
				}
			}

			a.printMetrics()
			if failed > 0 {
				return fmt.Errorf("read: %d of %d reads failed", failed, max(repeat, 1)*cmd.NArg())
			}
			return nil
		},
	}
}

func printResult(w io.Writer, path string, res registry.Result, show int) {
	fmt.Fprintf(w, "FILE   → %s (%s, %d items)\n", path, res.Kind, res.Len())

	switch res.Kind {
	case registry.Image:
		b := res.Image.Bounds()
		fmt.Fprintf(w, "         %s %dx%d\n", res.Image.Format, b.Dx(), b.Dy())
	case registry.StructuredRecords:
		for i, r := range res.Records.All() {
			if i >= show {
				break
			}
			fmt.Fprintf(w, "  [%d] %v\n", i, r)
		}
	case registry.DelimitedRows:
		for i, r := range res.Rows.All() {
			if i >= show {
				break
			}
			fmt.Fprintf(w, "  [%d] %v\n", i, r)
		}
	case registry.TextLines:
		for i, l := range res.Lines.All() {
			if i >= show {
				break
			}
			fmt.Fprintf(w, "  [%d] %s\n", i, l)
		}
	}
}
