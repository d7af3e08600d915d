package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/urfave/cli/v3"
)

func benchCommand(out, logOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "bench",
		Usage:     "read the given files concurrently and report throughput",
		ArgsUsage: "PATH...",
		Flags: []cli.Flag{
			kindFlag(),
			policyFlag(),
			&cli.IntFlag{
				Name:  "goroutines",
				Usage: "concurrent readers",
				Value: 64,
			},
			&cli.IntFlag{
				Name:  "ops",
				Usage: "reads per goroutine",
				Value: 1000,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return fmt.Errorf("bench: at least one PATH is required")
			}
			a, err := setup(cmd, out, logOut)
			if err != nil {
				return err
			}

			kind, pol := cmd.String("kind"), cmd.String("policy")
			goroutines, opsPerG := max(int(cmd.Int("goroutines")), 1), max(int(cmd.Int("ops")), 1)
			paths := cmd.Args().Slice()

			fmt.Fprintln(a.out, "\n================ CACHE READ BENCHMARK =================")
			fmt.Fprintln(a.out, "Kind          :", kind)
			fmt.Fprintln(a.out, "Policy        :", pol)
			fmt.Fprintln(a.out, "Files         :", len(paths))
			fmt.Fprintln(a.out, "Goroutines    :", goroutines)
			fmt.Fprintln(a.out, "Ops/Goroutine :", opsPerG)

			start := time.Now()

			var (
				wg       sync.WaitGroup
				mu       sync.Mutex
				firstErr error
			)
			wg.Add(goroutines)
			for g := 0; g < goroutines; g++ {
				go func(id int) {
					defer wg.Done()
					for j := 0; j < opsPerG; j++ {
						path := paths[(id+j)%len(paths)]
						if _, err := a.dispatcher.Read(ctx, path, kind, pol); err != nil {
							mu.Lock()
							if firstErr == nil {
								firstErr = err
							}
							mu.Unlock()
							return
						}
					}
				}(g)
			}
			wg.Wait()

			duration := time.Since(start)
			totalOps := goroutines * opsPerG

			fmt.Fprintln(a.out, "\n================ RESULTS =================")
			fmt.Fprintf(a.out, "Total Operations : %d\n", totalOps)
			fmt.Fprintf(a.out, "Total Time       : %v\n", duration)
			fmt.Fprintf(a.out, "Throughput       : %.2f ops/sec\n", float64(totalOps)/duration.Seconds())
			a.printMetrics()

			return firstErr
		},
	}
}
