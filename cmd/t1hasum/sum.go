package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/t1ha/internal/resource"
	"github.com/hupe1980/t1ha/internal/simd"
	"github.com/hupe1980/t1ha/t1ha0"
)

type sumOptions struct {
	algo       string
	seed       uint64
	seed2      uint64
	jobs       int
	mmap       bool
	decompress string
	rateLimit  int64
	memLimit   int64
}

func addSumFlags(cmd *cobra.Command, o *sumOptions) {
	fs := cmd.Flags()
	fs.StringVarP(&o.algo, "algo", "a", "t1ha2", "hash variant, see 'algos'")
	fs.Uint64VarP(&o.seed, "seed", "s", 0, "seed (accepts 0x prefix)")
	fs.Uint64Var(&o.seed2, "seed2", 0, "second seed for stream variants (default --seed)")
	fs.IntVarP(&o.jobs, "jobs", "j", 4, "files hashed in parallel")
	fs.BoolVar(&o.mmap, "mmap", true, "memory-map regular files")
	fs.StringVar(&o.decompress, "decompress", string(codecNone), "decompress inputs first: auto, none, gzip, zstd, lz4")
	fs.Int64Var(&o.rateLimit, "rate-limit", 0, "max read throughput in bytes/s (0 = unlimited)")
	fs.Int64Var(&o.memLimit, "mem-limit", 0, "max bytes buffered for in-memory inputs (0 = unlimited)")
}

func newSumCmd(a *app) *cobra.Command {
	o := &sumOptions{}
	cmd := &cobra.Command{
		Use:   "sum [FILE...]",
		Short: "Print digests of files (- for stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSum(cmd, a, o, args)
		},
	}
	addSumFlags(cmd, o)
	return cmd
}

// result is one input's outcome, kept in argument order.
type result struct {
	digest string
	err    error
}

func runSum(cmd *cobra.Command, a *app, o *sumOptions, args []string) error {
	algo, err := lookupAlgorithm(o.algo)
	if err != nil {
		return err
	}
	c, err := parseCodec(o.decompress)
	if err != nil {
		return err
	}
	if o.jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", o.jobs)
	}

	s := seeds{x: o.seed, y: o.seed}
	if cmd.Flags().Changed("seed2") {
		s.y = o.seed2
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	ctx := cmd.Context()

	if algo.name == "t1ha0" {
		a.log.LogDispatch(ctx, simd.ActiveISA().String(), t1ha0.Implementation().Name(), simd.IsOverridden())
	}

	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:   o.memLimit,
		MaxWorkers:         int64(o.jobs),
		IOLimitBytesPerSec: o.rateLimit,
	})
	cfg := inputConfig{
		stdin:      a.stdin,
		mmap:       o.mmap,
		decompress: c,
		rc:         rc,
	}
	log := a.log.WithAlgo(algo.name).WithSeed(s.x)

	results := make([]result, len(args))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range args {
		if err := rc.AcquireWorker(gctx); err != nil {
			break
		}
		g.Go(func() error {
			defer rc.ReleaseWorker()

			start := time.Now()
			d, n, err := hashFile(gctx, algo, s, name, cfg)
			log.WithFile(name).LogDigest(gctx, n, time.Since(start), err)
			results[i] = result{digest: d, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return report(a.stdout, a.stderr, args, results)
}

func report(stdout, stderr io.Writer, names []string, results []result) error {
	failed := 0
	for i, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(stderr, "t1hasum: %s: %v\n", names[i], r.err)
			continue
		}
		fmt.Fprintf(stdout, "%s  %s\n", r.digest, names[i])
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(results))
	}
	return nil
}

// hashFile opens name and digests it with algo.
func hashFile(ctx context.Context, algo *algorithm, s seeds, name string, cfg inputConfig) (string, int64, error) {
	src, err := openSource(ctx, name, cfg)
	if err != nil {
		return "", 0, err
	}
	defer src.Close()

	return digestSource(ctx, algo, s, src, cfg.rc)
}

func digestSource(ctx context.Context, algo *algorithm, s seeds, src *source, rc *resource.Controller) (string, int64, error) {
	if algo.streaming() {
		w := algo.newWriter(s)
		if src.mapped {
			_, _ = w.Write(src.data)
			return w.Digest(), int64(len(src.data)), nil
		}
		n, err := io.Copy(w, src.r)
		if err != nil {
			return "", n, err
		}
		return w.Digest(), n, nil
	}

	data := src.data
	if !src.mapped {
		buf, release, err := readBudgeted(ctx, src.r, src.size, rc)
		if err != nil {
			return "", 0, err
		}
		defer release()
		data = buf
	}
	return algo.sum(data, s), int64(len(data)), nil
}
