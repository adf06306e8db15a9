// hashlife-bench is a benchmark and stress test for the hashlife package.
// It advances well-known patterns by large generation counts and measures
// the cost of the forward recursion, point queries and store collection.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/phroun/hashlife"
	"github.com/phroun/hashlife/naive"
	"github.com/phroun/hashlife/pattern"
)

const (
	gunGenerations      = 1 << 20
	methuselahGens      = 1 << 14
	naiveCompareGens    = 256
	pointQueries        = 100000
	repeatedStepsPerRun = 1000
)

// BenchResult is one row of the summary table.
type BenchResult struct {
	Name        string
	Duration    time.Duration
	Ops         int   // repeated operations, for per-op rates
	Generations int64 // generations simulated, for gens/sec
	Extra       string
}

func (r BenchResult) String() string {
	cols := []string{fmt.Sprintf("%-40s %12v", r.Name, r.Duration.Round(time.Microsecond))}
	secs := r.Duration.Seconds()
	if r.Generations > 0 && secs > 0 {
		cols = append(cols, fmt.Sprintf("%14.0f gens/sec", float64(r.Generations)/secs))
	}
	if r.Ops > 0 && secs > 0 {
		cols = append(cols, fmt.Sprintf("(%d ops, %.2f ops/sec)", r.Ops, float64(r.Ops)/secs))
	}
	if r.Extra != "" {
		cols = append(cols, r.Extra)
	}
	return strings.Join(cols, "  ")
}

func main() {
	fmt.Println("HashLife Benchmark and Stress Test")
	fmt.Println("==================================")
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Println()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var results []BenchResult

	runBench := func(name string, fn func() (BenchResult, error)) {
		fmt.Printf("  %-40s ", name+"...")
		result, err := fn()
		if err != nil {
			fmt.Printf("failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%v\n", result.Duration.Round(time.Microsecond))
		results = append(results, result)
	}

	fmt.Println("Large jumps:")
	runBench("Gosper gun, 2^20 generations", func() (BenchResult, error) {
		return benchJump(logger, "gosper-gun", gunGenerations)
	})
	runBench("Acorn, 2^14 generations", func() (BenchResult, error) {
		return benchJump(logger, "acorn", methuselahGens)
	})

	fmt.Println("\nSingle steps:")
	runBench("R-pentomino, 1000 x Step", func() (BenchResult, error) {
		return benchSteps(logger, "r-pentomino", repeatedStepsPerRun)
	})

	fmt.Println("\nReference comparison:")
	runBench("Naive simulator, 256 generations", func() (BenchResult, error) {
		return benchNaive("r-pentomino", naiveCompareGens)
	})
	runBench("HashLife, 256 generations", func() (BenchResult, error) {
		return benchJump(logger, "r-pentomino", naiveCompareGens)
	})

	fmt.Println("\nQueries and maintenance:")
	runBench("Point queries on a 2^20 gun", func() (BenchResult, error) {
		return benchQueries(logger)
	})
	runBench("Collect after 2^14 acorn", func() (BenchResult, error) {
		return benchCollect(logger)
	})

	fmt.Println()
	fmt.Println("Results")
	fmt.Println("=======")
	for _, r := range results {
		fmt.Println(r)
	}
}

func load(logger *slog.Logger, name string) (*hashlife.Universe, error) {
	p, err := pattern.Builtin(name)
	if err != nil {
		return nil, err
	}
	return hashlife.New(p.Rows, p.Cols, p.Cells, hashlife.Options{Logger: logger})
}

func benchJump(logger *slog.Logger, name string, gens int64) (BenchResult, error) {
	u, err := load(logger, name)
	if err != nil {
		return BenchResult{}, err
	}

	start := time.Now()
	if err := u.Advance(gens); err != nil {
		return BenchResult{}, err
	}
	stats := u.Store().Stats()

	return BenchResult{
		Name:        fmt.Sprintf("%s +%d", name, gens),
		Duration:    time.Since(start),
		Generations: gens,
		Extra:       fmt.Sprintf("population %d, nodes %d, results %d", u.Population(), stats.Nodes, stats.Results),
	}, nil
}

func benchSteps(logger *slog.Logger, name string, steps int) (BenchResult, error) {
	u, err := load(logger, name)
	if err != nil {
		return BenchResult{}, err
	}

	start := time.Now()
	for i := 0; i < steps; i++ {
		if err := u.Step(); err != nil {
			return BenchResult{}, err
		}
	}
	stats := u.Store().Stats()

	return BenchResult{
		Name:        fmt.Sprintf("%s Step x%d", name, steps),
		Duration:    time.Since(start),
		Ops:         steps,
		Generations: int64(steps),
		Extra:       fmt.Sprintf("hits %d, misses %d", stats.CacheHits, stats.CacheMisses),
	}, nil
}

func benchNaive(name string, gens int64) (BenchResult, error) {
	p, err := pattern.Builtin(name)
	if err != nil {
		return BenchResult{}, err
	}
	g := naive.New(p.Rows, p.Cols, p.Cells)

	start := time.Now()
	g.Advance(gens)

	return BenchResult{
		Name:        fmt.Sprintf("naive %s +%d", name, gens),
		Duration:    time.Since(start),
		Generations: gens,
		Extra:       fmt.Sprintf("population %d", g.Population()),
	}, nil
}

func benchQueries(logger *slog.Logger) (BenchResult, error) {
	u, err := load(logger, "gosper-gun")
	if err != nil {
		return BenchResult{}, err
	}
	if err := u.Advance(gunGenerations); err != nil {
		return BenchResult{}, err
	}
	box, ok := u.BoundingBox()
	if !ok {
		return BenchResult{}, fmt.Errorf("gun died out")
	}

	live := 0
	start := time.Now()
	for n := 0; n < pointQueries; n++ {
		i := box.Top + int64(n*7919)%box.Rows
		j := box.Left + int64(n*104729)%box.Cols
		if u.Get(i, j) {
			live++
		}
	}

	return BenchResult{
		Name:     "Point queries",
		Duration: time.Since(start),
		Ops:      pointQueries,
		Extra:    fmt.Sprintf("%d live", live),
	}, nil
}

func benchCollect(logger *slog.Logger) (BenchResult, error) {
	u, err := load(logger, "acorn")
	if err != nil {
		return BenchResult{}, err
	}
	if err := u.Advance(methuselahGens); err != nil {
		return BenchResult{}, err
	}
	before := u.Store().Len()

	start := time.Now()
	stats := u.Collect()

	return BenchResult{
		Name:     "Collect",
		Duration: time.Since(start),
		Extra:    fmt.Sprintf("nodes %d -> %d, swept %d", before, u.Store().Len(), stats.Swept),
	}, nil
}
