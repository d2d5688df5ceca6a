// Package main runs seeded headless simulations across a range of body
// counts and reports termination-time statistics.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/smash/config"
	"github.com/pthm-cable/smash/game"
)

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	counts := flag.String("counts", "2,4,8,16", "Comma-separated body counts to sweep")
	runs := flag.Int("runs", 20, "Runs per body count")
	seed := flag.Int64("seed", 1, "Base RNG seed; run i uses seed+i")
	maxTicks := flag.Int("max-ticks", 1000000, "Per-run tick cap")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	bodyCounts, err := parseCounts(*counts)
	if err != nil {
		log.Fatalf("invalid -counts: %v", err)
	}

	fmt.Printf("%8s %8s %12s %12s %12s %12s\n",
		"bodies", "runs", "ticks_mean", "ticks_std", "ticks_p50", "capped")

	for _, n := range bodyCounts {
		config.Cfg().SetBodyCount(n)

		ticks := make([]float64, 0, *runs)
		capped := 0

		for i := 0; i < *runs; i++ {
			g, err := game.NewGame(game.Options{
				Seed:           *seed + int64(i),
				Headless:       true,
				StepsPerUpdate: 64,
			}, nil)
			if err != nil {
				log.Fatalf("bodies=%d run=%d: %v", n, i, err)
			}

			for !g.Terminated() && int(g.Tick()) < *maxTicks {
				g.UpdateHeadless()
			}
			if !g.Terminated() {
				capped++
			}

			ticks = append(ticks, float64(g.Tick()))
			g.Close()
		}

		sort.Float64s(ticks)
		mean := stat.Mean(ticks, nil)
		std := 0.0
		if len(ticks) > 1 {
			std = stat.StdDev(ticks, nil)
		}
		p50 := stat.Quantile(0.5, stat.Empirical, ticks, nil)

		fmt.Printf("%8d %8d %12.0f %12.0f %12.0f %12d\n",
			n, *runs, mean, std, p50, capped)
	}
}

// parseCounts parses a comma-separated list of positive body counts.
func parseCounts(s string) ([]int, error) {
	var counts []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, fmt.Errorf("body count %d out of range", n)
		}
		counts = append(counts, n)
	}
	return counts, nil
}
