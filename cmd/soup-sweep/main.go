// Command soup-sweep runs random Life soups over a range of seeds and
// densities and reports how long each takes to settle.
package main

import (
	"flag"
	"fmt"
	"hash/fnv"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"gridlife/pkg/sims/life"
)

type soup struct {
	seed    int64
	density float64
}

func (s soup) String() string {
	return fmt.Sprintf("seed=%d density=%.2f", s.seed, s.density)
}

type soupResult struct {
	soup       soup
	settled    bool
	settleGen  uint64
	period     uint64
	population int
	peak       int
}

func main() {
	steps := flag.Int("steps", 2000, "generation limit per soup")
	seeds := flag.Int("seeds", 16, "number of seeds to try, starting at 1")
	densities := flag.String("densities", "0.2,0.35,0.5", "comma separated initial densities")
	size := flag.Int("size", 64, "board width and height")
	wrap := flag.Bool("wrap", true, "wrap board edges")
	rule := flag.String("rule", life.Conway.String(), "life-like rule")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	dens, err := parseDensities(*densities)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	base := life.DefaultConfig()
	base.Width = *size
	base.Height = *size
	base.Wrap = *wrap
	base.Rule = *rule
	if _, err := life.NewWithConfig(base); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var soups []soup
	for seed := int64(1); seed <= int64(*seeds); seed++ {
		for _, d := range dens {
			soups = append(soups, soup{seed: seed, density: d})
		}
	}

	fmt.Printf("Sweeping %d soups on %dx%d %s (%d workers, %d steps)\n",
		len(soups), base.Width, base.Height, base.Rule, *workers, *steps)

	start := time.Now()
	all := sweep(base, soups, *steps, *workers)
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool {
		if all[i].settled != all[j].settled {
			return !all[i].settled
		}
		return all[i].settleGen > all[j].settleGen
	})

	unsettled := 0
	for _, res := range all {
		if !res.settled {
			unsettled++
		}
	}

	fmt.Printf("\nLongest lived (elapsed %s, %d/%d unsettled):\n", elapsed.Round(time.Millisecond), unsettled, len(all))
	for i := 0; i < len(all) && i < 5; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}
}

func (r soupResult) String() string {
	if !r.settled {
		return fmt.Sprintf("unsettled pop=%d peak=%d %s", r.population, r.peak, r.soup)
	}
	return fmt.Sprintf("gen=%d period=%d pop=%d peak=%d %s", r.settleGen, r.period, r.population, r.peak, r.soup)
}

func parseDensities(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.ParseFloat(part, 64)
		if err != nil || d < 0 || d > 1 {
			return nil, fmt.Errorf("density %q: want a number in [0,1]", part)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no densities in %q", s)
	}
	return out, nil
}

func sweep(base life.Config, soups []soup, steps, workers int) []soupResult {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan soup)
	results := make(chan soupResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- runSoup(base, s, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, s := range soups {
			jobs <- s
		}
		close(jobs)
	}()

	all := make([]soupResult, 0, len(soups))
	for res := range results {
		all = append(all, res)
	}
	return all
}

// runSoup evolves one soup until a board state repeats or steps run out. A
// repeat at distance 1 is a still life (or extinction); longer distances are
// oscillator periods.
func runSoup(base life.Config, s soup, steps int) soupResult {
	cfg := base
	cfg.Seed = s.seed
	cfg.Density = s.density
	cfg.Pattern = ""
	cfg.Workers = 1

	sim, err := life.NewWithConfig(cfg)
	if err != nil {
		return soupResult{soup: s}
	}
	sim.Reset(s.seed)
	engine := sim.Engine()

	res := soupResult{soup: s, peak: engine.Population()}
	seen := map[uint64]uint64{}
	var states []uint8
	for {
		states = engine.States(states[:0])
		key := hashStates(states)
		if first, ok := seen[key]; ok {
			res.settled = true
			res.settleGen = first
			res.period = engine.Generation() - first
			break
		}
		seen[key] = engine.Generation()
		if engine.Generation() >= uint64(steps) {
			break
		}
		engine.Step()
		res.peak = max(res.peak, engine.Population())
	}
	res.population = engine.Population()
	return res
}

func hashStates(states []uint8) uint64 {
	h := fnv.New64a()
	h.Write(states)
	return h.Sum64()
}
