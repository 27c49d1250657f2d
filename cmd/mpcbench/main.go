// Command mpcbench times proof-mode MPC AND-gate evaluations (ANDProof)
// under each gf2 kernel tier, optionally rendering a go-echarts HTML
// comparison of the scalar/128-bit/256-bit tiers.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fishbegol/mpccore/gf2"
	"github.com/fishbegol/mpccore/internal/cpufeature"
	"github.com/fishbegol/mpccore/internal/fingerprint"
	"github.com/fishbegol/mpccore/mpc"
	"github.com/fishbegol/mpccore/prof"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func main() {
	width := flag.Int("width", 1024, "column width (bits) of the vectors under test")
	trials := flag.Int("trials", 200, "number of AND-gate round trips per tier")
	seedHex := flag.String("seed", "", "hex-encoded PRNG seed (random 16 bytes if empty)")
	chartPath := flag.String("chart", "", "if set, write an HTML tier-comparison chart to this path")
	flag.Parse()

	var seed []byte
	if *seedHex != "" {
		decoded, err := hex.DecodeString(*seedHex)
		if err != nil {
			log.Fatalf("mpcbench: parse -seed: %v", err)
		}
		seed = decoded
	} else {
		seed = make([]byte, 16)
		if _, err := rand.Read(seed); err != nil {
			log.Fatalf("mpcbench: generate seed: %v", err)
		}
	}

	adapter, err := mpc.NewPRNGAdapter(seed)
	if err != nil {
		log.Fatalf("mpcbench: seed PRNG: %v", err)
	}

	tiers := []struct {
		name string
		f    cpufeature.Features
	}{
		{"scalar", cpufeature.Features{}},
		{"sse2+sse41", cpufeature.Features{SSE2: true, SSE41: true}},
		{"avx2", cpufeature.Features{SSE2: true, SSE41: true, AVX2: true}},
	}

	results := make(map[string]time.Duration, len(tiers))
	for _, tier := range tiers {
		restore := cpufeature.ForceFeatures(tier.f)
		prof.Reset()
		digest := runANDTrials(*width, *trials, adapter)
		entries := prof.SnapshotAndReset()
		var total time.Duration
		for _, e := range entries {
			total += e.Dur
		}
		results[tier.name] = total
		restore()
		log.Printf("tier=%-12s trials=%d total=%s avg=%s result=%s", tier.name, *trials, total, total/time.Duration(*trials), digest)
	}

	if *chartPath != "" {
		if err := renderChart(*chartPath, tiers, results); err != nil {
			log.Fatalf("mpcbench: render chart: %v", err)
		}
		log.Printf("chart written to %s", *chartPath)
	}
}

// runANDTrials runs trials round trips of ANDProof and returns a
// diagnostic fingerprint of the last trial's reconstructed result, so a
// run's log line can be compared across tiers/hosts without dumping raw
// limbs (see internal/fingerprint; this is a log label, not a proof
// transcript hash).
func runANDTrials(width, trials int, adapter *mpc.PRNGAdapter) fingerprint.Digest {
	x := gf2.Alloc(width)
	gf2.Randomize(x, adapter)
	y := gf2.Alloc(width)
	gf2.Randomize(y, adapter)

	var digest fingerprint.Digest
	for t := 0; t < trials; t++ {
		start := time.Now()

		xs, err := mpc.InitShareVector(x, adapter)
		if err != nil {
			log.Fatalf("mpcbench: InitShareVector: %v", err)
		}
		ys, err := mpc.InitShareVector(y, adapter)
		if err != nil {
			log.Fatalf("mpcbench: InitShareVector: %v", err)
		}
		r := mpc.InitRandomVector(width, mpc.SCProof, adapter)
		res := mpc.InitEmptyShareVector(width, mpc.SCProof)
		view := mpc.NewView(width, mpc.SCProof)
		if err := mpc.ANDProof(res, xs, ys, r, view, 0); err != nil {
			log.Fatalf("mpcbench: ANDProof: %v", err)
		}

		prof.Track(start, "and-round-trip")

		if t == trials-1 {
			z, err := mpc.Reconstruct(res)
			if err != nil {
				log.Fatalf("mpcbench: Reconstruct: %v", err)
			}
			digest = fingerprint.OfLimbs("and-round-trip", z.Limbs())
		}
	}
	return digest
}

func renderChart(path string, tiers []struct {
	name string
	f    cpufeature.Features
}, results map[string]time.Duration) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "gf2 kernel tier comparison"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "mpcbench", Width: "900px", Height: "500px"}),
	)
	labels := make([]string, len(tiers))
	data := make([]opts.BarData, len(tiers))
	for i, tier := range tiers {
		labels[i] = tier.name
		data[i] = opts.BarData{Value: results[tier.name].Microseconds()}
	}
	bar.SetXAxis(labels).AddSeries("total µs", data)

	page := components.NewPage()
	page.AddCharts(bar)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return page.Render(f)
}
