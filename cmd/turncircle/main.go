// Package main measures the turning circle of the simulated vehicle: for a
// sweep of held steering angles it drives one full circle, fits a circle to
// the path of the pivot and compares its radius with 1/curvature.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/carlike/components"
	"github.com/pthm-cable/carlike/config"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Config YAML file (empty = use defaults)")
	modeFlag := flag.String("mode", "3d", "Vehicle model: 3d or 2d")
	steps := flag.Int("steps", 8, "Steering angles per side")
	both := flag.Bool("both", true, "Also measure right turns")
	speed := flag.Float64("speed", 10, "Held speed")
	maxSteps := flag.Int("max-steps", 200000, "Cap on integration steps per angle")
	outputDir := flag.String("output", "", "Output directory for turncircle.csv (empty = print only)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	mode, ok := components.ParseMode(*modeFlag)
	if !ok {
		log.Fatalf("unknown mode %q", *modeFlag)
	}
	if *speed == 0 || *steps < 1 {
		log.Fatal("--speed must be non-zero and --steps positive")
	}

	run := Run{Mode: mode, Speed: *speed, DT: cfg.Physics.HeadlessDT, MaxSteps: *maxSteps}

	var results []Result
	fmt.Printf("%10s %10s %12s %12s %12s %10s\n", "angle", "curvature", "expected", "fitted", "rel_err", "residual")
	for _, angle := range sweepAngles(cfg.Steering.MaxAngle, *steps, *both) {
		res, err := run.Measure(cfg, angle)
		if err != nil {
			log.Printf("skipping: %v", err)
			continue
		}
		results = append(results, res)
		fmt.Printf("%10.4f %10.6f %12.4f %12.4f %12.2e %10.2e\n",
			res.SteeringAngle, res.Curvature, res.ExpectedRadius, res.FittedRadius, res.RelativeError, res.Residual)
	}

	if *outputDir == "" {
		return
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	path := filepath.Join(*outputDir, "turncircle.csv")
	if err := writeResults(path, results); err != nil {
		log.Fatalf("failed to write results: %v", err)
	}
	fmt.Printf("\nResults saved to: %s\n", path)
}

// writeResults writes the sweep as CSV.
func writeResults(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gocsv.MarshalFile(&results, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
