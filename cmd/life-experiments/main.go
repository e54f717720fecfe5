package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"time"

	"cli-life/internal/app"
	"cli-life/internal/settings"
)

func main() {
	settingsPath := flag.String("settings", "", "settings file (YAML or JSON); empty uses defaults")
	data := flag.String("data", "data.txt", "table output path")
	var overrides app.KVList
	flag.Var(&overrides, "set", "setting override in key=value form (repeatable)")
	flag.Parse()

	s := settings.DefaultSettings()
	if *settingsPath != "" {
		loaded, err := settings.Load(*settingsPath)
		if err != nil {
			log.Fatalf("load settings: %v", err)
		}
		s = loaded
	}
	if err := s.Override(overrides.Map()); err != nil {
		log.Fatalf("apply overrides: %v", err)
	}

	exp := s.Experiment()
	fmt.Printf("Running %d densities on %dx%d for %d generations\n", len(exp.Densities), exp.Width, exp.Height, exp.Generations)

	start := time.Now()
	result, err := app.RunExperiments(os.Stdout, s, *data)
	if err != nil {
		log.Fatalf("experiments: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nSummary (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, d := range result.Densities() {
		series, _ := result.Series(d)
		if len(series) == 0 {
			continue
		}
		fmt.Printf("density %-4g start=%d end=%d peak=%d low=%d\n",
			d, series[0], series[len(series)-1], slices.Max(series), slices.Min(series))
	}
	fmt.Printf("Table written to %s\n", *data)
}
