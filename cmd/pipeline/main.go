package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"

	"fusioncost/pkg/core/costing"
	"fusioncost/pkg/core/scenario"
	"fusioncost/pkg/core/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	dir := flag.Bool("dir", false, "treat the argument as a directory of scenarios")
	strict := flag.Bool("strict", false, "fail on power-balance violations instead of warning")
	persist := flag.Bool("persist", false, "save results to the run store (requires DATABASE_URL)")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: pipeline [-dir] [-strict] [-persist] <scenario file or directory>")
	}

	var scenarios []scenario.Scenario
	if *dir {
		loaded, err := scenario.LoadDir(flag.Arg(0))
		if err != nil {
			log.Fatalf("Loading scenarios failed: %v", err)
		}
		scenarios = loaded
	} else {
		loaded, err := scenario.Load(flag.Arg(0))
		if err != nil {
			log.Fatalf("Loading scenario failed: %v", err)
		}
		scenarios = []scenario.Scenario{loaded}
	}

	ctx := context.Background()
	var repo *store.RunRepo
	if *persist {
		if err := store.InitDB(ctx); err != nil {
			log.Fatalf("Run store unavailable: %v", err)
		}
		defer store.Close()
		repo = store.NewRunRepo()
	}

	pipeline := costing.NewCostingPipeline()
	if *strict {
		pipeline.SetValidationConfig(costing.ValidationConfig{
			EnableStrictValidation: true,
			PowerTolerance:         1e-9,
		})
	}

	failed := 0
	for _, s := range scenarios {
		fmt.Printf("=== %s ===\n", s.Name)
		results, err := pipeline.Run(s.Config)
		if err != nil {
			log.Printf("Scenario %s failed: %v", s.Name, err)
			failed++
			continue
		}
		printResults(results)

		if repo != nil {
			runID, err := repo.Save(ctx, s.Name, s.Config, results)
			if err != nil {
				log.Printf("Persisting %s failed: %v", s.Name, err)
				failed++
				continue
			}
			fmt.Printf("Saved run %s\n", runID)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// printResults writes the power balance, the account breakdown and the
// summary totals in a stable order.
func printResults(results map[string]interface{}) {
	if pb, ok := results["power_balance"].(map[string]float64); ok {
		fmt.Printf("  Power: fusion %.1f MW | thermal %.1f MW | gross %.1f MW | net %.1f MW | Q_eng %.2f\n",
			pb["fusion_power"], pb["thermal_power"], pb["gross_electric"],
			pb["net_electric"], asF(results["q_eng"]))
	}

	keys := make([]string, 0, len(results))
	for k := range results {
		if _, ok := results[k].(float64); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-28s %12.2f\n", k, asF(results[k]))
	}
}

func asF(v interface{}) float64 {
	f, _ := v.(float64)
	return f
}
