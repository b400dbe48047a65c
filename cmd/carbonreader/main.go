package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sukhman0345/theCarbonivore/src/aggregate"
	"github.com/sukhman0345/theCarbonivore/src/config"
	"github.com/sukhman0345/theCarbonivore/src/contact"
	"github.com/sukhman0345/theCarbonivore/src/dataset"
)

// carbonreader is the headless companion to the dashboard: load a dataset
// CSV, optionally filter it, and print the emission summaries on stdout.
func main() {
	var cfgPath, dataPath, areasArg, yearsArg, contactsDB string
	var top int
	flag.StringVar(&cfgPath, "config", "carbonivore.yaml", "Path to config file")
	flag.StringVar(&dataPath, "data", "", "Override cleaned dataset CSV path")
	flag.StringVar(&areasArg, "areas", "", "Comma-separated area filter (default all)")
	flag.StringVar(&yearsArg, "years", "", "Comma-separated year filter (default all)")
	flag.IntVar(&top, "top", 10, "Number of top emitters to print")
	flag.StringVar(&contactsDB, "contacts", "", "Optional contacts database to summarize")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if dataPath != "" {
		cfg.Data.CleanedPath = dataPath
	}

	t, err := dataset.Load(cfg.Data.CleanedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	sel := dataset.AllSelection(t)
	if areasArg != "" {
		sel.Areas = splitList(areasArg)
	}
	if yearsArg != "" {
		sel.Years = parseYearList(yearsArg)
	}
	filtered := t.Filter(sel)

	fmt.Printf("Rows: %d (of %d)\n", filtered.Len(), t.Len())
	fmt.Printf("Areas: %d  Years: %d\n", len(filtered.DistinctAreas()), len(filtered.DistinctYears()))

	g, err := aggregate.GroupSum(filtered, dataset.ColTotalEmission)
	if err == nil {
		g, err = aggregate.TopN(g, dataset.ColTotalEmission, top, false)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nTop %d emitters (total_emission, kt):\n", g.Len())
	for i, area := range g.Keys {
		v, _ := g.Value(dataset.ColTotalEmission, i)
		fmt.Printf("%3d. %-40s %14.1f\n", i+1, area, v)
	}

	m, err := aggregate.CorrelationMatrix(filtered,
		dataset.ColTotalEmission, dataset.ColRuralPopulation, dataset.ColUrbanPopulation, dataset.ColOnFarmEnergyUse)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nCorrelation with %s:\n", dataset.ColTotalEmission)
	for i, col := range m.Columns {
		if i == 0 {
			continue
		}
		fmt.Printf("  %-30s %6.3f\n", col, m.M[0][i])
	}

	if contactsDB != "" {
		store, err := contact.Open(contactsDB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		n, err := store.Count(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nContact submissions: %d\n", n)
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseYearList(s string) []int {
	out := make([]int, 0, 8)
	for _, p := range splitList(s) {
		y, err := strconv.Atoi(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: bad year %q\n", p)
			os.Exit(1)
		}
		out = append(out, y)
	}
	return out
}
