// Command georoute optimizes a GPS route: it reads coordinates from a text
// or XLSX file, finds an approximately-shortest closed tour through all of
// them, prints the visiting order, and optionally writes the optimized
// route back to a file.
//
// Usage:
//
//	georoute -input coordinates.txt
//	georoute -input coords.txt -output optimized_route.txt
//	georoute -input coords.txt -method 2opt
//	georoute -input points.xlsx -sheet Stops -method brute_force
//
// Configuration is read from the environment (a local .env file is loaded
// when present): GEOROUTE_BRUTE_FORCE_MAX overrides the input size up to
// which the auto method uses exhaustive search.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/georoute/geo"
	"github.com/katalvlaran/georoute/route"
	"github.com/katalvlaran/georoute/routefile"
)

func main() {
	log.SetFlags(0)

	var (
		input  = flag.String("input", "", "input file containing GPS coordinates (text or .xlsx)")
		output = flag.String("output", "", "output file for the optimized route")
		method = flag.String("method", "auto", "optimization method: auto|brute_force|nearest_neighbor|2opt")
		sheet  = flag.String("sheet", "", "sheet name for spreadsheet input (default: first sheet)")
		quiet  = flag.Bool("quiet", false, "suppress detailed output")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	// .env is optional for local runs; real environments set variables
	// directly, so a missing file is not worth a warning under -quiet.
	_ = godotenv.Load()

	m, err := route.ParseMethod(*method)
	if err != nil {
		log.Fatalf("invalid -method %q (want auto|brute_force|nearest_neighbor|2opt)", *method)
	}

	opts := route.DefaultOptions()
	opts.Method = m
	if v := os.Getenv("GEOROUTE_BRUTE_FORCE_MAX"); v != "" {
		limit, convErr := strconv.Atoi(v)
		if convErr != nil || limit < 0 {
			log.Fatalf("invalid GEOROUTE_BRUTE_FORCE_MAX %q: want a non-negative integer", v)
		}
		opts.BruteForceMax = limit
	}

	if !*quiet {
		log.Printf("Reading coordinates from %q...", *input)
	}

	coords, warns, err := readInput(*input, *sheet)
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range warns {
		log.Printf("Warning: %s", w)
	}
	if len(coords) == 0 {
		log.Fatal("no valid coordinates found in input file")
	}
	if !*quiet {
		log.Printf("Found %d valid coordinates", len(coords))
		log.Printf("Optimizing route using %q method...", m)
	}

	res, err := route.Optimize(coords, opts)
	if err != nil {
		log.Fatal(err)
	}

	if *quiet {
		fmt.Printf("Total distance: %.2f km\n", res.Distance)
	} else {
		printRoute(res)
	}

	if *output != "" {
		if err = routefile.WriteFile(*output, res.Tour, res.Distance); err != nil {
			log.Fatal(err)
		}
		if !*quiet {
			log.Printf("Route saved to %q", *output)
		}
	}
}

// readInput routes spreadsheet extensions to the XLSX reader and
// everything else to the text reader.
func readInput(path, sheet string) ([]geo.Coordinate, []routefile.Warning, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return routefile.ReadXLSX(path, sheet)
	default:
		return routefile.ReadFile(path)
	}
}

// printRoute renders the optimized route with 1-based indices and the
// closing return-to-start line.
func printRoute(res route.Result) {
	fmt.Printf("\nOptimized route using %s method:\n", res.Method)
	fmt.Printf("Number of points: %d\n", len(res.Tour))
	fmt.Printf("Total distance: %.2f km\n", res.Distance)

	fmt.Println("\nRoute order:")
	for i, c := range res.Tour {
		fmt.Printf("  %2d. (%8.4f, %9.4f)\n", i+1, c.Lat, c.Lon)
	}
	if len(res.Tour) > 0 {
		fmt.Printf("  Return to start: (%8.4f, %9.4f)\n", res.Tour[0].Lat, res.Tour[0].Lon)
	}
}
