package routefile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/georoute/geo"
)

// WriteFile writes the optimized route to the file at path, creating or
// truncating it. See Write for the format.
func WriteFile(path string, tour []geo.Coordinate, total float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("routefile: create %s: %w", path, err)
	}

	if err = Write(f, tour, total); err != nil {
		_ = f.Close()

		return err
	}

	// Close errors matter on writes (deferred flush on some filesystems).
	if err = f.Close(); err != nil {
		return fmt.Errorf("routefile: close %s: %w", path, err)
	}

	return nil
}

// Write renders the optimized route: a commented header (title, total
// distance at 2 decimals, point count, format note), a blank separator
// line, then one "lat,lon" pair per line at fixed 6-decimal precision.
//
// The output round-trips through Read up to that precision.
//
// Complexity: O(n).
func Write(w io.Writer, tour []geo.Coordinate, total float64) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# Optimized GPS Route")
	fmt.Fprintf(bw, "# Total distance: %.2f km\n", total)
	fmt.Fprintf(bw, "# Number of points: %d\n", len(tour))
	fmt.Fprintln(bw, "# Format: latitude,longitude")
	fmt.Fprintln(bw)

	var i int
	for i = 0; i < len(tour); i++ {
		fmt.Fprintf(bw, "%.6f,%.6f\n", tour[i].Lat, tour[i].Lon)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("routefile: write: %w", err)
	}

	return nil
}
