package routefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/georoute/geo"
)

// ReadFile reads GPS coordinates from the text file at path.
// See Read for the format and skipping rules.
func ReadFile(path string) ([]geo.Coordinate, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("routefile: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses coordinate lines from r.
//
// Accepted per line: "lat,lon" or whitespace-separated "lat lon". Blank
// lines and '#' comments are ignored. Lines with the wrong field count,
// unparsable numbers, or out-of-range values are skipped and reported in
// the returned warnings with their 1-based line number.
//
// An input with zero valid coordinates is not an error here; callers own
// that policy. The only error condition is a failing reader.
//
// Complexity: O(bytes read).
func Read(r io.Reader) ([]geo.Coordinate, []Warning, error) {
	var (
		coords  []geo.Coordinate
		warns   []Warning
		scanner = bufio.NewScanner(r)
		lineNum int
	)

	var (
		line   string
		parts  []string
		c      geo.Coordinate
		reason string
	)
	for scanner.Scan() {
		lineNum++
		line = strings.TrimSpace(scanner.Text())

		// Skip blanks and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Comma-separated first, then whitespace-separated.
		if strings.Contains(line, ",") {
			parts = strings.Split(line, ",")
		} else {
			parts = strings.Fields(line)
		}
		if len(parts) != 2 {
			warns = append(warns, Warning{Line: lineNum, Text: line, Reason: "invalid format"})

			continue
		}

		c, reason = parseCoordinate(parts[0], parts[1])
		if reason != "" {
			warns = append(warns, Warning{Line: lineNum, Text: line, Reason: reason})

			continue
		}

		coords = append(coords, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("routefile: read: %w", err)
	}

	return coords, warns, nil
}

// parseCoordinate parses a lat/lon string pair and validates the ranges.
// On failure it returns a non-empty human-readable reason; shared by the
// text and spreadsheet readers so both skip dirty rows identically.
func parseCoordinate(latStr, lonStr string) (geo.Coordinate, string) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return geo.Coordinate{}, "invalid number format"
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return geo.Coordinate{}, "invalid number format"
	}

	if lat < -90 || lat > 90 {
		return geo.Coordinate{}, fmt.Sprintf("invalid latitude %g", lat)
	}
	if lon < -180 || lon > 180 {
		return geo.Coordinate{}, fmt.Sprintf("invalid longitude %g", lon)
	}

	return geo.Coordinate{Lat: lat, Lon: lon}, ""
}
