package routefile

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/georoute/geo"
)

// ReadXLSX reads GPS coordinates from an XLSX spreadsheet.
//
// Layout: latitude in the first column, longitude in the second; extra
// columns are ignored. An empty sheet name selects the workbook's first
// sheet. If the first row does not parse as a coordinate it is treated as
// a header and skipped silently; every other dirty row is skipped with a
// Warning carrying its 1-based row number, mirroring the text reader.
//
// Errors: unopenable file or missing sheet (wrapped excelize errors).
//
// Complexity: O(rows).
func ReadXLSX(path, sheet string) ([]geo.Coordinate, []Warning, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("routefile: open %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("routefile: sheet %q: %w", sheet, err)
	}

	var (
		coords []geo.Coordinate
		warns  []Warning
	)

	var (
		i      int
		row    []string
		c      geo.Coordinate
		reason string
	)
	for i = 0; i < len(rows); i++ {
		row = rows[i]

		// Empty rows in spreadsheets are padding, not data.
		if len(row) == 0 {
			continue
		}
		if len(row) < 2 {
			if i == 0 {
				continue // header stub
			}
			warns = append(warns, Warning{Line: i + 1, Text: rowText(row), Reason: "invalid format"})

			continue
		}

		c, reason = parseCoordinate(row[0], row[1])
		if reason != "" {
			if i == 0 {
				continue // first row with non-numeric cells is a header
			}
			warns = append(warns, Warning{Line: i + 1, Text: rowText(row), Reason: reason})

			continue
		}

		coords = append(coords, c)
	}

	return coords, warns, nil
}

// rowText joins the first cells of a row for warning messages.
func rowText(row []string) string {
	if len(row) == 0 {
		return ""
	}
	out := row[0]
	if len(row) > 1 {
		out += "," + row[1]
	}

	return out
}
