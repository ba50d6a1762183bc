package routefile

import "fmt"

// Warning describes one skipped input line or spreadsheet row. Warnings
// are data, not errors: callers decide whether and where to surface them.
type Warning struct {
	// Line is the 1-based line number (text input) or row number (XLSX).
	Line int

	// Text is the offending raw content, trimmed.
	Text string

	// Reason says why the line was skipped, e.g. "invalid latitude 95".
	Reason string
}

// String renders the warning the way the CLI prints it.
func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s, skipping: %s", w.Line, w.Reason, w.Text)
}
