// Package routefile handles coordinate ingestion and route output for the
// optimizer: plain-text coordinate lists, XLSX spreadsheets, and the
// optimized-route file format.
//
// Text input format:
//   - one coordinate pair per line, "lat,lon" or "lat lon";
//   - lines starting with '#' are comments; blank lines are ignored;
//   - malformed or out-of-range lines are skipped and reported as Warning
//     values, never as errors - a partially dirty file still yields every
//     clean coordinate it contains.
//
// Output format (compatibility-documented, consumed by humans and by Read):
//
//	# Optimized GPS Route
//	# Total distance: <km, 2 decimals> km
//	# Number of points: <n>
//	# Format: latitude,longitude
//
//	<lat>,<lon>            // fixed 6-decimal precision, one pair per line
//
// The optimization core never sees this package; it consumes validated
// geo.Coordinate values only. All I/O and recovery of dirty input live here.
package routefile
