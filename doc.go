// Package georoute turns an unordered set of GPS coordinates into an
// approximately-shortest closed tour over the great-circle metric.
//
// 🚀 What is georoute?
//
//	A small, deterministic route-optimization toolkit:
//		• geo          — Coordinate value type + Haversine great-circle distance
//		• route        — tour evaluation, exhaustive search, nearest-neighbor,
//		                 2-opt local search, and an automatic method selector
//		• routefile    — text/XLSX coordinate ingestion and route file output
//		• cmd/georoute — command-line front end over the packages above
//
// ✨ Why choose georoute?
//
//   - Deterministic – same input, same tour; no hidden randomness
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest costs – every total is a stabilized great-circle sum in km
//   - Extensible – solvers share one index-tour representation
//
// Quick example:
//
//	pts := []geo.Coordinate{
//	    {Lat: 40.7128, Lon: -74.0060}, // New York
//	    {Lat: 41.8781, Lon: -87.6298}, // Chicago
//	    {Lat: 39.9526, Lon: -75.1652}, // Philadelphia
//	}
//	res, err := route.Optimize(pts, route.DefaultOptions())
//	if err != nil { ... }
//	fmt.Printf("%.2f km via %s\n", res.Distance, res.Method)
package georoute
