// Package viajes converts a tabular feed of scheduled trips into a GeoJSON
// FeatureCollection ready for map rendering.
//
// A run flows through four stages, each with its own failure policy:
//
//   - Validation: rows missing destination, origin or trip id, dated in the
//     past, or already departed today are rejected and counted, never fatal.
//   - Geocoding: each stop resolves through a persistent place cache backed
//     by Nominatim. A stop that cannot resolve rejects its whole trip; a
//     cached miss is never retried against the provider.
//   - Routing: OSRM produces the trip path; any routing failure degrades to
//     a straight line through the stops.
//   - Publish: outputs are written locally, then committed and pushed. Only
//     cache corruption at startup and push failure are run-fatal.
//
// The geocode cache is the single piece of cross-run state. It is loaded
// once, passed explicitly to the components that need it and saved
// atomically at the end of the run.
package viajes
