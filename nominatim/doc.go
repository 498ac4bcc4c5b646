// Package nominatim is a minimal client for the Nominatim geocoding API.
//
// Only the search endpoint is wrapped, constrained to a single best match
// and an optional country filter. Rate limiting is the caller's concern:
// the public instance requires an identifying User-Agent and at most one
// request per second, which the pipeline enforces with a fixed delay after
// every call.
package nominatim
