// Package feed reads the scheduled-trips CSV feed.
//
// The feed is typically a published spreadsheet reachable over HTTP, but a
// local file path works too. Header names can be remapped before decoding
// so that form-generated columns ("Primera parada") line up with the
// canonical schema.
package feed
