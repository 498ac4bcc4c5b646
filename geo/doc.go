// Package geo defines the GeoJSON types written by the pipeline.
package geo
