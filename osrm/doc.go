// Package osrm is a minimal client for the OSRM route service.
package osrm
