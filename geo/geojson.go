package geo

// Geometry is a GeoJSON geometry. Coordinates are [lon, lat] pairs.
// The pipeline only ever emits LineString geometries, either as returned
// by the routing provider or synthesized from stop coordinates.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// LineString builds a LineString geometry from [lon, lat] pairs.
func LineString(coords [][]float64) Geometry {
	return Geometry{Type: "LineString", Coordinates: coords}
}

// FeatureProperties carries the display attributes of one trip.
// Field names follow the published viajes.geojson schema consumed by the map.
type FeatureProperties struct {
	Name        string `json:"name"`
	ViajeID     string `json:"viaje_id"`
	Fecha       string `json:"fecha"`
	HoraSalida  string `json:"hora_salida"`
	HoraLlegada string `json:"hora_llegada"`
	Origen      string `json:"origen"`
	Destino     string `json:"destino"`
	Paradas     string `json:"paradas"`
	NumParadas  int    `json:"num_paradas"`
}

// Feature is a single GeoJSON feature.
type Feature struct {
	Type       string            `json:"type"`
	Geometry   Geometry          `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// FeatureCollection is the root GeoJSON document. Features keep the order
// in which trips were processed.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection returns an empty collection. Features is non-nil so
// an empty run serializes as "features": [] rather than null.
func NewFeatureCollection() *FeatureCollection {
	return &FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}
}
