package viajes

import (
	"go.uber.org/zap"

	"github.com/Mammogram7685/maps/geo"
	"github.com/Mammogram7685/maps/osrm"
)

// RouteFetcher produces candidate routes for an ordered [lon, lat]
// coordinate list. An empty list means no route. Satisfied by *osrm.Client.
type RouteFetcher interface {
	Route(coords [][]float64) ([]osrm.Route, error)
}

// RouteResolver turns an ordered list of resolved stops into a path
// geometry. Provider failures degrade to a straight line through the
// stops; resolution itself never fails.
type RouteResolver struct {
	fetcher RouteFetcher
	logger  *zap.Logger
}

// NewRouteResolver creates a RouteResolver over the given provider.
func NewRouteResolver(fetcher RouteFetcher, logger *zap.Logger) *RouteResolver {
	return &RouteResolver{fetcher: fetcher, logger: logger}
}

// Resolve requests one multi-stop route visiting the points in order and
// returns its geometry. On any provider failure, or when the provider
// returns no candidates, it falls back to a LineString connecting the
// points. routed reports whether the geometry came from the provider.
func (r *RouteResolver) Resolve(viajeID string, points []*GeoPoint) (geom geo.Geometry, routed bool) {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Lon, p.Lat}
	}

	routes, err := r.fetcher.Route(coords)
	if err != nil {
		r.logger.Warn("OSRM fallo; uso polilinea por puntos",
			zap.String("viaje_id", viajeID),
			zap.Error(err),
		)
		return geo.LineString(coords), false
	}
	if len(routes) == 0 {
		r.logger.Warn("OSRM sin rutas; uso polilinea por puntos",
			zap.String("viaje_id", viajeID),
		)
		return geo.LineString(coords), false
	}
	return routes[0].Geometry, true
}
