package viajes

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Mammogram7685/maps/feed"
	"github.com/Mammogram7685/maps/geo"
)

// Pipeline orchestrates one run: validate each row, geocode its stops,
// resolve a route and collect the resulting features. Rejections are
// counted and logged, never fatal; rows are processed and emitted in
// source order.
type Pipeline struct {
	validator *Validator
	geocoder  *Geocoder
	router    *RouteResolver
	logger    *zap.Logger
}

// RunResult is the outcome of one pipeline run.
type RunResult struct {
	Features    *geo.FeatureCollection
	Descartados int
}

// NewPipeline assembles a pipeline. Every run logs under a fresh run id.
func NewPipeline(validator *Validator, geocoder *Geocoder, router *RouteResolver, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		validator: validator,
		geocoder:  geocoder,
		router:    router,
		logger:    logger.With(zap.String("run_id", uuid.NewString())),
	}
}

// Run processes the rows in order and returns the collected features plus
// the rejection count.
func (p *Pipeline) Run(rows []*feed.TripRow) *RunResult {
	fc := geo.NewFeatureCollection()
	descartados := 0

	for _, row := range rows {
		trip, reason := p.validator.Validate(row)
		if reason != "" {
			descartados++
			p.logRejection(row, reason)
			continue
		}

		points, ok := p.geocodeStops(row, trip)
		if !ok {
			descartados++
			continue
		}

		geom, _ := p.router.Resolve(trip.ViajeID, points)
		fc.Features = append(fc.Features, buildFeature(trip, geom))
	}

	p.logger.Info("Generado viajes.geojson",
		zap.Int("features", len(fc.Features)),
		zap.Int("descartados", descartados),
	)
	return &RunResult{Features: fc, Descartados: descartados}
}

// geocodeStops resolves every stop of an accepted trip. If any stop fails,
// resolved or errored, the trip is dropped whole; no partial routes.
func (p *Pipeline) geocodeStops(row *feed.TripRow, trip *Trip) ([]*GeoPoint, bool) {
	points := make([]*GeoPoint, 0, len(trip.Stops))
	for _, stop := range trip.Stops {
		pt, err := p.geocoder.Resolve(stop)
		if err != nil {
			p.logger.Warn("Descartado (no geocodifica stop)",
				zap.String("viaje_id", trip.ViajeID),
				zap.String("stop", stop),
				zap.Strings("stops", trip.Stops),
				zap.Error(err),
			)
			return nil, false
		}
		if pt == nil {
			p.logger.Warn("Descartado (no geocodifica stop)",
				zap.String("viaje_id", trip.ViajeID),
				zap.String("stop", stop),
				zap.Strings("stops", trip.Stops),
			)
			return nil, false
		}
		points = append(points, pt)
	}
	return points, true
}

func (p *Pipeline) logRejection(row *feed.TripRow, reason string) {
	fields := []zap.Field{zap.String("id", row.RowID())}
	switch reason {
	case ReasonSinOrigen:
		fields = append(fields, zap.String("destino", CleanText(row.Destino)))
	case ReasonFechaInvalida:
		fields = append(fields, zap.String("fecha", row.Fecha))
	case ReasonCaducado:
		fields = append(fields,
			zap.String("viaje_id", CleanText(row.ViajeID)),
			zap.String("fecha", row.Fecha),
			zap.String("salida", ParseHora(row.Salida)),
		)
	}
	p.logger.Info("Descartado ("+reason+")", fields...)
}
