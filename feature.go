package viajes

import (
	"fmt"
	"strings"

	"github.com/Mammogram7685/maps/geo"
)

// buildFeature composes the output feature for one trip. The display name
// reads "origin → destination (departure-arrival)"; intermediate stops are
// pipe-joined in the paradas property.
func buildFeature(trip *Trip, geom geo.Geometry) geo.Feature {
	origen := trip.Stops[0]
	destino := trip.Stops[len(trip.Stops)-1]
	paradas := trip.Stops[1 : len(trip.Stops)-1]

	return geo.Feature{
		Type:     "Feature",
		Geometry: geom,
		Properties: geo.FeatureProperties{
			Name:        fmt.Sprintf("%s → %s (%s-%s)", origen, destino, trip.HoraSalida, trip.HoraLlegada),
			ViajeID:     trip.ViajeID,
			Fecha:       trip.Fecha,
			HoraSalida:  trip.HoraSalida,
			HoraLlegada: trip.HoraLlegada,
			Origen:      origen,
			Destino:     destino,
			Paradas:     strings.Join(paradas, " | "),
			NumParadas:  len(paradas),
		},
	}
}
