package viajes

import (
	"strings"
	"time"

	"github.com/Mammogram7685/maps/feed"
)

// Rejection reasons, in the order checks run. The first failing check wins.
const (
	ReasonSinDestino    = "sin destino"
	ReasonSinOrigen     = "sin origen"
	ReasonSinViajeID    = "sin viaje_id"
	ReasonFechaInvalida = "fecha invalida"
	ReasonCaducado      = "caducado"
	ReasonNoGeocodifica = "no geocodifica stop"
)

// Trip is a validated, normalized trip ready for geocoding.
type Trip struct {
	ViajeID     string
	Fecha       string // ISO date, e.g. "2026-02-18"
	HoraSalida  string // "HH:MM" when parseable, source text otherwise
	HoraLlegada string
	Stops       []string // origin, intermediates in order, destination
}

// Validator decides whether a feed row is well-formed and still upcoming.
// The clock is injected so the vigency check is deterministic under test.
type Validator struct {
	now func() time.Time
}

// NewValidator creates a Validator using now as its clock. The returned
// time's location determines the local "today".
func NewValidator(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// Validate checks a row and, when accepted, returns the normalized trip.
// On rejection the trip is nil and reason holds the first failing check.
func (v *Validator) Validate(row *feed.TripRow) (trip *Trip, reason string) {
	destino := CleanText(row.Destino)
	origen := CleanText(row.Origen)
	p1 := CleanText(row.Parada1)
	p2 := CleanText(row.Parada2)
	viajeID := CleanText(row.ViajeID)

	if destino == "" {
		return nil, ReasonSinDestino
	}
	if origen == "" {
		return nil, ReasonSinOrigen
	}
	if viajeID == "" {
		return nil, ReasonSinViajeID
	}

	fecha, err := ParseFecha(row.Fecha)
	if err != nil {
		return nil, ReasonFechaInvalida
	}
	horaSalida := ParseHora(row.Salida)
	horaLlegada := ParseHora(row.Llegada)

	if !v.vigente(fecha, horaSalida) {
		return nil, ReasonCaducado
	}

	stops := make([]string, 0, 4)
	for _, s := range []string{origen, p1, p2, destino} {
		// Second-pass filter: CleanText already ran, but stops built from
		// any other path must never carry blanks or "nan".
		if s := CleanText(s); s != "" {
			stops = append(stops, s)
		}
	}

	return &Trip{
		ViajeID:     viajeID,
		Fecha:       fecha.Format("2006-01-02"),
		HoraSalida:  horaSalida,
		HoraLlegada: horaLlegada,
		Stops:       stops,
	}, ""
}

// vigente reports whether the trip is still upcoming: a future date always
// is, a past date never is, and a trip today survives until its departure
// time passes. An unparseable departure time fails open.
func (v *Validator) vigente(fecha time.Time, horaSalida string) bool {
	now := v.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, now.Location())

	if day.After(today) {
		return true
	}
	if day.Before(today) {
		return false
	}

	hs, err := time.Parse("15:04", horaSalida)
	if err != nil {
		return true
	}
	departure := time.Date(now.Year(), now.Month(), now.Day(), hs.Hour(), hs.Minute(), 0, 0, now.Location())
	return !departure.Before(now)
}

// ParseFecha parses a DD/MM/YYYY feed date.
func ParseFecha(s string) (time.Time, error) {
	return time.Parse("02/01/2006", strings.TrimSpace(s))
}

// ParseHora normalizes a feed time to "HH:MM". Accepts "H:MM", "HH:MM" and
// "HH:MM:SS"; anything else is zero-padded on a best-effort basis and, as a
// last resort, passed through unchanged.
func ParseHora(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04")
		}
	}
	if parts := strings.Split(s, ":"); len(parts) >= 2 {
		return pad2(parts[0]) + ":" + pad2(parts[1])
	}
	return s
}

func pad2(s string) string {
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}
