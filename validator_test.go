package viajes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mammogram7685/maps/feed"
)

// fixedNow pins the clock to 2026-02-10 10:00:00.
func fixedNow() time.Time {
	return time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC)
}

func validRow() *feed.TripRow {
	return &feed.TripRow{
		ID:      "7",
		ViajeID: "T1",
		Fecha:   "18/02/2026",
		Salida:  "9:5",
		Llegada: "11:00",
		Origen:  "Madrid",
		Destino: "Barcelona",
	}
}

func TestValidateAccepted(t *testing.T) {
	v := NewValidator(fixedNow)
	trip, reason := v.Validate(validRow())
	require.Empty(t, reason)
	require.NotNil(t, trip)
	assert.Equal(t, "T1", trip.ViajeID)
	assert.Equal(t, "2026-02-18", trip.Fecha)
	assert.Equal(t, "09:05", trip.HoraSalida)
	assert.Equal(t, "11:00", trip.HoraLlegada)
	assert.Equal(t, []string{"Madrid", "Barcelona"}, trip.Stops)
}

func TestValidateRejectionOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*feed.TripRow)
		reason string
	}{
		{name: "blank destination", mutate: func(r *feed.TripRow) { r.Destino = "  " }, reason: ReasonSinDestino},
		{name: "nan destination", mutate: func(r *feed.TripRow) { r.Destino = "nan" }, reason: ReasonSinDestino},
		{name: "blank origin", mutate: func(r *feed.TripRow) { r.Origen = "" }, reason: ReasonSinOrigen},
		{name: "blank trip id", mutate: func(r *feed.TripRow) { r.ViajeID = "" }, reason: ReasonSinViajeID},
		{name: "malformed date", mutate: func(r *feed.TripRow) { r.Fecha = "2026-02-18" }, reason: ReasonFechaInvalida},
		{name: "garbage date", mutate: func(r *feed.TripRow) { r.Fecha = "pronto" }, reason: ReasonFechaInvalida},
		{name: "past date", mutate: func(r *feed.TripRow) { r.Fecha = "09/02/2026" }, reason: ReasonCaducado},
		{
			name: "destination checked before origin",
			mutate: func(r *feed.TripRow) {
				r.Destino = ""
				r.Origen = ""
				r.ViajeID = ""
			},
			reason: ReasonSinDestino,
		},
		{
			name: "origin checked before trip id",
			mutate: func(r *feed.TripRow) {
				r.Origen = ""
				r.ViajeID = ""
			},
			reason: ReasonSinOrigen,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			tt.mutate(row)
			trip, reason := NewValidator(fixedNow).Validate(row)
			assert.Nil(t, trip)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestValidateVigencyToday(t *testing.T) {
	tests := []struct {
		name     string
		salida   string
		accepted bool
	}{
		{name: "departure already passed", salida: "08:30", accepted: false},
		{name: "departure later today", salida: "10:30", accepted: true},
		{name: "unparseable time fails open", salida: "mediodia", accepted: true},
		{name: "empty time fails open", salida: "", accepted: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			row.Fecha = "10/02/2026" // today for fixedNow
			row.Salida = tt.salida
			trip, reason := NewValidator(fixedNow).Validate(row)
			if tt.accepted {
				assert.NotNil(t, trip)
				assert.Empty(t, reason)
			} else {
				assert.Nil(t, trip)
				assert.Equal(t, ReasonCaducado, reason)
			}
		})
	}
}

func TestValidatePastDateIgnoresTime(t *testing.T) {
	row := validRow()
	row.Fecha = "01/01/2026"
	row.Salida = "23:59"
	trip, reason := NewValidator(fixedNow).Validate(row)
	assert.Nil(t, trip)
	assert.Equal(t, ReasonCaducado, reason)
}

func TestValidateStopExtraction(t *testing.T) {
	tests := []struct {
		name    string
		parada1 string
		parada2 string
		stops   []string
	}{
		{name: "no intermediates", stops: []string{"Madrid", "Barcelona"}},
		{name: "one intermediate", parada1: "Zaragoza", stops: []string{"Madrid", "Zaragoza", "Barcelona"}},
		{name: "two intermediates", parada1: "Toledo", parada2: "Zaragoza", stops: []string{"Madrid", "Toledo", "Zaragoza", "Barcelona"}},
		{name: "nan intermediate dropped", parada1: "nan", parada2: "Zaragoza", stops: []string{"Madrid", "Zaragoza", "Barcelona"}},
		{name: "blank intermediate dropped", parada1: "  ", parada2: "Zaragoza", stops: []string{"Madrid", "Zaragoza", "Barcelona"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			row.Parada1 = tt.parada1
			row.Parada2 = tt.parada2
			trip, reason := NewValidator(fixedNow).Validate(row)
			require.Empty(t, reason)
			assert.Equal(t, tt.stops, trip.Stops)
		})
	}
}

func TestParseHora(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"9:20", "09:20"},
		{"09:20", "09:20"},
		{"09:20:00", "09:20"},
		{"9:5", "09:05"},
		{" 9:20 ", "09:20"},
		{"mediodia", "mediodia"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseHora(tt.input), "input %q", tt.input)
	}
}

func TestParseFecha(t *testing.T) {
	d, err := ParseFecha("18/02/2026")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-18", d.Format("2006-01-02"))

	for _, bad := range []string{"2026-02-18", "18-02-2026", "32/01/2026", "soon", ""} {
		_, err := ParseFecha(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
