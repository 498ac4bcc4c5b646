package feed

import "strconv"

// TripRow is one raw record from the trip feed. Values are kept as the
// source text; cleaning and validation happen in the pipeline.
type TripRow struct {
	ID      string `csv:"Id"`
	ViajeID string `csv:"viaje_id"`
	Fecha   string `csv:"Fecha viaje"`
	Salida  string `csv:"Salida"`
	Llegada string `csv:"Llegada"`
	Origen  string `csv:"Origen"`
	Destino string `csv:"Destino"`
	Parada1 string `csv:"Parada1"`
	Parada2 string `csv:"Parada2"`

	// Line is the 1-based data row number, used for diagnostics when the
	// feed carries no Id column.
	Line int `csv:"-"`
}

// RowID returns the opaque identifier used in rejection logs: the feed's
// Id column when present, otherwise the row number.
func (r *TripRow) RowID() string {
	if r.ID != "" {
		return r.ID
	}
	return "#" + strconv.Itoa(r.Line)
}
