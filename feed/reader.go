package feed

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

// Reader loads the trip feed from an HTTP URL or a local file path and
// decodes it into TripRow records in source order.
type Reader struct {
	csvPath    string
	renames    map[string]string
	httpClient *http.Client
}

// NewReader creates a feed reader. renames maps source header names to the
// canonical column names and is applied before decoding.
func NewReader(csvPath string, renames map[string]string, timeout time.Duration) *Reader {
	return &Reader{
		csvPath:    csvPath,
		renames:    renames,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Read fetches and decodes the feed. Rows keep source order and are
// numbered from 1 for diagnostics.
func (r *Reader) Read() ([]*TripRow, error) {
	raw, err := r.fetch()
	if err != nil {
		return nil, err
	}
	data, err := renameHeader(raw, r.renames)
	if err != nil {
		return nil, err
	}

	var rows []*TripRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("decoding feed: %w", err)
	}
	for i, row := range rows {
		row.Line = i + 1
	}
	return rows, nil
}

// fetch reads the feed bytes from an HTTP URL or a local file path.
func (r *Reader) fetch() ([]byte, error) {
	if !strings.HasPrefix(r.csvPath, "http://") && !strings.HasPrefix(r.csvPath, "https://") {
		return os.ReadFile(r.csvPath)
	}

	resp, err := r.httpClient.Get(r.csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", r.csvPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, r.csvPath)
	}

	return io.ReadAll(resp.Body)
}

// renameHeader rewrites the header row applying the configured column
// renames, leaving the data rows untouched.
func renameHeader(raw []byte, renames map[string]string) ([]byte, error) {
	if len(renames) == 0 {
		return raw, nil
	}
	cr := csv.NewReader(bytes.NewReader(raw))
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing feed header: %w", err)
	}
	if len(records) == 0 {
		return raw, nil
	}
	for i, col := range records[0] {
		if canonical, ok := renames[strings.TrimSpace(col)]; ok {
			records[0][i] = canonical
		}
	}
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.WriteAll(records); err != nil {
		return nil, err
	}
	cw.Flush()
	return buf.Bytes(), nil
}
