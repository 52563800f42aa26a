package faretable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

const (
	originColumn = "SRC_STATION_ID"
	destColumn   = "DEST_STATION_ID"

	// fareColumnMarker flags a header column as holding fare amounts.
	fareColumnMarker = "FARE"
)

// ErrMissingColumns is returned when the header lacks the required
// origin/destination station columns (or the input is empty).
var ErrMissingColumns = errors.New("faretable: header is missing required station columns")

// Load reads the fare table at path. A missing file or a header without
// the required columns fails the load; individual malformed rows are
// skipped with a logged diagnostic.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("faretable: open %s: %w", path, err)
	}
	defer f.Close()
	return ReadFrom(f)
}

// ReadFrom parses a fare table from r. See Load.
func ReadFrom(r io.Reader) (*Table, error) {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1

	head, err := csvr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("faretable: empty input: %w", ErrMissingColumns)
		}
		return nil, fmt.Errorf("faretable: read header: %w", err)
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	srcIdx := idx(originColumn)
	destIdx := idx(destColumn)
	if srcIdx < 0 || destIdx < 0 {
		return nil, fmt.Errorf("%w: found %v", ErrMissingColumns, head)
	}

	// Declare the fare methods once from the header instead of letting
	// each consumer substring-match column names.
	fareCols := map[int]Method{}
	for i, h := range head {
		h = strings.TrimSpace(h)
		if strings.Contains(strings.ToUpper(h), fareColumnMarker) {
			fareCols[i] = Method(h)
		}
	}

	t := newTable()
	stationSet := map[StationID]struct{}{}
	line := 1
	for {
		row, err := csvr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				log.Printf("faretable: skipping row %d: %v", line, err)
				continue
			}
			return nil, fmt.Errorf("faretable: read row %d: %w", line, err)
		}
		if srcIdx >= len(row) || destIdx >= len(row) {
			log.Printf("faretable: skipping row %d: missing station columns", line)
			continue
		}
		origin, err := strconv.Atoi(strings.TrimSpace(row[srcIdx]))
		if err != nil {
			log.Printf("faretable: skipping row %d: bad origin station ID %q", line, row[srcIdx])
			continue
		}
		dest, err := strconv.Atoi(strings.TrimSpace(row[destIdx]))
		if err != nil {
			log.Printf("faretable: skipping row %d: bad destination station ID %q", line, row[destIdx])
			continue
		}
		stationSet[StationID(origin)] = struct{}{}
		stationSet[StationID(dest)] = struct{}{}

		key := pair{StationID(origin), StationID(dest)}
		entry := t.fares[key]
		if entry == nil {
			entry = map[Method]fareValue{}
			t.fares[key] = entry
		}
		for i, m := range fareCols {
			if i >= len(row) {
				continue
			}
			entry[m] = parseFare(row[i])
		}
	}

	t.stations = make([]StationID, 0, len(stationSet))
	for id := range stationSet {
		t.stations = append(t.stations, id)
	}
	sort.Slice(t.stations, func(i, j int) bool { return t.stations[i] < t.stations[j] })

	t.methods = make([]Method, 0, len(fareCols))
	for _, m := range fareCols {
		t.methods = append(t.methods, m)
	}
	sort.Slice(t.methods, func(i, j int) bool { return t.methods[i] < t.methods[j] })

	log.Printf("faretable: loaded %d stations, %d pairs, %d fare methods",
		len(t.stations), len(t.fares), len(t.methods))
	return t, nil
}

// parseFare turns one raw field into a fare value. Empty, non-numeric,
// negative or non-finite fields become the invalid marker, never zero.
func parseFare(raw string) fareValue {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fareValue{}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fareValue{}
	}
	return fareValue{amount: v, valid: true}
}
