package faretable

// StationID identifies a station in the fare network.
type StationID int

// Method names a fare category discovered from the table header,
// e.g. OCT_ADT_FARE.
type Method string

// pair is an ordered (origin, destination) key. Fares need not be
// symmetric, so (a,b) and (b,a) are independent entries.
type pair struct {
	origin StationID
	dest   StationID
}

// fareValue is one parsed fare field. A field that was present but empty
// or unparseable keeps valid=false, distinct from an absent entry and from
// a genuine zero fare.
type fareValue struct {
	amount float64
	valid  bool
}

// Table stores the fare table in memory for fast lookups.
// It is read-only once built by Load.
type Table struct {
	fares    map[pair]map[Method]fareValue // (origin,dest) -> method -> fare
	stations []StationID                   // numeric ascending
	methods  []Method                      // sorted, discovered from the header
}

func newTable() *Table {
	return &Table{
		fares: map[pair]map[Method]fareValue{},
	}
}

// Fare returns the published amount for origin -> dest under method m.
// The second result is false when the pair never appeared in the source,
// the method is unknown, or the source field was empty or unparseable.
func (t *Table) Fare(origin, dest StationID, m Method) (float64, bool) {
	fv, ok := t.fares[pair{origin, dest}][m]
	if !ok || !fv.valid {
		return 0, false
	}
	return fv.amount, true
}

// Stations returns every station ID seen as an origin or destination,
// in ascending order. Callers must not modify the returned slice.
func (t *Table) Stations() []StationID {
	return t.stations
}

// StationCount returns the size of the station universe.
func (t *Table) StationCount() int {
	return len(t.stations)
}

// Methods returns the fare methods discovered from the header, sorted.
// Callers must not modify the returned slice.
func (t *Table) Methods() []Method {
	return t.methods
}

// HasMethod reports whether m was discovered from the header.
func (t *Table) HasMethod(m Method) bool {
	for _, known := range t.methods {
		if known == m {
			return true
		}
	}
	return false
}

// PairCount returns the number of distinct (origin, destination) pairs
// with at least one fare field in the source.
func (t *Table) PairCount() int {
	return len(t.fares)
}
