package faresavings_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lib "github.com/theoremus-urban-solutions/fare-savings"
	"github.com/theoremus-urban-solutions/fare-savings/faretable"
)

const method = faretable.Method("OCT_ADT_FARE")

// loadTable builds a fare table from rows of "origin,dest,fare" text.
func loadTable(t *testing.T, rows ...string) *faretable.Table {
	t.Helper()
	content := "SRC_STATION_ID,DEST_STATION_ID,OCT_ADT_FARE\n" + strings.Join(rows, "\n") + "\n"
	tbl, err := faretable.ReadFrom(strings.NewReader(content))
	require.NoError(t, err)
	return tbl
}

func TestFindSavings_TriangleSaving(t *testing.T) {
	// Direct 1->3 costs 20, split at 2 costs 10+3=13: saving of 7.
	tbl := loadTable(t,
		"1,2,10",
		"2,3,3",
		"1,3,20",
	)

	res := lib.FindSavings(tbl, tbl.Stations(), method)

	assert.Equal(t, 6, res.PairsTotal)
	assert.Equal(t, 1, res.PairsWithSavings)
	require.Len(t, res.Savings, 1)
	assert.InDelta(t, 7.0, res.Savings[0], 1e-9)

	require.Len(t, res.Pairs, 1)
	p := res.Pairs[0]
	assert.Equal(t, faretable.StationID(1), p.Origin)
	assert.Equal(t, faretable.StationID(2), p.Via)
	assert.Equal(t, faretable.StationID(3), p.Dest)
	assert.InDelta(t, 20.0, p.Direct, 1e-9)
	assert.InDelta(t, 13.0, p.Combined, 1e-9)
}

func TestFindSavings_MissingDirectFareSkipsPair(t *testing.T) {
	// No 1->3 fare: the pair still counts toward the total but can never
	// produce a saving.
	tbl := loadTable(t,
		"1,2,10",
		"2,3,3",
	)

	res := lib.FindSavings(tbl, tbl.Stations(), method)

	assert.Equal(t, 6, res.PairsTotal)
	assert.Zero(t, res.PairsWithSavings)
	assert.Empty(t, res.Savings)
}

func TestFindSavings_EqualFaresIsNoSaving(t *testing.T) {
	// Split cost equals the direct fare: strict inequality required.
	tbl := loadTable(t,
		"1,2,10",
		"2,3,3",
		"1,3,13",
	)

	res := lib.FindSavings(tbl, tbl.Stations(), method)

	assert.Zero(t, res.PairsWithSavings)
	assert.Empty(t, res.Savings)
}

func TestFindSavings_EmptyFareFieldIsNotZero(t *testing.T) {
	// An empty 1->2 fare must not be read as 0 and must not manufacture
	// a "direct minus zero" saving for 1->3.
	tbl := loadTable(t,
		"1,2,",
		"2,3,3",
		"1,3,20",
	)

	res := lib.FindSavings(tbl, tbl.Stations(), method)

	assert.Equal(t, 6, res.PairsTotal)
	assert.Zero(t, res.PairsWithSavings)
	assert.Empty(t, res.Savings)
}

func TestFindSavings_ZeroFareLegIsUsable(t *testing.T) {
	// A genuinely free leg participates in the two-leg sum.
	tbl := loadTable(t,
		"1,2,0",
		"2,3,1",
		"1,3,5",
	)

	res := lib.FindSavings(tbl, tbl.Stations(), method)

	require.Len(t, res.Savings, 1)
	assert.InDelta(t, 4.0, res.Savings[0], 1e-9)
}

func TestFindSavings_DirectionalFares(t *testing.T) {
	// Savings exist in one direction only when fares are asymmetric.
	tbl := loadTable(t,
		"1,2,10", "2,1,2",
		"2,3,3", "3,2,4",
		"1,3,20", "3,1,5",
	)

	res := lib.FindSavings(tbl, tbl.Stations(), method)

	assert.Equal(t, 6, res.PairsTotal)
	require.Len(t, res.Pairs, 1)
	assert.Equal(t, faretable.StationID(1), res.Pairs[0].Origin)
	assert.Equal(t, faretable.StationID(3), res.Pairs[0].Dest)
	assert.InDelta(t, 7.0, res.Pairs[0].Saving, 1e-9)
}

func TestFindSavings_TieBreaksOnEarliestIntermediate(t *testing.T) {
	// Stations 2 and 3 both split 1->4 for a combined 10; the earlier
	// station in iteration order must be reported.
	tbl := loadTable(t,
		"1,2,5", "2,4,5",
		"1,3,5", "3,4,5",
		"1,4,20",
	)

	res := lib.FindSavings(tbl, tbl.Stations(), method)

	require.Len(t, res.Pairs, 1)
	assert.Equal(t, faretable.StationID(2), res.Pairs[0].Via)
	assert.InDelta(t, 10.0, res.Pairs[0].Saving, 1e-9)
}

func TestFindSavings_SingleStation(t *testing.T) {
	// A diagonal-only table yields a one-station universe: no ordered
	// pairs exist at all.
	tbl := loadTable(t, "1,1,5")

	res := lib.FindSavings(tbl, tbl.Stations(), method)

	assert.Zero(t, res.PairsTotal)
	assert.Zero(t, res.PairsWithSavings)
	assert.Empty(t, res.Savings)
}

func TestFindSavings_TwoStationsHaveNoIntermediates(t *testing.T) {
	tbl := loadTable(t,
		"1,2,10",
		"2,1,10",
	)

	res := lib.FindSavings(tbl, tbl.Stations(), method)

	assert.Equal(t, 2, res.PairsTotal)
	assert.Empty(t, res.Savings)
}

func TestFindSavings_SavingsAreStrictlyPositive(t *testing.T) {
	tbl := loadTable(t,
		"1,2,4", "2,1,4",
		"2,3,4", "3,2,4",
		"1,3,9", "3,1,7",
		"1,4,2", "4,3,2",
	)

	res := lib.FindSavings(tbl, tbl.Stations(), method)

	require.NotEmpty(t, res.Savings)
	for _, s := range res.Savings {
		assert.Greater(t, s, 0.0)
	}
	assert.Equal(t, res.PairsWithSavings, len(res.Savings))
}

func TestFindSavings_Deterministic(t *testing.T) {
	tbl := loadTable(t,
		"1,2,4", "2,1,4",
		"2,3,4", "3,2,4",
		"1,3,9", "3,1,7",
		"1,4,2", "4,3,2",
		"4,1,2", "3,4,6",
	)

	first := lib.FindSavings(tbl, tbl.Stations(), method)
	second := lib.FindSavings(tbl, tbl.Stations(), method)

	assert.Equal(t, first, second)
}

func TestFindSavings_UnknownMethod(t *testing.T) {
	// Every lookup misses, so no pair gets past the direct-fare check.
	tbl := loadTable(t,
		"1,2,10",
		"2,3,3",
		"1,3,20",
	)

	res := lib.FindSavings(tbl, tbl.Stations(), faretable.Method("NO_SUCH_FARE"))

	assert.Equal(t, 6, res.PairsTotal)
	assert.Empty(t, res.Savings)
}
