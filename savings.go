// Package faresavings finds origin-destination pairs whose published direct
// fare is undercut by splitting the trip at an intermediate station and
// paying two separate fares.
package faresavings

import (
	"math"

	"github.com/theoremus-urban-solutions/fare-savings/faretable"
)

// PairSaving describes the best one-transfer itinerary found for a single
// origin-destination pair, together with the direct fare it undercuts.
type PairSaving struct {
	Origin faretable.StationID
	Via    faretable.StationID
	Dest   faretable.StationID

	Direct   float64
	Combined float64
	Saving   float64 // Direct - Combined, always > 0
}

// SavingsResult aggregates one analysis run for a single fare method.
type SavingsResult struct {
	Method faretable.Method

	// PairsTotal counts every ordered pair of distinct stations,
	// including pairs with no direct fare for the method.
	PairsTotal       int
	PairsWithSavings int

	// Savings holds the saving amount per pair with a saving, in pair
	// iteration order. Amounts are strictly positive.
	Savings []float64
	// Pairs carries the per-pair detail behind Savings, same order.
	Pairs []PairSaving
}

// FindSavings compares, for every ordered pair of distinct stations from
// stations, the direct fare against the cheapest
// origin -> intermediate -> destination combination under the same method.
//
// Direction matters: (a,b) and (b,a) are evaluated independently. A pair
// with no direct fare, or with no intermediate where both legs have fares,
// contributes to PairsTotal only. A saving is recorded only when the best
// combined fare is strictly below the direct fare. When several
// intermediates tie for the minimum combined fare, the earliest station in
// iteration order wins, so repeated runs over the same table produce
// identical results.
//
// Every station pair is considered as a hypothetical transfer regardless
// of physical connectivity. Cost is O(S^3) table lookups for S stations.
func FindSavings(tbl *faretable.Table, stations []faretable.StationID, method faretable.Method) SavingsResult {
	res := SavingsResult{Method: method}
	for _, origin := range stations {
		for _, dest := range stations {
			if dest == origin {
				continue
			}
			res.PairsTotal++

			direct, ok := tbl.Fare(origin, dest, method)
			if !ok {
				continue
			}

			best := math.Inf(1)
			var via faretable.StationID
			found := false
			for _, mid := range stations {
				if mid == origin || mid == dest {
					continue
				}
				leg1, ok := tbl.Fare(origin, mid, method)
				if !ok {
					continue
				}
				leg2, ok := tbl.Fare(mid, dest, method)
				if !ok {
					continue
				}
				if combined := leg1 + leg2; combined < best {
					best = combined
					via = mid
					found = true
				}
			}
			if !found || best >= direct {
				continue
			}

			saving := direct - best
			res.Savings = append(res.Savings, saving)
			res.Pairs = append(res.Pairs, PairSaving{
				Origin:   origin,
				Via:      via,
				Dest:     dest,
				Direct:   direct,
				Combined: best,
				Saving:   saving,
			})
			res.PairsWithSavings++
		}
	}
	return res
}
