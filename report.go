package faresavings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/theoremus-urban-solutions/fare-savings/faretable"
)

// ReportOptions controls report formatting.
type ReportOptions struct {
	// Currency is the symbol prefixed to amounts; defaults to "$".
	Currency string
	// TopSavings is how many best pairs to list; 0 disables the listing.
	TopSavings int
}

// BuildSavingsReport renders one analysis run as a human-readable block of
// text. Amounts are formatted with two decimal places. When the run found
// no savings, the report says so explicitly instead of printing zeroed
// statistics.
func BuildSavingsReport(tbl *faretable.Table, result SavingsResult, opts ReportOptions) string {
	cur := opts.Currency
	if cur == "" {
		cur = "$"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analysis complete for fare method: %s\n", result.Method)
	fmt.Fprintf(&b, "Stations loaded: %d\n", tbl.StationCount())
	fmt.Fprintf(&b, "Total station pairs analyzed: %d\n", result.PairsTotal)
	fmt.Fprintf(&b, "Station pairs with savings: %d\n", result.PairsWithSavings)

	stats, ok := SummarizeSavings(result.Savings)
	if !ok {
		b.WriteString("No savings found for any station pair.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Minimum saving: %s%.2f\n", cur, stats.Min)
	fmt.Fprintf(&b, "Maximum saving: %s%.2f\n", cur, stats.Max)
	fmt.Fprintf(&b, "Average saving: %s%.2f\n", cur, stats.Mean)
	fmt.Fprintf(&b, "Median saving: %s%.2f\n", cur, stats.Median)

	if opts.TopSavings > 0 && len(result.Pairs) > 0 {
		top := TopSavings(result.Pairs, opts.TopSavings)
		fmt.Fprintf(&b, "Top %d savings:\n", len(top))
		for _, p := range top {
			fmt.Fprintf(&b, "  %d -> %d -> %d: direct %s%.2f, split %s%.2f, saves %s%.2f\n",
				p.Origin, p.Via, p.Dest, cur, p.Direct, cur, p.Combined, cur, p.Saving)
		}
	}
	return b.String()
}

// TopSavings returns the n largest savings, ordered by amount descending.
// Ties break on origin then destination so the listing is deterministic.
// The input slice is not modified.
func TopSavings(pairs []PairSaving, n int) []PairSaving {
	out := make([]PairSaving, len(pairs))
	copy(out, pairs)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Saving != out[j].Saving {
			return out[i].Saving > out[j].Saving
		}
		if out[i].Origin != out[j].Origin {
			return out[i].Origin < out[j].Origin
		}
		return out[i].Dest < out[j].Dest
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
