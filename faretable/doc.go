/*
Package faretable provides loading and in-memory indexing of a published
transit fare table.

The source is a delimited text file with a header row. Two columns are
required, SRC_STATION_ID and DEST_STATION_ID, both integer station
identifiers. Every additional column whose name contains "FARE" is treated
as an independent fare method (e.g. OCT_ADT_FARE, SINGLE_ADT_FARE) and the
full set of discovered methods is exposed via Table.Methods.

# Basic Usage

	tbl, err := faretable.Load("public/mtr_lines_fares.csv")
	if err != nil {
	    log.Fatal(err)
	}

	amount, ok := tbl.Fare(1, 2, "OCT_ADT_FARE")
	if ok {
	    // published fare for station 1 -> station 2
	}

# Missing vs. invalid fares

A fare field that is empty or not parseable as a non-negative number is
stored as an explicit invalid marker for that (pair, method). Lookups treat
it the same as a pair that never appeared in the source: Fare returns
ok=false. A literal 0 is a valid fare, distinct from missing.

Rows whose station identifiers are not parseable are skipped with a logged
diagnostic; a missing file or a header without the required station columns
fails the whole load.

The table is read-only once built. Parse the file once at startup and keep
the table in memory; all lookups are O(1) map accesses.
*/
package faretable
