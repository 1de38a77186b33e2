package sheet

import "errors"

// Grid is the full cell grid of one worksheet, as strings. Row 0 carries the
// sheet title, row 1 the header row (metric labels repeat once per weekday),
// rows from 2 on are data rows keyed by the campaign name in column 0.
type Grid [][]string

// HeaderRowIndex is the grid index of the header row
const HeaderRowIndex = 1

// AliasTable holds known alternate spellings for campaigns: column 0 is the
// canonical name, every later column an alternate on the same row. Lookup is
// symmetric, so any cell can serve as the key.
type AliasTable [][]string

// Domain errors - centralized error definitions
var (
	ErrColumnNotFound = errors.New("column not found in header row")
	ErrRowNotFound    = errors.New("campaign row not found")
	ErrNoHeaderRow    = errors.New("grid has no header row")
)
