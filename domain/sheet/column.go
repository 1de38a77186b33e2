package sheet

import "strings"

// ResolveColumn finds the 1-based column position of the occurrence-th cell
// (0-based) in header whose trimmed value equals label. The scoreboard header
// repeats each metric label once per weekday in weekday order, so occurrence
// is day-of-week minus one. Returns ErrColumnNotFound when the header holds
// fewer occurrences than asked for.
func ResolveColumn(header []string, label string, occurrence int) (int, error) {
	if occurrence < 0 {
		return 0, ErrColumnNotFound
	}
	seen := 0
	for i, cell := range header {
		if strings.TrimSpace(cell) != label {
			continue
		}
		if seen == occurrence {
			return i + 1, nil
		}
		seen++
	}
	return 0, ErrColumnNotFound
}
