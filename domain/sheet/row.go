package sheet

import "strings"

// FindRow scans the grid in order for the first row whose trimmed column-0
// cell equals name (case-sensitive) and returns its 1-based sheet row index.
// The whole grid is scanned, title and header rows included: their column-0
// cells never equal a campaign name, and scanning from the top keeps grid
// index i mapping to sheet row i+1 with no offset bookkeeping. Alias retries
// are the caller's concern.
func FindRow(grid Grid, name string) (int, error) {
	for i, row := range grid {
		if len(row) == 0 {
			continue
		}
		if strings.TrimSpace(row[0]) == name {
			return i + 1, nil
		}
	}
	return 0, ErrRowNotFound
}
