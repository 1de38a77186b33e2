package sheet

import "strings"

// Resolve returns the alternate spellings recorded for a campaign name,
// possibly empty.
//
// A hit in the canonical column (0) yields that row's declared alternates:
// every later cell, empties dropped, deduplicated in first-seen order. A hit
// in any alternate column yields the entire matched row the same way, minus
// the queried name itself, so the canonical spelling is included. Alternate
// columns are scanned left to right and, within a column, top to bottom; the
// first match wins and later ones are never considered.
func (t AliasTable) Resolve(name string) []string {
	for _, row := range t {
		if len(row) == 0 {
			continue
		}
		if row[0] == name {
			return dedupe(row[1:], "")
		}
	}

	for col := 1; col < t.width(); col++ {
		for _, row := range t {
			if col < len(row) && row[col] == name {
				return dedupe(row, name)
			}
		}
	}

	return nil
}

func (t AliasTable) width() int {
	max := 0
	for _, row := range t {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// dedupe drops empty cells and the excluded name, keeping first-seen order
func dedupe(cells []string, exclude string) []string {
	var out []string
	seen := make(map[string]bool, len(cells))
	for _, cell := range cells {
		if strings.TrimSpace(cell) == "" || cell == exclude || seen[cell] {
			continue
		}
		seen[cell] = true
		out = append(out, cell)
	}
	return out
}
