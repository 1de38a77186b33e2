package ports

import (
	"context"

	"campsync/domain/sheet"
)

// SheetStore is the remote spreadsheet collaborator. Transport and
// credential mechanics live behind this seam; the core only sees grids of
// strings and 1-based cell writes.
//
// The grid returned by ReadSheet is a snapshot: later WriteCell calls do not
// refresh it, and the remote store may change between the read and the
// writes. That race is accepted, not guarded.
type SheetStore interface {
	// ReadSheet returns the full cell grid of a named worksheet
	ReadSheet(ctx context.Context, name string) (sheet.Grid, error)

	// ReadAliasTable returns the parsed settings worksheet, header stripped
	ReadAliasTable(ctx context.Context) (sheet.AliasTable, error)

	// WriteCell sets a single cell; row and col are 1-based
	WriteCell(ctx context.Context, sheetName string, row, col int, value interface{}) error
}
