package gsheets

import (
	"context"
	"fmt"
	"strings"

	"campsync/domain/sheet"
	"campsync/internal/errors"

	"github.com/xuri/excelize/v2"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// aliasKeyHeader is the required header of the settings worksheet's
// canonical-name column
const aliasKeyHeader = "Camp"

// Config holds everything the Sheets store needs. Exactly one of
// CredentialsJSON / CredentialsFile must be set.
type Config struct {
	SpreadsheetID   string
	CredentialsJSON string
	CredentialsFile string
	SettingsSheet   string
}

// Store implements ports.SheetStore against the Google Sheets API
type Store struct {
	svc           *sheets.Service
	spreadsheetID string
	settingsSheet string
}

// New builds a Sheets-backed store from service-account credentials, taken
// inline (JSON) or from a file
func New(ctx context.Context, cfg Config) (*Store, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	default:
		return nil, errors.ConfigInvalid("no Google credentials configured")
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Transport("client init", err)
	}

	return &Store{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		settingsSheet: cfg.SettingsSheet,
	}, nil
}

// ReadSheet returns the full cell grid of a named worksheet
func (s *Store) ReadSheet(ctx context.Context, name string) (sheet.Grid, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, quoteSheet(name)).
		Context(ctx).Do()
	if err != nil {
		return nil, errors.Transport(fmt.Sprintf("read of sheet %q", name), err)
	}
	return toGrid(resp.Values), nil
}

// ReadAliasTable reads the settings worksheet, checks its header and strips
// it from the returned table
func (s *Store) ReadAliasTable(ctx context.Context) (sheet.AliasTable, error) {
	grid, err := s.ReadSheet(ctx, s.settingsSheet)
	if err != nil {
		return nil, err
	}
	return parseAliasTable(s.settingsSheet, grid)
}

// parseAliasTable validates the settings grid's canonical-name header and
// returns the data rows below it
func parseAliasTable(sheetName string, grid sheet.Grid) (sheet.AliasTable, error) {
	if len(grid) == 0 || len(grid[0]) == 0 || strings.TrimSpace(grid[0][0]) != aliasKeyHeader {
		return nil, errors.InvalidInput(fmt.Sprintf(
			"settings sheet %q: column 0 must be headed %q", sheetName, aliasKeyHeader))
	}
	return sheet.AliasTable(grid[1:]), nil
}

// WriteCell sets a single cell; row and col are 1-based
func (s *Store) WriteCell(ctx context.Context, sheetName string, row, col int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errors.InvalidInput(fmt.Sprintf("invalid cell position row=%d col=%d", row, col))
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err = s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, fmt.Sprintf("%s!%s", quoteSheet(sheetName), cell), vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return errors.Transport(fmt.Sprintf("write to %s!%s", sheetName, cell), err)
	}
	return nil
}

// quoteSheet makes a worksheet name safe for A1 range notation
func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func toGrid(values [][]interface{}) sheet.Grid {
	grid := make(sheet.Grid, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			switch cell := v.(type) {
			case string:
				cells[j] = cell
			default:
				cells[j] = fmt.Sprint(cell)
			}
		}
		grid[i] = cells
	}
	return grid
}
