package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"campsync/domain/campaign"
	"campsync/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Required column headers per report schema
const (
	colCampaign       = "Campaign"
	colCalls          = "Calls"
	colConnects       = "Connects"
	colCallsToConnect = "Calls to Connect"
	colAbandoned      = "Abandoned"

	colCurrentCampaign  = "Current campaign"
	colRecordingSeconds = "Recording Length (Seconds)"
)

// Reader handles reading CSV and XLSX call-center reports
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewReader creates a reader for the given report file, keyed off the
// file extension
func NewReader(filePath string) *Reader {
	fileType := "csv"
	if ext := strings.ToLower(filepath.Ext(filePath)); ext == ".xlsx" || ext == ".xlsm" {
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// ReadCTC reads a CTC-mode report. Rows missing the campaign name or any
// numeric field are dropped and counted; numeric cells that are present but
// unparseable fail the whole read.
func (r *Reader) ReadCTC() ([]campaign.CTCRecord, int, error) {
	header, rows, err := r.readRows()
	if err != nil {
		return nil, 0, err
	}

	cols, err := requireColumns(header, colCampaign, colCalls, colConnects, colCallsToConnect, colAbandoned)
	if err != nil {
		return nil, 0, err
	}

	var records []campaign.CTCRecord
	dropped := 0
	for i, row := range rows {
		camp := cellValue(row, cols[colCampaign])
		calls := cellValue(row, cols[colCalls])
		connects := cellValue(row, cols[colConnects])
		ctc := cellValue(row, cols[colCallsToConnect])
		abandoned := cellValue(row, cols[colAbandoned])

		if camp == "" || calls == "" || connects == "" || ctc == "" || abandoned == "" {
			dropped++
			continue
		}

		rec := campaign.CTCRecord{Campaign: camp}
		if rec.Calls, err = parseInt(calls, colCalls, i); err != nil {
			return nil, 0, err
		}
		if rec.Connects, err = parseInt(connects, colConnects, i); err != nil {
			return nil, 0, err
		}
		if rec.CTC, err = parseFloat(ctc, colCallsToConnect, i); err != nil {
			return nil, 0, err
		}
		if rec.Abandoned, err = parseInt(abandoned, colAbandoned, i); err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	return records, dropped, nil
}

// ReadLog reads a call-log report under the same drop/fail rules as ReadCTC
func (r *Reader) ReadLog() ([]campaign.LogRecord, int, error) {
	header, rows, err := r.readRows()
	if err != nil {
		return nil, 0, err
	}

	cols, err := requireColumns(header, colCurrentCampaign, colRecordingSeconds)
	if err != nil {
		return nil, 0, err
	}

	var records []campaign.LogRecord
	dropped := 0
	for i, row := range rows {
		camp := cellValue(row, cols[colCurrentCampaign])
		seconds := cellValue(row, cols[colRecordingSeconds])
		if camp == "" || seconds == "" {
			dropped++
			continue
		}

		rec := campaign.LogRecord{Campaign: camp}
		if rec.RecordingSeconds, err = parseInt(seconds, colRecordingSeconds, i); err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	return records, dropped, nil
}

// readRows returns the trimmed header row and the raw data rows
func (r *Reader) readRows() ([]string, [][]string, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, nil, errors.FormatErrorf("report file not found: %s", r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, errors.FormatError("report has no header row")
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = strings.TrimSpace(cell)
	}
	return header, rows[1:], nil
}

func (r *Reader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open report %s", r.filePath)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.FormatErrorf("failed to parse CSV report: %v", err)
	}
	return rows, nil
}

func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open report %s", r.filePath)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, errors.FormatErrorf("failed to read report worksheet: %v", err)
	}
	return rows, nil
}

// requireColumns maps each wanted header label to its first column index
func requireColumns(header []string, names ...string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, label := range header {
		if _, ok := index[label]; !ok {
			index[label] = i
		}
	}

	cols := make(map[string]int, len(names))
	for _, name := range names {
		idx, ok := index[name]
		if !ok {
			return nil, errors.FormatErrorf("report is missing required column %q", name)
		}
		cols[name] = idx
	}
	return cols, nil
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseInt(value, column string, rowIdx int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.FormatErrorf("row %d: column %q: cannot parse %q as integer", rowIdx+2, column, value)
	}
	return n, nil
}

func parseFloat(value, column string, rowIdx int) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.FormatErrorf("row %d: column %q: cannot parse %q as number", rowIdx+2, column, value)
	}
	return f, nil
}
