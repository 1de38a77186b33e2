package report

import (
	"os"
	"path/filepath"
	"testing"

	"campsync/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCTC(t *testing.T) {
	path := writeTempCSV(t, `Campaign,Calls,Connects,Calls to Connect,Abandoned
Camp A,10,5,50,1
Camp A,20,10,60,2
Camp B,7,3,41.5,0
`)

	records, dropped, err := NewReader(path).ReadCTC()
	require.NoError(t, err)
	assert.Equal(t, 0, dropped)
	require.Len(t, records, 3)
	assert.Equal(t, "Camp A", records[0].Campaign)
	assert.Equal(t, 10, records[0].Calls)
	assert.InDelta(t, 41.5, records[2].CTC, 1e-9)
}

func TestReadCTC_DropsIncompleteRows(t *testing.T) {
	path := writeTempCSV(t, `Campaign,Calls,Connects,Calls to Connect,Abandoned
,10,5,50,1
Camp A,,5,50,1
Camp B,7,3,40,0
`)

	records, dropped, err := NewReader(path).ReadCTC()
	require.NoError(t, err)
	assert.Equal(t, 2, dropped)
	require.Len(t, records, 1)
	assert.Equal(t, "Camp B", records[0].Campaign)
}

func TestReadCTC_NumericCoercionFailureIsFatal(t *testing.T) {
	path := writeTempCSV(t, `Campaign,Calls,Connects,Calls to Connect,Abandoned
Camp A,ten,5,50,1
`)

	_, _, err := NewReader(path).ReadCTC()
	require.Error(t, err)
	assert.Equal(t, errors.CodeFormatError, errors.GetCode(err))
}

func TestReadCTC_MissingColumn(t *testing.T) {
	path := writeTempCSV(t, `Campaign,Calls
Camp A,10
`)

	_, _, err := NewReader(path).ReadCTC()
	require.Error(t, err)
	assert.Equal(t, errors.CodeFormatError, errors.GetCode(err))
}

func TestReadLog(t *testing.T) {
	path := writeTempCSV(t, `Current campaign,Recording Length (Seconds),Agent
Camp A,1800,x
Camp A,1861,y
Camp B,,z
`)

	records, dropped, err := NewReader(path).ReadLog()
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)
	require.Len(t, records, 2)
	assert.Equal(t, 1861, records[1].RecordingSeconds)
}

func TestReadLog_NonIntegerSecondsIsFatal(t *testing.T) {
	path := writeTempCSV(t, `Current campaign,Recording Length (Seconds)
Camp A,12.5
`)

	_, _, err := NewReader(path).ReadLog()
	require.Error(t, err)
	assert.Equal(t, errors.CodeFormatError, errors.GetCode(err))
}

func TestReadCTC_FromXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	f := excelize.NewFile()
	sheetName := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Campaign", "Calls", "Connects", "Calls to Connect", "Abandoned"},
		{"Camp A", 10, 5, 50, 1},
		{"Camp B", 7, 3, 40, 0},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheetName, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	records, dropped, err := NewReader(path).ReadCTC()
	require.NoError(t, err)
	assert.Equal(t, 0, dropped)
	require.Len(t, records, 2)
	assert.Equal(t, "Camp B", records[1].Campaign)
	assert.Equal(t, 7, records[1].Calls)
}

func TestReader_MissingFile(t *testing.T) {
	_, _, err := NewReader(filepath.Join(t.TempDir(), "nope.csv")).ReadCTC()
	require.Error(t, err)
	assert.Equal(t, errors.CodeFormatError, errors.GetCode(err))
}
