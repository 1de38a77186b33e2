package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateCTC_GroupsAndReduces(t *testing.T) {
	records := []CTCRecord{
		{Campaign: "Camp A", Calls: 10, Connects: 5, CTC: 50, Abandoned: 1},
		{Campaign: "Camp B", Calls: 7, Connects: 3, CTC: 40, Abandoned: 0},
		{Campaign: "Camp A", Calls: 20, Connects: 10, CTC: 60, Abandoned: 2},
	}

	summaries := AggregateCTC(records)
	require.Len(t, summaries, 2)

	campA := summaries[0]
	assert.Equal(t, "Camp A", campA.Camp)
	assert.Equal(t, 30, campA.Calls)
	assert.Equal(t, 15, campA.Connects)
	assert.InDelta(t, 55.0, campA.CTC, 1e-9)
	assert.Equal(t, 3, campA.Abandoned)

	campB := summaries[1]
	assert.Equal(t, "Camp B", campB.Camp)
	assert.Equal(t, 7, campB.Calls)
	assert.InDelta(t, 40.0, campB.CTC, 1e-9)
}

func TestAggregateCTC_SumIsGroupingOrderIndependent(t *testing.T) {
	records := []CTCRecord{
		{Campaign: "X", Calls: 1, CTC: 10},
		{Campaign: "Y", Calls: 2, CTC: 20},
		{Campaign: "X", Calls: 3, CTC: 30},
		{Campaign: "Y", Calls: 4, CTC: 40},
		{Campaign: "X", Calls: 5, CTC: 50},
	}
	reversed := make([]CTCRecord, len(records))
	for i, rec := range records {
		reversed[len(records)-1-i] = rec
	}

	byCamp := func(summaries []CTCSummary) map[string]CTCSummary {
		out := make(map[string]CTCSummary)
		for _, s := range summaries {
			out[s.Camp] = s
		}
		return out
	}

	forward := byCamp(AggregateCTC(records))
	backward := byCamp(AggregateCTC(reversed))
	assert.Equal(t, forward["X"].Calls, backward["X"].Calls)
	assert.Equal(t, forward["Y"].Calls, backward["Y"].Calls)
	assert.InDelta(t, forward["X"].CTC, backward["X"].CTC, 1e-9)
}

func TestAggregateCTC_EmptyInput(t *testing.T) {
	assert.Empty(t, AggregateCTC(nil))
	assert.Empty(t, AggregateCTC([]CTCRecord{{Campaign: ""}}))
}

func TestAggregateLog_CountsAndSums(t *testing.T) {
	records := []LogRecord{
		{Campaign: "Camp A", RecordingSeconds: 1800},
		{Campaign: "Camp A", RecordingSeconds: 1861},
		{Campaign: "Camp B", RecordingSeconds: 30},
	}

	summaries := AggregateLog(records)
	require.Len(t, summaries, 2)

	campA := summaries[0]
	assert.Equal(t, "Camp A", campA.Camp)
	assert.Equal(t, 2, campA.LoggedCalls)
	assert.Equal(t, 3661, campA.DialSeconds)
	assert.Equal(t, "01:01:01", campA.DialTime)

	campB := summaries[1]
	assert.Equal(t, 1, campB.LoggedCalls)
	assert.Equal(t, "00:00:30", campB.DialTime)
}

func TestFormatDialTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{3661, "01:01:01"},
		{86399, "23:59:59"},
		// hours are deliberately not wrapped at 24
		{90000, "25:00:00"},
		{360000, "100:00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDialTime(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestModeMetricLabels(t *testing.T) {
	assert.Equal(t, []string{"Calls", "Connects", "CTC", "Abandoned"}, ModeCTC.MetricLabels())
	assert.Equal(t, []string{"Logged Calls", "Dial Time"}, ModeLog.MetricLabels())
	assert.Nil(t, Mode("bogus").MetricLabels())
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("log")
	require.NoError(t, err)
	assert.Equal(t, ModeLog, mode)

	_, err = ParseMode("weekly")
	assert.Error(t, err)
}

func TestMetricRowFlattening(t *testing.T) {
	row := CTCSummary{Camp: "Camp A", Calls: 30, Connects: 15, CTC: 55, Abandoned: 3}.MetricRow()
	assert.Equal(t, "Camp A", row.Camp)
	assert.Equal(t, 30, row.Values[LabelCalls])
	assert.Equal(t, 55.0, row.Values[LabelCTC])

	logRow := LogSummary{Camp: "Camp B", LoggedCalls: 4, DialTime: "02:00:00"}.MetricRow()
	assert.Equal(t, 4, logRow.Values[LabelLoggedCalls])
	assert.Equal(t, "02:00:00", logRow.Values[LabelDialTime])
}
