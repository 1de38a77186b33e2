package campaign

import "fmt"

// Mode selects which report schema a run aggregates and which sheet columns
// it updates.
type Mode string

const (
	ModeCTC Mode = "ctc"
	ModeLog Mode = "log"
)

// ParseMode converts a user-supplied mode string
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeCTC, ModeLog:
		return Mode(value), nil
	default:
		return "", fmt.Errorf("unknown mode %q (want %q or %q)", value, ModeCTC, ModeLog)
	}
}

// Sheet header labels for the metrics each mode writes. The scoreboard
// repeats every label once per weekday, so a (label, day) pair identifies a
// single cell column.
const (
	LabelCalls       = "Calls"
	LabelConnects    = "Connects"
	LabelCTC         = "CTC"
	LabelAbandoned   = "Abandoned"
	LabelLoggedCalls = "Logged Calls"
	LabelDialTime    = "Dial Time"
)

// MetricLabels returns the sheet labels a mode updates, in write order.
func (m Mode) MetricLabels() []string {
	switch m {
	case ModeCTC:
		return []string{LabelCalls, LabelConnects, LabelCTC, LabelAbandoned}
	case ModeLog:
		return []string{LabelLoggedCalls, LabelDialTime}
	default:
		return nil
	}
}

// CTCRecord is one raw row of a CTC-mode report
type CTCRecord struct {
	Campaign  string
	Calls     int
	Connects  int
	CTC       float64
	Abandoned int
}

// LogRecord is one raw row of a call-log report
type LogRecord struct {
	Campaign         string
	RecordingSeconds int
}

// CTCSummary is the aggregate of all CTC-mode rows for one campaign
type CTCSummary struct {
	Camp      string
	Calls     int
	Connects  int
	CTC       float64 // arithmetic mean over the campaign's rows
	Abandoned int
}

// LogSummary is the aggregate of all call-log rows for one campaign
type LogSummary struct {
	Camp        string
	LoggedCalls int
	DialSeconds int
	DialTime    string // HH:MM:SS, hours unbounded
}

// MetricRow is one aggregated campaign with its metric values keyed by sheet
// label, ready for the update orchestrator.
type MetricRow struct {
	Camp   string
	Values map[string]interface{}
}

// MetricRow flattens a CTC summary for writing
func (s CTCSummary) MetricRow() MetricRow {
	return MetricRow{
		Camp: s.Camp,
		Values: map[string]interface{}{
			LabelCalls:     s.Calls,
			LabelConnects:  s.Connects,
			LabelCTC:       s.CTC,
			LabelAbandoned: s.Abandoned,
		},
	}
}

// MetricRow flattens a call-log summary for writing
func (s LogSummary) MetricRow() MetricRow {
	return MetricRow{
		Camp: s.Camp,
		Values: map[string]interface{}{
			LabelLoggedCalls: s.LoggedCalls,
			LabelDialTime:    s.DialTime,
		},
	}
}
