package campaign

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// AggregateCTC groups CTC-mode records by campaign and reduces each group to
// one summary: Calls, Connects and Abandoned are summed, CTC is the
// arithmetic mean. Summaries come back in first-seen campaign order so that
// previews and writes are deterministic. Records with an empty campaign are
// skipped (the report reader drops them before this point; the guard keeps
// the Camp-uniqueness invariant local).
func AggregateCTC(records []CTCRecord) []CTCSummary {
	type accum struct {
		calls     int
		connects  int
		abandoned int
		ctc       []float64
	}

	order := make([]string, 0, len(records))
	groups := make(map[string]*accum)

	for _, rec := range records {
		if rec.Campaign == "" {
			continue
		}
		acc, ok := groups[rec.Campaign]
		if !ok {
			acc = &accum{}
			groups[rec.Campaign] = acc
			order = append(order, rec.Campaign)
		}
		acc.calls += rec.Calls
		acc.connects += rec.Connects
		acc.abandoned += rec.Abandoned
		acc.ctc = append(acc.ctc, rec.CTC)
	}

	summaries := make([]CTCSummary, 0, len(order))
	for _, camp := range order {
		acc := groups[camp]
		// acc.ctc is non-empty for every tracked campaign
		mean, _ := stats.Mean(acc.ctc)
		summaries = append(summaries, CTCSummary{
			Camp:      camp,
			Calls:     acc.calls,
			Connects:  acc.connects,
			CTC:       mean,
			Abandoned: acc.abandoned,
		})
	}
	return summaries
}

// AggregateLog groups call-log records by campaign: row count becomes
// Logged Calls, recording lengths are summed and rendered as dial time.
func AggregateLog(records []LogRecord) []LogSummary {
	type accum struct {
		calls   int
		seconds int
	}

	order := make([]string, 0, len(records))
	groups := make(map[string]*accum)

	for _, rec := range records {
		if rec.Campaign == "" {
			continue
		}
		acc, ok := groups[rec.Campaign]
		if !ok {
			acc = &accum{}
			groups[rec.Campaign] = acc
			order = append(order, rec.Campaign)
		}
		acc.calls++
		acc.seconds += rec.RecordingSeconds
	}

	summaries := make([]LogSummary, 0, len(order))
	for _, camp := range order {
		acc := groups[camp]
		summaries = append(summaries, LogSummary{
			Camp:        camp,
			LoggedCalls: acc.calls,
			DialSeconds: acc.seconds,
			DialTime:    FormatDialTime(acc.seconds),
		})
	}
	return summaries
}

// FormatDialTime renders total seconds as zero-padded HH:MM:SS. Hours are
// not wrapped at 24: a campaign's summed call time regularly exceeds a day,
// so 90000 seconds renders as "25:00:00".
func FormatDialTime(totalSeconds int) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
