package ports

import "campsync/domain/campaign"

// ReportReader ingests the uploaded tabular report. Each method returns the
// well-formed records plus the count of rows dropped for missing required
// fields; unparseable numeric content is an error, not a drop.
type ReportReader interface {
	ReadCTC() ([]campaign.CTCRecord, int, error)
	ReadLog() ([]campaign.LogRecord, int, error)
}
