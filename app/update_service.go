package app

import (
	"context"
	stderrors "errors"
	"fmt"

	"campsync/domain/campaign"
	"campsync/domain/sheet"
	"campsync/internal"
	"campsync/internal/errors"
	"campsync/ports"

	"github.com/google/uuid"
)

// UpdateService sequences one scoreboard update run: resolve the target
// column for every metric, match each aggregated campaign to a sheet row
// (directly, then through aliases) and issue the cell writes.
type UpdateService struct {
	store ports.SheetStore
	log   *internal.Logger
}

// NewUpdateService creates an update service
func NewUpdateService(store ports.SheetStore, logger *internal.Logger) *UpdateService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &UpdateService{store: store, log: logger}
}

// RunRequest defines the inputs for one update run
type RunRequest struct {
	SheetName string
	Mode      campaign.Mode
	DayIndex  int // zero-based weekday occurrence index
	Rows      []campaign.MetricRow
	DryRun    bool // resolve everything, skip the writes
}

// OutcomeStatus classifies what happened to one campaign row
type OutcomeStatus string

const (
	OutcomeUpdated         OutcomeStatus = "updated"
	OutcomeUpdatedViaAlias OutcomeStatus = "updated_via_alias"
	OutcomeNotFound        OutcomeStatus = "not_found"
)

// CampaignOutcome is the per-campaign result of a run
type CampaignOutcome struct {
	Camp   string
	Status OutcomeStatus
	Alias  string // alternate name that matched, when Status is updated_via_alias
	Row    int    // 1-based sheet row written, 0 when not found
}

// RunResult reports one completed run
type RunResult struct {
	RunID        uuid.UUID
	Columns      map[string]int // resolved 1-based column per metric label
	Outcomes     []CampaignOutcome
	CellsWritten int
	NotFound     int
}

// Run executes one update pass. Column resolution failures and transport
// failures abort the run; a campaign matching no sheet row (directly or via
// alias) is a per-row warning and the run continues. Writes already issued
// are never rolled back.
func (s *UpdateService) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	if req.SheetName == "" {
		return nil, errors.InvalidInput("sheet name is required")
	}
	if req.DayIndex < 0 {
		return nil, errors.InvalidInput("day index must not be negative")
	}
	labels := req.Mode.MetricLabels()
	if len(labels) == 0 {
		return nil, errors.InvalidInput(fmt.Sprintf("unknown mode %q", req.Mode))
	}

	grid, err := s.store.ReadSheet(ctx, req.SheetName)
	if err != nil {
		return nil, err
	}
	if len(grid) <= sheet.HeaderRowIndex {
		return nil, &errors.AppError{
			Code:    errors.CodeColumnResolution,
			Message: fmt.Sprintf("sheet %q has no header row", req.SheetName),
			Cause:   sheet.ErrNoHeaderRow,
		}
	}
	header := grid[sheet.HeaderRowIndex]

	// All columns must resolve before any write happens
	columns := make(map[string]int, len(labels))
	for _, label := range labels {
		col, err := sheet.ResolveColumn(header, label, req.DayIndex)
		if err != nil {
			return nil, errors.ColumnResolution(label, req.DayIndex)
		}
		columns[label] = col
	}

	aliases, err := s.store.ReadAliasTable(ctx)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		RunID:   uuid.New(),
		Columns: columns,
	}
	s.log.Info("run %s: updating %q (mode=%s day_index=%d campaigns=%d dry_run=%t)",
		result.RunID, req.SheetName, req.Mode, req.DayIndex, len(req.Rows), req.DryRun)

	for _, row := range req.Rows {
		outcome, err := s.updateCampaign(ctx, req, row, grid, aliases, columns, labels)
		if err != nil {
			return nil, err
		}
		if outcome.Status == OutcomeNotFound {
			result.NotFound++
		} else if !req.DryRun {
			result.CellsWritten += len(labels)
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	s.log.Info("run %s: done (%d cells written, %d campaigns unmatched)",
		result.RunID, result.CellsWritten, result.NotFound)
	return result, nil
}

func (s *UpdateService) updateCampaign(
	ctx context.Context,
	req RunRequest,
	row campaign.MetricRow,
	grid sheet.Grid,
	aliases sheet.AliasTable,
	columns map[string]int,
	labels []string,
) (CampaignOutcome, error) {
	outcome := CampaignOutcome{Camp: row.Camp, Status: OutcomeUpdated}

	rowIdx, err := sheet.FindRow(grid, row.Camp)
	if stderrors.Is(err, sheet.ErrRowNotFound) {
		for _, alt := range aliases.Resolve(row.Camp) {
			if idx, altErr := sheet.FindRow(grid, alt); altErr == nil {
				rowIdx = idx
				outcome.Status = OutcomeUpdatedViaAlias
				outcome.Alias = alt
				s.log.Info("using alternate name %q for campaign %q", alt, row.Camp)
				err = nil
				break
			}
		}
	}
	if err != nil {
		s.log.Warn("%v", errors.RowNotFound(row.Camp))
		return CampaignOutcome{Camp: row.Camp, Status: OutcomeNotFound}, nil
	}
	outcome.Row = rowIdx

	for _, label := range labels {
		if req.DryRun {
			continue
		}
		if err := s.store.WriteCell(ctx, req.SheetName, rowIdx, columns[label], row.Values[label]); err != nil {
			return outcome, errors.Wrapf(err, "write of %q for campaign %q failed", label, row.Camp)
		}
	}

	s.log.Debug("campaign %q written to sheet row %d", row.Camp, rowIdx)
	return outcome, nil
}
