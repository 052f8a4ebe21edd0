package importer

import (
	"context"
	"errors"
	"time"

	"github.com/growthops/checkin-api/pkg/events"
	"github.com/growthops/checkin-api/pkg/logger"
)

// ErrEmptyCSV is reported before any store interaction when the upload has
// no rows at all.
var ErrEmptyCSV = errors.New("csv file is empty")

// ParticipantStore is the narrow slice of the participant repository the
// importer needs: one all-or-nothing batch write.
type ParticipantStore interface {
	InsertBatch(ctx context.Context, records []Record) error
}

type Summary struct {
	TotalRows int `json:"total_rows"`
	Imported  int `json:"imported"`
	Skipped   int `json:"skipped"`
}

type Importer struct {
	store ParticipantStore
	bus   events.Publisher
}

func New(store ParticipantStore, bus events.Publisher) *Importer {
	return &Importer{store: store, bus: bus}
}

// Import runs the whole pipeline over an uploaded CSV blob: tokenize, map
// headers, build records, submit one batch. The batch is all-or-nothing; a
// store rejection fails the whole import and the error message is passed
// through verbatim. There is no retry — the upload is a one-shot,
// user-triggered operation.
func (imp *Importer) Import(ctx context.Context, text string) (*Summary, error) {
	rows := ParseCSV(text)
	if len(rows) == 0 {
		return nil, ErrEmptyCSV
	}

	fields := MapHeaders(rows[0])
	dataRows := rows[1:]

	records := make([]Record, 0, len(dataRows))
	skipped := 0
	for i, row := range dataRows {
		rec, skip := BuildRecord(fields, row)
		if skip != "" {
			skipped++
			// Line number counts the header as line 1.
			logger.DebugContext(ctx, "Skipping CSV row", "line", i+2, "reason", string(skip))
			continue
		}
		records = append(records, rec)
	}

	summary := &Summary{
		TotalRows: len(dataRows),
		Imported:  len(records),
		Skipped:   skipped,
	}

	if len(records) == 0 {
		return summary, nil
	}

	if err := imp.store.InsertBatch(ctx, records); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "CSV import completed",
		"total_rows", summary.TotalRows,
		"imported", summary.Imported,
		"skipped", summary.Skipped,
	)

	if imp.bus != nil {
		event := events.ParticipantsImportedEvent{
			TotalRows:  summary.TotalRows,
			Imported:   summary.Imported,
			Skipped:    summary.Skipped,
			ImportedAt: time.Now(),
		}
		if err := imp.bus.Publish(ctx, events.ParticipantsImported, event); err != nil {
			logger.ErrorContext(ctx, "Failed to publish import event", "error", err)
		}
	}

	return summary, nil
}
