package ingest

import (
	"context"
	"fmt"

	"github.com/alexanderramin/dutylog/internal/domain"
)

// DefaultFetchLimit is the batch size requested from the message source.
const DefaultFetchLimit = 100

// FetchAll walks the source's full history and returns one LogEntry per
// message, in fetched order (newest first). The cursor advances to the
// oldest id of each batch; the walk stops when a batch comes back empty or
// short of the requested limit. Source failures abort the walk with no
// partial result.
func FetchAll(ctx context.Context, src MessageSource, limit int) ([]domain.LogEntry, error) {
	if limit <= 0 {
		limit = DefaultFetchLimit
	}

	var entries []domain.LogEntry
	before := ""
	for {
		batch, err := src.FetchBatch(ctx, before, limit)
		if err != nil {
			return nil, fmt.Errorf("fetching message batch: %w", err)
		}
		if len(batch) == 0 {
			break
		}

		for _, msg := range batch {
			entries = append(entries, Normalize(msg))
		}

		before = batch[len(batch)-1].ID
		if len(batch) < limit {
			break
		}
	}
	return entries, nil
}
