package ingest

import (
	"context"
	"time"
)

// RawMessage is one message as delivered by the external platform. Only the
// first embed carries extractable content.
type RawMessage struct {
	ID        string
	Timestamp time.Time
	Embeds    []Embed
}

// Embed is the rich-content payload attached to a platform message. A title
// may be set directly, or spread across field values.
type Embed struct {
	Title  string
	Fields []EmbedField
}

type EmbedField struct {
	Name  string
	Value string
}

// MessageSource supplies raw, time-ordered messages from the platform.
// FetchBatch returns up to limit messages older than beforeID, newest first;
// an empty beforeID starts from the newest message. An empty result signals
// the end of history.
type MessageSource interface {
	FetchBatch(ctx context.Context, beforeID string, limit int) ([]RawMessage, error)
}
