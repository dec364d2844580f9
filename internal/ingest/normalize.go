package ingest

import (
	"strings"

	"github.com/alexanderramin/dutylog/internal/domain"
)

// Normalize converts a raw platform message into a canonical LogEntry. The
// title is taken from the first embed directly, or assembled by joining its
// field values with newlines. Normalization never fails: a message without
// extractable content yields an entry with an empty title, which the
// extractor later skips.
func Normalize(msg RawMessage) domain.LogEntry {
	return domain.LogEntry{
		ID:        msg.ID,
		Timestamp: msg.Timestamp.UTC(),
		TitleText: titleText(msg),
	}
}

func titleText(msg RawMessage) string {
	if len(msg.Embeds) == 0 {
		return ""
	}
	embed := msg.Embeds[0]
	if embed.Title != "" {
		return embed.Title
	}
	if len(embed.Fields) == 0 {
		return ""
	}
	values := make([]string, len(embed.Fields))
	for i, f := range embed.Fields {
		values[i] = f.Value
	}
	return strings.Join(values, "\n")
}
