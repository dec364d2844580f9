package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DiscordSource fetches channel messages from a Discord-compatible REST API.
// It implements MessageSource over plain HTTP so the engine itself stays free
// of platform SDK types.
type DiscordSource struct {
	baseURL   string
	token     string
	channelID string
	client    *http.Client
}

// NewDiscordSource creates a source for the given API base URL, bot token and
// channel. A nil http.Client falls back to a client with a 30s timeout.
func NewDiscordSource(baseURL, token, channelID string, client *http.Client) *DiscordSource {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &DiscordSource{
		baseURL:   baseURL,
		token:     token,
		channelID: channelID,
		client:    client,
	}
}

type wireMessage struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Embeds    []wireEmbed `json:"embeds"`
}

type wireEmbed struct {
	Title  string      `json:"title"`
	Fields []wireField `json:"fields"`
}

type wireField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (s *DiscordSource) FetchBatch(ctx context.Context, beforeID string, limit int) ([]RawMessage, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if beforeID != "" {
		q.Set("before", beforeID)
	}
	endpoint := fmt.Sprintf("%s/channels/%s/messages?%s", s.baseURL, s.channelID, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building message request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting messages: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("message source returned %d: %s", resp.StatusCode, body)
	}

	var wire []wireMessage
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decoding message batch: %w", err)
	}

	batch := make([]RawMessage, len(wire))
	for i, m := range wire {
		batch[i] = RawMessage{ID: m.ID, Timestamp: m.Timestamp}
		for _, e := range m.Embeds {
			embed := Embed{Title: e.Title}
			for _, f := range e.Fields {
				embed.Fields = append(embed.Fields, EmbedField{Name: f.Name, Value: f.Value})
			}
			batch[i].Embeds = append(batch[i].Embeds, embed)
		}
	}
	return batch, nil
}
