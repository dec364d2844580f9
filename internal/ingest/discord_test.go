package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscordSource_FetchBatch(t *testing.T) {
	var gotPath, gotAuth, gotBefore, gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBefore = r.URL.Query().Get("before")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"111","timestamp":"2024-03-05T09:30:00Z","embeds":[{"title":"Admin: Marko"}]},
			{"id":"110","timestamp":"2024-03-05T09:00:00Z","embeds":[{"fields":[{"name":"a","value":"Licenca: L-1"}]}]}
		]`))
	}))
	defer server.Close()

	src := NewDiscordSource(server.URL, "tajni-token", "12345", server.Client())
	batch, err := src.FetchBatch(context.Background(), "109", 50)
	require.NoError(t, err)

	assert.Equal(t, "/channels/12345/messages", gotPath)
	assert.Equal(t, "Bot tajni-token", gotAuth)
	assert.Equal(t, "109", gotBefore)
	assert.Equal(t, "50", gotLimit)

	require.Len(t, batch, 2)
	assert.Equal(t, "111", batch[0].ID)
	assert.Equal(t, "Admin: Marko", batch[0].Embeds[0].Title)
	assert.Equal(t, "Licenca: L-1", batch[1].Embeds[0].Fields[0].Value)
}

func TestDiscordSource_OmitsBeforeOnFirstPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("before"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	src := NewDiscordSource(server.URL, "t", "c", server.Client())
	batch, err := src.FetchBatch(context.Background(), "", 100)
	require.NoError(t, err)
	assert.Empty(t, batch)
}

func TestDiscordSource_NonOKStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing permissions", http.StatusForbidden)
	}))
	defer server.Close()

	src := NewDiscordSource(server.URL, "t", "c", server.Client())
	_, err := src.FetchBatch(context.Background(), "", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
