package youtube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newTestSearcher(t *testing.T, handler http.HandlerFunc) Searcher {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	s, err := NewSearcher(context.Background(), "test-key",
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)
	return s
}

func TestSearch_MapsItemsWithThumbnailFallback(t *testing.T) {
	s := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "binary search", r.URL.Query().Get("q"))
		assert.Equal(t, "4", r.URL.Query().Get("maxResults"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{
					"id": map[string]any{"videoId": "v1"},
					"snippet": map[string]any{
						"title":        "Binary Search",
						"description":  "Halving the range",
						"channelTitle": "CS Dojo",
						"thumbnails": map[string]any{
							"high":   map[string]any{"url": "https://i.ytimg.com/vi/v1/hq.jpg"},
							"medium": map[string]any{"url": "https://i.ytimg.com/vi/v1/mq.jpg"},
						},
					},
				},
				{
					"id": map[string]any{"videoId": "v2"},
					"snippet": map[string]any{
						"title":        "Binary Search II",
						"channelTitle": "NeetCode",
						"thumbnails": map[string]any{
							"medium": map[string]any{"url": "https://i.ytimg.com/vi/v2/mq.jpg"},
						},
					},
				},
			},
		})
	})

	videos, err := s.Search(context.Background(), "binary search")
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "v1", videos[0].ID)
	assert.Equal(t, "https://i.ytimg.com/vi/v1/hq.jpg", videos[0].Thumbnail)
	assert.Equal(t, "CS Dojo", videos[0].Channel)
	assert.Equal(t, "https://i.ytimg.com/vi/v2/mq.jpg", videos[1].Thumbnail)
}

func TestSearch_PropagatesAPIError(t *testing.T) {
	s := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 403, "message": "quotaExceeded"},
		})
	})

	_, err := s.Search(context.Background(), "anything")
	assert.Error(t, err)
}
