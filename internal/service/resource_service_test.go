package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/edulink/internal/cache"
	"github.com/lshigami/edulink/internal/catalog"
	"github.com/lshigami/edulink/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	videos []dto.Video
	err    error
	calls  int
}

func (f *fakeSearcher) Search(context.Context, string) ([]dto.Video, error) {
	f.calls++
	return f.videos, f.err
}

type mapCache map[string][]dto.Video

func (m mapCache) Get(_ context.Context, q string) ([]dto.Video, bool) {
	v, ok := m[q]
	return v, ok
}
func (m mapCache) Set(_ context.Context, q string, v []dto.Video) { m[q] = v }
func (m mapCache) Close() error                                   { return nil }

func newResourceFixture(t *testing.T, s *fakeSearcher, c cache.VideoCache) ResourceService {
	cat, err := catalog.Default()
	require.NoError(t, err)
	if s == nil {
		return NewResourceService(cat, nil, c)
	}
	return NewResourceService(cat, s, c)
}

func TestGetVideosFallsBackToCurated(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("quota exceeded")}
	svc := newResourceFixture(t, searcher, mapCache{})

	videos := svc.GetVideos(context.Background(), "learn react hooks")
	assert.Equal(t, 1, searcher.calls)
	require.Len(t, videos, 4)
	for _, v := range videos {
		assert.NotEmpty(t, v.ID)
		assert.Contains(t, v.Thumbnail, v.ID)
	}
}

func TestGetVideosWithoutSearcher(t *testing.T) {
	svc := newResourceFixture(t, nil, cache.NewRedisVideoCache(""))

	videos := svc.GetVideos(context.Background(), "quantum computing")
	assert.Len(t, videos, 4)
}

func TestGetVideosUsesCache(t *testing.T) {
	live := []dto.Video{{ID: "abc", Title: "Live result"}}
	searcher := &fakeSearcher{videos: live}
	c := mapCache{}
	svc := newResourceFixture(t, searcher, c)

	assert.Equal(t, live, svc.GetVideos(context.Background(), "tcp handshake"))
	assert.Equal(t, live, svc.GetVideos(context.Background(), "tcp handshake"))
	assert.Equal(t, 1, searcher.calls)
	assert.Contains(t, c, "tcp handshake")
}

func TestGetArticles(t *testing.T) {
	svc := newResourceFixture(t, nil, mapCache{})

	articles := svc.GetArticles("OS scheduling")
	require.Len(t, articles, 10)
	assert.NotEmpty(t, articles[0].URL)
	assert.Equal(t, "Operating Systems", svc.MatchTopic("OS scheduling"))
}
