package youtube

import (
	"context"
	"fmt"

	"github.com/lshigami/edulink/internal/dto"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// MaxResults caps every search.
const MaxResults = 4

type Searcher interface {
	Search(ctx context.Context, query string) ([]dto.Video, error)
}

type searcher struct {
	svc *yt.Service
}

func NewSearcher(ctx context.Context, apiKey string, opts ...option.ClientOption) (Searcher, error) {
	svc, err := yt.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube client: %w", err)
	}
	return &searcher{svc: svc}, nil
}

func (s *searcher) Search(ctx context.Context, query string) ([]dto.Video, error) {
	resp, err := s.svc.Search.List([]string{"snippet"}).
		Q(query).
		MaxResults(MaxResults).
		Type("video").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	videos := make([]dto.Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Snippet == nil {
			continue
		}
		videos = append(videos, dto.Video{
			ID:          item.Id.VideoId,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			Thumbnail:   thumbnailURL(item.Snippet.Thumbnails),
			Channel:     item.Snippet.ChannelTitle,
		})
		if len(videos) == MaxResults {
			break
		}
	}
	return videos, nil
}

// thumbnailURL prefers the high resolution still and falls back to medium.
func thumbnailURL(t *yt.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	if t.High != nil && t.High.Url != "" {
		return t.High.Url
	}
	if t.Medium != nil {
		return t.Medium.Url
	}
	return ""
}
