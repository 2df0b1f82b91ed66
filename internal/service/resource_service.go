package service

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/lshigami/edulink/internal/cache"
	"github.com/lshigami/edulink/internal/catalog"
	"github.com/lshigami/edulink/internal/dto"
	"github.com/lshigami/edulink/internal/youtube"
	"github.com/rs/zerolog/log"
)

type ResourceService interface {
	MatchTopic(query string) string
	// GetVideos never fails: provider errors fall back to curated videos.
	GetVideos(ctx context.Context, query string) []dto.Video
	GetArticles(query string) []dto.Article
}

type resourceService struct {
	catalog  *catalog.Catalog
	searcher youtube.Searcher
	cache    cache.VideoCache
}

// NewResourceService serves curated videos only when searcher is nil.
func NewResourceService(c *catalog.Catalog, searcher youtube.Searcher, videoCache cache.VideoCache) ResourceService {
	return &resourceService{catalog: c, searcher: searcher, cache: videoCache}
}

func (s *resourceService) MatchTopic(query string) string {
	return s.catalog.MatchTopic(query)
}

func (s *resourceService) GetVideos(ctx context.Context, query string) []dto.Video {
	if s.searcher == nil {
		return s.curatedVideos(query)
	}
	if videos, ok := s.cache.Get(ctx, query); ok {
		return videos
	}

	videos, err := s.searcher.Search(ctx, query)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("YouTube search failed, returning curated videos")
		return s.curatedVideos(query)
	}
	s.cache.Set(ctx, query, videos)
	return videos
}

func (s *resourceService) curatedVideos(query string) []dto.Video {
	curated := s.catalog.Videos(query)
	videos := make([]dto.Video, 0, len(curated))
	for _, v := range curated {
		videos = append(videos, dto.Video{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
			Thumbnail:   v.Thumbnail(),
			Channel:     v.Channel,
		})
	}
	return videos
}

func (s *resourceService) GetArticles(query string) []dto.Article {
	articles := []dto.Article{}
	if err := copier.Copy(&articles, s.catalog.Articles(query)); err != nil {
		log.Error().Err(err).Msg("Failed to map curated articles")
	}
	return articles
}
