package post_service

import (
	"context"
	"log/slog"
	"time"

	"blog-post-service/internal/model"
)

// initialPosts is inserted on first run against an empty store so the API is
// non-empty out of the box.
var initialPosts = []*model.Post{
	{
		Author:    "Anna",
		Title:     "Anna konyhája",
		Category:  "Étel",
		Content:   "Anna kedvenc sütije",
		CreatedAt: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 5, 21, 0, 0, 0, 0, time.UTC),
	},
	{
		Author:    "Bazsi",
		Title:     "Földön kívüli a marsról",
		Category:  "SCI-FI",
		Content:   "Egy új fajta földlakó",
		CreatedAt: time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC),
	},
	{
		Author:    "Gábor",
		Title:     "Gábor autós sorozata",
		Category:  "Motosport",
		Content:   "Gábor kedvenc autói",
		CreatedAt: time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC),
	},
}

func (s *PostService) SeedInitialPosts(ctx context.Context) error {
	count, err := s.postRepo.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count posts before seeding", slog.String("error", err.Error()))
		return err
	}
	if count > 0 {
		s.log.Debug("Posts table is not empty, skipping seed", slog.Int64("count", count))
		return nil
	}

	for _, post := range initialPosts {
		if _, err := s.postRepo.Create(ctx, post); err != nil {
			s.log.Error("Failed to seed post",
				slog.String("author", post.Author),
				slog.String("error", err.Error()))
			return err
		}
	}

	s.log.Info("Seeded initial posts", slog.Int("count", len(initialPosts)))
	return nil
}
