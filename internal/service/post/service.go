package post_service

import (
	"context"
	"errors"
	"log/slog"

	"blog-post-service/internal/custom_errors"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/metrics"
	"blog-post-service/internal/model"
	post_repository "blog-post-service/internal/repository/post"
)

type PostService struct {
	postRepo post_repository.Repository
	log      *logger.Logger
	metrics  metrics.MetricsProvider
}

func NewPostService(
	postRepo post_repository.Repository,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		log:      log,
		metrics:  metrics,
	}
}

func (s *PostService) ListPosts(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("list", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementPostOperations("list", true)
	return posts, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.Int64("id", id))
			s.metrics.IncrementPostOperations("get", false)
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to get post by id",
				slog.String("error", err.Error()),
				slog.Int64("id", id))
			s.metrics.IncrementPostOperations("get", false)
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	s.metrics.IncrementPostOperations("get", true)
	return post, nil
}

func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	newPost := &model.Post{
		Author:   post.Author,
		Title:    post.Title,
		Category: post.Category,
		Content:  post.Content,
	}

	createdPost, err := s.postRepo.Create(ctx, newPost)
	if err != nil {
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("create", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.log.Info("Created post",
		slog.Int64("id", createdPost.ID),
		slog.String("author", createdPost.Author))
	s.metrics.IncrementPostOperations("create", true)
	return createdPost, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	updatedPost, err := s.postRepo.Update(ctx, id, update)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found during update", slog.Int64("id", id))
			s.metrics.IncrementPostOperations("update", false)
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to update post",
				slog.String("error", err.Error()),
				slog.Int64("id", id))
			s.metrics.IncrementPostOperations("update", false)
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	s.log.Info("Updated post", slog.Int64("id", id))
	s.metrics.IncrementPostOperations("update", true)
	return updatedPost, nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	err := s.postRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found during delete", slog.Int64("id", id))
			s.metrics.IncrementPostOperations("delete", false)
			return custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to delete post",
				slog.String("error", err.Error()),
				slog.Int64("id", id))
			s.metrics.IncrementPostOperations("delete", false)
			return custom_errors.ErrDatabaseQuery
		}
	}

	s.log.Info("Deleted post", slog.Int64("id", id))
	s.metrics.IncrementPostOperations("delete", true)
	return nil
}
