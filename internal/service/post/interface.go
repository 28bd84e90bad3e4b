package post_service

import (
	"context"

	"blog-post-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/post --outpkg mockpost --filename Service.go
type Service interface {
	ListPosts(ctx context.Context) ([]*model.Post, error)
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	UpdatePost(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, id int64) error
	SeedInitialPosts(ctx context.Context) error
}
