package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"blog-post-service/internal/custom_errors"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/model"
)

type PostRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	createdAt := post.CreatedAt
	updatedAt := post.UpdatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
		updatedAt = createdAt
	}

	newPost := &model.Post{
		ID:        p.nextID,
		Author:    post.Author,
		Title:     post.Title,
		Category:  post.Category,
		Content:   post.Content,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id during Update", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	post.Author = update.Author
	post.Title = update.Title
	post.Category = update.Category
	post.Content = update.Content
	post.UpdatedAt = time.Now().UTC()

	result := *post
	return &result, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[id]; !exists {
		return custom_errors.ErrPostNotFound
	}

	delete(p.posts, id)
	return nil
}

func (p *PostRepository) List(ctx context.Context) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]*model.Post, 0, len(p.posts))
	for _, post := range p.posts {
		postCopy := *post
		result = append(result, &postCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (p *PostRepository) Count(ctx context.Context) (int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return int64(len(p.posts)), nil
}
