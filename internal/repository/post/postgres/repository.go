package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"blog-post-service/internal/custom_errors"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/metrics"
	"blog-post-service/internal/model"
	"blog-post-service/internal/repository/postgres/db"
)

type PostRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.MetricsProvider
}

func NewPostRepository(db db.PgDB, log *logger.Logger, metrics metrics.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()

	createdAt := post.CreatedAt
	updatedAt := post.UpdatedAt
	if createdAt.IsZero() {
		// Seed rows carry fixed timestamps; regular creates get now.
		createdAt = time.Now().UTC()
		updatedAt = createdAt
	}

	args := pgx.NamedArgs{
		"author":     post.Author,
		"title":      post.Title,
		"category":   post.Category,
		"content":    post.Content,
		"created_at": createdAt,
		"updated_at": updatedAt,
	}

	query := `
		INSERT INTO posts (author, title, category, content, created_at, updated_at)
		VALUES (@author, @title, @category, @content, @created_at, @updated_at)
		RETURNING id, author, title, category, content, created_at, updated_at`

	var createdPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&createdPost.ID,
		&createdPost.Author,
		&createdPost.Title,
		&createdPost.Category,
		&createdPost.Content,
		&createdPost.CreatedAt,
		&createdPost.UpdatedAt,
	)

	if err != nil {
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		p.metrics.IncrementDatabaseQueries("create_post", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("create_post", true)
	p.metrics.RecordDatabaseQueryDuration("create_post", time.Since(start))
	return &createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()

	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, author, title, category, content, created_at, updated_at
				FROM posts WHERE id = @id`
	row := p.db.QueryRow(ctx, query, args)
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.Author,
		&post.Title,
		&post.Category,
		&post.Content,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id), slog.String("error", err.Error()))
			p.metrics.IncrementDatabaseQueries("get_post", false)
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		p.metrics.IncrementDatabaseQueries("get_post", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("get_post", true)
	p.metrics.RecordDatabaseQueryDuration("get_post", time.Since(start))
	return post, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	start := time.Now()

	args := pgx.NamedArgs{
		"id":         id,
		"author":     update.Author,
		"title":      update.Title,
		"category":   update.Category,
		"content":    update.Content,
		"updated_at": time.Now().UTC(),
	}

	query := `
		UPDATE posts
		SET author = @author, title = @title, category = @category, content = @content, updated_at = @updated_at
		WHERE id = @id
		RETURNING id, author, title, category, content, created_at, updated_at`

	var updatedPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&updatedPost.ID,
		&updatedPost.Author,
		&updatedPost.Title,
		&updatedPost.Category,
		&updatedPost.Content,
		&updatedPost.CreatedAt,
		&updatedPost.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during Update", slog.Int64("id", id), slog.String("error", err.Error()))
			p.metrics.IncrementDatabaseQueries("update_post", false)
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error updating post", slog.Int64("id", id), slog.String("error", err.Error()))
		p.metrics.IncrementDatabaseQueries("update_post", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("update_post", true)
	p.metrics.RecordDatabaseQueryDuration("update_post", time.Since(start))
	return &updatedPost, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()

	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM posts WHERE id = @id`
	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		p.metrics.IncrementDatabaseQueries("delete_post", false)
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		p.metrics.IncrementDatabaseQueries("delete_post", false)
		return custom_errors.ErrPostNotFound
	}

	p.metrics.IncrementDatabaseQueries("delete_post", true)
	p.metrics.RecordDatabaseQueryDuration("delete_post", time.Since(start))
	return nil
}

func (p *PostRepository) List(ctx context.Context) ([]*model.Post, error) {
	start := time.Now()

	query := `SELECT id, author, title, category, content, created_at, updated_at
				FROM posts ORDER BY created_at DESC, id ASC`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		p.metrics.IncrementDatabaseQueries("list_posts", false)
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	posts := make([]*model.Post, 0)
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID,
			&post.Author,
			&post.Title,
			&post.Category,
			&post.Content,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			p.metrics.IncrementDatabaseQueries("list_posts", false)
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		p.metrics.IncrementDatabaseQueries("list_posts", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("list_posts", true)
	p.metrics.RecordDatabaseQueryDuration("list_posts", time.Since(start))
	return posts, nil
}

func (p *PostRepository) Count(ctx context.Context) (int64, error) {
	start := time.Now()

	query := `SELECT COUNT(*) FROM posts`

	var count int64
	err := p.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		p.log.Error("Error counting posts", slog.String("error", err.Error()))
		p.metrics.IncrementDatabaseQueries("count_posts", false)
		return 0, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("count_posts", true)
	p.metrics.RecordDatabaseQueryDuration("count_posts", time.Since(start))
	return count, nil
}
