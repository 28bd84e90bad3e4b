package post_repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-post-service/internal/custom_errors"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/model"
	post_repository "blog-post-service/internal/repository/post"
	"blog-post-service/internal/repository/post/memory"
)

func newTestRepo(t *testing.T) post_repository.Repository {
	t.Helper()
	return memory.NewPostRepository(logger.New("test"))
}

func fakePost() *model.Post {
	return &model.Post{
		Author:   gofakeit.Name(),
		Title:    gofakeit.Sentence(3),
		Category: gofakeit.Word(),
		Content:  gofakeit.Paragraph(1, 2, 10, " "),
	}
}

func TestPostRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	t.Run("AssignsUniqueIncreasingIDs", func(t *testing.T) {
		first, err := repo.Create(ctx, fakePost())
		require.NoError(t, err)
		second, err := repo.Create(ctx, fakePost())
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("SetsEqualTimestampsOnCreate", func(t *testing.T) {
		created, err := repo.Create(ctx, fakePost())
		require.NoError(t, err)

		assert.False(t, created.CreatedAt.IsZero())
		assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))
	})

	t.Run("KeepsExplicitTimestamps", func(t *testing.T) {
		createdAt := time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC)
		updatedAt := time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC)

		seedPost := fakePost()
		seedPost.CreatedAt = createdAt
		seedPost.UpdatedAt = updatedAt

		created, err := repo.Create(ctx, seedPost)
		require.NoError(t, err)

		assert.True(t, created.CreatedAt.Equal(createdAt))
		assert.True(t, created.UpdatedAt.Equal(updatedAt))
	})
}

func TestPostRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	t.Run("RoundTrip", func(t *testing.T) {
		post := fakePost()
		created, err := repo.Create(ctx, post)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)

		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, post.Author, found.Author)
		assert.Equal(t, post.Title, found.Title)
		assert.Equal(t, post.Category, found.Category)
		assert.Equal(t, post.Content, found.Content)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 99999)
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})
}

func TestPostRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	t.Run("FullReplace", func(t *testing.T) {
		created, err := repo.Create(ctx, fakePost())
		require.NoError(t, err)

		update := &model.UpdatePostDTO{
			Author:   "Updated Author",
			Title:    "Updated Title",
			Category: "Updated Category",
			Content:  "Updated Content",
		}
		updated, err := repo.Update(ctx, created.ID, update)
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, update.Author, updated.Author)
		assert.Equal(t, update.Title, updated.Title)
		assert.Equal(t, update.Category, updated.Category)
		assert.Equal(t, update.Content, updated.Content)
		assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
		assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.Update(ctx, 99999, &model.UpdatePostDTO{
			Author:   "a",
			Title:    "t",
			Category: "c",
			Content:  "x",
		})
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})
}

func TestPostRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	t.Run("DeletedPostIsGone", func(t *testing.T) {
		created, err := repo.Create(ctx, fakePost())
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, created.ID))

		_, err = repo.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})

	t.Run("SecondDeleteIsNotFound", func(t *testing.T) {
		created, err := repo.Create(ctx, fakePost())
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, created.ID))
		assert.ErrorIs(t, repo.Delete(ctx, created.ID), custom_errors.ErrPostNotFound)
	})
}

func TestPostRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyStoreReturnsEmptyList", func(t *testing.T) {
		repo := newTestRepo(t)

		posts, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("OrderedByCreatedAtDescending", func(t *testing.T) {
		repo := newTestRepo(t)

		older := fakePost()
		older.CreatedAt = time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)
		older.UpdatedAt = older.CreatedAt
		middle := fakePost()
		middle.CreatedAt = time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC)
		middle.UpdatedAt = middle.CreatedAt
		newest := fakePost()
		newest.CreatedAt = time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
		newest.UpdatedAt = newest.CreatedAt

		for _, p := range []*model.Post{older, middle, newest} {
			_, err := repo.Create(ctx, p)
			require.NoError(t, err)
		}

		posts, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, newest.Title, posts[0].Title)
		assert.Equal(t, middle.Title, posts[1].Title)
		assert.Equal(t, older.Title, posts[2].Title)
	})

	t.Run("TiesBrokenByInsertionOrder", func(t *testing.T) {
		repo := newTestRepo(t)

		sharedCreatedAt := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
		first := fakePost()
		first.CreatedAt = sharedCreatedAt
		first.UpdatedAt = sharedCreatedAt
		second := fakePost()
		second.CreatedAt = sharedCreatedAt
		second.UpdatedAt = sharedCreatedAt

		createdFirst, err := repo.Create(ctx, first)
		require.NoError(t, err)
		createdSecond, err := repo.Create(ctx, second)
		require.NoError(t, err)

		posts, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, createdFirst.ID, posts[0].ID)
		assert.Equal(t, createdSecond.ID, posts[1].ID)
	})
}

func TestPostRepository_Count(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, err = repo.Create(ctx, fakePost())
	require.NoError(t, err)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
