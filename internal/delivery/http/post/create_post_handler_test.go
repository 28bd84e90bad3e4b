package post_http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-post-service/internal/custom_errors"
	"blog-post-service/internal/model"
	mockpost "blog-post-service/mocks/post"
)

func TestCreatePostHandler_CreatePost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		router := newTestRouter(mockPostService)

		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		expectedDTO := &model.CreatePostDTO{
			Author:   "A",
			Title:    "T",
			Category: "C",
			Content:  "X",
		}
		createdPost := &model.Post{
			ID:        7,
			Author:    "A",
			Title:     "T",
			Category:  "C",
			Content:   "X",
			CreatedAt: now,
			UpdatedAt: now,
		}

		mockPostService.On("CreatePost", mock.Anything, expectedDTO).Return(createdPost, nil)

		body, err := json.Marshal(map[string]string{
			"author":   "A",
			"title":    "T",
			"category": "C",
			"content":  "X",
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var got model.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, "A", got.Author)
		assert.Equal(t, "T", got.Title)
		assert.Equal(t, "C", got.Category)
		assert.Equal(t, "X", got.Content)
		assert.True(t, got.CreatedAt.Equal(now))
		assert.True(t, got.UpdatedAt.Equal(now))

		mockPostService.AssertExpectations(t)
	})

	t.Run("MissingField", func(t *testing.T) {
		fields := []string{"author", "title", "category", "content"}
		for _, missing := range fields {
			t.Run(missing, func(t *testing.T) {
				mockPostService := new(mockpost.Service)
				router := newTestRouter(mockPostService)

				payload := map[string]string{
					"author":   "A",
					"title":    "T",
					"category": "C",
					"content":  "X",
				}
				delete(payload, missing)
				body, err := json.Marshal(payload)
				require.NoError(t, err)

				w := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				router.ServeHTTP(w, req)

				require.Equal(t, http.StatusBadRequest, w.Code)
				assert.JSONEq(t, `{"message":"Missing fields"}`, w.Body.String())

				mockPostService.AssertNotCalled(t, "CreatePost")
			})
		}
	})

	t.Run("EmptyField", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		router := newTestRouter(mockPostService)

		body, err := json.Marshal(map[string]string{
			"author":   "A",
			"title":    "",
			"category": "C",
			"content":  "X",
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Missing fields"}`, w.Body.String())

		mockPostService.AssertNotCalled(t, "CreatePost")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		router := newTestRouter(mockPostService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		mockPostService.AssertNotCalled(t, "CreatePost")
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		router := newTestRouter(mockPostService)

		mockPostService.On("CreatePost", mock.Anything, mock.AnythingOfType("*model.CreatePostDTO")).Return(nil, custom_errors.ErrDatabaseQuery)

		body, err := json.Marshal(map[string]string{
			"author":   "A",
			"title":    "T",
			"category": "C",
			"content":  "X",
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		mockPostService.AssertExpectations(t)
	})
}
