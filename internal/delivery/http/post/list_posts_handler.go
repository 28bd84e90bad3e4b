package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-post-service/internal/logger"
	"blog-post-service/internal/model"
)

type PostLister interface {
	ListPosts(ctx context.Context) ([]*model.Post, error)
}

type ListPostsHandler struct {
	postService PostLister
	log         *logger.Logger
}

func NewListPostsHandler(postService PostLister, log *logger.Logger) *ListPostsHandler {
	return &ListPostsHandler{
		postService: postService,
		log:         log,
	}
}

func (h *ListPostsHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list posts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}
