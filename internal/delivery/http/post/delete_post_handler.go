package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-post-service/internal/custom_errors"
	"blog-post-service/internal/logger"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, id int64) error
}

type DeletePostHandler struct {
	postService PostDeleter
	log         *logger.Logger
}

func NewDeletePostHandler(postService PostDeleter, log *logger.Logger) *DeletePostHandler {
	return &DeletePostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *DeletePostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.log.Debug("Invalid post id", slog.String("id", c.Param("id")))
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}

	err = h.postService.DeletePost(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		default:
			h.log.Error("Failed to delete post", slog.Int64("id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete post"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
