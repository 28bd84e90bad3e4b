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
	"blog-post-service/internal/model"
)

type PostGetter interface {
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
}

type GetPostHandler struct {
	postService PostGetter
	log         *logger.Logger
}

func NewGetPostHandler(postService PostGetter, log *logger.Logger) *GetPostHandler {
	return &GetPostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *GetPostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// A non-numeric id cannot match any row.
		h.log.Debug("Invalid post id", slog.String("id", c.Param("id")))
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}

	post, err := h.postService.GetPostByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		default:
			h.log.Error("Failed to get post", slog.Int64("id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get post"})
		}
		return
	}

	c.JSON(http.StatusOK, post)
}
