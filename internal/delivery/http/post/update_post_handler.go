package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blog-post-service/internal/custom_errors"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/model"
)

type PostUpdater interface {
	UpdatePost(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	validate    *validator.Validate
	log         *logger.Logger
}

func NewUpdatePostHandler(postService PostUpdater, validate *validator.Validate, log *logger.Logger) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type UpdatePostRequestInternal struct {
	Author   string `json:"author" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Category string `json:"category" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

func (h *UpdatePostHandler) UpdatePost(c *gin.Context) {
	var req UpdatePostRequestInternal
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Failed to bind update post request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.log.Debug("Update post request validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.log.Debug("Invalid post id", slog.String("id", c.Param("id")))
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}

	update := &model.UpdatePostDTO{
		Author:   req.Author,
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
	}

	updatedPost, err := h.postService.UpdatePost(c.Request.Context(), id, update)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		default:
			h.log.Error("Failed to update post", slog.Int64("id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update post"})
		}
		return
	}

	c.JSON(http.StatusOK, updatedPost)
}
