package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blog-post-service/internal/logger"
	"blog-post-service/internal/model"
)

type PostCreator interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
	log         *logger.Logger
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate, log *logger.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type CreatePostRequestInternal struct {
	Author   string `json:"author" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Category string `json:"category" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

func (h *CreatePostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequestInternal
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Failed to bind create post request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.log.Debug("Create post request validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	postDTO := &model.CreatePostDTO{
		Author:   req.Author,
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
	}

	createdPost, err := h.postService.CreatePost(c.Request.Context(), postDTO)
	if err != nil {
		h.log.Error("Failed to create post", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, createdPost)
}
