package post_http

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blog-post-service/internal/logger"
	post_service "blog-post-service/internal/service/post"
)

var validate = validator.New()

type PostHTTPService struct {
	postService       post_service.Service
	log               *logger.Logger
	listPostsHandler  *ListPostsHandler
	getPostHandler    *GetPostHandler
	createPostHandler *CreatePostHandler
	updatePostHandler *UpdatePostHandler
	deletePostHandler *DeletePostHandler
}

func NewPostHTTPService(postService post_service.Service, log *logger.Logger) *PostHTTPService {
	return &PostHTTPService{
		postService:       postService,
		log:               log,
		listPostsHandler:  NewListPostsHandler(postService, log),
		getPostHandler:    NewGetPostHandler(postService, log),
		createPostHandler: NewCreatePostHandler(postService, validate, log),
		updatePostHandler: NewUpdatePostHandler(postService, validate, log),
		deletePostHandler: NewDeletePostHandler(postService, log),
	}
}

func (s *PostHTTPService) RegisterRoutes(router *gin.Engine) {
	router.GET("/posts", s.listPostsHandler.ListPosts)
	router.GET("/posts/:id", s.getPostHandler.GetPost)
	router.POST("/posts", s.createPostHandler.CreatePost)
	router.PUT("/posts/:id", s.updatePostHandler.UpdatePost)
	router.DELETE("/posts/:id", s.deletePostHandler.DeletePost)
}
