package post_http_test

import (
	"github.com/gin-gonic/gin"

	post_http "blog-post-service/internal/delivery/http/post"
	"blog-post-service/internal/logger"
	post_service "blog-post-service/internal/service/post"
)

func newTestRouter(postService post_service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := post_http.NewPostHTTPService(postService, logger.New("test"))
	api.RegisterRoutes(router)
	return router
}
