package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"portfolio-api/cmd/api/handlers"
	"portfolio-api/cmd/api/middleware"
	"portfolio-api/cmd/api/services"
	"portfolio-api/storage"
	_ "portfolio-api/docs"
)

// New wires the gin engine. 읽기 전용 공개 API 라 CORS 는 전부 허용한다.
func New(store storage.ObjectStore, items *services.PortfolioService, gallery *services.GalleryService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(cors.Default())

	// Health check
	r.GET("/health", handlers.HealthHandler(store))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/portfolio", handlers.PortfolioHandler(items, gallery))
	}

	return r
}
