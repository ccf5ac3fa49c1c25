package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"member_web/internal/api/handlers"
	"member_web/internal/middleware"
	"member_web/internal/service"
	"member_web/pkg/config"
)

// NewRouter 建立掛好中間件與路由的 gin 引擎
func NewRouter(cfg config.ServerConfig, services *service.Services, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.AllowedOrigin))

	SetupRoutes(r, cfg, services)
	return r
}

func SetupRoutes(r *gin.Engine, cfg config.ServerConfig, services *service.Services) {
	memberHandler := handlers.NewMemberHandler(services.Member)
	authHandler := handlers.NewAuthHandler(services.Member, services.Tokens)
	feedHandler := handlers.NewFeedHandler(services.Feed, cfg.AllowedOrigin)

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "route not found",
		})
	})

	// 公開路由
	{
		r.GET("/", handlers.Hello)
		r.GET("/health", handlers.Health)

		r.POST("/members", memberHandler.Signup)
		r.POST("/auth/login", authHandler.Login)
	}

	// 需要驗證的路由
	authorized := r.Group("/")
	authorized.Use(middleware.AuthMiddleware(services.Tokens))
	{
		authorized.GET("/members/me", memberHandler.Me)
		authorized.GET("/members/events", feedHandler.Subscribe)
	}
}
