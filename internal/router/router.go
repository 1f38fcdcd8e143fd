package router

import (
	"strings"
	"time"

	"github.com/blues/fms/internal/auth"
	"github.com/blues/fms/internal/config"
	"github.com/blues/fms/internal/handler"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "flowmint-service",
		})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "FlowMint API is running!",
			"version": "1.0.0",
		})
	})

	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpireMinutes)*time.Minute)

	api := r.Group("/api")
	{
		// 注册登录
		authHandler := handler.NewAuthHandler(db, tokenManager)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/me", authHandler.Me)

		// 用户相关路由
		userHandler := handler.NewUserHandler(db)
		api.GET("/user/:wallet_address", userHandler.GetUser)
		api.GET("/users", userHandler.ListUsers)
		api.PUT("/user/:id", userHandler.UpdateUser)

		// 项目相关路由
		projectHandler := handler.NewProjectHandler(db)
		api.POST("/projects", projectHandler.CreateProject)
		api.GET("/projects", projectHandler.ListProjects)
		api.GET("/projects/:id", projectHandler.GetProject)
		api.PUT("/projects/:id", projectHandler.UpdateProject)
		api.DELETE("/projects/:id", projectHandler.DeactivateProject)
		api.GET("/projects/:id/investments", projectHandler.GetProjectInvestments)

		// 投资相关路由
		investmentHandler := handler.NewInvestmentHandler(db)
		api.POST("/investments", investmentHandler.CreateInvestment)
		api.GET("/investments", investmentHandler.ListInvestments)

		// 仪表盘
		dashboardHandler := handler.NewDashboardHandler(db)
		api.GET("/creator/:id/dashboard", dashboardHandler.GetCreatorDashboard)
		api.GET("/investor/:id/dashboard", dashboardHandler.GetInvestorDashboard)
	}

	return r
}

// CORS中间件，允许的来源由配置给出
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	allowAll := false
	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowAll {
			c.Header("Access-Control-Allow-Origin", "*")
		} else if allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
