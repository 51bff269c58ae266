package http

import (
	"todolist/internal/adapter/http/handlers"
	"todolist/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API under /api. requireAuth guards every todo
// route.
func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	requireAuth gin.HandlerFunc,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/user", authHandler.CurrentUser)
	}

	todos := api.Group("/todos", requireAuth)
	{
		todos.GET("", taskHandler.ListTasks)
		todos.POST("", taskHandler.CreateTask)
		todos.GET("/:id", taskHandler.GetTask)
		todos.PATCH("/:id", taskHandler.UpdateTask)
		todos.DELETE("/:id", taskHandler.DeleteTask)
		todos.POST("/:id/toggle", taskHandler.ToggleTaskCompletion)
	}
}

// RegisterMetricsRoute exposes the Prometheus handler at /metrics.
func RegisterMetricsRoute(r *gin.Engine, metricsHandler gin.HandlerFunc) {
	r.GET("/metrics", metricsHandler)
}
