package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, ah *AuthHandler, authmw echo.MiddlewareFunc, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/auth/register", ah.Register)
	e.POST("/auth/login", ah.Login)

	protected := e.Group("", authmw)
	protected.POST("/auth/logout", ah.Logout)
	protected.GET("/auth/me", ah.Me)

	protected.GET("/tasks", h.ListTasks)
	protected.POST("/tasks", h.CreateTask)
	protected.GET("/tasks/stats/summary", h.Stats)
	protected.GET("/tasks/:id", h.GetTask)
	protected.PUT("/tasks/:id", h.UpdateTask)
	protected.DELETE("/tasks/:id", h.DeleteTask)
}
