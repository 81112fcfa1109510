package routes

import (
	"internship-portal-backend/app/service"
	"internship-portal-backend/middleware"

	"github.com/gin-gonic/gin"
)

// NotificationRoutes mendaftarkan endpoint feed notifikasi user login.
func NotificationRoutes(r *gin.Engine, notifications service.NotificationService) {
	g := r.Group("/api/v1/notifications")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("/", notifications.GetMyNotifications)
		g.PUT("/:id/read", notifications.MarkRead)
	}
}
