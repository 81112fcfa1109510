package routes

import (
	"internship-portal-backend/app/service"
	"internship-portal-backend/middleware"

	"github.com/gin-gonic/gin"
)

// AdminRoutes mendaftarkan seluruh endpoint khusus admin/superadmin:
// manajemen user, trash, dan analytics dashboard. Pengecekan role
// dilakukan di masing-masing service.
func AdminRoutes(r *gin.Engine, admin service.AdminService, trash service.TrashService, analytics service.AnalyticsService) {
	users := r.Group("/api/v1/admin/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.POST("/", admin.CreateUser)
		users.GET("/", admin.GetAllUsers)
		users.GET("/:id", admin.GetUserDetail)
		users.PUT("/:id", admin.UpdateUser)
		users.DELETE("/:id", admin.DeleteUser)
		users.PUT("/:id/role", admin.UpdateUserRole)
	}

	trashGroup := r.Group("/api/v1/admin/trash")
	trashGroup.Use(middleware.AuthMiddleware())
	{
		trashGroup.GET("/:type", trash.List)
		trashGroup.POST("/restore/:type/:id", trash.Restore)
		trashGroup.DELETE("/force-delete/:type/:id", trash.ForceDelete)
	}

	stats := r.Group("/api/v1/admin/analytics")
	stats.Use(middleware.AuthMiddleware())
	{
		stats.GET("/internship-stats", analytics.InternshipStats)
		stats.GET("/student-performance", analytics.StudentPerformance)
		stats.GET("/system-usage", analytics.SystemUsage)
		stats.GET("/logbook-summary", analytics.LogbookSummary)
		stats.GET("/report-summary", analytics.ReportSummary)
		stats.GET("/guidance-class-stats", analytics.GuidanceClassStats)
		stats.GET("/tutorial-stats", analytics.TutorialStats)
		stats.GET("/user-stats", analytics.UserStats)
		stats.GET("/faq-stats", analytics.FaqStats)
		stats.GET("/global-variable-stats", analytics.GlobalVariableStats)
		stats.GET("/trash-stats", analytics.TrashStats)
	}
}
