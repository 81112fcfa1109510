package routes

import (
	"internship-portal-backend/app/service"
	"internship-portal-backend/middleware"

	"github.com/gin-gonic/gin"
)

// ContentRoutes mendaftarkan endpoint konten portal. Listing tutorial dan
// FAQ terbuka untuk semua user login; mutasi dan global variable hanya
// untuk admin (dicek di service).
func ContentRoutes(r *gin.Engine, content service.ContentService) {
	tutorials := r.Group("/api/v1/tutorials")
	tutorials.Use(middleware.AuthMiddleware())
	{
		tutorials.GET("/", content.GetTutorials)
		tutorials.GET("/:id", content.GetTutorialDetail)
		tutorials.POST("/", content.CreateTutorial)
		tutorials.PUT("/:id", content.UpdateTutorial)
		tutorials.DELETE("/:id", content.DeleteTutorial)
	}

	faqs := r.Group("/api/v1/faqs")
	faqs.Use(middleware.AuthMiddleware())
	{
		faqs.GET("/", content.GetFaqs)
		faqs.POST("/", content.CreateFaq)
		faqs.PUT("/:id", content.UpdateFaq)
		faqs.DELETE("/:id", content.DeleteFaq)
	}

	globals := r.Group("/api/v1/global-variables")
	globals.Use(middleware.AuthMiddleware())
	{
		globals.GET("/", content.GetGlobalVariables)
		globals.POST("/", content.CreateGlobalVariable)
		globals.PUT("/:id", content.UpdateGlobalVariable)
		globals.DELETE("/:id", content.DeleteGlobalVariable)
	}
}
