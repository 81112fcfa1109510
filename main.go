package main

import (
	"log"
	"os"

	"internship-portal-backend/app/repository"
	"internship-portal-backend/app/service"
	"internship-portal-backend/database"
	"internship-portal-backend/routes"
	"internship-portal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// =================================================================
	// LOAD ENV
	// =================================================================
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env tidak ditemukan, menggunakan environment default")
	}

	// =================================================================
	// INIT DB (POSTGRES + MONGODB)
	// =================================================================
	dbConn, err := database.InitDB()
	if err != nil {
		log.Fatalf("❌ Gagal koneksi database: %v", err)
	}

	// =================================================================
	// SEED DATA (ROLES + USERS + PROFILES + GLOBAL VARIABLES)
	// =================================================================
	database.RunSeeders(dbConn.Postgres)

	// =================================================================
	// STORAGE (PUBLIC DISK)
	// =================================================================
	storage := utils.NewStorage(os.Getenv("STORAGE_DIR"))

	// =================================================================
	// REPOSITORIES
	// =================================================================
	userRepo := repository.NewUserRepository(dbConn.Postgres)
	profileRepo := repository.NewProfileRepository(dbConn.Postgres)
	internshipRepo := repository.NewInternshipRepository(dbConn.Postgres)
	logbookRepo := repository.NewLogbookRepository(dbConn.Postgres)
	reportRepo := repository.NewReportRepository(dbConn.Postgres)
	classRepo := repository.NewGuidanceClassRepository(dbConn.Postgres)
	contentRepo := repository.NewContentRepository(dbConn.Postgres)
	trashRepo := repository.NewTrashRepository(dbConn.Postgres)
	userAdminRepo := repository.NewUserAdminRepository(dbConn.Postgres)
	analyticsRepo := repository.NewAnalyticsRepository(dbConn.Postgres)
	notificationRepo := repository.NewNotificationRepository(dbConn.Mongo)

	// =================================================================
	// SERVICES
	// =================================================================
	authService := service.NewAuthService(userRepo)
	internshipService := service.NewInternshipService(internshipRepo, profileRepo, notificationRepo, storage)
	logbookService := service.NewLogbookService(logbookRepo, internshipRepo, profileRepo)
	reportService := service.NewReportService(reportRepo, internshipRepo, profileRepo, notificationRepo, storage)
	classService := service.NewGuidanceClassService(classRepo, profileRepo, notificationRepo)
	adminService := service.NewAdminService(userAdminRepo, profileRepo)
	trashService := service.NewTrashService(trashRepo)
	contentService := service.NewContentService(contentRepo, storage)
	analyticsService := service.NewAnalyticsService(analyticsRepo, trashRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	// =================================================================
	// ROUTER
	// =================================================================
	r := gin.Default()

	// Autentikasi + profil
	routes.NewAuthHandler(authService, userRepo, profileRepo).SetupAuthRoutes(r)

	// Lifecycle magang
	routes.NewInternshipHandler(internshipService, storage).SetupInternshipRoutes(r)

	// Logbook harian
	routes.NewLogbookHandler(logbookService).SetupLogbookRoutes(r)

	// Laporan berversi
	routes.NewReportHandler(reportService, storage).SetupReportRoutes(r)

	// Kelas bimbingan + presensi QR
	routes.NewGuidanceClassHandler(classService).SetupGuidanceClassRoutes(r)

	// Admin: user management, trash, analytics
	routes.AdminRoutes(r, adminService, trashService, analyticsService)

	// Konten portal: tutorial, FAQ, global variable
	routes.ContentRoutes(r, contentService)

	// Notifikasi
	routes.NotificationRoutes(r, notificationService)

	// Root endpoint (optional)
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Internship Portal API RUNNING",
			"version": "1.0.0",
		})
	})

	// =================================================================
	// START SERVER
	// =================================================================
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running at http://localhost:" + port)

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Gagal menjalankan server: %v", err)
	}
}
