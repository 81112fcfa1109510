package routes

import (
	"net/http"

	"internship-portal-backend/app/model"
	"internship-portal-backend/app/service"
	"internship-portal-backend/middleware"
	"internship-portal-backend/utils"

	"github.com/gin-gonic/gin"
)

// GuidanceClassHandler mengelola request kelas bimbingan dan presensi.
type GuidanceClassHandler struct {
	classService service.GuidanceClassService
}

func NewGuidanceClassHandler(classService service.GuidanceClassService) *GuidanceClassHandler {
	return &GuidanceClassHandler{classService: classService}
}

// SetupGuidanceClassRoutes mendaftarkan endpoint kelas bimbingan.
// Presensi via QR pakai prefix terpisah (/attendance/:token) supaya tidak
// bentrok dengan param :id di grup guidance-classes.
func (h *GuidanceClassHandler) SetupGuidanceClassRoutes(r *gin.Engine) {
	g := r.Group("/api/v1/guidance-classes")
	g.Use(middleware.AuthMiddleware())
	{
		g.POST("/", h.Create)
		g.GET("/", h.List)
		g.GET("/:id", h.Detail)
		g.PUT("/:id", h.Edit)
		g.DELETE("/:id", h.Delete)

		g.POST("/:id/qr", h.GenerateQR)
		g.POST("/:id/attendances/:userId/mark", h.MarkAttendance)
		g.POST("/:id/attendances/:userId/reset", h.ResetAttendance)
	}

	att := r.Group("/api/v1/attendance")
	att.Use(middleware.AuthMiddleware())
	{
		att.POST("/:token", h.Attend)
	}
}

// Create: dosen membuat kelas. Baris presensi untuk seluruh mahasiswa
// eligible ikut dibuat dalam transaksi yang sama.
func (h *GuidanceClassHandler) Create(ctx *gin.Context) {
	userID, role := currentPrincipal(ctx)

	var input struct {
		Title       string `json:"title" binding:"required"`
		Room        string `json:"room"`
		Description string `json:"description"`
		StartDate   string `json:"startDate" binding:"required"`
		EndDate     string `json:"endDate" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	startDate, err1 := parseDate(input.StartDate)
	endDate, err2 := parseDate(input.EndDate)
	if err1 != nil || err2 != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Format tanggal harus YYYY-MM-DD", "startDate/endDate", nil))
		return
	}

	class, err := h.classService.Create(ctx.Request.Context(), userID, role, service.GuidanceClassInput{
		Title:       input.Title,
		Room:        input.Room,
		Description: input.Description,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		respondServiceError(ctx, "Gagal membuat kelas bimbingan", err)
		return
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("Kelas bimbingan berhasil dibuat", class))
}

func (h *GuidanceClassHandler) List(ctx *gin.Context) {
	userID, role := currentPrincipal(ctx)

	page, err := h.classService.List(ctx.Request.Context(), userID, role, utils.ParseListQuery(ctx))
	if err != nil {
		respondServiceError(ctx, "Gagal mengambil kelas bimbingan", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil kelas bimbingan", page))
}

func (h *GuidanceClassHandler) Detail(ctx *gin.Context) {
	userID, role := currentPrincipal(ctx)
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	class, err := h.classService.Detail(ctx.Request.Context(), userID, role, id)
	if err != nil {
		respondServiceError(ctx, "Gagal mengambil detail kelas", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil detail kelas", class))
}

func (h *GuidanceClassHandler) Edit(ctx *gin.Context) {
	userID, role := currentPrincipal(ctx)
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var input struct {
		Title       string `json:"title"`
		Room        string `json:"room"`
		Description string `json:"description"`
		StartDate   string `json:"startDate"`
		EndDate     string `json:"endDate"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	in := service.GuidanceClassInput{
		Title:       input.Title,
		Room:        input.Room,
		Description: input.Description,
	}
	if input.StartDate != "" {
		d, err := parseDate(input.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest,
				utils.BuildResponseFailed("Format tanggal harus YYYY-MM-DD", "startDate", nil))
			return
		}
		in.StartDate = d
	}
	if input.EndDate != "" {
		d, err := parseDate(input.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest,
				utils.BuildResponseFailed("Format tanggal harus YYYY-MM-DD", "endDate", nil))
			return
		}
		in.EndDate = d
	}

	class, err := h.classService.Edit(ctx.Request.Context(), userID, role, id, in)
	if err != nil {
		respondServiceError(ctx, "Gagal mengubah kelas bimbingan", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Kelas bimbingan berhasil diperbarui", class))
}

func (h *GuidanceClassHandler) Delete(ctx *gin.Context) {
	userID, role := currentPrincipal(ctx)
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := h.classService.Delete(ctx.Request.Context(), userID, role, id); err != nil {
		respondServiceError(ctx, "Gagal menghapus kelas bimbingan", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Kelas bimbingan berhasil dihapus", nil))
}

// GenerateQR: dosen pemilik menerbitkan token presensi baru.
// Respons langsung berupa PNG QR code.
func (h *GuidanceClassHandler) GenerateQR(ctx *gin.Context) {
	userID, _ := currentPrincipal(ctx)
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	png, err := h.classService.GenerateQR(ctx.Request.Context(), userID, id)
	if err != nil {
		respondServiceError(ctx, "Gagal membuat QR presensi", err)
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}

// MarkAttendance: dosen pemilik menandai mahasiswa hadir secara manual.
func (h *GuidanceClassHandler) MarkAttendance(ctx *gin.Context) {
	userID, _ := currentPrincipal(ctx)
	classID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	studentID, ok := parseID(ctx, "userId")
	if !ok {
		return
	}

	var input struct {
		Notes *string `json:"notes"`
	}
	_ = ctx.ShouldBindJSON(&input) // body opsional

	if err := h.classService.MarkAttendance(ctx.Request.Context(), userID, classID, studentID, input.Notes); err != nil {
		respondServiceError(ctx, "Gagal menandai kehadiran", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Kehadiran berhasil dicatat", nil))
}

// ResetAttendance: dosen pemilik membatalkan presensi mahasiswa.
func (h *GuidanceClassHandler) ResetAttendance(ctx *gin.Context) {
	userID, _ := currentPrincipal(ctx)
	classID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	studentID, ok := parseID(ctx, "userId")
	if !ok {
		return
	}

	if err := h.classService.ResetAttendance(ctx.Request.Context(), userID, classID, studentID); err != nil {
		respondServiceError(ctx, "Gagal me-reset kehadiran", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Kehadiran berhasil di-reset", nil))
}

// Attend: mahasiswa presensi mandiri dengan token hasil scan QR.
func (h *GuidanceClassHandler) Attend(ctx *gin.Context) {
	userID, role := currentPrincipal(ctx)
	if role != model.RoleMahasiswa {
		ctx.JSON(http.StatusForbidden,
			utils.BuildResponseFailed("Hanya mahasiswa yang dapat melakukan presensi", "forbidden", nil))
		return
	}

	if err := h.classService.AttendViaToken(ctx.Request.Context(), userID, ctx.Param("token")); err != nil {
		respondServiceError(ctx, "Presensi gagal", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Presensi berhasil dicatat", nil))
}
