package routes

import (
	"net/http"
	"path/filepath"

	"internship-portal-backend/app/model"
	"internship-portal-backend/app/service"
	"internship-portal-backend/middleware"
	"internship-portal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler mengelola request laporan magang berversi.
type ReportHandler struct {
	reportService service.ReportService
	storage       *utils.Storage
}

func NewReportHandler(reportService service.ReportService, storage *utils.Storage) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		storage:       storage,
	}
}

// SetupReportRoutes mendaftarkan endpoint laporan.
func (h *ReportHandler) SetupReportRoutes(r *gin.Engine) {
	nested := r.Group("/api/v1/internships/:id/reports")
	nested.Use(middleware.AuthMiddleware())
	{
		nested.POST("/", h.Submit)
		nested.GET("/", h.List)
	}

	g := r.Group("/api/v1/reports")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("/:id", h.Detail)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
		g.PUT("/:id/review", h.Review)
	}
}

// reportDir: file laporan dikelompokkan per internship.
func reportDir(internshipID uuid.UUID) string {
	return filepath.Join("internships", internshipID.String(), "reports")
}

// Submit: mahasiswa mengunggah laporan baru (multipart, file wajib).
// Versi otomatis = versi tertinggi yang ada + 1.
func (h *ReportHandler) Submit(ctx *gin.Context) {
	userID, _ := currentPrincipal(ctx)
	internshipID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	title := ctx.PostForm("title")
	if title == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Judul laporan wajib diisi", "title kosong", nil))
		return
	}

	file, err := ctx.FormFile("reportFile")
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("File laporan wajib diunggah", err.Error(), nil))
		return
	}

	filePath, err := h.storage.Save(ctx, file, reportDir(internshipID))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menyimpan file laporan", err.Error(), nil))
		return
	}

	report, err := h.reportService.Submit(ctx.Request.Context(), userID, internshipID, title, filePath)
	if err != nil {
		h.storage.Delete(filePath)
		respondServiceError(ctx, "Gagal mengunggah laporan", err)
		return
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("Laporan berhasil diunggah", report))
}

func (h *ReportHandler) List(ctx *gin.Context) {
	userID, role := currentPrincipal(ctx)
	internshipID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	page, err := h.reportService.ListByInternship(ctx.Request.Context(), userID, role, internshipID, utils.ParseListQuery(ctx))
	if err != nil {
		respondServiceError(ctx, "Gagal mengambil laporan", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil laporan", page))
}

// Detail mengambil satu laporan (pemilik, dosen pembimbing, atau admin).
func (h *ReportHandler) Detail(ctx *gin.Context) {
	userID, role := currentPrincipal(ctx)
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	report, err := h.reportService.Detail(ctx.Request.Context(), userID, role, id)
	if err != nil {
		respondServiceError(ctx, "Gagal mengambil laporan", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil detail laporan", report))
}

// Update: pemilik memperbarui laporan (multipart). File baru menaikkan versi.
func (h *ReportHandler) Update(ctx *gin.Context) {
	userID, role := currentPrincipal(ctx)
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	in := service.UpdateReportInput{Title: ctx.PostForm("title")}

	if file, err := ctx.FormFile("reportFile"); err == nil {
		// file baru disimpan ke direktori internship yang sama dengan
		// laporan lama, jadi resolve dulu internship pemilik laporan
		existing, derr := h.reportService.Detail(ctx.Request.Context(), userID, role, id)
		if derr != nil {
			respondServiceError(ctx, "Gagal memperbarui laporan", derr)
			return
		}

		filePath, err := h.storage.Save(ctx, file, reportDir(existing.InternshipID))
		if err != nil {
			ctx.JSON(http.StatusInternalServerError,
				utils.BuildResponseFailed("Gagal menyimpan file laporan", err.Error(), nil))
			return
		}
		in.ReportFile = filePath
	}

	report, err := h.reportService.Update(ctx.Request.Context(), userID, id, in)
	if err != nil {
		if in.ReportFile != "" {
			h.storage.Delete(in.ReportFile)
		}
		respondServiceError(ctx, "Gagal memperbarui laporan", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Laporan berhasil diperbarui", report))
}

// Review: dosen pembimbing atau admin menyetujui/menolak laporan.
func (h *ReportHandler) Review(ctx *gin.Context) {
	userID, role := currentPrincipal(ctx)
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var input struct {
		Status        string  `json:"status" binding:"required"`
		ReviewerNotes *string `json:"reviewerNotes"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	err := h.reportService.Review(ctx.Request.Context(), userID, role, id,
		model.ReportStatus(input.Status), input.ReviewerNotes)
	if err != nil {
		respondServiceError(ctx, "Gagal me-review laporan", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Review laporan berhasil disimpan", nil))
}

func (h *ReportHandler) Delete(ctx *gin.Context) {
	userID, role := currentPrincipal(ctx)
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := h.reportService.Delete(ctx.Request.Context(), userID, role, id); err != nil {
		respondServiceError(ctx, "Gagal menghapus laporan", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Laporan berhasil dihapus", nil))
}
