package routes

import (
	"net/http"

	"internship-portal-backend/app/service"
	"internship-portal-backend/middleware"
	"internship-portal-backend/utils"

	"github.com/gin-gonic/gin"
)

// LogbookHandler mengelola request catatan harian magang.
type LogbookHandler struct {
	logbookService service.LogbookService
}

func NewLogbookHandler(logbookService service.LogbookService) *LogbookHandler {
	return &LogbookHandler{logbookService: logbookService}
}

// SetupLogbookRoutes mendaftarkan endpoint logbook. Create dan list
// menempel di parent internship; mutasi per entry pakai prefix sendiri.
func (h *LogbookHandler) SetupLogbookRoutes(r *gin.Engine) {
	nested := r.Group("/api/v1/internships/:id/logbooks")
	nested.Use(middleware.AuthMiddleware())
	{
		nested.POST("/", h.Create)
		nested.GET("/", h.List)
	}

	g := r.Group("/api/v1/logbooks")
	g.Use(middleware.AuthMiddleware())
	{
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
		g.PUT("/:id/supervisor-notes", h.SetSupervisorNotes)
	}
}

func (h *LogbookHandler) Create(ctx *gin.Context) {
	userID, _ := currentPrincipal(ctx)
	internshipID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var input struct {
		Date       string `json:"date" binding:"required"`
		Activities string `json:"activities" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Format tanggal harus YYYY-MM-DD", err.Error(), nil))
		return
	}

	logbook, err := h.logbookService.Create(ctx.Request.Context(), userID, internshipID, service.LogbookInput{
		Date:       date,
		Activities: input.Activities,
	})
	if err != nil {
		respondServiceError(ctx, "Gagal membuat logbook", err)
		return
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("Logbook berhasil dibuat", logbook))
}

func (h *LogbookHandler) List(ctx *gin.Context) {
	userID, role := currentPrincipal(ctx)
	internshipID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	page, err := h.logbookService.ListByInternship(ctx.Request.Context(), userID, role, internshipID, utils.ParseListQuery(ctx))
	if err != nil {
		respondServiceError(ctx, "Gagal mengambil logbook", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil logbook", page))
}

func (h *LogbookHandler) Update(ctx *gin.Context) {
	userID, _ := currentPrincipal(ctx)
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var input struct {
		Date       string `json:"date"`
		Activities string `json:"activities"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	in := service.LogbookInput{Activities: input.Activities}
	if input.Date != "" {
		date, err := parseDate(input.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest,
				utils.BuildResponseFailed("Format tanggal harus YYYY-MM-DD", err.Error(), nil))
			return
		}
		in.Date = date
	}

	logbook, err := h.logbookService.Update(ctx.Request.Context(), userID, id, in)
	if err != nil {
		respondServiceError(ctx, "Gagal memperbarui logbook", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Logbook berhasil diperbarui", logbook))
}

func (h *LogbookHandler) Delete(ctx *gin.Context) {
	userID, _ := currentPrincipal(ctx)
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := h.logbookService.Delete(ctx.Request.Context(), userID, id); err != nil {
		respondServiceError(ctx, "Gagal menghapus logbook", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Logbook berhasil dihapus", nil))
}

// SetSupervisorNotes: dosen pembimbing mengisi catatan pada logbook
// mahasiswa bimbingannya.
func (h *LogbookHandler) SetSupervisorNotes(ctx *gin.Context) {
	userID, role := currentPrincipal(ctx)
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var input struct {
		Notes string `json:"notes" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	if err := h.logbookService.SetSupervisorNotes(ctx.Request.Context(), userID, role, id, input.Notes); err != nil {
		respondServiceError(ctx, "Gagal mengisi catatan pembimbing", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Catatan pembimbing berhasil disimpan", nil))
}
