package routes

import (
	"net/http"
	"strconv"

	"internship-portal-backend/app/model"
	"internship-portal-backend/app/service"
	"internship-portal-backend/middleware"
	"internship-portal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InternshipHandler mengelola request lifecycle pengajuan magang.
type InternshipHandler struct {
	internshipService service.InternshipService
	storage           *utils.Storage
}

func NewInternshipHandler(internshipService service.InternshipService, storage *utils.Storage) *InternshipHandler {
	return &InternshipHandler{
		internshipService: internshipService,
		storage:           storage,
	}
}

// SetupInternshipRoutes mendaftarkan endpoint magang.
// Semua endpoint wajib login.
func (h *InternshipHandler) SetupInternshipRoutes(r *gin.Engine) {
	g := r.Group("/api/v1/internships")
	g.Use(middleware.AuthMiddleware())
	{
		g.POST("/", h.Submit)
		g.GET("/", h.List)
		g.GET("/:id", h.Detail)
		g.PUT("/:id", h.Edit)
		g.DELETE("/:id", h.Delete)

		// khusus admin
		g.PUT("/:id/status", h.UpdateStatus)
		g.PUT("/:id/progress", h.UpdateProgress)
	}
}

// Submit: mahasiswa mengajukan magang (multipart, file surat pengajuan wajib).
func (h *InternshipHandler) Submit(ctx *gin.Context) {
	userID, role := currentPrincipal(ctx)
	if role != model.RoleMahasiswa {
		ctx.JSON(http.StatusForbidden,
			utils.BuildResponseFailed("Hanya mahasiswa yang dapat mengajukan magang", "forbidden", nil))
		return
	}

	startDate, err1 := parseDate(ctx.PostForm("startDate"))
	endDate, err2 := parseDate(ctx.PostForm("endDate"))
	if err1 != nil || err2 != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Format tanggal harus YYYY-MM-DD", "startDate/endDate", nil))
		return
	}

	file, err := ctx.FormFile("applicationFile")
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("File surat pengajuan wajib diunggah", err.Error(), nil))
		return
	}

	filePath, err := h.storage.Save(ctx, file, "internship_applications")
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menyimpan file", err.Error(), nil))
		return
	}

	internship, err := h.internshipService.Submit(ctx.Request.Context(), userID, service.SubmitInternshipInput{
		Type:            model.InternshipType(ctx.PostForm("type")),
		CompanyName:     ctx.PostForm("companyName"),
		CompanyAddress:  ctx.PostForm("companyAddress"),
		StartDate:       startDate,
		EndDate:         endDate,
		ApplicationFile: filePath,
	})
	if err != nil {
		h.storage.Delete(filePath)
		respondServiceError(ctx, "Gagal mengajukan magang", err)
		return
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("Pengajuan magang berhasil dibuat", internship))
}

func (h *InternshipHandler) List(ctx *gin.Context) {
	userID, role := currentPrincipal(ctx)

	page, err := h.internshipService.List(ctx.Request.Context(), userID, role, utils.ParseListQuery(ctx))
	if err != nil {
		respondServiceError(ctx, "Gagal mengambil daftar magang", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil daftar magang", page))
}

func (h *InternshipHandler) Detail(ctx *gin.Context) {
	userID, role := currentPrincipal(ctx)
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	internship, err := h.internshipService.Detail(ctx.Request.Context(), userID, role, id)
	if err != nil {
		respondServiceError(ctx, "Gagal mengambil detail magang", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil detail magang", internship))
}

// Edit: pemilik, hanya selama status waiting. Multipart, semua field opsional.
func (h *InternshipHandler) Edit(ctx *gin.Context) {
	userID, _ := currentPrincipal(ctx)
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	in := service.EditInternshipInput{
		Type:           model.InternshipType(ctx.PostForm("type")),
		CompanyName:    ctx.PostForm("companyName"),
		CompanyAddress: ctx.PostForm("companyAddress"),
	}

	if v := ctx.PostForm("startDate"); v != "" {
		d, err := parseDate(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest,
				utils.BuildResponseFailed("Format tanggal harus YYYY-MM-DD", "startDate", nil))
			return
		}
		in.StartDate = &d
	}
	if v := ctx.PostForm("endDate"); v != "" {
		d, err := parseDate(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest,
				utils.BuildResponseFailed("Format tanggal harus YYYY-MM-DD", "endDate", nil))
			return
		}
		in.EndDate = &d
	}

	if file, err := ctx.FormFile("applicationFile"); err == nil {
		filePath, err := h.storage.Save(ctx, file, "internship_applications")
		if err != nil {
			ctx.JSON(http.StatusInternalServerError,
				utils.BuildResponseFailed("Gagal menyimpan file", err.Error(), nil))
			return
		}
		in.ApplicationFile = filePath
	}

	internship, err := h.internshipService.Edit(ctx.Request.Context(), userID, id, in)
	if err != nil {
		if in.ApplicationFile != "" {
			h.storage.Delete(in.ApplicationFile)
		}
		respondServiceError(ctx, "Gagal mengubah pengajuan magang", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Pengajuan magang berhasil diperbarui", internship))
}

func (h *InternshipHandler) Delete(ctx *gin.Context) {
	userID, _ := currentPrincipal(ctx)
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := h.internshipService.Delete(ctx.Request.Context(), userID, id); err != nil {
		respondServiceError(ctx, "Gagal menghapus pengajuan magang", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Pengajuan magang berhasil dihapus", nil))
}

// UpdateStatus: admin menerima/menolak pengajuan. Saat menerima,
// advisorId wajib jika mahasiswa belum punya pembimbing.
func (h *InternshipHandler) UpdateStatus(ctx *gin.Context) {
	_, role := currentPrincipal(ctx)
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var input struct {
		Status    string `json:"status" binding:"required"`
		AdvisorID string `json:"advisorId"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	var advisorID *uuid.UUID
	if input.AdvisorID != "" {
		aid, err := uuid.Parse(input.AdvisorID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest,
				utils.BuildResponseFailed("Format advisorId salah (harus UUID)", err.Error(), nil))
			return
		}
		advisorID = &aid
	}

	err := h.internshipService.UpdateStatus(ctx.Request.Context(), role, id,
		model.InternshipStatus(input.Status), advisorID)
	if err != nil {
		respondServiceError(ctx, "Gagal mengubah status pengajuan", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Status pengajuan berhasil diubah", nil))
}

// UpdateProgress: admin mengisi progress (0-100) pada magang accepted.
func (h *InternshipHandler) UpdateProgress(ctx *gin.Context) {
	_, role := currentPrincipal(ctx)
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var input struct {
		Progress *int `json:"progress" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	if err := h.internshipService.UpdateProgress(ctx.Request.Context(), role, id, *input.Progress); err != nil {
		respondServiceError(ctx, "Gagal mengubah progress magang", err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Progress magang berhasil diubah (menjadi "+strconv.Itoa(*input.Progress)+"%)", nil))
}
