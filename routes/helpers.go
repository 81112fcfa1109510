package routes

import (
	"errors"
	"net/http"
	"time"

	"internship-portal-backend/app/service"
	"internship-portal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentPrincipal membaca identitas user dari context yang diisi
// AuthMiddleware.
func currentPrincipal(ctx *gin.Context) (uuid.UUID, string) {
	userIDI, _ := ctx.Get("userID")
	roleI, _ := ctx.Get("role")
	userID, _ := userIDI.(uuid.UUID)
	role, _ := roleI.(string)
	return userID, role
}

// parseID membaca path param dan memvalidasi bentuk UUID-nya.
func parseID(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("ID tidak valid", err.Error(), nil))
		return uuid.Nil, false
	}
	return id, true
}

// parseDate menerima format tanggal "2006-01-02".
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// respondServiceError memetakan sentinel error dari service ke kode HTTP.
// Error di luar daftar dianggap kegagalan internal.
func respondServiceError(ctx *gin.Context, msg string, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrNotEligible):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrInvalidInternshipType),
		errors.Is(err, service.ErrInvalidInternshipStatus),
		errors.Is(err, service.ErrInvalidProgress),
		errors.Is(err, service.ErrInvalidReportStatus),
		errors.Is(err, service.ErrReviewNotesRequired),
		errors.Is(err, service.ErrAdvisorRequired),
		errors.Is(err, service.ErrInvalidQRToken):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInternshipNotWaiting),
		errors.Is(err, service.ErrInternshipNotAccepted),
		errors.Is(err, service.ErrReportApproved),
		errors.Is(err, service.ErrAlreadyAttended):
		status = http.StatusConflict
	}

	ctx.JSON(status, utils.BuildResponseFailed(msg, err.Error(), nil))
}
