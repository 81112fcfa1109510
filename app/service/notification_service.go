package service

import (
	"errors"
	"net/http"

	"internship-portal-backend/app/repository"
	"internship-portal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationService: feed notifikasi milik user yang login.
type NotificationService interface {
	GetMyNotifications(ctx *gin.Context)
	MarkRead(ctx *gin.Context)
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo}
}

func (s *notificationService) GetMyNotifications(ctx *gin.Context) {
	userIDI, _ := ctx.Get("userID")
	userID, _ := userIDI.(uuid.UUID)

	notifications, err := s.repo.FindByUser(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil notifikasi", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil notifikasi", notifications))
}

// MarkRead menandai satu notifikasi sebagai terbaca. Notifikasi milik
// user lain tidak akan ketemu (filter di repository menyertakan userId).
func (s *notificationService) MarkRead(ctx *gin.Context) {
	userIDI, _ := ctx.Get("userID")
	userID, _ := userIDI.(uuid.UUID)

	if err := s.repo.MarkRead(ctx.Request.Context(), ctx.Param("id"), userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Notifikasi tidak ditemukan", err.Error(), nil))
			return
		}
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Gagal menandai notifikasi", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Notifikasi ditandai terbaca", nil))
}
