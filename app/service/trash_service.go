package service

import (
	"errors"
	"net/http"

	"internship-portal-backend/app/repository"
	"internship-portal-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TrashService: listing, restore, dan force delete record yang sudah
// di-soft-delete. Tipe entity diambil dari segmen URL (:type).
type TrashService interface {
	List(ctx *gin.Context)
	Restore(ctx *gin.Context)
	ForceDelete(ctx *gin.Context)
}

type trashService struct {
	repo repository.TrashRepository
}

func NewTrashService(repo repository.TrashRepository) TrashService {
	return &trashService{repo}
}

func validTrashType(t string) bool {
	for _, known := range repository.TrashTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (s *trashService) List(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	entityType := ctx.Param("type")
	if !validTrashType(entityType) {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Tipe trash tidak dikenal", entityType, nil))
		return
	}

	q := utils.ParseListQuery(ctx)
	page, err := s.repo.List(entityType, q)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil data trash", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil data trash", page))
}

func (s *trashService) Restore(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	entityType := ctx.Param("type")
	if !validTrashType(entityType) {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Tipe trash tidak dikenal", entityType, nil))
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := s.repo.Restore(entityType, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Record tidak ditemukan di trash", err.Error(), nil))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal me-restore record", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Record berhasil di-restore", nil))
}

// ForceDelete menghapus permanen. Tidak bisa di-undo.
func (s *trashService) ForceDelete(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	entityType := ctx.Param("type")
	if !validTrashType(entityType) {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Tipe trash tidak dikenal", entityType, nil))
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := s.repo.ForceDelete(entityType, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Record tidak ditemukan di trash", err.Error(), nil))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghapus record secara permanen", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Record dihapus permanen", nil))
}
