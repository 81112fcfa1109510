package service

import (
	"net/http"

	"internship-portal-backend/app/repository"
	"internship-portal-backend/utils"

	"github.com/gin-gonic/gin"
)

// AnalyticsService: endpoint statistik dashboard admin. Seluruhnya
// read-only, admin/superadmin only, dan dihitung langsung dari database
// (tidak ada cache).
type AnalyticsService interface {
	InternshipStats(ctx *gin.Context)
	StudentPerformance(ctx *gin.Context)
	SystemUsage(ctx *gin.Context)
	LogbookSummary(ctx *gin.Context)
	ReportSummary(ctx *gin.Context)
	GuidanceClassStats(ctx *gin.Context)
	TutorialStats(ctx *gin.Context)
	UserStats(ctx *gin.Context)
	FaqStats(ctx *gin.Context)
	GlobalVariableStats(ctx *gin.Context)
	TrashStats(ctx *gin.Context)
}

type analyticsService struct {
	repo      repository.AnalyticsRepository
	trashRepo repository.TrashRepository
}

func NewAnalyticsService(repo repository.AnalyticsRepository, trashRepo repository.TrashRepository) AnalyticsService {
	return &analyticsService{repo, trashRepo}
}

// respondStats: pola yang sama untuk semua endpoint statistik.
func respondStats(ctx *gin.Context, data interface{}, err error) {
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghitung statistik", err.Error(), nil))
		return
	}
	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil statistik", data))
}

func (s *analyticsService) InternshipStats(ctx *gin.Context) {
	if !ensureAdmin(ctx) {
		return
	}
	data, err := s.repo.InternshipStats()
	respondStats(ctx, data, err)
}

func (s *analyticsService) StudentPerformance(ctx *gin.Context) {
	if !ensureAdmin(ctx) {
		return
	}
	data, err := s.repo.StudentPerformance()
	respondStats(ctx, data, err)
}

func (s *analyticsService) SystemUsage(ctx *gin.Context) {
	if !ensureAdmin(ctx) {
		return
	}
	data, err := s.repo.SystemUsage()
	respondStats(ctx, data, err)
}

func (s *analyticsService) LogbookSummary(ctx *gin.Context) {
	if !ensureAdmin(ctx) {
		return
	}
	data, err := s.repo.LogbookSummary()
	respondStats(ctx, data, err)
}

func (s *analyticsService) ReportSummary(ctx *gin.Context) {
	if !ensureAdmin(ctx) {
		return
	}
	data, err := s.repo.ReportSummary()
	respondStats(ctx, data, err)
}

func (s *analyticsService) GuidanceClassStats(ctx *gin.Context) {
	if !ensureAdmin(ctx) {
		return
	}
	data, err := s.repo.GuidanceClassStats()
	respondStats(ctx, data, err)
}

func (s *analyticsService) TutorialStats(ctx *gin.Context) {
	if !ensureAdmin(ctx) {
		return
	}
	data, err := s.repo.TutorialStats()
	respondStats(ctx, data, err)
}

func (s *analyticsService) UserStats(ctx *gin.Context) {
	if !ensureAdmin(ctx) {
		return
	}
	data, err := s.repo.UserStats()
	respondStats(ctx, data, err)
}

func (s *analyticsService) FaqStats(ctx *gin.Context) {
	if !ensureAdmin(ctx) {
		return
	}
	data, err := s.repo.FaqStats()
	respondStats(ctx, data, err)
}

func (s *analyticsService) GlobalVariableStats(ctx *gin.Context) {
	if !ensureAdmin(ctx) {
		return
	}
	data, err := s.repo.GlobalVariableStats()
	respondStats(ctx, data, err)
}

// TrashStats: jumlah record terhapus per tipe entity.
func (s *analyticsService) TrashStats(ctx *gin.Context) {
	if !ensureAdmin(ctx) {
		return
	}
	counts, err := s.trashRepo.Counts()
	respondStats(ctx, counts, err)
}
