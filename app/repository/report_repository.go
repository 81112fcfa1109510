package repository

import (
	"time"

	"internship-portal-backend/app/model"
	"internship-portal-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportRepository menangani laporan magang berversi.
type ReportRepository interface {
	Create(rep *model.Report) error
	FindByID(id uuid.UUID) (*model.Report, error)
	Update(rep *model.Report) error
	SoftDelete(id uuid.UUID) error

	// NextVersion menghitung versi berikutnya untuk satu internship:
	// max(version yang ada) + 1. Laporan pertama mendapat versi 1.
	NextVersion(internshipID uuid.UUID) (int, error)

	FindPageByInternship(internshipID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

var reportListColumns = map[string]bool{
	"status":     true,
	"version":    true,
	"created_at": true,
}

func (r *reportRepository) Create(rep *model.Report) error {
	return r.db.Create(rep).Error
}

func (r *reportRepository) FindByID(id uuid.UUID) (*model.Report, error) {
	var rep model.Report
	if err := r.db.Where("id = ?", id).First(&rep).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *reportRepository) Update(rep *model.Report) error {
	rep.UpdatedAt = time.Now()
	return r.db.Save(rep).Error
}

func (r *reportRepository) SoftDelete(id uuid.UUID) error {
	return r.db.Delete(&model.Report{}, "id = ?", id).Error
}

// NextVersion memakai Unscoped supaya versi laporan yang sudah di-soft-delete
// tidak dipakai ulang (unique index internship_id+version tetap aman).
func (r *reportRepository) NextVersion(internshipID uuid.UUID) (int, error) {
	var max int
	err := r.db.Model(&model.Report{}).
		Unscoped().
		Where("internship_id = ?", internshipID).
		Select("COALESCE(MAX(version), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

func (r *reportRepository) FindPageByInternship(internshipID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error) {
	db := r.db.Model(&model.Report{}).Where("internship_id = ?", internshipID)
	db = utils.ApplyListQuery(db, q, []string{"title"}, reportListColumns)

	var items []model.Report
	return utils.Paginate(db, q, &items)
}
