package repository

import (
	"time"

	"internship-portal-backend/app/model"
	"internship-portal-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogbookRepository menangani catatan kegiatan harian magang.
type LogbookRepository interface {
	Create(l *model.Logbook) error
	FindByID(id uuid.UUID) (*model.Logbook, error)
	Update(l *model.Logbook) error
	SoftDelete(id uuid.UUID) error
	FindPageByInternship(internshipID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error)
}

type logbookRepository struct {
	db *gorm.DB
}

func NewLogbookRepository(db *gorm.DB) LogbookRepository {
	return &logbookRepository{db: db}
}

var logbookListColumns = map[string]bool{
	"date":       true,
	"created_at": true,
}

func (r *logbookRepository) Create(l *model.Logbook) error {
	return r.db.Create(l).Error
}

func (r *logbookRepository) FindByID(id uuid.UUID) (*model.Logbook, error) {
	var l model.Logbook
	if err := r.db.Where("id = ?", id).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *logbookRepository) Update(l *model.Logbook) error {
	l.UpdatedAt = time.Now()
	return r.db.Save(l).Error
}

func (r *logbookRepository) SoftDelete(id uuid.UUID) error {
	return r.db.Delete(&model.Logbook{}, "id = ?", id).Error
}

func (r *logbookRepository) FindPageByInternship(internshipID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error) {
	db := r.db.Model(&model.Logbook{}).Where("internship_id = ?", internshipID)
	db = utils.ApplyListQuery(db, q, []string{"activities"}, logbookListColumns)

	var items []model.Logbook
	return utils.Paginate(db, q, &items)
}
