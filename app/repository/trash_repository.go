package repository

import (
	"fmt"

	"internship-portal-backend/app/model"
	"internship-portal-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrashRepository mengelola record yang sudah di-soft-delete:
// listing per tipe, restore, dan force delete (permanen).
type TrashRepository interface {
	List(entityType string, q utils.ListQuery) (*utils.PageResult, error)
	Restore(entityType string, id uuid.UUID) error
	ForceDelete(entityType string, id uuid.UUID) error

	// Counts menghitung jumlah record terhapus per tipe (trash-stats).
	Counts() (map[string]int64, error)
}

type trashRepository struct {
	db *gorm.DB
}

func NewTrashRepository(db *gorm.DB) TrashRepository {
	return &trashRepository{db: db}
}

// TrashTypes adalah daftar tipe entity yang didukung endpoint trash.
// Nama mengikuti segmen URL (kebab-case).
var TrashTypes = []string{
	"internships",
	"logbooks",
	"reports",
	"guidance-classes",
	"tutorials",
	"faqs",
	"global-variables",
	"users",
}

// trashModel memetakan segmen URL ke model GORM-nya.
func trashModel(entityType string) (interface{}, error) {
	switch entityType {
	case "internships":
		return &model.Internship{}, nil
	case "logbooks":
		return &model.Logbook{}, nil
	case "reports":
		return &model.Report{}, nil
	case "guidance-classes":
		return &model.GuidanceClass{}, nil
	case "tutorials":
		return &model.Tutorial{}, nil
	case "faqs":
		return &model.Faq{}, nil
	case "global-variables":
		return &model.GlobalVariable{}, nil
	case "users":
		return &model.User{}, nil
	}
	return nil, fmt.Errorf("tipe trash tidak dikenal: %s", entityType)
}

// List mengembalikan halaman record terhapus untuk satu tipe.
// Query memakai Unscoped + deleted_at IS NOT NULL.
func (r *trashRepository) List(entityType string, q utils.ListQuery) (*utils.PageResult, error) {
	base := func(m interface{}) *gorm.DB {
		return r.db.Model(m).Unscoped().
			Where("deleted_at IS NOT NULL").
			Order("deleted_at DESC")
	}

	switch entityType {
	case "internships":
		var items []model.Internship
		return utils.Paginate(base(&model.Internship{}), q, &items)
	case "logbooks":
		var items []model.Logbook
		return utils.Paginate(base(&model.Logbook{}), q, &items)
	case "reports":
		var items []model.Report
		return utils.Paginate(base(&model.Report{}), q, &items)
	case "guidance-classes":
		var items []model.GuidanceClass
		return utils.Paginate(base(&model.GuidanceClass{}), q, &items)
	case "tutorials":
		var items []model.Tutorial
		return utils.Paginate(base(&model.Tutorial{}), q, &items)
	case "faqs":
		var items []model.Faq
		return utils.Paginate(base(&model.Faq{}), q, &items)
	case "global-variables":
		var items []model.GlobalVariable
		return utils.Paginate(base(&model.GlobalVariable{}), q, &items)
	case "users":
		var items []model.User
		return utils.Paginate(base(&model.User{}), q, &items)
	}
	return nil, fmt.Errorf("tipe trash tidak dikenal: %s", entityType)
}

// Restore mengosongkan deleted_at sehingga record muncul lagi di listing normal.
func (r *trashRepository) Restore(entityType string, id uuid.UUID) error {
	m, err := trashModel(entityType)
	if err != nil {
		return err
	}

	res := r.db.Model(m).Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ForceDelete menghapus record secara permanen. Tidak bisa di-undo.
func (r *trashRepository) ForceDelete(entityType string, id uuid.UUID) error {
	m, err := trashModel(entityType)
	if err != nil {
		return err
	}

	res := r.db.Unscoped().Where("id = ?", id).Delete(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *trashRepository) Counts() (map[string]int64, error) {
	counts := make(map[string]int64, len(TrashTypes))
	for _, t := range TrashTypes {
		m, err := trashModel(t)
		if err != nil {
			return nil, err
		}
		var c int64
		if err := r.db.Model(m).Unscoped().
			Where("deleted_at IS NOT NULL").
			Count(&c).Error; err != nil {
			return nil, err
		}
		counts[t] = c
	}
	return counts, nil
}
