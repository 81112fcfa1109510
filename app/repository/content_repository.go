package repository

import (
	"time"

	"internship-portal-backend/app/model"
	"internship-portal-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentRepository mengelola konten statis portal yang dikelola admin:
// tutorial, FAQ, dan global variable.
type ContentRepository interface {
	CreateTutorial(t *model.Tutorial) error
	FindTutorialByID(id uuid.UUID) (*model.Tutorial, error)
	UpdateTutorial(t *model.Tutorial) error
	SoftDeleteTutorial(id uuid.UUID) error

	// FindTutorialPage membatasi hasil ke access_level yang boleh dibaca
	// readerRole; readerRole kosong berarti tanpa pembatasan (admin).
	FindTutorialPage(q utils.ListQuery, readerRole string) (*utils.PageResult, error)

	CreateFaq(f *model.Faq) error
	FindFaqByID(id uuid.UUID) (*model.Faq, error)
	UpdateFaq(f *model.Faq) error
	SoftDeleteFaq(id uuid.UUID) error
	FindFaqPage(q utils.ListQuery) (*utils.PageResult, error)

	CreateGlobalVariable(g *model.GlobalVariable) error
	FindGlobalVariableByID(id uuid.UUID) (*model.GlobalVariable, error)
	UpdateGlobalVariable(g *model.GlobalVariable) error
	SoftDeleteGlobalVariable(id uuid.UUID) error
	FindGlobalVariablePage(q utils.ListQuery) (*utils.PageResult, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// ---------- Tutorial ----------

var tutorialListColumns = map[string]bool{
	"title":        true,
	"access_level": true,
	"created_at":   true,
}

func (r *contentRepository) CreateTutorial(t *model.Tutorial) error {
	return r.db.Create(t).Error
}

func (r *contentRepository) FindTutorialByID(id uuid.UUID) (*model.Tutorial, error) {
	var t model.Tutorial
	if err := r.db.Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *contentRepository) UpdateTutorial(t *model.Tutorial) error {
	t.UpdatedAt = time.Now()
	return r.db.Save(t).Error
}

func (r *contentRepository) SoftDeleteTutorial(id uuid.UUID) error {
	return r.db.Delete(&model.Tutorial{}, "id = ?", id).Error
}

func (r *contentRepository) FindTutorialPage(q utils.ListQuery, readerRole string) (*utils.PageResult, error) {
	db := utils.ApplyListQuery(r.db.Model(&model.Tutorial{}), q, []string{"title", "content"}, tutorialListColumns)
	if readerRole != "" {
		db = db.Where("access_level IN ?", []string{"all", readerRole})
	}
	var items []model.Tutorial
	return utils.Paginate(db, q, &items)
}

// ---------- Faq ----------

var faqListColumns = map[string]bool{
	"category":   true,
	"is_active":  true,
	"sort_order": true,
	"created_at": true,
}

func (r *contentRepository) CreateFaq(f *model.Faq) error {
	return r.db.Create(f).Error
}

func (r *contentRepository) FindFaqByID(id uuid.UUID) (*model.Faq, error) {
	var f model.Faq
	if err := r.db.Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *contentRepository) UpdateFaq(f *model.Faq) error {
	f.UpdatedAt = time.Now()
	return r.db.Save(f).Error
}

func (r *contentRepository) SoftDeleteFaq(id uuid.UUID) error {
	return r.db.Delete(&model.Faq{}, "id = ?", id).Error
}

func (r *contentRepository) FindFaqPage(q utils.ListQuery) (*utils.PageResult, error) {
	db := utils.ApplyListQuery(r.db.Model(&model.Faq{}), q, []string{"question", "answer"}, faqListColumns)
	var items []model.Faq
	return utils.Paginate(db, q, &items)
}

// ---------- GlobalVariable ----------

var globalVariableListColumns = map[string]bool{
	"key":        true,
	"type":       true,
	"created_at": true,
}

func (r *contentRepository) CreateGlobalVariable(g *model.GlobalVariable) error {
	return r.db.Create(g).Error
}

func (r *contentRepository) FindGlobalVariableByID(id uuid.UUID) (*model.GlobalVariable, error) {
	var g model.GlobalVariable
	if err := r.db.Where("id = ?", id).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *contentRepository) UpdateGlobalVariable(g *model.GlobalVariable) error {
	g.UpdatedAt = time.Now()
	return r.db.Save(g).Error
}

func (r *contentRepository) SoftDeleteGlobalVariable(id uuid.UUID) error {
	return r.db.Delete(&model.GlobalVariable{}, "id = ?", id).Error
}

func (r *contentRepository) FindGlobalVariablePage(q utils.ListQuery) (*utils.PageResult, error) {
	db := utils.ApplyListQuery(r.db.Model(&model.GlobalVariable{}), q, []string{"key", "description"}, globalVariableListColumns)
	var items []model.GlobalVariable
	return utils.Paginate(db, q, &items)
}
