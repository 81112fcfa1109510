package repository

import (
	"time"

	"internship-portal-backend/app/model"
	"internship-portal-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GuidanceClassRepository menangani kelas bimbingan dan baris presensinya.
type GuidanceClassRepository interface {
	// CreateWithAttendances menyimpan kelas + provisioning baris presensi
	// mahasiswa eligible dalam satu transaksi. Insert presensi memakai
	// ON CONFLICT DO NOTHING pada (guidance_class_id, user_id) sehingga
	// provisioning ulang idempotent.
	CreateWithAttendances(class *model.GuidanceClass, attendances []model.GuidanceClassAttendance) error

	FindByID(id uuid.UUID) (*model.GuidanceClass, error)
	FindByToken(token string) (*model.GuidanceClass, error)
	Update(class *model.GuidanceClass) error
	SoftDelete(id uuid.UUID) error
	UpdateToken(id uuid.UUID, token string) error

	FindAttendance(classID, userID uuid.UUID) (*model.GuidanceClassAttendance, error)
	UpdateAttendance(att *model.GuidanceClassAttendance) error

	FindPageByLecturer(lecturerID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error)
	FindPageByStudent(userID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error)
	FindPage(q utils.ListQuery) (*utils.PageResult, error)
}

type guidanceClassRepository struct {
	db *gorm.DB
}

func NewGuidanceClassRepository(db *gorm.DB) GuidanceClassRepository {
	return &guidanceClassRepository{db: db}
}

var guidanceClassListColumns = map[string]bool{
	"title":      true,
	"room":       true,
	"start_date": true,
	"end_date":   true,
	"created_at": true,
}

func (r *guidanceClassRepository) CreateWithAttendances(class *model.GuidanceClass, attendances []model.GuidanceClassAttendance) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(class).Error; err != nil {
			return err
		}

		if len(attendances) == 0 {
			return nil
		}
		for i := range attendances {
			attendances[i].GuidanceClassID = class.ID
		}
		return tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "guidance_class_id"}, {Name: "user_id"}},
				DoNothing: true,
			}).
			Create(&attendances).Error
	})
}

func (r *guidanceClassRepository) FindByID(id uuid.UUID) (*model.GuidanceClass, error) {
	var class model.GuidanceClass
	err := r.db.
		Preload("Lecturer").
		Preload("Attendances").
		Preload("Attendances.User").
		Where("id = ?", id).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *guidanceClassRepository) FindByToken(token string) (*model.GuidanceClass, error) {
	var class model.GuidanceClass
	err := r.db.
		Where("qr_token = ? AND qr_token != ''", token).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *guidanceClassRepository) Update(class *model.GuidanceClass) error {
	class.UpdatedAt = time.Now()
	return r.db.Save(class).Error
}

func (r *guidanceClassRepository) SoftDelete(id uuid.UUID) error {
	return r.db.Delete(&model.GuidanceClass{}, "id = ?", id).Error
}

func (r *guidanceClassRepository) UpdateToken(id uuid.UUID, token string) error {
	return r.db.Model(&model.GuidanceClass{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"qr_token":   token,
			"updated_at": time.Now(),
		}).Error
}

func (r *guidanceClassRepository) FindAttendance(classID, userID uuid.UUID) (*model.GuidanceClassAttendance, error) {
	var att model.GuidanceClassAttendance
	err := r.db.
		Where("guidance_class_id = ? AND user_id = ?", classID, userID).
		First(&att).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *guidanceClassRepository) UpdateAttendance(att *model.GuidanceClassAttendance) error {
	att.UpdatedAt = time.Now()
	// Select eksplisit supaya nilai nil (reset presensi) ikut tertulis
	return r.db.Model(att).
		Select("AttendedAt", "AttendanceMethod", "Notes", "UpdatedAt").
		Updates(att).Error
}

func (r *guidanceClassRepository) FindPageByLecturer(lecturerID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error) {
	db := r.db.Model(&model.GuidanceClass{}).Where("lecturer_id = ?", lecturerID)
	db = utils.ApplyListQuery(db, q, []string{"title", "room", "description"}, guidanceClassListColumns)

	var items []model.GuidanceClass
	return utils.Paginate(db, q, &items)
}

// FindPageByStudent mengambil kelas yang punya baris presensi untuk mahasiswa
// tersebut (hanya kelas yang dia eligible saat provisioning).
func (r *guidanceClassRepository) FindPageByStudent(userID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error) {
	db := r.db.Model(&model.GuidanceClass{}).
		Where(`EXISTS (
			SELECT 1 FROM guidance_class_attendances
			WHERE guidance_class_attendances.guidance_class_id = guidance_classes.id
			  AND guidance_class_attendances.user_id = ?
		)`, userID)
	db = utils.ApplyListQuery(db, q, []string{"title", "room", "description"}, guidanceClassListColumns)

	var items []model.GuidanceClass
	return utils.Paginate(db, q, &items)
}

func (r *guidanceClassRepository) FindPage(q utils.ListQuery) (*utils.PageResult, error) {
	db := r.db.Model(&model.GuidanceClass{}).Preload("Lecturer")
	db = utils.ApplyListQuery(db, q, []string{"title", "room", "description"}, guidanceClassListColumns)

	var items []model.GuidanceClass
	return utils.Paginate(db, q, &items)
}
