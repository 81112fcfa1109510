package repository

import (
	"time"

	"internship-portal-backend/app/model"
	"internship-portal-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InternshipRepository menangani persistence pengajuan magang.
type InternshipRepository interface {
	Create(in *model.Internship) error
	FindByID(id uuid.UUID) (*model.Internship, error)
	Update(in *model.Internship) error
	SoftDelete(id uuid.UUID) error

	// UpdateStatusWithAdvisor mengubah status pengajuan dan, bila advisorID
	// diisi, menulis advisor ke profil mahasiswa pemilik pengajuan.
	// Keduanya berjalan dalam satu transaksi supaya tidak ada partial write.
	UpdateStatusWithAdvisor(id uuid.UUID, status model.InternshipStatus, advisorID *uuid.UUID) error

	UpdateProgress(id uuid.UUID, progress int) error

	// HasAcceptedByUser dipakai predikat eligibility kelas bimbingan.
	HasAcceptedByUser(userID uuid.UUID) (bool, error)

	FindPageByUser(userID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error)

	// FindPageByAdvisor mengambil pengajuan milik mahasiswa bimbingan
	// seorang dosen.
	FindPageByAdvisor(advisorUserID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error)

	FindPage(q utils.ListQuery) (*utils.PageResult, error)
}

type internshipRepository struct {
	db *gorm.DB
}

// NewInternshipRepository membuat instance repository magang.
func NewInternshipRepository(db *gorm.DB) InternshipRepository {
	return &internshipRepository{db: db}
}

// Kolom yang boleh dipakai filter/sort di endpoint list magang.
var internshipListColumns = map[string]bool{
	"status":       true,
	"type":         true,
	"company_name": true,
	"start_date":   true,
	"end_date":     true,
	"progress":     true,
	"created_at":   true,
}

func (r *internshipRepository) Create(in *model.Internship) error {
	return r.db.Create(in).Error
}

func (r *internshipRepository) FindByID(id uuid.UUID) (*model.Internship, error) {
	var in model.Internship
	err := r.db.
		Preload("User").
		Preload("User.Role").
		Where("id = ?", id).
		First(&in).Error
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *internshipRepository) Update(in *model.Internship) error {
	in.UpdatedAt = time.Now()
	return r.db.Save(in).Error
}

func (r *internshipRepository) SoftDelete(id uuid.UUID) error {
	return r.db.Delete(&model.Internship{}, "id = ?", id).Error
}

// UpdateStatusWithAdvisor: update profil pembimbing + status pengajuan
// dalam satu transaksi. Tanpa transaksi, gagal di tengah akan meninggalkan
// advisor terpasang tapi status tidak berubah.
func (r *internshipRepository) UpdateStatusWithAdvisor(id uuid.UUID, status model.InternshipStatus, advisorID *uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var in model.Internship
		if err := tx.Where("id = ?", id).First(&in).Error; err != nil {
			return err
		}

		if advisorID != nil {
			if err := tx.Model(&model.MahasiswaProfile{}).
				Where("user_id = ?", in.UserID).
				Update("advisor_id", *advisorID).Error; err != nil {
				return err
			}
		}

		return tx.Model(&model.Internship{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":     status,
				"updated_at": time.Now(),
			}).Error
	})
}

func (r *internshipRepository) UpdateProgress(id uuid.UUID, progress int) error {
	return r.db.Model(&model.Internship{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"progress":   progress,
			"updated_at": time.Now(),
		}).Error
}

func (r *internshipRepository) HasAcceptedByUser(userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.Internship{}).
		Where("user_id = ? AND status = ?", userID, model.InternshipAccepted).
		Count(&count).Error
	return count > 0, err
}

func (r *internshipRepository) FindPageByUser(userID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error) {
	db := r.db.Model(&model.Internship{}).Where("user_id = ?", userID)
	db = utils.ApplyListQuery(db, q, []string{"company_name", "company_address"}, internshipListColumns)

	var items []model.Internship
	return utils.Paginate(db, q, &items)
}

func (r *internshipRepository) FindPageByAdvisor(advisorUserID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error) {
	db := r.db.Model(&model.Internship{}).
		Preload("User").
		Where(`EXISTS (
			SELECT 1 FROM mahasiswa_profiles
			WHERE mahasiswa_profiles.user_id = internships.user_id
			  AND mahasiswa_profiles.advisor_id = ?
		)`, advisorUserID)
	db = utils.ApplyListQuery(db, q, []string{"company_name", "company_address"}, internshipListColumns)

	var items []model.Internship
	return utils.Paginate(db, q, &items)
}

func (r *internshipRepository) FindPage(q utils.ListQuery) (*utils.PageResult, error) {
	db := r.db.Model(&model.Internship{}).Preload("User")
	db = utils.ApplyListQuery(db, q, []string{"company_name", "company_address"}, internshipListColumns)

	var items []model.Internship
	return utils.Paginate(db, q, &items)
}
