package repository

import (
	"internship-portal-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository mengelola profil role-specific (mahasiswa/dosen/admin)
// dan relasi bimbingan antara dosen dan mahasiswa.
type ProfileRepository interface {
	FindMahasiswaByUserID(userID uuid.UUID) (*model.MahasiswaProfile, error)
	FindDosenByUserID(userID uuid.UUID) (*model.DosenProfile, error)

	CreateMahasiswa(p *model.MahasiswaProfile) error
	CreateDosen(p *model.DosenProfile) error
	CreateAdmin(p *model.AdminProfile) error

	// IsAdvisorOf mengecek apakah advisorUserID (users.id dosen) adalah
	// pembimbing dari studentUserID. Dipakai untuk gating supervisor notes
	// dan review laporan oleh dosen.
	IsAdvisorOf(advisorUserID, studentUserID uuid.UUID) (bool, error)

	// FindAdvisees mengambil seluruh mahasiswa bimbingan seorang dosen.
	FindAdvisees(advisorUserID uuid.UUID) ([]model.MahasiswaProfile, error)

	// FindEligibleAdvisees mengembalikan mahasiswa yang memenuhi predikat
	// provisioning presensi kelas bimbingan: bimbingan dosen tersebut,
	// status akademik Aktif, dan punya magang accepted.
	FindEligibleAdvisees(advisorUserID uuid.UUID) ([]model.MahasiswaProfile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository membuat instance baru ProfileRepository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindMahasiswaByUserID(userID uuid.UUID) (*model.MahasiswaProfile, error) {
	var p model.MahasiswaProfile
	err := r.db.
		Preload("Advisor").
		Where("user_id = ?", userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) FindDosenByUserID(userID uuid.UUID) (*model.DosenProfile, error) {
	var p model.DosenProfile
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) CreateMahasiswa(p *model.MahasiswaProfile) error {
	return r.db.Create(p).Error
}

func (r *profileRepository) CreateDosen(p *model.DosenProfile) error {
	return r.db.Create(p).Error
}

func (r *profileRepository) CreateAdmin(p *model.AdminProfile) error {
	return r.db.Create(p).Error
}

// IsAdvisorOf: cek di tabel mahasiswa_profiles, apakah ada baris dengan
// user_id = studentUserID dan advisor_id = advisorUserID.
func (r *profileRepository) IsAdvisorOf(advisorUserID, studentUserID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.
		Model(&model.MahasiswaProfile{}).
		Where("user_id = ? AND advisor_id = ?", studentUserID, advisorUserID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *profileRepository) FindAdvisees(advisorUserID uuid.UUID) ([]model.MahasiswaProfile, error) {
	var profiles []model.MahasiswaProfile
	err := r.db.
		Preload("User").
		Where("advisor_id = ?", advisorUserID).
		Find(&profiles).Error
	return profiles, err
}

// FindEligibleAdvisees menjalankan predikat eligibility dalam satu query:
// advisor match AND academic_status Aktif AND EXISTS magang accepted.
func (r *profileRepository) FindEligibleAdvisees(advisorUserID uuid.UUID) ([]model.MahasiswaProfile, error) {
	var profiles []model.MahasiswaProfile
	err := r.db.
		Preload("User").
		Where("advisor_id = ? AND academic_status = ?", advisorUserID, model.AcademicAktif).
		Where(`EXISTS (
			SELECT 1 FROM internships
			WHERE internships.user_id = mahasiswa_profiles.user_id
			  AND internships.status = ?
			  AND internships.deleted_at IS NULL
		)`, model.InternshipAccepted).
		Find(&profiles).Error
	return profiles, err
}
