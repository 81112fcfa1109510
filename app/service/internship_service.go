package service

import (
	"context"
	"fmt"
	"time"

	"internship-portal-backend/app/model"
	"internship-portal-backend/app/repository"
	"internship-portal-backend/utils"

	"github.com/google/uuid"
)

// FileRemover menghapus file fisik dari storage publik. Best effort:
// implementasinya tidak mengembalikan error karena kegagalan hapus file
// tidak boleh menggagalkan operasi record (perilaku original dipertahankan).
type FileRemover interface {
	Delete(relPath string)
}

// isAdminRole: superadmin diperlakukan sebagai admin di semua aksi admin.
func isAdminRole(role string) bool {
	return role == model.RoleAdmin || role == model.RoleSuperadmin
}

// SubmitInternshipInput adalah data pengajuan magang dari mahasiswa.
// ApplicationFile berisi path relatif file yang sudah disimpan handler.
type SubmitInternshipInput struct {
	Type            model.InternshipType
	CompanyName     string
	CompanyAddress  string
	StartDate       time.Time
	EndDate         time.Time
	ApplicationFile string
}

// EditInternshipInput adalah perubahan pengajuan selama status waiting.
// Field string kosong / nil berarti tidak diubah.
type EditInternshipInput struct {
	Type            model.InternshipType
	CompanyName     string
	CompanyAddress  string
	StartDate       *time.Time
	EndDate         *time.Time
	ApplicationFile string // path file baru; jika diisi, file lama dihapus
}

// InternshipService memuat aturan lifecycle pengajuan magang:
// waiting -> accepted/rejected oleh admin, edit/hapus hanya selama waiting,
// progress hanya diubah admin setelah accepted.
type InternshipService interface {
	Submit(ctx context.Context, studentID uuid.UUID, in SubmitInternshipInput) (*model.Internship, error)
	Detail(ctx context.Context, actorID uuid.UUID, actorRole string, internshipID uuid.UUID) (*model.Internship, error)
	List(ctx context.Context, actorID uuid.UUID, actorRole string, q utils.ListQuery) (*utils.PageResult, error)
	UpdateStatus(ctx context.Context, actorRole string, internshipID uuid.UUID, status model.InternshipStatus, advisorID *uuid.UUID) error
	Edit(ctx context.Context, studentID, internshipID uuid.UUID, in EditInternshipInput) (*model.Internship, error)
	Delete(ctx context.Context, studentID, internshipID uuid.UUID) error
	UpdateProgress(ctx context.Context, actorRole string, internshipID uuid.UUID, progress int) error
}

type internshipService struct {
	internshipRepo repository.InternshipRepository
	profileRepo    repository.ProfileRepository
	notifRepo      repository.NotificationRepository
	files          FileRemover
}

// NewInternshipService membuat service lifecycle magang.
func NewInternshipService(
	internshipRepo repository.InternshipRepository,
	profileRepo repository.ProfileRepository,
	notifRepo repository.NotificationRepository,
	files FileRemover,
) InternshipService {
	return &internshipService{
		internshipRepo: internshipRepo,
		profileRepo:    profileRepo,
		notifRepo:      notifRepo,
		files:          files,
	}
}

// Submit membuat pengajuan baru: status selalu waiting, progress selalu 0.
func (s *internshipService) Submit(ctx context.Context, studentID uuid.UUID, in SubmitInternshipInput) (*model.Internship, error) {
	if !in.Type.Valid() {
		return nil, ErrInvalidInternshipType
	}

	internship := &model.Internship{
		ID:              uuid.New(),
		UserID:          studentID,
		Type:            in.Type,
		CompanyName:     in.CompanyName,
		CompanyAddress:  in.CompanyAddress,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		Status:          model.InternshipWaiting,
		Progress:        0,
		ApplicationFile: in.ApplicationFile,
	}

	if err := s.internshipRepo.Create(internship); err != nil {
		return nil, err
	}
	return internship, nil
}

// Detail bisa dilihat pemilik, dosen pembimbingnya, atau admin.
func (s *internshipService) Detail(ctx context.Context, actorID uuid.UUID, actorRole string, internshipID uuid.UUID) (*model.Internship, error) {
	internship, err := s.internshipRepo.FindByID(internshipID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !canViewInternship(s.profileRepo, internship, actorID, actorRole) {
		return nil, ErrForbidden
	}
	return internship, nil
}

// List di-scope per role: mahasiswa melihat miliknya, dosen melihat milik
// mahasiswa bimbingannya, admin melihat semua.
func (s *internshipService) List(ctx context.Context, actorID uuid.UUID, actorRole string, q utils.ListQuery) (*utils.PageResult, error) {
	switch {
	case isAdminRole(actorRole):
		return s.internshipRepo.FindPage(q)
	case actorRole == model.RoleDosen:
		return s.internshipRepo.FindPageByAdvisor(actorID, q)
	case actorRole == model.RoleMahasiswa:
		return s.internshipRepo.FindPageByUser(actorID, q)
	}
	return nil, ErrForbidden
}

// canViewInternship: pemilik, admin, atau dosen pembimbing mahasiswa ybs.
// Dipakai juga oleh service logbook dan laporan (akses ikut parent-nya).
func canViewInternship(profileRepo repository.ProfileRepository, internship *model.Internship, actorID uuid.UUID, actorRole string) bool {
	if internship.UserID == actorID || isAdminRole(actorRole) {
		return true
	}
	if actorRole == model.RoleDosen {
		ok, err := profileRepo.IsAdvisorOf(actorID, internship.UserID)
		return err == nil && ok
	}
	return false
}

// UpdateStatus: hanya admin/superadmin. Saat accepted, advisor wajib dan
// ditulis ke profil mahasiswa (bukan ke internship) dalam transaksi yang
// sama dengan perubahan status.
func (s *internshipService) UpdateStatus(ctx context.Context, actorRole string, internshipID uuid.UUID, status model.InternshipStatus, advisorID *uuid.UUID) error {
	if !isAdminRole(actorRole) {
		return ErrForbidden
	}
	if status != model.InternshipAccepted && status != model.InternshipRejected {
		return ErrInvalidInternshipStatus
	}

	internship, err := s.internshipRepo.FindByID(internshipID)
	if err != nil {
		return ErrNotFound
	}

	if status == model.InternshipAccepted {
		// advisor boleh sudah terpasang di profil, atau dikirim di request ini
		if advisorID == nil {
			profile, err := s.profileRepo.FindMahasiswaByUserID(internship.UserID)
			if err != nil || profile.AdvisorID == nil {
				return ErrAdvisorRequired
			}
		}
	} else {
		advisorID = nil // rejected tidak menyentuh advisor
	}

	if err := s.internshipRepo.UpdateStatusWithAdvisor(internshipID, status, advisorID); err != nil {
		return err
	}

	s.notify(ctx, internship.UserID, "internship", internship.ID,
		"Status pengajuan magang",
		fmt.Sprintf("Pengajuan magang di %s kini berstatus %s", internship.CompanyName, status))

	return nil
}

// Edit hanya diizinkan pemilik dan selama status masih waiting.
// File baru menggantikan file lama (file lama dihapus lebih dulu).
func (s *internshipService) Edit(ctx context.Context, studentID, internshipID uuid.UUID, in EditInternshipInput) (*model.Internship, error) {
	internship, err := s.internshipRepo.FindByID(internshipID)
	if err != nil {
		return nil, ErrNotFound
	}
	if internship.UserID != studentID {
		return nil, ErrForbidden
	}
	if internship.Status != model.InternshipWaiting {
		return nil, ErrInternshipNotWaiting
	}

	if in.Type != "" {
		if !in.Type.Valid() {
			return nil, ErrInvalidInternshipType
		}
		internship.Type = in.Type
	}
	if in.CompanyName != "" {
		internship.CompanyName = in.CompanyName
	}
	if in.CompanyAddress != "" {
		internship.CompanyAddress = in.CompanyAddress
	}
	if in.StartDate != nil {
		internship.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		internship.EndDate = *in.EndDate
	}
	if in.ApplicationFile != "" {
		s.files.Delete(internship.ApplicationFile)
		internship.ApplicationFile = in.ApplicationFile
	}

	if err := s.internshipRepo.Update(internship); err != nil {
		return nil, err
	}
	return internship, nil
}

// Delete hanya diizinkan pemilik dan selama waiting. File dihapus best
// effort lalu record di-soft-delete (bisa di-restore dari trash).
func (s *internshipService) Delete(ctx context.Context, studentID, internshipID uuid.UUID) error {
	internship, err := s.internshipRepo.FindByID(internshipID)
	if err != nil {
		return ErrNotFound
	}
	if internship.UserID != studentID {
		return ErrForbidden
	}
	if internship.Status != model.InternshipWaiting {
		return ErrInternshipNotWaiting
	}

	s.files.Delete(internship.ApplicationFile)
	return s.internshipRepo.SoftDelete(internshipID)
}

// UpdateProgress hanya untuk admin, dan hanya setelah pengajuan accepted.
func (s *internshipService) UpdateProgress(ctx context.Context, actorRole string, internshipID uuid.UUID, progress int) error {
	if !isAdminRole(actorRole) {
		return ErrForbidden
	}
	if progress < 0 || progress > 100 {
		return ErrInvalidProgress
	}

	internship, err := s.internshipRepo.FindByID(internshipID)
	if err != nil {
		return ErrNotFound
	}
	if internship.Status != model.InternshipAccepted {
		return ErrInternshipNotAccepted
	}

	return s.internshipRepo.UpdateProgress(internshipID, progress)
}

// notify mengirim notifikasi sinkron, best effort.
func (s *internshipService) notify(ctx context.Context, userID uuid.UUID, category string, relatedID uuid.UUID, title, message string) {
	if s.notifRepo == nil {
		return
	}
	_ = s.notifRepo.Insert(ctx, &model.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Category:  category,
		RelatedID: relatedID.String(),
	})
}
