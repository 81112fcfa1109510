package service

import (
	"context"
	"fmt"

	"internship-portal-backend/app/model"
	"internship-portal-backend/app/repository"
	"internship-portal-backend/utils"

	"github.com/google/uuid"
)

// UpdateReportInput adalah perubahan laporan oleh mahasiswa.
// ReportFile berisi path file baru yang sudah disimpan handler; jika diisi,
// versi naik dan file lama dihapus.
type UpdateReportInput struct {
	Title      string
	ReportFile string
}

// ReportService memuat aturan laporan berversi:
// - submit hanya pada magang accepted milik sendiri, versi = max+1
// - approved bersifat terminal (tidak bisa diubah/dihapus siapa pun)
// - rejected boleh di-resubmit, status kembali pending
type ReportService interface {
	Submit(ctx context.Context, studentID, internshipID uuid.UUID, title, filePath string) (*model.Report, error)
	Detail(ctx context.Context, actorID uuid.UUID, actorRole string, reportID uuid.UUID) (*model.Report, error)
	Update(ctx context.Context, studentID, reportID uuid.UUID, in UpdateReportInput) (*model.Report, error)
	Review(ctx context.Context, actorID uuid.UUID, actorRole string, reportID uuid.UUID, status model.ReportStatus, reviewerNotes *string) error
	Delete(ctx context.Context, actorID uuid.UUID, actorRole string, reportID uuid.UUID) error
	ListByInternship(ctx context.Context, actorID uuid.UUID, actorRole string, internshipID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error)
}

type reportService struct {
	reportRepo     repository.ReportRepository
	internshipRepo repository.InternshipRepository
	profileRepo    repository.ProfileRepository
	notifRepo      repository.NotificationRepository
	files          FileRemover
}

// NewReportService membuat service laporan magang.
func NewReportService(
	reportRepo repository.ReportRepository,
	internshipRepo repository.InternshipRepository,
	profileRepo repository.ProfileRepository,
	notifRepo repository.NotificationRepository,
	files FileRemover,
) ReportService {
	return &reportService{
		reportRepo:     reportRepo,
		internshipRepo: internshipRepo,
		profileRepo:    profileRepo,
		notifRepo:      notifRepo,
		files:          files,
	}
}

// Submit membuat laporan baru dengan versi = max(versi yang ada)+1.
func (s *reportService) Submit(ctx context.Context, studentID, internshipID uuid.UUID, title, filePath string) (*model.Report, error) {
	internship, err := s.internshipRepo.FindByID(internshipID)
	if err != nil {
		return nil, ErrNotFound
	}
	if internship.UserID != studentID {
		return nil, ErrForbidden
	}
	if internship.Status != model.InternshipAccepted {
		return nil, ErrInternshipNotAccepted
	}

	version, err := s.reportRepo.NextVersion(internshipID)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		ID:           uuid.New(),
		InternshipID: internshipID,
		UserID:       studentID,
		Title:        title,
		ReportFile:   filePath,
		Version:      version,
		Status:       model.ReportPending,
	}

	if err := s.reportRepo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

// Detail mengembalikan satu laporan. Akses mengikuti parent internship.
func (s *reportService) Detail(ctx context.Context, actorID uuid.UUID, actorRole string, reportID uuid.UUID) (*model.Report, error) {
	report, err := s.reportRepo.FindByID(reportID)
	if err != nil {
		return nil, ErrNotFound
	}
	internship, err := s.internshipRepo.FindByID(report.InternshipID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !canViewInternship(s.profileRepo, internship, actorID, actorRole) {
		return nil, ErrForbidden
	}
	return report, nil
}

// Update mengubah laporan milik sendiri. Laporan approved terkunci.
// File baru menaikkan versi dan menghapus file lama; laporan rejected
// yang diubah kembali berstatus pending (resubmission).
func (s *reportService) Update(ctx context.Context, studentID, reportID uuid.UUID, in UpdateReportInput) (*model.Report, error) {
	report, err := s.reportRepo.FindByID(reportID)
	if err != nil {
		return nil, ErrNotFound
	}
	if report.UserID != studentID {
		return nil, ErrForbidden
	}
	if report.Status == model.ReportApproved {
		return nil, ErrReportApproved
	}

	if in.Title != "" {
		report.Title = in.Title
	}
	if in.ReportFile != "" {
		version, err := s.reportRepo.NextVersion(report.InternshipID)
		if err != nil {
			return nil, err
		}
		s.files.Delete(report.ReportFile)
		report.ReportFile = in.ReportFile
		report.Version = version
	}

	if report.Status == model.ReportRejected {
		report.Status = model.ReportPending
		report.ReviewerNotes = nil
	}

	if err := s.reportRepo.Update(report); err != nil {
		return nil, err
	}
	return report, nil
}

// Review oleh dosen pembimbing atau admin. Dosen hanya boleh me-review
// laporan mahasiswa bimbingannya; catatan wajib saat menolak.
func (s *reportService) Review(ctx context.Context, actorID uuid.UUID, actorRole string, reportID uuid.UUID, status model.ReportStatus, reviewerNotes *string) error {
	if status != model.ReportApproved && status != model.ReportRejected {
		return ErrInvalidReportStatus
	}
	if status == model.ReportRejected && (reviewerNotes == nil || *reviewerNotes == "") {
		return ErrReviewNotesRequired
	}

	report, err := s.reportRepo.FindByID(reportID)
	if err != nil {
		return ErrNotFound
	}

	switch {
	case isAdminRole(actorRole):
		// admin boleh me-review semua laporan
	case actorRole == model.RoleDosen:
		ok, err := s.profileRepo.IsAdvisorOf(actorID, report.UserID)
		if err != nil || !ok {
			return ErrForbidden
		}
	default:
		return ErrForbidden
	}

	report.Status = status
	report.ReviewerNotes = reviewerNotes
	if err := s.reportRepo.Update(report); err != nil {
		return err
	}

	s.notify(ctx, report.UserID, report.ID,
		"Hasil review laporan",
		fmt.Sprintf("Laporan %q versi %d kini berstatus %s", report.Title, report.Version, status))

	return nil
}

// Delete memakai satu kebijakan untuk semua role: laporan approved tidak
// bisa dihapus siapa pun. Selain itu, pemilik atau admin boleh menghapus.
func (s *reportService) Delete(ctx context.Context, actorID uuid.UUID, actorRole string, reportID uuid.UUID) error {
	report, err := s.reportRepo.FindByID(reportID)
	if err != nil {
		return ErrNotFound
	}
	if report.Status == model.ReportApproved {
		return ErrReportApproved
	}
	if report.UserID != actorID && !isAdminRole(actorRole) {
		return ErrForbidden
	}

	s.files.Delete(report.ReportFile)
	return s.reportRepo.SoftDelete(reportID)
}

// ListByInternship: akses mengikuti parent internship.
func (s *reportService) ListByInternship(ctx context.Context, actorID uuid.UUID, actorRole string, internshipID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error) {
	internship, err := s.internshipRepo.FindByID(internshipID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !canViewInternship(s.profileRepo, internship, actorID, actorRole) {
		return nil, ErrForbidden
	}
	return s.reportRepo.FindPageByInternship(internshipID, q)
}

func (s *reportService) notify(ctx context.Context, userID, relatedID uuid.UUID, title, message string) {
	if s.notifRepo == nil {
		return
	}
	_ = s.notifRepo.Insert(ctx, &model.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Category:  "report",
		RelatedID: relatedID.String(),
	})
}
