package service

import (
	"context"
	"time"

	"internship-portal-backend/app/model"
	"internship-portal-backend/app/repository"
	"internship-portal-backend/utils"

	"github.com/google/uuid"
)

// LogbookInput adalah isi catatan harian dari mahasiswa.
type LogbookInput struct {
	Date       time.Time
	Activities string
}

// LogbookService memuat aturan logbook:
// - hanya dibuat pada magang accepted milik sendiri
// - supervisor notes hanya diisi dosen pembimbing mahasiswa terkait
type LogbookService interface {
	Create(ctx context.Context, studentID, internshipID uuid.UUID, in LogbookInput) (*model.Logbook, error)
	Update(ctx context.Context, studentID, logbookID uuid.UUID, in LogbookInput) (*model.Logbook, error)
	Delete(ctx context.Context, studentID, logbookID uuid.UUID) error
	SetSupervisorNotes(ctx context.Context, dosenID uuid.UUID, actorRole string, logbookID uuid.UUID, notes string) error
	ListByInternship(ctx context.Context, actorID uuid.UUID, actorRole string, internshipID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error)
}

type logbookService struct {
	logbookRepo    repository.LogbookRepository
	internshipRepo repository.InternshipRepository
	profileRepo    repository.ProfileRepository
}

// NewLogbookService membuat service logbook.
func NewLogbookService(
	logbookRepo repository.LogbookRepository,
	internshipRepo repository.InternshipRepository,
	profileRepo repository.ProfileRepository,
) LogbookService {
	return &logbookService{
		logbookRepo:    logbookRepo,
		internshipRepo: internshipRepo,
		profileRepo:    profileRepo,
	}
}

// Create menolak logbook pada magang yang belum accepted.
func (s *logbookService) Create(ctx context.Context, studentID, internshipID uuid.UUID, in LogbookInput) (*model.Logbook, error) {
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

	logbook := &model.Logbook{
		ID:           uuid.New(),
		InternshipID: internshipID,
		UserID:       studentID,
		Date:         in.Date,
		Activities:   in.Activities,
	}

	if err := s.logbookRepo.Create(logbook); err != nil {
		return nil, err
	}
	return logbook, nil
}

func (s *logbookService) Update(ctx context.Context, studentID, logbookID uuid.UUID, in LogbookInput) (*model.Logbook, error) {
	logbook, err := s.logbookRepo.FindByID(logbookID)
	if err != nil {
		return nil, ErrNotFound
	}
	if logbook.UserID != studentID {
		return nil, ErrForbidden
	}

	if !in.Date.IsZero() {
		logbook.Date = in.Date
	}
	if in.Activities != "" {
		logbook.Activities = in.Activities
	}

	if err := s.logbookRepo.Update(logbook); err != nil {
		return nil, err
	}
	return logbook, nil
}

func (s *logbookService) Delete(ctx context.Context, studentID, logbookID uuid.UUID) error {
	logbook, err := s.logbookRepo.FindByID(logbookID)
	if err != nil {
		return ErrNotFound
	}
	if logbook.UserID != studentID {
		return ErrForbidden
	}

	return s.logbookRepo.SoftDelete(logbookID)
}

// ListByInternship: akses mengikuti parent internship (pemilik, pembimbing,
// admin).
func (s *logbookService) ListByInternship(ctx context.Context, actorID uuid.UUID, actorRole string, internshipID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error) {
	internship, err := s.internshipRepo.FindByID(internshipID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !canViewInternship(s.profileRepo, internship, actorID, actorRole) {
		return nil, ErrForbidden
	}
	return s.logbookRepo.FindPageByInternship(internshipID, q)
}

// SetSupervisorNotes hanya untuk dosen pembimbing mahasiswa pemilik logbook.
func (s *logbookService) SetSupervisorNotes(ctx context.Context, dosenID uuid.UUID, actorRole string, logbookID uuid.UUID, notes string) error {
	if actorRole != model.RoleDosen {
		return ErrForbidden
	}

	logbook, err := s.logbookRepo.FindByID(logbookID)
	if err != nil {
		return ErrNotFound
	}

	ok, err := s.profileRepo.IsAdvisorOf(dosenID, logbook.UserID)
	if err != nil || !ok {
		return ErrForbidden
	}

	logbook.SupervisorNotes = &notes
	return s.logbookRepo.Update(logbook)
}
