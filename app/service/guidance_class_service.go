package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"internship-portal-backend/app/model"
	"internship-portal-backend/app/repository"
	"internship-portal-backend/utils"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// GuidanceClassInput adalah data kelas bimbingan dari dosen.
type GuidanceClassInput struct {
	Title       string
	Room        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

// GuidanceClassService memuat workflow kelas bimbingan + presensi.
// State machine per (kelas, mahasiswa): no-record -> not-attended -> attended,
// dan attended -> not-attended (reset oleh dosen).
type GuidanceClassService interface {
	// Create menyimpan kelas dan mem-provision baris presensi untuk setiap
	// mahasiswa eligible (bimbingan dosen ybs, status Aktif, magang accepted).
	Create(ctx context.Context, dosenID uuid.UUID, actorRole string, in GuidanceClassInput) (*model.GuidanceClass, error)

	Edit(ctx context.Context, dosenID uuid.UUID, actorRole string, classID uuid.UUID, in GuidanceClassInput) (*model.GuidanceClass, error)
	Delete(ctx context.Context, dosenID uuid.UUID, actorRole string, classID uuid.UUID) error
	Detail(ctx context.Context, actorID uuid.UUID, actorRole string, classID uuid.UUID) (*model.GuidanceClass, error)
	List(ctx context.Context, actorID uuid.UUID, actorRole string, q utils.ListQuery) (*utils.PageResult, error)

	MarkAttendance(ctx context.Context, dosenID uuid.UUID, classID, studentID uuid.UUID, notes *string) error
	AttendViaToken(ctx context.Context, studentID uuid.UUID, token string) error
	ResetAttendance(ctx context.Context, dosenID uuid.UUID, classID, studentID uuid.UUID) error

	// GenerateQR menerbitkan token presensi baru untuk kelas dan
	// mengembalikan PNG QR berisi URL presensi.
	GenerateQR(ctx context.Context, dosenID uuid.UUID, classID uuid.UUID) ([]byte, error)
}

type guidanceClassService struct {
	classRepo   repository.GuidanceClassRepository
	profileRepo repository.ProfileRepository
	notifRepo   repository.NotificationRepository
}

// NewGuidanceClassService membuat service kelas bimbingan.
func NewGuidanceClassService(
	classRepo repository.GuidanceClassRepository,
	profileRepo repository.ProfileRepository,
	notifRepo repository.NotificationRepository,
) GuidanceClassService {
	return &guidanceClassService{
		classRepo:   classRepo,
		profileRepo: profileRepo,
		notifRepo:   notifRepo,
	}
}

func (s *guidanceClassService) Create(ctx context.Context, dosenID uuid.UUID, actorRole string, in GuidanceClassInput) (*model.GuidanceClass, error) {
	if actorRole != model.RoleDosen {
		return nil, ErrForbidden
	}

	eligible, err := s.profileRepo.FindEligibleAdvisees(dosenID)
	if err != nil {
		return nil, err
	}

	class := &model.GuidanceClass{
		ID:          uuid.New(),
		LecturerID:  dosenID,
		Title:       in.Title,
		Room:        in.Room,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}

	attendances := make([]model.GuidanceClassAttendance, 0, len(eligible))
	for _, p := range eligible {
		attendances = append(attendances, model.GuidanceClassAttendance{
			ID:     uuid.New(),
			UserID: p.UserID,
		})
	}

	// kelas + provisioning presensi dalam satu transaksi
	if err := s.classRepo.CreateWithAttendances(class, attendances); err != nil {
		return nil, err
	}

	for _, p := range eligible {
		s.notify(ctx, p.UserID, class.ID,
			"Kelas bimbingan baru",
			fmt.Sprintf("Anda terdaftar pada kelas bimbingan %q", class.Title))
	}

	return class, nil
}

func (s *guidanceClassService) Edit(ctx context.Context, dosenID uuid.UUID, actorRole string, classID uuid.UUID, in GuidanceClassInput) (*model.GuidanceClass, error) {
	class, err := s.ownedClass(dosenID, actorRole, classID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		class.Title = in.Title
	}
	if in.Room != "" {
		class.Room = in.Room
	}
	if in.Description != "" {
		class.Description = in.Description
	}
	if !in.StartDate.IsZero() {
		class.StartDate = in.StartDate
	}
	if !in.EndDate.IsZero() {
		class.EndDate = in.EndDate
	}

	if err := s.classRepo.Update(class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *guidanceClassService) Delete(ctx context.Context, dosenID uuid.UUID, actorRole string, classID uuid.UUID) error {
	if _, err := s.ownedClass(dosenID, actorRole, classID); err != nil {
		return err
	}
	return s.classRepo.SoftDelete(classID)
}

// Detail bisa dilihat admin, dosen pemilik, atau mahasiswa yang punya
// baris presensi di kelas tersebut.
func (s *guidanceClassService) Detail(ctx context.Context, actorID uuid.UUID, actorRole string, classID uuid.UUID) (*model.GuidanceClass, error) {
	class, err := s.classRepo.FindByID(classID)
	if err != nil {
		return nil, ErrNotFound
	}

	switch {
	case isAdminRole(actorRole):
	case actorRole == model.RoleDosen && class.LecturerID == actorID:
	case actorRole == model.RoleMahasiswa:
		if _, err := s.classRepo.FindAttendance(classID, actorID); err != nil {
			return nil, ErrForbidden
		}
	default:
		return nil, ErrForbidden
	}

	return class, nil
}

// List di-scope per role: dosen melihat kelas yang dia buat, mahasiswa
// melihat kelas yang dia terdaftar, admin melihat semua.
func (s *guidanceClassService) List(ctx context.Context, actorID uuid.UUID, actorRole string, q utils.ListQuery) (*utils.PageResult, error) {
	switch {
	case isAdminRole(actorRole):
		return s.classRepo.FindPage(q)
	case actorRole == model.RoleDosen:
		return s.classRepo.FindPageByLecturer(actorID, q)
	case actorRole == model.RoleMahasiswa:
		return s.classRepo.FindPageByStudent(actorID, q)
	}
	return nil, ErrForbidden
}

// MarkAttendance: aksi manual dosen pemilik kelas. Mahasiswa tanpa baris
// presensi (tidak eligible saat provisioning) tidak bisa ditandai hadir.
func (s *guidanceClassService) MarkAttendance(ctx context.Context, dosenID uuid.UUID, classID, studentID uuid.UUID, notes *string) error {
	if _, err := s.ownedClass(dosenID, model.RoleDosen, classID); err != nil {
		return err
	}

	att, err := s.classRepo.FindAttendance(classID, studentID)
	if err != nil {
		return ErrNotEligible
	}
	if att.AttendedAt != nil {
		return ErrAlreadyAttended
	}

	now := time.Now()
	method := model.AttendanceManual
	att.AttendedAt = &now
	att.AttendanceMethod = &method
	att.Notes = notes

	return s.classRepo.UpdateAttendance(att)
}

// AttendViaToken: presensi mandiri mahasiswa lewat scan QR.
func (s *guidanceClassService) AttendViaToken(ctx context.Context, studentID uuid.UUID, token string) error {
	if token == "" {
		return ErrInvalidQRToken
	}

	class, err := s.classRepo.FindByToken(token)
	if err != nil {
		return ErrInvalidQRToken
	}

	att, err := s.classRepo.FindAttendance(class.ID, studentID)
	if err != nil {
		return ErrNotEligible
	}
	if att.AttendedAt != nil {
		return ErrAlreadyAttended
	}

	now := time.Now()
	method := model.AttendanceQR
	att.AttendedAt = &now
	att.AttendanceMethod = &method

	return s.classRepo.UpdateAttendance(att)
}

// ResetAttendance mengembalikan baris ke not-attended (attended_at, method,
// notes dikosongkan). Hanya dosen pemilik kelas.
func (s *guidanceClassService) ResetAttendance(ctx context.Context, dosenID uuid.UUID, classID, studentID uuid.UUID) error {
	if _, err := s.ownedClass(dosenID, model.RoleDosen, classID); err != nil {
		return err
	}

	att, err := s.classRepo.FindAttendance(classID, studentID)
	if err != nil {
		return ErrNotEligible
	}

	att.AttendedAt = nil
	att.AttendanceMethod = nil
	att.Notes = nil

	return s.classRepo.UpdateAttendance(att)
}

func (s *guidanceClassService) GenerateQR(ctx context.Context, dosenID uuid.UUID, classID uuid.UUID) ([]byte, error) {
	if _, err := s.ownedClass(dosenID, model.RoleDosen, classID); err != nil {
		return nil, err
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	token := hex.EncodeToString(buf)

	if err := s.classRepo.UpdateToken(classID, token); err != nil {
		return nil, err
	}

	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	attendURL := fmt.Sprintf("%s/api/v1/attendance/%s", baseURL, token)

	return qrcode.Encode(attendURL, qrcode.Medium, 256)
}

// ownedClass memastikan kelas ada dan actor adalah dosen pemiliknya.
func (s *guidanceClassService) ownedClass(dosenID uuid.UUID, actorRole string, classID uuid.UUID) (*model.GuidanceClass, error) {
	if actorRole != model.RoleDosen {
		return nil, ErrForbidden
	}
	class, err := s.classRepo.FindByID(classID)
	if err != nil {
		return nil, ErrNotFound
	}
	if class.LecturerID != dosenID {
		return nil, ErrForbidden
	}
	return class, nil
}

func (s *guidanceClassService) notify(ctx context.Context, userID, relatedID uuid.UUID, title, message string) {
	if s.notifRepo == nil {
		return
	}
	_ = s.notifRepo.Insert(ctx, &model.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Category:  "guidance_class",
		RelatedID: relatedID.String(),
	})
}
