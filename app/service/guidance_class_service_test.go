package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"internship-portal-backend/app/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuidanceClassFixture() (*fakeGuidanceClassRepo, *fakeProfileRepo, *fakeNotificationRepo, GuidanceClassService) {
	classRepo := newFakeGuidanceClassRepo()
	profileRepo := newFakeProfileRepo()
	notifRepo := &fakeNotificationRepo{}
	svc := NewGuidanceClassService(classRepo, profileRepo, notifRepo)
	return classRepo, profileRepo, notifRepo, svc
}

func TestCreateGuidanceClassProvisionsAttendance(t *testing.T) {
	classRepo, profileRepo, notifRepo, svc := newGuidanceClassFixture()
	dosenID := uuid.New()

	// dua mahasiswa eligible dari tiga bimbingan: yang ketiga tidak
	// muncul dari query eligibility (cuti / belum accepted)
	eligible1 := uuid.New()
	eligible2 := uuid.New()
	profileRepo.eligible = []model.MahasiswaProfile{
		{UserID: eligible1, AcademicStatus: model.AcademicAktif},
		{UserID: eligible2, AcademicStatus: model.AcademicAktif},
	}

	class, err := svc.Create(context.Background(), dosenID, model.RoleDosen, GuidanceClassInput{
		Title:     "Bimbingan Mingguan",
		Room:      "R. 301",
		StartDate: time.Now(),
		EndDate:   time.Now().Add(2 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, dosenID, class.LecturerID)
	assert.Len(t, classRepo.attendances, 2)

	for _, studentID := range []uuid.UUID{eligible1, eligible2} {
		att, err := classRepo.FindAttendance(class.ID, studentID)
		require.NoError(t, err)
		assert.Nil(t, att.AttendedAt, "baris presensi dibuat dalam keadaan belum hadir")
	}

	// kedua mahasiswa diberi tahu
	assert.Len(t, notifRepo.inserted, 2)
}

func TestCreateGuidanceClassOnlyDosen(t *testing.T) {
	_, _, _, svc := newGuidanceClassFixture()

	for _, role := range []string{model.RoleMahasiswa, model.RoleAdmin, model.RoleSuperadmin} {
		_, err := svc.Create(context.Background(), uuid.New(), role, GuidanceClassInput{Title: "X"})
		assert.ErrorIs(t, err, ErrForbidden, "role %s", role)
	}
}

func TestMarkAttendance(t *testing.T) {
	classRepo, _, _, svc := newGuidanceClassFixture()
	dosenID := uuid.New()
	studentID := uuid.New()
	class := &model.GuidanceClass{ID: uuid.New(), LecturerID: dosenID}
	classRepo.classes[class.ID] = class
	classRepo.attendances[attendanceKey{class.ID, studentID}] = &model.GuidanceClassAttendance{
		ID: uuid.New(), GuidanceClassID: class.ID, UserID: studentID,
	}

	notes := "hadir tepat waktu"
	require.NoError(t, svc.MarkAttendance(context.Background(), dosenID, class.ID, studentID, &notes))

	att, err := classRepo.FindAttendance(class.ID, studentID)
	require.NoError(t, err)
	require.NotNil(t, att.AttendedAt)
	require.NotNil(t, att.AttendanceMethod)
	assert.Equal(t, model.AttendanceManual, *att.AttendanceMethod)

	// presensi kedua kali ditolak
	err = svc.MarkAttendance(context.Background(), dosenID, class.ID, studentID, nil)
	assert.ErrorIs(t, err, ErrAlreadyAttended)
}

func TestMarkAttendanceNotOwnerForbidden(t *testing.T) {
	classRepo, _, _, svc := newGuidanceClassFixture()
	class := &model.GuidanceClass{ID: uuid.New(), LecturerID: uuid.New()}
	classRepo.classes[class.ID] = class

	err := svc.MarkAttendance(context.Background(), uuid.New(), class.ID, uuid.New(), nil)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestMarkAttendanceIneligibleStudent(t *testing.T) {
	classRepo, _, _, svc := newGuidanceClassFixture()
	dosenID := uuid.New()
	class := &model.GuidanceClass{ID: uuid.New(), LecturerID: dosenID}
	classRepo.classes[class.ID] = class

	// mahasiswa tanpa baris presensi tidak bisa ditandai hadir
	err := svc.MarkAttendance(context.Background(), dosenID, class.ID, uuid.New(), nil)
	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestAttendViaToken(t *testing.T) {
	classRepo, _, _, svc := newGuidanceClassFixture()
	dosenID := uuid.New()
	studentID := uuid.New()
	class := &model.GuidanceClass{ID: uuid.New(), LecturerID: dosenID}
	classRepo.classes[class.ID] = class
	classRepo.attendances[attendanceKey{class.ID, studentID}] = &model.GuidanceClassAttendance{
		ID: uuid.New(), GuidanceClassID: class.ID, UserID: studentID,
	}
	require.NoError(t, classRepo.UpdateToken(class.ID, "token-abc"))

	require.NoError(t, svc.AttendViaToken(context.Background(), studentID, "token-abc"))

	att, err := classRepo.FindAttendance(class.ID, studentID)
	require.NoError(t, err)
	require.NotNil(t, att.AttendedAt)
	assert.Equal(t, model.AttendanceQR, *att.AttendanceMethod)

	// scan kedua kali ditolak
	assert.ErrorIs(t, svc.AttendViaToken(context.Background(), studentID, "token-abc"), ErrAlreadyAttended)
}

func TestAttendViaTokenInvalid(t *testing.T) {
	_, _, _, svc := newGuidanceClassFixture()

	assert.ErrorIs(t, svc.AttendViaToken(context.Background(), uuid.New(), ""), ErrInvalidQRToken)
	assert.ErrorIs(t, svc.AttendViaToken(context.Background(), uuid.New(), "tidak-ada"), ErrInvalidQRToken)
}

func TestAttendViaTokenNotEligible(t *testing.T) {
	classRepo, _, _, svc := newGuidanceClassFixture()
	class := &model.GuidanceClass{ID: uuid.New(), LecturerID: uuid.New()}
	classRepo.classes[class.ID] = class
	require.NoError(t, classRepo.UpdateToken(class.ID, "token-abc"))

	// mahasiswa tanpa baris presensi: token valid tapi dia bukan anggota
	err := svc.AttendViaToken(context.Background(), uuid.New(), "token-abc")
	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestResetAttendance(t *testing.T) {
	classRepo, _, _, svc := newGuidanceClassFixture()
	dosenID := uuid.New()
	studentID := uuid.New()
	now := time.Now()
	method := model.AttendanceQR
	notes := "catatan"
	class := &model.GuidanceClass{ID: uuid.New(), LecturerID: dosenID}
	classRepo.classes[class.ID] = class
	classRepo.attendances[attendanceKey{class.ID, studentID}] = &model.GuidanceClassAttendance{
		ID:               uuid.New(),
		GuidanceClassID:  class.ID,
		UserID:           studentID,
		AttendedAt:       &now,
		AttendanceMethod: &method,
		Notes:            &notes,
	}

	require.NoError(t, svc.ResetAttendance(context.Background(), dosenID, class.ID, studentID))

	att, err := classRepo.FindAttendance(class.ID, studentID)
	require.NoError(t, err)
	assert.Nil(t, att.AttendedAt)
	assert.Nil(t, att.AttendanceMethod)
	assert.Nil(t, att.Notes)

	// setelah reset, mahasiswa bisa presensi lagi
	require.NoError(t, classRepo.UpdateToken(class.ID, "token-baru"))
	require.NoError(t, svc.AttendViaToken(context.Background(), studentID, "token-baru"))
}

func TestGenerateQR(t *testing.T) {
	classRepo, _, _, svc := newGuidanceClassFixture()
	dosenID := uuid.New()
	class := &model.GuidanceClass{ID: uuid.New(), LecturerID: dosenID}
	classRepo.classes[class.ID] = class

	png, err := svc.GenerateQR(context.Background(), dosenID, class.ID)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "respons harus PNG")
	assert.NotEmpty(t, class.QRToken)

	// token baru menggantikan yang lama
	oldToken := class.QRToken
	_, err = svc.GenerateQR(context.Background(), dosenID, class.ID)
	require.NoError(t, err)
	assert.NotEqual(t, oldToken, class.QRToken)
}

func TestGenerateQRNotOwner(t *testing.T) {
	classRepo, _, _, svc := newGuidanceClassFixture()
	class := &model.GuidanceClass{ID: uuid.New(), LecturerID: uuid.New()}
	classRepo.classes[class.ID] = class

	_, err := svc.GenerateQR(context.Background(), uuid.New(), class.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGuidanceClassDetailAccess(t *testing.T) {
	classRepo, _, _, svc := newGuidanceClassFixture()
	dosenID := uuid.New()
	memberID := uuid.New()
	class := &model.GuidanceClass{ID: uuid.New(), LecturerID: dosenID}
	classRepo.classes[class.ID] = class
	classRepo.attendances[attendanceKey{class.ID, memberID}] = &model.GuidanceClassAttendance{
		ID: uuid.New(), GuidanceClassID: class.ID, UserID: memberID,
	}

	_, err := svc.Detail(context.Background(), dosenID, model.RoleDosen, class.ID)
	assert.NoError(t, err)
	_, err = svc.Detail(context.Background(), memberID, model.RoleMahasiswa, class.ID)
	assert.NoError(t, err)
	_, err = svc.Detail(context.Background(), uuid.New(), model.RoleAdmin, class.ID)
	assert.NoError(t, err)

	// mahasiswa non-anggota dan dosen lain ditolak
	_, err = svc.Detail(context.Background(), uuid.New(), model.RoleMahasiswa, class.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Detail(context.Background(), uuid.New(), model.RoleDosen, class.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}
