package service

import (
	"context"
	"testing"
	"time"

	"internship-portal-backend/app/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogbookFixture() (*fakeLogbookRepo, *fakeInternshipRepo, *fakeProfileRepo, LogbookService) {
	logbookRepo := newFakeLogbookRepo()
	internshipRepo := newFakeInternshipRepo()
	profileRepo := newFakeProfileRepo()
	svc := NewLogbookService(logbookRepo, internshipRepo, profileRepo)
	return logbookRepo, internshipRepo, profileRepo, svc
}

func TestCreateLogbook(t *testing.T) {
	_, internshipRepo, _, svc := newLogbookFixture()
	studentID := uuid.New()
	in := &model.Internship{ID: uuid.New(), UserID: studentID, Status: model.InternshipAccepted}
	internshipRepo.add(in)

	logbook, err := svc.Create(context.Background(), studentID, in.ID, LogbookInput{
		Date:       time.Now(),
		Activities: "Orientasi dan pengenalan lingkungan kerja",
	})

	require.NoError(t, err)
	assert.Equal(t, in.ID, logbook.InternshipID)
	assert.Equal(t, studentID, logbook.UserID)
}

func TestCreateLogbookRequiresAcceptedInternship(t *testing.T) {
	_, internshipRepo, _, svc := newLogbookFixture()
	studentID := uuid.New()

	for _, status := range []model.InternshipStatus{model.InternshipWaiting, model.InternshipRejected} {
		in := &model.Internship{ID: uuid.New(), UserID: studentID, Status: status}
		internshipRepo.add(in)

		_, err := svc.Create(context.Background(), studentID, in.ID, LogbookInput{Activities: "x"})
		assert.ErrorIs(t, err, ErrInternshipNotAccepted, "status %s", status)
	}
}

func TestCreateLogbookNotOwner(t *testing.T) {
	_, internshipRepo, _, svc := newLogbookFixture()
	in := &model.Internship{ID: uuid.New(), UserID: uuid.New(), Status: model.InternshipAccepted}
	internshipRepo.add(in)

	_, err := svc.Create(context.Background(), uuid.New(), in.ID, LogbookInput{Activities: "x"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateLogbookOwnerOnly(t *testing.T) {
	logbookRepo, _, _, svc := newLogbookFixture()
	studentID := uuid.New()
	lb := &model.Logbook{ID: uuid.New(), UserID: studentID, Activities: "awal"}
	logbookRepo.byID[lb.ID] = lb

	_, err := svc.Update(context.Background(), uuid.New(), lb.ID, LogbookInput{Activities: "ubah"})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Update(context.Background(), studentID, lb.ID, LogbookInput{Activities: "ubah"})
	require.NoError(t, err)
	assert.Equal(t, "ubah", updated.Activities)
}

func TestDeleteLogbookOwnerOnly(t *testing.T) {
	logbookRepo, _, _, svc := newLogbookFixture()
	studentID := uuid.New()
	lb := &model.Logbook{ID: uuid.New(), UserID: studentID}
	logbookRepo.byID[lb.ID] = lb

	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New(), lb.ID), ErrForbidden)

	require.NoError(t, svc.Delete(context.Background(), studentID, lb.ID))
	assert.Contains(t, logbookRepo.softDeleted, lb.ID)
}

func TestSetSupervisorNotes(t *testing.T) {
	logbookRepo, _, profileRepo, svc := newLogbookFixture()
	studentID := uuid.New()
	advisorID := uuid.New()
	profileRepo.setAdvisor(advisorID, studentID)
	lb := &model.Logbook{ID: uuid.New(), UserID: studentID}
	logbookRepo.byID[lb.ID] = lb

	err := svc.SetSupervisorNotes(context.Background(), advisorID, model.RoleDosen, lb.ID, "lanjutkan")

	require.NoError(t, err)
	require.NotNil(t, lb.SupervisorNotes)
	assert.Equal(t, "lanjutkan", *lb.SupervisorNotes)
}

func TestSetSupervisorNotesOnlyAdvisor(t *testing.T) {
	logbookRepo, _, _, svc := newLogbookFixture()
	lb := &model.Logbook{ID: uuid.New(), UserID: uuid.New()}
	logbookRepo.byID[lb.ID] = lb

	// dosen bukan pembimbing mahasiswa tersebut
	err := svc.SetSupervisorNotes(context.Background(), uuid.New(), model.RoleDosen, lb.ID, "catatan")
	assert.ErrorIs(t, err, ErrForbidden)

	// role lain ditolak, termasuk admin
	err = svc.SetSupervisorNotes(context.Background(), uuid.New(), model.RoleAdmin, lb.ID, "catatan")
	assert.ErrorIs(t, err, ErrForbidden)
}
