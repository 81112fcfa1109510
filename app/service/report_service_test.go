package service

import (
	"context"
	"testing"

	"internship-portal-backend/app/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportFixture() (*fakeReportRepo, *fakeInternshipRepo, *fakeProfileRepo, *fakeNotificationRepo, *fakeFiles, ReportService) {
	reportRepo := newFakeReportRepo()
	internshipRepo := newFakeInternshipRepo()
	profileRepo := newFakeProfileRepo()
	notifRepo := &fakeNotificationRepo{}
	files := &fakeFiles{}
	svc := NewReportService(reportRepo, internshipRepo, profileRepo, notifRepo, files)
	return reportRepo, internshipRepo, profileRepo, notifRepo, files, svc
}

func TestSubmitReportVersioning(t *testing.T) {
	_, internshipRepo, _, _, _, svc := newReportFixture()
	studentID := uuid.New()
	in := &model.Internship{ID: uuid.New(), UserID: studentID, Status: model.InternshipAccepted}
	internshipRepo.add(in)

	first, err := svc.Submit(context.Background(), studentID, in.ID, "Laporan Awal", "reports/v1.pdf")
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), studentID, in.ID, "Laporan Revisi", "reports/v2.pdf")
	require.NoError(t, err)

	assert.Equal(t, 1, first.Version)
	assert.Equal(t, 2, second.Version)
	assert.Equal(t, model.ReportPending, first.Status)
	assert.Equal(t, model.ReportPending, second.Status)
}

func TestSubmitReportRequiresAcceptedInternship(t *testing.T) {
	_, internshipRepo, _, _, _, svc := newReportFixture()
	studentID := uuid.New()
	in := &model.Internship{ID: uuid.New(), UserID: studentID, Status: model.InternshipWaiting}
	internshipRepo.add(in)

	_, err := svc.Submit(context.Background(), studentID, in.ID, "Laporan", "reports/x.pdf")
	assert.ErrorIs(t, err, ErrInternshipNotAccepted)
}

func TestSubmitReportNotOwner(t *testing.T) {
	_, internshipRepo, _, _, _, svc := newReportFixture()
	in := &model.Internship{ID: uuid.New(), UserID: uuid.New(), Status: model.InternshipAccepted}
	internshipRepo.add(in)

	_, err := svc.Submit(context.Background(), uuid.New(), in.ID, "Laporan", "reports/x.pdf")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestReportDetailAccess(t *testing.T) {
	reportRepo, internshipRepo, profileRepo, _, _, svc := newReportFixture()
	studentID := uuid.New()
	advisorID := uuid.New()
	profileRepo.setAdvisor(advisorID, studentID)
	in := &model.Internship{ID: uuid.New(), UserID: studentID, Status: model.InternshipAccepted}
	internshipRepo.add(in)
	rep := &model.Report{ID: uuid.New(), InternshipID: in.ID, UserID: studentID, Status: model.ReportPending}
	reportRepo.byID[rep.ID] = rep

	got, err := svc.Detail(context.Background(), studentID, model.RoleMahasiswa, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, rep.ID, got.ID)

	_, err = svc.Detail(context.Background(), advisorID, model.RoleDosen, rep.ID)
	assert.NoError(t, err)

	_, err = svc.Detail(context.Background(), uuid.New(), model.RoleMahasiswa, rep.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateReportApprovedLocked(t *testing.T) {
	reportRepo, _, _, _, _, svc := newReportFixture()
	studentID := uuid.New()
	rep := &model.Report{ID: uuid.New(), UserID: studentID, Status: model.ReportApproved}
	reportRepo.byID[rep.ID] = rep

	_, err := svc.Update(context.Background(), studentID, rep.ID, UpdateReportInput{Title: "Revisi"})
	assert.ErrorIs(t, err, ErrReportApproved)
}

func TestUpdateReportNewFileBumpsVersion(t *testing.T) {
	reportRepo, _, _, _, files, svc := newReportFixture()
	studentID := uuid.New()
	internshipID := uuid.New()
	reportRepo.nextVersion[internshipID] = 3 // sudah ada versi 1 dan 2
	rep := &model.Report{
		ID:           uuid.New(),
		InternshipID: internshipID,
		UserID:       studentID,
		Status:       model.ReportPending,
		ReportFile:   "reports/lama.pdf",
		Version:      2,
	}
	reportRepo.byID[rep.ID] = rep

	updated, err := svc.Update(context.Background(), studentID, rep.ID, UpdateReportInput{ReportFile: "reports/baru.pdf"})

	require.NoError(t, err)
	assert.Equal(t, 3, updated.Version)
	assert.Equal(t, "reports/baru.pdf", updated.ReportFile)
	assert.Equal(t, []string{"reports/lama.pdf"}, files.deleted)
}

func TestUpdateRejectedReportBackToPending(t *testing.T) {
	reportRepo, _, _, _, _, svc := newReportFixture()
	studentID := uuid.New()
	notes := "perbaiki bab 3"
	rep := &model.Report{
		ID:            uuid.New(),
		UserID:        studentID,
		Status:        model.ReportRejected,
		ReviewerNotes: &notes,
	}
	reportRepo.byID[rep.ID] = rep

	updated, err := svc.Update(context.Background(), studentID, rep.ID, UpdateReportInput{Title: "Revisi Bab 3"})

	require.NoError(t, err)
	assert.Equal(t, model.ReportPending, updated.Status)
	assert.Nil(t, updated.ReviewerNotes)
}

func TestReviewReport(t *testing.T) {
	reportRepo, _, profileRepo, notifRepo, _, svc := newReportFixture()
	studentID := uuid.New()
	advisorID := uuid.New()
	profileRepo.setAdvisor(advisorID, studentID)
	rep := &model.Report{ID: uuid.New(), UserID: studentID, Status: model.ReportPending, Title: "Laporan", Version: 1}
	reportRepo.byID[rep.ID] = rep

	err := svc.Review(context.Background(), advisorID, model.RoleDosen, rep.ID, model.ReportApproved, nil)

	require.NoError(t, err)
	assert.Equal(t, model.ReportApproved, rep.Status)
	require.Len(t, notifRepo.inserted, 1)
	assert.Equal(t, studentID, notifRepo.inserted[0].UserID)
}

func TestReviewRejectedRequiresNotes(t *testing.T) {
	reportRepo, _, _, _, _, svc := newReportFixture()
	rep := &model.Report{ID: uuid.New(), UserID: uuid.New(), Status: model.ReportPending}
	reportRepo.byID[rep.ID] = rep

	err := svc.Review(context.Background(), uuid.New(), model.RoleAdmin, rep.ID, model.ReportRejected, nil)
	assert.ErrorIs(t, err, ErrReviewNotesRequired)

	empty := ""
	err = svc.Review(context.Background(), uuid.New(), model.RoleAdmin, rep.ID, model.ReportRejected, &empty)
	assert.ErrorIs(t, err, ErrReviewNotesRequired)
}

func TestReviewByNonAdvisorForbidden(t *testing.T) {
	reportRepo, _, _, _, _, svc := newReportFixture()
	rep := &model.Report{ID: uuid.New(), UserID: uuid.New(), Status: model.ReportPending}
	reportRepo.byID[rep.ID] = rep

	err := svc.Review(context.Background(), uuid.New(), model.RoleDosen, rep.ID, model.ReportApproved, nil)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Review(context.Background(), uuid.New(), model.RoleMahasiswa, rep.ID, model.ReportApproved, nil)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteReportApprovedBlockedForEveryone(t *testing.T) {
	reportRepo, _, _, _, _, svc := newReportFixture()
	studentID := uuid.New()
	rep := &model.Report{ID: uuid.New(), UserID: studentID, Status: model.ReportApproved}
	reportRepo.byID[rep.ID] = rep

	// satu kebijakan untuk semua role, termasuk admin
	assert.ErrorIs(t, svc.Delete(context.Background(), studentID, model.RoleMahasiswa, rep.ID), ErrReportApproved)
	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New(), model.RoleAdmin, rep.ID), ErrReportApproved)
	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New(), model.RoleSuperadmin, rep.ID), ErrReportApproved)
}

func TestDeleteReport(t *testing.T) {
	reportRepo, _, _, _, files, svc := newReportFixture()
	studentID := uuid.New()
	rep := &model.Report{ID: uuid.New(), UserID: studentID, Status: model.ReportPending, ReportFile: "reports/x.pdf"}
	reportRepo.byID[rep.ID] = rep

	// bukan pemilik dan bukan admin: ditolak
	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New(), model.RoleMahasiswa, rep.ID), ErrForbidden)

	require.NoError(t, svc.Delete(context.Background(), studentID, model.RoleMahasiswa, rep.ID))
	assert.Contains(t, reportRepo.softDeleted, rep.ID)
	assert.Contains(t, files.deleted, "reports/x.pdf")
}
