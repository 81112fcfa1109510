package service

import (
	"context"

	"internship-portal-backend/app/model"
	"internship-portal-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fake in-memory untuk seluruh repository yang dipakai service test.

// ---------- internship ----------

type statusCall struct {
	id        uuid.UUID
	status    model.InternshipStatus
	advisorID *uuid.UUID
}

type fakeInternshipRepo struct {
	byID          map[uuid.UUID]*model.Internship
	created       []*model.Internship
	updated       []*model.Internship
	softDeleted   []uuid.UUID
	statusCalls   []statusCall
	progressCalls map[uuid.UUID]int
}

func newFakeInternshipRepo() *fakeInternshipRepo {
	return &fakeInternshipRepo{
		byID:          map[uuid.UUID]*model.Internship{},
		progressCalls: map[uuid.UUID]int{},
	}
}

func (f *fakeInternshipRepo) add(in *model.Internship) {
	f.byID[in.ID] = in
}

func (f *fakeInternshipRepo) Create(in *model.Internship) error {
	f.created = append(f.created, in)
	f.byID[in.ID] = in
	return nil
}

func (f *fakeInternshipRepo) FindByID(id uuid.UUID) (*model.Internship, error) {
	in, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return in, nil
}

func (f *fakeInternshipRepo) Update(in *model.Internship) error {
	f.updated = append(f.updated, in)
	f.byID[in.ID] = in
	return nil
}

func (f *fakeInternshipRepo) SoftDelete(id uuid.UUID) error {
	f.softDeleted = append(f.softDeleted, id)
	delete(f.byID, id)
	return nil
}

func (f *fakeInternshipRepo) UpdateStatusWithAdvisor(id uuid.UUID, status model.InternshipStatus, advisorID *uuid.UUID) error {
	f.statusCalls = append(f.statusCalls, statusCall{id, status, advisorID})
	if in, ok := f.byID[id]; ok {
		in.Status = status
	}
	return nil
}

func (f *fakeInternshipRepo) UpdateProgress(id uuid.UUID, progress int) error {
	f.progressCalls[id] = progress
	if in, ok := f.byID[id]; ok {
		in.Progress = progress
	}
	return nil
}

func (f *fakeInternshipRepo) HasAcceptedByUser(userID uuid.UUID) (bool, error) {
	for _, in := range f.byID {
		if in.UserID == userID && in.Status == model.InternshipAccepted {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInternshipRepo) FindPageByUser(userID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error) {
	return &utils.PageResult{}, nil
}

func (f *fakeInternshipRepo) FindPageByAdvisor(advisorUserID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error) {
	return &utils.PageResult{}, nil
}

func (f *fakeInternshipRepo) FindPage(q utils.ListQuery) (*utils.PageResult, error) {
	return &utils.PageResult{}, nil
}

// ---------- profile ----------

type fakeProfileRepo struct {
	mahasiswa map[uuid.UUID]*model.MahasiswaProfile // key: userID
	advisors  map[string]bool                       // key: advisorID|studentID
	eligible  []model.MahasiswaProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		mahasiswa: map[uuid.UUID]*model.MahasiswaProfile{},
		advisors:  map[string]bool{},
	}
}

func advisorKey(advisorID, studentID uuid.UUID) string {
	return advisorID.String() + "|" + studentID.String()
}

func (f *fakeProfileRepo) setAdvisor(advisorID, studentID uuid.UUID) {
	f.advisors[advisorKey(advisorID, studentID)] = true
}

func (f *fakeProfileRepo) FindMahasiswaByUserID(userID uuid.UUID) (*model.MahasiswaProfile, error) {
	p, ok := f.mahasiswa[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) FindDosenByUserID(userID uuid.UUID) (*model.DosenProfile, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepo) CreateMahasiswa(p *model.MahasiswaProfile) error {
	f.mahasiswa[p.UserID] = p
	return nil
}

func (f *fakeProfileRepo) CreateDosen(p *model.DosenProfile) error { return nil }
func (f *fakeProfileRepo) CreateAdmin(p *model.AdminProfile) error { return nil }

func (f *fakeProfileRepo) IsAdvisorOf(advisorUserID, studentUserID uuid.UUID) (bool, error) {
	return f.advisors[advisorKey(advisorUserID, studentUserID)], nil
}

func (f *fakeProfileRepo) FindAdvisees(advisorUserID uuid.UUID) ([]model.MahasiswaProfile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) FindEligibleAdvisees(advisorUserID uuid.UUID) ([]model.MahasiswaProfile, error) {
	return f.eligible, nil
}

// ---------- notification ----------

type fakeNotificationRepo struct {
	inserted []*model.Notification
}

func (f *fakeNotificationRepo) Insert(ctx context.Context, n *model.Notification) error {
	f.inserted = append(f.inserted, n)
	return nil
}

func (f *fakeNotificationRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range f.inserted {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id string, userID uuid.UUID) error {
	return nil
}

// ---------- file storage ----------

type fakeFiles struct {
	deleted []string
}

func (f *fakeFiles) Delete(relPath string) {
	if relPath != "" {
		f.deleted = append(f.deleted, relPath)
	}
}

// ---------- logbook ----------

type fakeLogbookRepo struct {
	byID        map[uuid.UUID]*model.Logbook
	created     []*model.Logbook
	updated     []*model.Logbook
	softDeleted []uuid.UUID
}

func newFakeLogbookRepo() *fakeLogbookRepo {
	return &fakeLogbookRepo{byID: map[uuid.UUID]*model.Logbook{}}
}

func (f *fakeLogbookRepo) Create(l *model.Logbook) error {
	f.created = append(f.created, l)
	f.byID[l.ID] = l
	return nil
}

func (f *fakeLogbookRepo) FindByID(id uuid.UUID) (*model.Logbook, error) {
	l, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return l, nil
}

func (f *fakeLogbookRepo) Update(l *model.Logbook) error {
	f.updated = append(f.updated, l)
	f.byID[l.ID] = l
	return nil
}

func (f *fakeLogbookRepo) SoftDelete(id uuid.UUID) error {
	f.softDeleted = append(f.softDeleted, id)
	delete(f.byID, id)
	return nil
}

func (f *fakeLogbookRepo) FindPageByInternship(internshipID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error) {
	return &utils.PageResult{}, nil
}

// ---------- report ----------

type fakeReportRepo struct {
	byID        map[uuid.UUID]*model.Report
	created     []*model.Report
	updated     []*model.Report
	softDeleted []uuid.UUID
	nextVersion map[uuid.UUID]int
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{
		byID:        map[uuid.UUID]*model.Report{},
		nextVersion: map[uuid.UUID]int{},
	}
}

func (f *fakeReportRepo) Create(rep *model.Report) error {
	f.created = append(f.created, rep)
	f.byID[rep.ID] = rep
	return nil
}

func (f *fakeReportRepo) FindByID(id uuid.UUID) (*model.Report, error) {
	rep, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rep, nil
}

func (f *fakeReportRepo) Update(rep *model.Report) error {
	f.updated = append(f.updated, rep)
	f.byID[rep.ID] = rep
	return nil
}

func (f *fakeReportRepo) SoftDelete(id uuid.UUID) error {
	f.softDeleted = append(f.softDeleted, id)
	delete(f.byID, id)
	return nil
}

// NextVersion meniru max+1: setiap panggilan mengembalikan versi
// berikutnya untuk internship tersebut.
func (f *fakeReportRepo) NextVersion(internshipID uuid.UUID) (int, error) {
	v := f.nextVersion[internshipID]
	if v == 0 {
		v = 1
	}
	f.nextVersion[internshipID] = v + 1
	return v, nil
}

func (f *fakeReportRepo) FindPageByInternship(internshipID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error) {
	return &utils.PageResult{}, nil
}

// ---------- guidance class ----------

type attendanceKey struct {
	classID uuid.UUID
	userID  uuid.UUID
}

type fakeGuidanceClassRepo struct {
	classes     map[uuid.UUID]*model.GuidanceClass
	attendances map[attendanceKey]*model.GuidanceClassAttendance
	tokens      map[string]uuid.UUID // token -> classID
	softDeleted []uuid.UUID
}

func newFakeGuidanceClassRepo() *fakeGuidanceClassRepo {
	return &fakeGuidanceClassRepo{
		classes:     map[uuid.UUID]*model.GuidanceClass{},
		attendances: map[attendanceKey]*model.GuidanceClassAttendance{},
		tokens:      map[string]uuid.UUID{},
	}
}

func (f *fakeGuidanceClassRepo) CreateWithAttendances(class *model.GuidanceClass, attendances []model.GuidanceClassAttendance) error {
	f.classes[class.ID] = class
	for i := range attendances {
		attendances[i].GuidanceClassID = class.ID
		key := attendanceKey{class.ID, attendances[i].UserID}
		if _, exists := f.attendances[key]; exists {
			continue // idempotent, meniru ON CONFLICT DO NOTHING
		}
		att := attendances[i]
		f.attendances[key] = &att
	}
	return nil
}

func (f *fakeGuidanceClassRepo) FindByID(id uuid.UUID) (*model.GuidanceClass, error) {
	c, ok := f.classes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeGuidanceClassRepo) FindByToken(token string) (*model.GuidanceClass, error) {
	classID, ok := f.tokens[token]
	if !ok || token == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return f.FindByID(classID)
}

func (f *fakeGuidanceClassRepo) Update(class *model.GuidanceClass) error {
	f.classes[class.ID] = class
	return nil
}

func (f *fakeGuidanceClassRepo) SoftDelete(id uuid.UUID) error {
	f.softDeleted = append(f.softDeleted, id)
	delete(f.classes, id)
	return nil
}

func (f *fakeGuidanceClassRepo) UpdateToken(id uuid.UUID, token string) error {
	if c, ok := f.classes[id]; ok {
		delete(f.tokens, c.QRToken)
		c.QRToken = token
	}
	f.tokens[token] = id
	return nil
}

func (f *fakeGuidanceClassRepo) FindAttendance(classID, userID uuid.UUID) (*model.GuidanceClassAttendance, error) {
	att, ok := f.attendances[attendanceKey{classID, userID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return att, nil
}

func (f *fakeGuidanceClassRepo) UpdateAttendance(att *model.GuidanceClassAttendance) error {
	f.attendances[attendanceKey{att.GuidanceClassID, att.UserID}] = att
	return nil
}

func (f *fakeGuidanceClassRepo) FindPageByLecturer(lecturerID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error) {
	return &utils.PageResult{}, nil
}

func (f *fakeGuidanceClassRepo) FindPageByStudent(userID uuid.UUID, q utils.ListQuery) (*utils.PageResult, error) {
	return &utils.PageResult{}, nil
}

func (f *fakeGuidanceClassRepo) FindPage(q utils.ListQuery) (*utils.PageResult, error) {
	return &utils.PageResult{}, nil
}
