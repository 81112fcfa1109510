package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"internship-portal-backend/app/model"
	"internship-portal-backend/app/repository"
	"internship-portal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// fakeAnalyticsRepo mengembalikan hasil kosong yang sudah zero-filled,
// meniru kontrak repository analytics.
type fakeAnalyticsRepo struct {
	calls int
}

func (f *fakeAnalyticsRepo) InternshipStats() (*repository.InternshipStatsResult, error) {
	f.calls++
	return &repository.InternshipStatsResult{
		ByStatus: map[string]int64{"waiting": 0, "accepted": 0, "rejected": 0},
		ByType:   map[string]int64{"kkl": 0, "kkn": 0},
	}, nil
}

func (f *fakeAnalyticsRepo) StudentPerformance() (*repository.StudentPerformanceResult, error) {
	f.calls++
	return &repository.StudentPerformanceResult{}, nil
}

func (f *fakeAnalyticsRepo) SystemUsage() (*repository.SystemUsageResult, error) {
	f.calls++
	return &repository.SystemUsageResult{}, nil
}

func (f *fakeAnalyticsRepo) LogbookSummary() (*repository.LogbookSummaryResult, error) {
	f.calls++
	return &repository.LogbookSummaryResult{}, nil
}

func (f *fakeAnalyticsRepo) ReportSummary() (*repository.ReportSummaryResult, error) {
	f.calls++
	return &repository.ReportSummaryResult{}, nil
}

func (f *fakeAnalyticsRepo) GuidanceClassStats() (*repository.GuidanceClassStatsResult, error) {
	f.calls++
	return &repository.GuidanceClassStatsResult{}, nil
}

func (f *fakeAnalyticsRepo) TutorialStats() (*repository.TutorialStatsResult, error) {
	f.calls++
	return &repository.TutorialStatsResult{}, nil
}

func (f *fakeAnalyticsRepo) UserStats() (*repository.UserStatsResult, error) {
	f.calls++
	return &repository.UserStatsResult{}, nil
}

func (f *fakeAnalyticsRepo) FaqStats() (*repository.FaqStatsResult, error) {
	f.calls++
	return &repository.FaqStatsResult{}, nil
}

func (f *fakeAnalyticsRepo) GlobalVariableStats() (*repository.GlobalVariableStatsResult, error) {
	f.calls++
	return &repository.GlobalVariableStatsResult{}, nil
}

type trashCall struct {
	entityType string
	id         uuid.UUID
}

// fakeTrashRepo mencatat pemanggilan restore/force-delete; id yang tidak
// terdaftar di known dianggap tidak ada di trash.
type fakeTrashRepo struct {
	counts       map[string]int64
	known        map[uuid.UUID]bool
	restored     []trashCall
	forceDeleted []trashCall
	listCalls    []string
}

func (f *fakeTrashRepo) List(entityType string, q utils.ListQuery) (*utils.PageResult, error) {
	f.listCalls = append(f.listCalls, entityType)
	return &utils.PageResult{Items: []string{}, Meta: utils.PageMeta{CurrentPage: q.Page, PerPage: q.PerPage, LastPage: 1}}, nil
}

func (f *fakeTrashRepo) Restore(entityType string, id uuid.UUID) error {
	if !f.known[id] {
		return gorm.ErrRecordNotFound
	}
	f.restored = append(f.restored, trashCall{entityType, id})
	return nil
}

func (f *fakeTrashRepo) ForceDelete(entityType string, id uuid.UUID) error {
	if !f.known[id] {
		return gorm.ErrRecordNotFound
	}
	f.forceDeleted = append(f.forceDeleted, trashCall{entityType, id})
	return nil
}

func (f *fakeTrashRepo) Counts() (map[string]int64, error) {
	return f.counts, nil
}

func analyticsTestContext(t *testing.T, role string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/api/v1/admin/analytics", nil)
	ctx.Set("userID", uuid.New())
	ctx.Set("role", role)
	return ctx, rec
}

func TestAnalyticsForbiddenForNonAdmin(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo, &fakeTrashRepo{})

	endpoints := []func(*gin.Context){
		svc.InternshipStats,
		svc.StudentPerformance,
		svc.SystemUsage,
		svc.LogbookSummary,
		svc.ReportSummary,
		svc.GuidanceClassStats,
		svc.TutorialStats,
		svc.UserStats,
		svc.FaqStats,
		svc.GlobalVariableStats,
		svc.TrashStats,
	}

	for _, role := range []string{model.RoleMahasiswa, model.RoleDosen} {
		for i, handler := range endpoints {
			ctx, rec := analyticsTestContext(t, role)
			handler(ctx)
			assert.Equal(t, http.StatusForbidden, rec.Code, "endpoint %d, role %s", i, role)
		}
	}

	assert.Zero(t, repo.calls, "repository tidak boleh dipanggil saat request ditolak")
}

func TestAnalyticsOKForAdmin(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo, &fakeTrashRepo{counts: map[string]int64{"internships": 2}})

	ctx, rec := analyticsTestContext(t, model.RoleAdmin)
	svc.InternshipStats(ctx)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, repo.calls)
	// map zero-filled ikut terkirim di body
	assert.Contains(t, rec.Body.String(), `"by_status"`)
	assert.Contains(t, rec.Body.String(), `"waiting":0`)
}

func TestTrashStatsForSuperadmin(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, &fakeTrashRepo{counts: map[string]int64{"reports": 3}})

	ctx, rec := analyticsTestContext(t, model.RoleSuperadmin)
	svc.TrashStats(ctx)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reports":3`)
}
