package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"internship-portal-backend/app/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trashTestContext(t *testing.T, role, target string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodGet, target, nil)
	ctx.Params = params
	ctx.Set("userID", uuid.New())
	ctx.Set("role", role)
	return ctx, rec
}

func TestTrashListForbiddenForNonAdmin(t *testing.T) {
	repo := &fakeTrashRepo{}
	svc := NewTrashService(repo)

	for _, role := range []string{model.RoleMahasiswa, model.RoleDosen} {
		ctx, rec := trashTestContext(t, role, "/api/v1/admin/trash/internships",
			gin.Params{{Key: "type", Value: "internships"}})
		svc.List(ctx)
		assert.Equal(t, http.StatusForbidden, rec.Code, "role %s", role)
	}
	assert.Empty(t, repo.listCalls)
}

func TestTrashListUnknownType(t *testing.T) {
	svc := NewTrashService(&fakeTrashRepo{})

	ctx, rec := trashTestContext(t, model.RoleAdmin, "/api/v1/admin/trash/mahasiswa",
		gin.Params{{Key: "type", Value: "mahasiswa"}})
	svc.List(ctx)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrashList(t *testing.T) {
	repo := &fakeTrashRepo{}
	svc := NewTrashService(repo)

	ctx, rec := trashTestContext(t, model.RoleAdmin, "/api/v1/admin/trash/reports?page=2&per_page=5",
		gin.Params{{Key: "type", Value: "reports"}})
	svc.List(ctx)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"reports"}, repo.listCalls)
	// parameter paging diteruskan ke repository
	assert.Contains(t, rec.Body.String(), `"current_page":2`)
	assert.Contains(t, rec.Body.String(), `"per_page":5`)
}

func TestTrashRestore(t *testing.T) {
	id := uuid.New()
	repo := &fakeTrashRepo{known: map[uuid.UUID]bool{id: true}}
	svc := NewTrashService(repo)

	ctx, rec := trashTestContext(t, model.RoleSuperadmin, "/api/v1/admin/trash/restore/logbooks/"+id.String(),
		gin.Params{{Key: "type", Value: "logbooks"}, {Key: "id", Value: id.String()}})
	svc.Restore(ctx)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.restored, 1)
	assert.Equal(t, trashCall{"logbooks", id}, repo.restored[0])
}

func TestTrashRestoreNotFound(t *testing.T) {
	repo := &fakeTrashRepo{}
	svc := NewTrashService(repo)

	ctx, rec := trashTestContext(t, model.RoleAdmin, "/api/v1/admin/trash/restore/logbooks/x",
		gin.Params{{Key: "type", Value: "logbooks"}, {Key: "id", Value: uuid.New().String()}})
	svc.Restore(ctx)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, repo.restored)
}

func TestTrashRestoreBadID(t *testing.T) {
	svc := NewTrashService(&fakeTrashRepo{})

	ctx, rec := trashTestContext(t, model.RoleAdmin, "/api/v1/admin/trash/restore/logbooks/bukan-uuid",
		gin.Params{{Key: "type", Value: "logbooks"}, {Key: "id", Value: "bukan-uuid"}})
	svc.Restore(ctx)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrashForceDelete(t *testing.T) {
	id := uuid.New()
	repo := &fakeTrashRepo{known: map[uuid.UUID]bool{id: true}}
	svc := NewTrashService(repo)

	ctx, rec := trashTestContext(t, model.RoleAdmin, "/api/v1/admin/trash/force-delete/faqs/"+id.String(),
		gin.Params{{Key: "type", Value: "faqs"}, {Key: "id", Value: id.String()}})
	svc.ForceDelete(ctx)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.forceDeleted, 1)
	assert.Equal(t, trashCall{"faqs", id}, repo.forceDeleted[0])
}

func TestTrashForceDeleteForbiddenForNonAdmin(t *testing.T) {
	id := uuid.New()
	repo := &fakeTrashRepo{known: map[uuid.UUID]bool{id: true}}
	svc := NewTrashService(repo)

	ctx, rec := trashTestContext(t, model.RoleDosen, "/api/v1/admin/trash/force-delete/faqs/"+id.String(),
		gin.Params{{Key: "type", Value: "faqs"}, {Key: "id", Value: id.String()}})
	svc.ForceDelete(ctx)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, repo.forceDeleted)
}
