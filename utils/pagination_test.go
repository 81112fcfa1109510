package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func listQueryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return ctx
}

func TestParseListQueryDefaults(t *testing.T) {
	q := ParseListQuery(listQueryContext(t, ""))

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PerPage)
	assert.Equal(t, "desc", q.SortDirection)
	assert.Empty(t, q.Search)
	assert.Empty(t, q.Filters)
}

func TestParseListQueryFilters(t *testing.T) {
	q := ParseListQuery(listQueryContext(t,
		"search=magang&filter[status]=accepted&filter[type]=kkl&filter[]=x&filter[kosong]="))

	assert.Equal(t, "magang", q.Search)
	assert.Equal(t, map[string]string{
		"status": "accepted",
		"type":   "kkl",
	}, q.Filters)
}

func TestParseListQueryPerPageCap(t *testing.T) {
	q := ParseListQuery(listQueryContext(t, "page=3&per_page=500"))

	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 100, q.PerPage)
}

func TestParseListQueryInvalidValues(t *testing.T) {
	q := ParseListQuery(listQueryContext(t, "page=-1&per_page=abc&sort_direction=sideways"))

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PerPage)
	assert.Equal(t, "desc", q.SortDirection)
}

func TestParseListQuerySort(t *testing.T) {
	q := ParseListQuery(listQueryContext(t, "sort_field=company_name&sort_direction=ASC"))

	assert.Equal(t, "company_name", q.SortField)
	assert.Equal(t, "asc", q.SortDirection)
}
