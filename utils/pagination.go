package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Semua endpoint list memakai kontrak query yang sama:
// search, filter[col]=val, sort_field, sort_direction, per_page, page.
// Respons berbentuk { items, meta{ total, per_page, current_page, last_page } }.

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// ListQuery menampung parameter list yang sudah diparse dari request.
type ListQuery struct {
	Search        string
	Filters       map[string]string
	SortField     string
	SortDirection string
	Page          int
	PerPage       int
}

// PageMeta adalah metadata paging pada respons list.
type PageMeta struct {
	Total       int64 `json:"total"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
}

// PageResult membungkus items + meta.
type PageResult struct {
	Items interface{} `json:"items"`
	Meta  PageMeta    `json:"meta"`
}

// ParseListQuery membaca parameter list standar dari query string.
// Filter memakai bentuk filter[kolom]=nilai (bisa lebih dari satu).
func ParseListQuery(ctx *gin.Context) ListQuery {
	q := ListQuery{
		Search:        strings.TrimSpace(ctx.Query("search")),
		Filters:       map[string]string{},
		SortField:     ctx.Query("sort_field"),
		SortDirection: strings.ToLower(ctx.Query("sort_direction")),
		Page:          1,
		PerPage:       defaultPerPage,
	}

	if p, err := strconv.Atoi(ctx.Query("page")); err == nil && p > 0 {
		q.Page = p
	}
	if pp, err := strconv.Atoi(ctx.Query("per_page")); err == nil && pp > 0 {
		q.PerPage = pp
		if q.PerPage > maxPerPage {
			q.PerPage = maxPerPage
		}
	}
	if q.SortDirection != "asc" && q.SortDirection != "desc" {
		q.SortDirection = "desc"
	}

	for key, vals := range ctx.Request.URL.Query() {
		if !strings.HasPrefix(key, "filter[") || !strings.HasSuffix(key, "]") {
			continue
		}
		col := key[len("filter[") : len(key)-1]
		if col != "" && len(vals) > 0 && vals[0] != "" {
			q.Filters[col] = vals[0]
		}
	}

	return q
}

// ApplyListQuery menerapkan search/filter/sort ke query GORM.
// searchable = kolom yang di-ILIKE saat search,
// allowed    = whitelist kolom yang boleh dipakai filter/sort
// (kolom di luar whitelist diabaikan, bukan error).
func ApplyListQuery(db *gorm.DB, q ListQuery, searchable []string, allowed map[string]bool) *gorm.DB {
	if q.Search != "" && len(searchable) > 0 {
		pattern := "%" + q.Search + "%"
		parts := make([]string, 0, len(searchable))
		args := make([]interface{}, 0, len(searchable))
		for _, col := range searchable {
			parts = append(parts, col+" ILIKE ?")
			args = append(args, pattern)
		}
		// digabung dalam satu grup OR supaya tidak bocor ke kondisi lain
		db = db.Where("("+strings.Join(parts, " OR ")+")", args...)
	}

	for col, val := range q.Filters {
		if allowed[col] {
			db = db.Where(col+" = ?", val)
		}
	}

	if q.SortField != "" && allowed[q.SortField] {
		db = db.Order(q.SortField + " " + q.SortDirection)
	} else {
		db = db.Order("created_at " + q.SortDirection)
	}

	return db
}

// Paginate menjalankan count + offset/limit dan membungkus hasilnya.
// out harus pointer ke slice model.
func Paginate(db *gorm.DB, q ListQuery, out interface{}) (*PageResult, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (q.Page - 1) * q.PerPage
	if err := db.Offset(offset).Limit(q.PerPage).Find(out).Error; err != nil {
		return nil, err
	}

	lastPage := int((total + int64(q.PerPage) - 1) / int64(q.PerPage))
	if lastPage < 1 {
		lastPage = 1
	}

	return &PageResult{
		Items: out,
		Meta: PageMeta{
			Total:       total,
			PerPage:     q.PerPage,
			CurrentPage: q.Page,
			LastPage:    lastPage,
		},
	}, nil
}
