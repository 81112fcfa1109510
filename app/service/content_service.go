package service

import (
	"net/http"
	"strconv"

	"internship-portal-backend/app/model"
	"internship-portal-backend/app/repository"
	"internship-portal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContentService: CRUD tutorial, FAQ, dan global variable.
// Mutasi hanya untuk admin; listing bisa diakses semua user login
// (tutorial difilter access_level sesuai role pembaca).
type ContentService interface {
	CreateTutorial(ctx *gin.Context)
	UpdateTutorial(ctx *gin.Context)
	DeleteTutorial(ctx *gin.Context)
	GetTutorials(ctx *gin.Context)
	GetTutorialDetail(ctx *gin.Context)

	CreateFaq(ctx *gin.Context)
	UpdateFaq(ctx *gin.Context)
	DeleteFaq(ctx *gin.Context)
	GetFaqs(ctx *gin.Context)

	CreateGlobalVariable(ctx *gin.Context)
	UpdateGlobalVariable(ctx *gin.Context)
	DeleteGlobalVariable(ctx *gin.Context)
	GetGlobalVariables(ctx *gin.Context)
}

type contentService struct {
	repo    repository.ContentRepository
	storage *utils.Storage
}

func NewContentService(repo repository.ContentRepository, storage *utils.Storage) ContentService {
	return &contentService{repo, storage}
}

// ---------- Tutorial ----------

// CreateTutorial menerima multipart: field teks + file panduan opsional.
func (s *contentService) CreateTutorial(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	title := ctx.PostForm("title")
	if title == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Judul tutorial wajib diisi", "title kosong", nil))
		return
	}

	accessLevel := ctx.PostForm("accessLevel")
	if accessLevel == "" {
		accessLevel = "all"
	}

	tutorial := model.Tutorial{
		ID:          uuid.New(),
		Title:       title,
		Content:     ctx.PostForm("content"),
		AccessLevel: accessLevel,
	}

	if file, err := ctx.FormFile("file"); err == nil {
		path, err := s.storage.Save(ctx, file, "tutorials")
		if err != nil {
			ctx.JSON(http.StatusInternalServerError,
				utils.BuildResponseFailed("Gagal menyimpan file tutorial", err.Error(), nil))
			return
		}
		tutorial.FilePath = path
	}

	if err := s.repo.CreateTutorial(&tutorial); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal membuat tutorial", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("Tutorial berhasil dibuat", tutorial))
}

func (s *contentService) UpdateTutorial(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	tutorial, err := s.repo.FindTutorialByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("Tutorial tidak ditemukan", err.Error(), nil))
		return
	}

	if v := ctx.PostForm("title"); v != "" {
		tutorial.Title = v
	}
	if v := ctx.PostForm("content"); v != "" {
		tutorial.Content = v
	}
	if v := ctx.PostForm("accessLevel"); v != "" {
		tutorial.AccessLevel = v
	}
	if file, err := ctx.FormFile("file"); err == nil {
		path, err := s.storage.Save(ctx, file, "tutorials")
		if err != nil {
			ctx.JSON(http.StatusInternalServerError,
				utils.BuildResponseFailed("Gagal menyimpan file tutorial", err.Error(), nil))
			return
		}
		s.storage.Delete(tutorial.FilePath)
		tutorial.FilePath = path
	}

	if err := s.repo.UpdateTutorial(tutorial); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal memperbarui tutorial", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Tutorial berhasil diperbarui", tutorial))
}

func (s *contentService) DeleteTutorial(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	tutorial, err := s.repo.FindTutorialByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("Tutorial tidak ditemukan", err.Error(), nil))
		return
	}

	s.storage.Delete(tutorial.FilePath)

	if err := s.repo.SoftDeleteTutorial(id); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghapus tutorial", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Tutorial berhasil dihapus", nil))
}

// GetTutorials: non-admin hanya melihat tutorial untuk rolenya (atau "all").
func (s *contentService) GetTutorials(ctx *gin.Context) {

	q := utils.ParseListQuery(ctx)

	roleI, _ := ctx.Get("role")
	role, _ := roleI.(string)
	readerRole := ""
	if !isAdminRole(role) {
		readerRole = role
	}

	page, err := s.repo.FindTutorialPage(q, readerRole)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil tutorial", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil tutorial", page))
}

func (s *contentService) GetTutorialDetail(ctx *gin.Context) {

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	tutorial, err := s.repo.FindTutorialByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("Tutorial tidak ditemukan", err.Error(), nil))
		return
	}

	roleI, _ := ctx.Get("role")
	role, _ := roleI.(string)
	if !isAdminRole(role) && tutorial.AccessLevel != "all" && tutorial.AccessLevel != role {
		ctx.JSON(http.StatusForbidden,
			utils.BuildResponseFailed("Anda tidak berhak mengakses tutorial ini", "forbidden", nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil detail tutorial", tutorial))
}

// ---------- Faq ----------

func (s *contentService) CreateFaq(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	var input struct {
		Question  string `json:"question" binding:"required"`
		Answer    string `json:"answer" binding:"required"`
		Category  string `json:"category"`
		SortOrder int    `json:"sortOrder"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	faq := model.Faq{
		ID:        uuid.New(),
		Question:  input.Question,
		Answer:    input.Answer,
		Category:  input.Category,
		IsActive:  true,
		SortOrder: input.SortOrder,
	}

	if err := s.repo.CreateFaq(&faq); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal membuat FAQ", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("FAQ berhasil dibuat", faq))
}

func (s *contentService) UpdateFaq(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	faq, err := s.repo.FindFaqByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("FAQ tidak ditemukan", err.Error(), nil))
		return
	}

	var input struct {
		Question  string `json:"question"`
		Answer    string `json:"answer"`
		Category  string `json:"category"`
		IsActive  *bool  `json:"isActive"`
		SortOrder *int   `json:"sortOrder"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	if input.Question != "" {
		faq.Question = input.Question
	}
	if input.Answer != "" {
		faq.Answer = input.Answer
	}
	if input.Category != "" {
		faq.Category = input.Category
	}
	if input.IsActive != nil {
		faq.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		faq.SortOrder = *input.SortOrder
	}

	if err := s.repo.UpdateFaq(faq); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal memperbarui FAQ", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("FAQ berhasil diperbarui", faq))
}

func (s *contentService) DeleteFaq(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := s.repo.SoftDeleteFaq(id); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghapus FAQ", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("FAQ berhasil dihapus", nil))
}

// GetFaqs: non-admin hanya melihat FAQ aktif.
func (s *contentService) GetFaqs(ctx *gin.Context) {

	q := utils.ParseListQuery(ctx)

	roleI, _ := ctx.Get("role")
	role, _ := roleI.(string)
	if !isAdminRole(role) {
		if q.Filters == nil {
			q.Filters = map[string]string{}
		}
		q.Filters["is_active"] = strconv.FormatBool(true)
	}

	page, err := s.repo.FindFaqPage(q)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil FAQ", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil FAQ", page))
}

// ---------- GlobalVariable ----------

func (s *contentService) CreateGlobalVariable(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	var input struct {
		Key         string `json:"key" binding:"required"`
		Value       string `json:"value" binding:"required"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	if input.Type == "" {
		input.Type = "string"
	}

	gv := model.GlobalVariable{
		ID:          uuid.New(),
		Key:         input.Key,
		Value:       input.Value,
		Description: input.Description,
		Type:        input.Type,
	}

	if err := s.repo.CreateGlobalVariable(&gv); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal membuat global variable", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("Global variable berhasil dibuat", gv))
}

func (s *contentService) UpdateGlobalVariable(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	gv, err := s.repo.FindGlobalVariableByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("Global variable tidak ditemukan", err.Error(), nil))
		return
	}

	var input struct {
		Value       string `json:"value"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	if input.Value != "" {
		gv.Value = input.Value
	}
	if input.Description != "" {
		gv.Description = input.Description
	}
	if input.Type != "" {
		gv.Type = input.Type
	}

	if err := s.repo.UpdateGlobalVariable(gv); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal memperbarui global variable", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Global variable berhasil diperbarui", gv))
}

func (s *contentService) DeleteGlobalVariable(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := s.repo.SoftDeleteGlobalVariable(id); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghapus global variable", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Global variable berhasil dihapus", nil))
}

func (s *contentService) GetGlobalVariables(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	q := utils.ParseListQuery(ctx)
	page, err := s.repo.FindGlobalVariablePage(q)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil global variable", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil global variable", page))
}
