package service

import (
	"net/http"
	"time"

	"internship-portal-backend/app/model"
	"internship-portal-backend/app/repository"
	"internship-portal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminService: manajemen user oleh admin/superadmin, termasuk pembuatan
// profil sesuai role (mahasiswa/dosen/admin) saat user dibuat.
type AdminService interface {
	CreateUser(ctx *gin.Context)
	UpdateUser(ctx *gin.Context)
	DeleteUser(ctx *gin.Context)
	GetAllUsers(ctx *gin.Context)
	GetUserDetail(ctx *gin.Context)
	UpdateUserRole(ctx *gin.Context)
}

type adminService struct {
	repo        repository.UserAdminRepository
	profileRepo repository.ProfileRepository
}

func NewAdminService(repo repository.UserAdminRepository, profileRepo repository.ProfileRepository) AdminService {
	return &adminService{repo, profileRepo}
}

// helper: cek admin/superadmin dari context
func ensureAdmin(ctx *gin.Context) bool {
	roleI, _ := ctx.Get("role")
	role, _ := roleI.(string)
	if !isAdminRole(role) {
		ctx.JSON(http.StatusForbidden,
			utils.BuildResponseFailed("Hanya admin yang dapat mengakses fitur ini", "forbidden", nil))
		return false
	}
	return true
}

// helper: parse uuid dari path param, balas 400 kalau invalid
func parseIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("ID tidak valid", err.Error(), nil))
		return uuid.Nil, false
	}
	return id, true
}

func (s *adminService) CreateUser(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	var input struct {
		Username         string `json:"username" binding:"required"`
		Email            string `json:"email" binding:"required"`
		Password         string `json:"password" binding:"required"`
		FullName         string `json:"fullName" binding:"required"`
		Role             string `json:"role" binding:"required"`
		MahasiswaProfile *struct {
			StudentNumber string `json:"studentNumber"`
			StudyProgram  string `json:"studyProgram"`
			Semester      int    `json:"semester"`
			AdvisorID     string `json:"advisorId"`
		} `json:"mahasiswaProfile"`
		DosenProfile *struct {
			EmployeeNumber string `json:"employeeNumber"`
			Department     string `json:"department"`
			Expertise      string `json:"expertise"`
		} `json:"dosenProfile"`
		AdminProfile *struct {
			EmployeeNumber string `json:"employeeNumber"`
			Department     string `json:"department"`
		} `json:"adminProfile"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	role, err := s.repo.FindRoleByName(input.Role)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Role tidak dikenal", input.Role, nil))
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(input.Password), 10)

	user := model.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: string(hash),
		RoleID:       role.ID,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.CreateUser(&user); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal membuat user", err.Error(), nil))
		return
	}

	// profil dibuat sesuai role user baru
	switch role.Name {
	case model.RoleMahasiswa:
		if input.MahasiswaProfile != nil {
			p := model.MahasiswaProfile{
				ID:             uuid.New(),
				UserID:         user.ID,
				StudentNumber:  input.MahasiswaProfile.StudentNumber, // NIM
				StudyProgram:   input.MahasiswaProfile.StudyProgram,
				Semester:       input.MahasiswaProfile.Semester,
				AcademicStatus: model.AcademicAktif,
			}
			if input.MahasiswaProfile.AdvisorID != "" {
				if aid, err := uuid.Parse(input.MahasiswaProfile.AdvisorID); err == nil {
					p.AdvisorID = &aid
				}
			}
			_ = s.profileRepo.CreateMahasiswa(&p)
		}
	case model.RoleDosen:
		if input.DosenProfile != nil {
			p := model.DosenProfile{
				ID:             uuid.New(),
				UserID:         user.ID,
				EmployeeNumber: input.DosenProfile.EmployeeNumber, // NIP
				Department:     input.DosenProfile.Department,
				Expertise:      input.DosenProfile.Expertise,
			}
			_ = s.profileRepo.CreateDosen(&p)
		}
	case model.RoleAdmin:
		if input.AdminProfile != nil {
			p := model.AdminProfile{
				ID:             uuid.New(),
				UserID:         user.ID,
				EmployeeNumber: input.AdminProfile.EmployeeNumber,
				Department:     input.AdminProfile.Department,
			}
			_ = s.profileRepo.CreateAdmin(&p)
		}
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("User berhasil dibuat", user))
}

func (s *adminService) UpdateUser(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	uid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := s.repo.FindUserByID(uid)
	if err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("User tidak ditemukan", err.Error(), nil))
		return
	}

	var input struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		IsActive *bool  `json:"isActive"`
		Password string `json:"password"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Password != "" {
		hash, _ := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
		user.PasswordHash = string(hash)
	}

	if err := s.repo.UpdateUser(user); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal memperbarui user", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("User berhasil diperbarui", user))
}

// DeleteUser: soft delete, user masuk trash dan bisa di-restore.
func (s *adminService) DeleteUser(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	uid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := s.repo.SoftDeleteUser(uid); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghapus user", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("User berhasil dihapus", nil))
}

func (s *adminService) GetAllUsers(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	q := utils.ParseListQuery(ctx)
	page, err := s.repo.FindUserPage(q)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil user", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil semua user", page))
}

func (s *adminService) GetUserDetail(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	uid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	u, err := s.repo.FindUserByID(uid)
	if err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("User tidak ditemukan", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil detail user", u))
}

func (s *adminService) UpdateUserRole(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	uid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var input struct {
		Role string `json:"role" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	role, err := s.repo.FindRoleByName(input.Role)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Role tidak dikenal", input.Role, nil))
		return
	}

	if err := s.repo.UpdateUserRole(uid, role.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal update role", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Role user berhasil diperbarui", nil))
}
