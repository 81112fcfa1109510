package routes

import (
	"net/http"

	"internship-portal-backend/app/model"
	"internship-portal-backend/app/repository"
	"internship-portal-backend/app/service"
	"internship-portal-backend/middleware"
	"internship-portal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler adalah struct pengelola request untuk fitur autentikasi.
type AuthHandler struct {
	authService service.AuthService
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

// NewAuthHandler membuat instance handler autentikasi.
func NewAuthHandler(
	authService service.AuthService,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// SetupAuthRoutes mendaftarkan endpoint autentikasi.
func (h *AuthHandler) SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/api/v1/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)

		me := authGroup.Group("")
		me.Use(middleware.AuthMiddleware())
		me.GET("/me", h.Me)
	}
}

// Register menangani pendaftaran self-service. Hanya role mahasiswa dan
// dosen yang boleh mendaftar sendiri; akun admin dibuat lewat fitur admin.
func (h *AuthHandler) Register(ctx *gin.Context) {
	var input struct {
		Username         string `json:"username" binding:"required"`
		Email            string `json:"email" binding:"required,email"`
		Password         string `json:"password" binding:"required,min=6"`
		FullName         string `json:"fullName" binding:"required"`
		Role             string `json:"role" binding:"required"`
		MahasiswaProfile *struct {
			StudentNumber string `json:"studentNumber" binding:"required"`
			StudyProgram  string `json:"studyProgram"`
			Semester      int    `json:"semester"`
		} `json:"mahasiswaProfile"`
		DosenProfile *struct {
			EmployeeNumber string `json:"employeeNumber" binding:"required"`
			Department     string `json:"department"`
			Expertise      string `json:"expertise"`
		} `json:"dosenProfile"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	if input.Role != model.RoleMahasiswa && input.Role != model.RoleDosen {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Role pendaftaran harus mahasiswa atau dosen", input.Role, nil))
		return
	}

	role, err := h.userRepo.FindRoleByName(input.Role)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Role tidak ditemukan", err.Error(), nil))
		return
	}

	newUser := model.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: input.Password, // masih mentah, di-hash di service
		FullName:     input.FullName,
		RoleID:       role.ID,
		IsActive:     true,
	}

	if err := h.authService.Register(&newUser); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal registrasi", err.Error(), nil))
		return
	}

	// profil sesuai role
	switch input.Role {
	case model.RoleMahasiswa:
		if input.MahasiswaProfile != nil {
			_ = h.profileRepo.CreateMahasiswa(&model.MahasiswaProfile{
				ID:             uuid.New(),
				UserID:         newUser.ID,
				StudentNumber:  input.MahasiswaProfile.StudentNumber,
				StudyProgram:   input.MahasiswaProfile.StudyProgram,
				Semester:       input.MahasiswaProfile.Semester,
				AcademicStatus: model.AcademicAktif,
			})
		}
	case model.RoleDosen:
		if input.DosenProfile != nil {
			_ = h.profileRepo.CreateDosen(&model.DosenProfile{
				ID:             uuid.New(),
				UserID:         newUser.ID,
				EmployeeNumber: input.DosenProfile.EmployeeNumber,
				Department:     input.DosenProfile.Department,
				Expertise:      input.DosenProfile.Expertise,
			})
		}
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("Registrasi berhasil", nil))
}

// Login memverifikasi kredensial dan mengembalikan JWT + info user dasar.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input login tidak valid", err.Error(), nil))
		return
	}

	user, err := h.authService.Login(input.Email, input.Password)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Login gagal", err.Error(), nil))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role.Name)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal membuat token", err.Error(), nil))
		return
	}

	data := map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"id":       user.ID,
			"username": user.Username,
			"fullName": user.FullName,
			"role":     user.Role.Name,
		},
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Login berhasil", data))
}

// Me mengembalikan user yang login beserta profil sesuai rolenya.
func (h *AuthHandler) Me(ctx *gin.Context) {
	userID, role := currentPrincipal(ctx)

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("User tidak ditemukan", err.Error(), nil))
		return
	}

	data := map[string]interface{}{
		"user": user,
	}

	switch role {
	case model.RoleMahasiswa:
		if p, err := h.profileRepo.FindMahasiswaByUserID(userID); err == nil {
			data["profile"] = p
		}
	case model.RoleDosen:
		if p, err := h.profileRepo.FindDosenByUserID(userID); err == nil {
			data["profile"] = p
		}
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil profil", data))
}
