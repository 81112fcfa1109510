package service

import (
	"errors"

	"internship-portal-backend/app/model"
	"internship-portal-backend/app/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService menangani registrasi dan login.
type AuthService interface {
	Register(user *model.User) error
	Login(email, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService menghubungkan Service dengan Repository.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{
		userRepo: userRepo,
	}
}

// Register mendaftarkan user baru. PasswordHash di struct masih berisi
// password mentah dari handler; di sini di-hash sebelum disimpan.
func (s *authService) Register(user *model.User) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashedPassword)

	return s.userRepo.Create(user)
}

// Login memeriksa email + password, menolak akun nonaktif, dan mencatat
// waktu login terakhir.
func (s *authService) Login(email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, errors.New("email tidak ditemukan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.New("password salah")
	}

	if !user.IsActive {
		return nil, errors.New("akun anda dinonaktifkan")
	}

	// best effort, gagal update last login tidak menggagalkan login
	_ = s.userRepo.UpdateLastLogin(user.ID)

	return user, nil
}
