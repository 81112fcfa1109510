package repository

import (
	"time"

	"internship-portal-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository mendefinisikan kontrak operasi database untuk entity User.
type UserRepository interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	FindRoleByName(name string) (*model.Role, error)
	UpdateLastLogin(id uuid.UUID) error
}

// userRepository adalah implementasi konkret UserRepository berbasis GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository membuat instance baru userRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

// Create menyimpan data user baru ke database.
func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// FindByEmail mencari user berdasarkan email (dipakai saat login).
func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.
		Preload("Role").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername mencari user berdasarkan username.
func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.
		Preload("Role").
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID mengambil user berdasarkan ID (dipakai endpoint profil).
func (r *userRepository) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.
		Preload("Role").
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindRoleByName mengambil role berdasarkan nama (untuk registrasi).
func (r *userRepository) FindRoleByName(name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// UpdateLastLogin mencatat waktu login terakhir user.
func (r *userRepository) UpdateLastLogin(id uuid.UUID) error {
	return r.db.Model(&model.User{}).
		Where("id = ?", id).
		Update("last_login_at", time.Now()).Error
}
