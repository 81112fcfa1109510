package repository

import (
	"time"

	"internship-portal-backend/app/model"
	"internship-portal-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserAdminRepository: khusus untuk fitur manajemen user oleh admin.
type UserAdminRepository interface {
	CreateUser(user *model.User) error
	UpdateUser(user *model.User) error
	FindUserPage(q utils.ListQuery) (*utils.PageResult, error)
	FindUserByID(id uuid.UUID) (*model.User, error)
	SoftDeleteUser(id uuid.UUID) error
	UpdateUserRole(id uuid.UUID, roleID uuid.UUID) error
	FindRoleByName(name string) (*model.Role, error)
}

type userAdminRepository struct {
	db *gorm.DB
}

func NewUserAdminRepository(db *gorm.DB) UserAdminRepository {
	return &userAdminRepository{db}
}

var userListColumns = map[string]bool{
	"username":   true,
	"email":      true,
	"is_active":  true,
	"created_at": true,
}

// CreateUser → admin membuat user baru.
func (r *userAdminRepository) CreateUser(user *model.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

// UpdateUser → admin edit data user.
func (r *userAdminRepository) UpdateUser(user *model.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

// FindUserPage → list user dengan kontrak list standar.
func (r *userAdminRepository) FindUserPage(q utils.ListQuery) (*utils.PageResult, error) {
	db := r.db.Model(&model.User{}).Preload("Role")
	db = utils.ApplyListQuery(db, q, []string{"username", "email", "full_name"}, userListColumns)

	var items []model.User
	return utils.Paginate(db, q, &items)
}

// FindUserByID → ambil detail user.
func (r *userAdminRepository) FindUserByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Role").First(&user, "id = ?", id).Error
	return &user, err
}

// SoftDeleteUser → user masuk trash, bisa di-restore.
func (r *userAdminRepository) SoftDeleteUser(id uuid.UUID) error {
	return r.db.Delete(&model.User{}, "id = ?", id).Error
}

// UpdateUserRole → ganti role user.
func (r *userAdminRepository) UpdateUserRole(id uuid.UUID, roleID uuid.UUID) error {
	return r.db.Model(&model.User{}).
		Where("id = ?", id).
		Update("role_id", roleID).Error
}

func (r *userAdminRepository) FindRoleByName(name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
