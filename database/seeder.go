package database

import (
	"log"
	"time"

	"internship-portal-backend/app/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunSeeders menjalankan seluruh seeder yang dibutuhkan.
// Panggil sekali di main.go setelah InitDB berhasil.
func RunSeeders(db *gorm.DB) {
	SeedRoles(db)
	SeedUsers(db)
	SeedProfiles(db)
	SeedGlobalVariables(db)
}

// ===============================
//  SEED ROLES
// ===============================

// SeedRoles menambahkan 4 role portal: superadmin, admin, dosen, mahasiswa.
func SeedRoles(db *gorm.DB) {
	var count int64
	db.Model(&model.Role{}).Count(&count)
	if count > 0 {
		log.Println("[SEEDER] Role sudah ada, skip seeding roles.")
		return
	}

	roles := []model.Role{
		{ID: uuid.New(), Name: model.RoleSuperadmin, Description: "Super administrator portal"},
		{ID: uuid.New(), Name: model.RoleAdmin, Description: "Admin pengelola magang"},
		{ID: uuid.New(), Name: model.RoleDosen, Description: "Dosen pembimbing"},
		{ID: uuid.New(), Name: model.RoleMahasiswa, Description: "Mahasiswa peserta magang"},
	}

	if err := db.Create(&roles).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed roles: %v", err)
	}

	log.Println("[SEEDER] Berhasil seed role: superadmin, admin, dosen, mahasiswa")
}

// ===============================
//  SEED USERS
// ===============================

// SeedUsers menambahkan user awal: superadmin, admin, 1 dosen, 2 mahasiswa.
func SeedUsers(db *gorm.DB) {
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count > 0 {
		log.Println("[SEEDER] User sudah ada, skip seeding.")
		return
	}

	var superRole, adminRole, dosenRole, mhsRole model.Role
	db.Where("name = ?", model.RoleSuperadmin).First(&superRole)
	db.Where("name = ?", model.RoleAdmin).First(&adminRole)
	db.Where("name = ?", model.RoleDosen).First(&dosenRole)
	db.Where("name = ?", model.RoleMahasiswa).First(&mhsRole)

	password := "123123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), 10)

	now := time.Now()

	users := []model.User{
		{
			ID:           uuid.New(),
			Username:     "superadmin",
			Email:        "superadmin@kampus.ac.id",
			PasswordHash: string(hash),
			FullName:     "Super Admin",
			RoleID:       superRole.ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New(),
			Username:     "admin",
			Email:        "admin@kampus.ac.id",
			PasswordHash: string(hash),
			FullName:     "Admin Magang",
			RoleID:       adminRole.ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New(),
			Username:     "dosen1",
			Email:        "dosen1@kampus.ac.id",
			PasswordHash: string(hash),
			FullName:     "Dosen Pembimbing",
			RoleID:       dosenRole.ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New(),
			Username:     "mahasiswa1",
			Email:        "mahasiswa1@kampus.ac.id",
			PasswordHash: string(hash),
			FullName:     "Mahasiswa Satu",
			RoleID:       mhsRole.ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New(),
			Username:     "mahasiswa2",
			Email:        "mahasiswa2@kampus.ac.id",
			PasswordHash: string(hash),
			FullName:     "Mahasiswa Dua",
			RoleID:       mhsRole.ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	if err := db.Create(&users).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed users: %v", err)
	}

	log.Println("[SEEDER] Berhasil seed 5 user awal, password: 123123")
}

// ===============================
//  SEED PROFILES
// ===============================

// SeedProfiles membuat profil dosen & mahasiswa yang terhubung ke user
// seed, dengan dosen1 sebagai pembimbing kedua mahasiswa, sehingga flow
// magang dan kelas bimbingan bisa langsung dicoba.
func SeedProfiles(db *gorm.DB) {
	var profileCount int64
	db.Model(&model.MahasiswaProfile{}).Count(&profileCount)
	if profileCount > 0 {
		log.Println("[SEEDER] Profil sudah ada, skip seeding profil.")
		return
	}

	var dosenUser, mhs1, mhs2, adminUser model.User
	if err := db.Where("username = ?", "dosen1").First(&dosenUser).Error; err != nil {
		log.Println("[SEEDER] User 'dosen1' tidak ditemukan, skip seeding profil.")
		return
	}
	if err := db.Where("username = ?", "mahasiswa1").First(&mhs1).Error; err != nil {
		log.Println("[SEEDER] User 'mahasiswa1' tidak ditemukan, skip seeding profil.")
		return
	}
	db.Where("username = ?", "mahasiswa2").First(&mhs2)
	db.Where("username = ?", "admin").First(&adminUser)

	now := time.Now()

	dosenProfile := model.DosenProfile{
		ID:             uuid.New(),
		UserID:         dosenUser.ID,
		EmployeeNumber: "198501012010121001",
		Department:     "Teknik Informatika",
		Expertise:      "Rekayasa Perangkat Lunak",
		CreatedAt:      now,
	}
	if err := db.Create(&dosenProfile).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal membuat profil dosen: %v", err)
	}

	adminProfile := model.AdminProfile{
		ID:             uuid.New(),
		UserID:         adminUser.ID,
		EmployeeNumber: "199001012015031002",
		Department:     "Bagian Akademik",
		CreatedAt:      now,
	}
	if err := db.Create(&adminProfile).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal membuat profil admin: %v", err)
	}

	students := []model.MahasiswaProfile{
		{
			ID:             uuid.New(),
			UserID:         mhs1.ID,
			StudentNumber:  "24060121120001",
			StudyProgram:   "Informatika",
			Semester:       6,
			AcademicStatus: model.AcademicAktif,
			AdvisorID:      &dosenUser.ID,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:             uuid.New(),
			UserID:         mhs2.ID,
			StudentNumber:  "24060121120002",
			StudyProgram:   "Informatika",
			Semester:       6,
			AcademicStatus: model.AcademicAktif,
			AdvisorID:      &dosenUser.ID,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
	if err := db.Create(&students).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal membuat profil mahasiswa: %v", err)
	}

	log.Println("[SEEDER] Berhasil seed profil dosen, admin, dan mahasiswa")
}

// ===============================
//  SEED GLOBAL VARIABLES
// ===============================

// SeedGlobalVariables mengisi konfigurasi dasar portal.
func SeedGlobalVariables(db *gorm.DB) {
	var count int64
	db.Model(&model.GlobalVariable{}).Count(&count)
	if count > 0 {
		log.Println("[SEEDER] Global variable sudah ada, skip seeding.")
		return
	}

	vars := []model.GlobalVariable{
		{ID: uuid.New(), Key: "portal_name", Value: "Portal Magang", Description: "Nama portal di halaman depan", Type: "string"},
		{ID: uuid.New(), Key: "academic_year", Value: "2025/2026", Description: "Tahun akademik berjalan", Type: "string"},
		{ID: uuid.New(), Key: "max_report_size_mb", Value: "10", Description: "Batas ukuran file laporan (MB)", Type: "int"},
	}

	if err := db.Create(&vars).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed global variables: %v", err)
	}

	log.Println("[SEEDER] Berhasil seed global variables")
}
