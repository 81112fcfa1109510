package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User merepresentasikan pengguna sistem (superadmin, admin, dosen, mahasiswa).
// Setiap user punya maksimal satu profil sesuai rolenya (mahasiswa/dosen/admin);
// eksklusivitasnya dijaga di application logic, bukan di schema.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username     string         `gorm:"unique;not null" json:"username"`
	Email        string         `gorm:"unique;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	FullName     string         `gorm:"not null" json:"fullName"`
	RoleID       uuid.UUID      `gorm:"type:uuid;not null" json:"roleId"`
	Role         Role           `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"role"`
	IsActive     bool           `gorm:"default:true" json:"isActive"`
	LastLoginAt  *time.Time     `json:"lastLoginAt"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Role menyimpan peran pengguna (superadmin, admin, dosen, mahasiswa).
type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// MahasiswaProfile menyimpan data akademik mahasiswa.
// AdvisorID adalah weak reference ke users.id milik dosen pembimbing
// (lookup saja, tanpa ownership); diisi admin saat pengajuan magang diterima.
type MahasiswaProfile struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	User           User       `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	StudentNumber  string     `gorm:"type:varchar(20);not null" json:"studentNumber"` // NIM
	StudyProgram   string     `gorm:"type:varchar(100)" json:"studyProgram"`
	Semester       int        `json:"semester"`
	AcademicStatus string     `gorm:"type:varchar(20);default:'Aktif'" json:"academicStatus"` // Aktif/Cuti/Lulus
	AdvisorID      *uuid.UUID `gorm:"type:uuid" json:"advisorId"`
	Advisor        *User      `gorm:"foreignKey:AdvisorID" json:"advisor,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// DosenProfile menyimpan data dosen (termasuk dosen pembimbing magang).
type DosenProfile struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	User           User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	EmployeeNumber string    `gorm:"unique;not null" json:"employeeNumber"` // NIP
	Department     string    `json:"department"`
	Expertise      string    `json:"expertise"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// AdminProfile menyimpan data tambahan untuk user admin.
type AdminProfile struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	User           User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	EmployeeNumber string    `json:"employeeNumber"`
	Department     string    `json:"department"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Internship adalah pengajuan magang milik satu mahasiswa.
// Lifecycle: dibuat mahasiswa (waiting, progress 0) -> admin mengubah ke
// accepted/rejected. Selama waiting mahasiswa masih boleh edit/hapus;
// setelah accepted data dikunci dan hanya progress yang bisa diubah admin.
type Internship struct {
	ID              uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"userId"`
	User            User             `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Type            InternshipType   `gorm:"type:varchar(10);not null" json:"type"` // kkl | kkn
	CompanyName     string           `gorm:"not null" json:"companyName"`
	CompanyAddress  string           `json:"companyAddress"`
	StartDate       time.Time        `json:"startDate"`
	EndDate         time.Time        `json:"endDate"`
	Status          InternshipStatus `gorm:"type:varchar(20);not null;default:'waiting'" json:"status"`
	Progress        int              `gorm:"default:0" json:"progress"` // 0-100, diisi admin setelah accepted
	ApplicationFile string           `json:"applicationFile"`
	CreatedAt       time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`
}

// Logbook adalah catatan kegiatan harian pada magang yang sudah accepted.
// SupervisorNotes hanya boleh diisi dosen pembimbing mahasiswa terkait.
type Logbook struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InternshipID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"internshipId"`
	Internship      Internship     `gorm:"foreignKey:InternshipID" json:"-"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	Date            time.Time      `gorm:"not null" json:"date"`
	Activities      string         `gorm:"type:text;not null" json:"activities"`
	SupervisorNotes *string        `gorm:"type:text" json:"supervisorNotes"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// Report adalah laporan magang berversi. Version unik dan naik monoton
// per internship (max existing + 1); approved bersifat terminal.
type Report struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InternshipID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_report_internship_version" json:"internshipId"`
	Internship    Internship     `gorm:"foreignKey:InternshipID" json:"-"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	Title         string         `gorm:"not null" json:"title"`
	ReportFile    string         `gorm:"not null" json:"reportFile"`
	Version       int            `gorm:"not null;uniqueIndex:idx_report_internship_version" json:"version"`
	Status        ReportStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ReviewerNotes *string        `gorm:"type:text" json:"reviewerNotes"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// GuidanceClass adalah kelas bimbingan yang dibuat dosen.
// QRToken dipakai untuk presensi via scan (token holder untuk URL presensi).
type GuidanceClass struct {
	ID          uuid.UUID                 `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LecturerID  uuid.UUID                 `gorm:"type:uuid;not null;index" json:"lecturerId"` // users.id milik dosen
	Lecturer    User                      `gorm:"foreignKey:LecturerID" json:"lecturer"`
	Title       string                    `gorm:"not null" json:"title"`
	Room        string                    `json:"room"`
	Description string                    `gorm:"type:text" json:"description"`
	StartDate   time.Time                 `json:"startDate"`
	EndDate     time.Time                 `json:"endDate"`
	QRToken     string                    `gorm:"index" json:"-"`
	Attendances []GuidanceClassAttendance `gorm:"foreignKey:GuidanceClassID" json:"attendances,omitempty"`
	CreatedAt   time.Time                 `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time                 `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt            `gorm:"index" json:"-"`
}

// GuidanceClassAttendance adalah baris presensi per (kelas, mahasiswa).
// Baris dibuat di muka untuk setiap mahasiswa eligible saat kelas dibuat;
// AttendedAt diisi belakangan via QR atau aksi manual dosen.
// Unique index komposit membuat provisioning idempotent.
type GuidanceClassAttendance struct {
	ID               uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	GuidanceClassID  uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_class_student" json:"guidanceClassId"`
	UserID           uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_class_student" json:"userId"`
	User             User              `gorm:"foreignKey:UserID" json:"user"`
	AttendedAt       *time.Time        `json:"attendedAt"`
	AttendanceMethod *AttendanceMethod `gorm:"type:varchar(10)" json:"attendanceMethod"` // qr | manual
	Notes            *string           `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Tutorial adalah materi panduan yang dikelola admin.
type Tutorial struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Content     string         `gorm:"type:text" json:"content"`
	FilePath    string         `json:"filePath"`
	AccessLevel string         `gorm:"type:varchar(20);default:'all'" json:"accessLevel"` // all | dosen | mahasiswa
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Faq adalah tanya-jawab yang tampil di halaman bantuan.
type Faq struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Question  string         `gorm:"not null" json:"question"`
	Answer    string         `gorm:"type:text;not null" json:"answer"`
	Category  string         `gorm:"type:varchar(50)" json:"category"`
	IsActive  bool           `gorm:"default:true" json:"isActive"`
	SortOrder int            `gorm:"default:0" json:"sortOrder"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// GlobalVariable adalah key-value konfigurasi portal yang dikelola admin.
type GlobalVariable struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Key         string         `gorm:"unique;not null" json:"key"`
	Value       string         `gorm:"type:text" json:"value"`
	Description string         `json:"description"`
	Type        string         `gorm:"type:varchar(20);default:'string'" json:"type"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
