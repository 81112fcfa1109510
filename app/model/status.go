package model

// Status dan tipe di modul ini sengaja dibuat sebagai typed string,
// bukan string lepas, supaya himpunan transisinya jelas dan bisa dicek
// di satu tempat (Valid()).

// InternshipStatus adalah status pengajuan magang.
type InternshipStatus string

const (
	InternshipWaiting  InternshipStatus = "waiting"
	InternshipAccepted InternshipStatus = "accepted"
	InternshipRejected InternshipStatus = "rejected"
)

// Valid mengecek apakah status termasuk himpunan yang dikenal.
func (s InternshipStatus) Valid() bool {
	switch s {
	case InternshipWaiting, InternshipAccepted, InternshipRejected:
		return true
	}
	return false
}

// AllInternshipStatuses dipakai analytics untuk zero-fill map by_status.
func AllInternshipStatuses() []InternshipStatus {
	return []InternshipStatus{InternshipWaiting, InternshipAccepted, InternshipRejected}
}

// InternshipType adalah jenis program magang (KKL / KKN).
type InternshipType string

const (
	InternshipKKL InternshipType = "kkl"
	InternshipKKN InternshipType = "kkn"
)

func (t InternshipType) Valid() bool {
	return t == InternshipKKL || t == InternshipKKN
}

func AllInternshipTypes() []InternshipType {
	return []InternshipType{InternshipKKL, InternshipKKN}
}

// ReportStatus adalah status review laporan magang.
// approved bersifat terminal: laporan tidak bisa diubah/dihapus lagi.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportApproved ReportStatus = "approved"
	ReportRejected ReportStatus = "rejected"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportPending, ReportApproved, ReportRejected:
		return true
	}
	return false
}

func AllReportStatuses() []ReportStatus {
	return []ReportStatus{ReportPending, ReportApproved, ReportRejected}
}

// AttendanceMethod adalah cara presensi kelas bimbingan.
type AttendanceMethod string

const (
	AttendanceQR     AttendanceMethod = "qr"
	AttendanceManual AttendanceMethod = "manual"
)

// Nama role di tabel roles. Pengecekan otorisasi di handler memakai
// konstanta ini, bukan literal string.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleDosen      = "dosen"
	RoleMahasiswa  = "mahasiswa"
)

func AllRoles() []string {
	return []string{RoleSuperadmin, RoleAdmin, RoleDosen, RoleMahasiswa}
}

// Status akademik mahasiswa. Hanya mahasiswa Aktif yang diikutkan
// saat provisioning presensi kelas bimbingan.
const (
	AcademicAktif = "Aktif"
	AcademicCuti  = "Cuti"
	AcademicLulus = "Lulus"
)
