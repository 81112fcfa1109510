package service

import "errors"

// Sentinel error untuk seluruh workflow. Handler memetakan error ini ke
// kode HTTP: ErrNotFound→404, ErrForbidden→403, error aturan bisnis→409,
// error validasi→400.
var (
	ErrNotFound  = errors.New("data tidak ditemukan")
	ErrForbidden = errors.New("anda tidak berhak mengakses data ini")

	// Internship lifecycle
	ErrInvalidInternshipType   = errors.New("jenis magang harus kkl atau kkn")
	ErrInvalidInternshipStatus = errors.New("status magang tidak dikenal")
	ErrInternshipNotWaiting    = errors.New("pengajuan hanya bisa diubah selama status masih waiting")
	ErrAdvisorRequired         = errors.New("dosen pembimbing wajib diisi saat pengajuan diterima")
	ErrInternshipNotAccepted   = errors.New("aksi ini membutuhkan magang berstatus accepted")
	ErrInvalidProgress         = errors.New("progress harus di antara 0 dan 100")

	// Report workflow
	ErrReportApproved      = errors.New("laporan yang sudah approved tidak bisa diubah atau dihapus")
	ErrInvalidReportStatus = errors.New("status laporan tidak dikenal")
	ErrReviewNotesRequired = errors.New("catatan reviewer wajib diisi saat laporan ditolak")

	// Guidance class
	ErrAlreadyAttended = errors.New("mahasiswa sudah tercatat hadir di kelas ini")
	ErrNotEligible     = errors.New("mahasiswa tidak terdaftar pada kelas bimbingan ini")
	ErrInvalidQRToken  = errors.New("token presensi tidak valid")
)
