package utils

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Storage menyimpan file upload ke public disk lokal dengan path relatif
// yang bisa ditebak (internship_applications/..., internships/{id}/reports/...,
// tutorials/...). Path relatif itulah yang disimpan di database.
type Storage struct {
	BaseDir string
}

// NewStorage membuat storage berbasis direktori lokal.
// Direktori dibuat saat pertama kali dipakai, bukan di constructor.
func NewStorage(baseDir string) *Storage {
	if baseDir == "" {
		baseDir = "storage/public"
	}
	return &Storage{BaseDir: baseDir}
}

// Save menyimpan file upload ke relDir dan mengembalikan path relatifnya.
// Nama file diganti uuid + ekstensi asli supaya tidak tabrakan.
func (s *Storage) Save(ctx *gin.Context, file *multipart.FileHeader, relDir string) (string, error) {
	name := uuid.New().String() + filepath.Ext(file.Filename)
	relPath := filepath.Join(relDir, name)
	absPath := filepath.Join(s.BaseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", err
	}
	if err := ctx.SaveUploadedFile(file, absPath); err != nil {
		return "", err
	}
	return relPath, nil
}

// Delete menghapus file dari disk. Best effort: error diabaikan karena
// kegagalan hapus file tidak boleh menggagalkan penghapusan record.
func (s *Storage) Delete(relPath string) {
	if relPath == "" {
		return
	}
	_ = os.Remove(filepath.Join(s.BaseDir, relPath))
}

// Exists mengecek apakah file masih ada di disk.
func (s *Storage) Exists(relPath string) bool {
	if relPath == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.BaseDir, relPath))
	return err == nil
}
