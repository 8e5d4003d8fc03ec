// file: internals/helpers/storage.go
package helper

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/google/uuid"

	"yatimku_backend/internals/configs"
)

// Kategori lampiran per anak; dipakai sebagai nama subfolder.
var AttachmentCategories = map[string]bool{
	"photos":       true,
	"certificates": true,
	"medical":      true,
	"other":        true,
}

func IsValidAttachmentCategory(cat string) bool {
	return AttachmentCategories[cat]
}

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameRe.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename: tanggal + uuid + nama asli yang sudah disanitasi
func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s-%s-%s", timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

// OrphanAttachmentDir: <UPLOAD_DIR>/orphans/<uid>/<category>/
func OrphanAttachmentDir(orphanUID, category string) string {
	return filepath.Join(configs.UploadDir, "orphans", orphanUID, category)
}

// DocumentDir: folder flat untuk dokumen umum
func DocumentDir() string {
	return filepath.Join(configs.UploadDir, "documents")
}

// SaveUploadedFile menulis multipart file ke dir tujuan dengan nama acak.
// Mengembalikan path relatif thd UPLOAD_DIR (yang disimpan di DB).
func SaveUploadedFile(fh *multipart.FileHeader, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file upload: %w", err)
	}
	defer src.Close()

	filename := GenerateUniqueFilename(fh.Filename)
	fullPath := filepath.Join(destDir, filename)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("gagal menulis file upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("gagal menyalin file upload: %w", err)
	}

	rel, err := filepath.Rel(configs.UploadDir, fullPath)
	if err != nil {
		return fullPath, nil
	}
	return rel, nil
}

// SaveBytes menulis hasil olahan (mis. webp) ke dir tujuan.
func SaveBytes(data []byte, destDir, filename string) (string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}
	fullPath := filepath.Join(destDir, filename)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("gagal menulis file: %w", err)
	}
	rel, err := filepath.Rel(configs.UploadDir, fullPath)
	if err != nil {
		return fullPath, nil
	}
	return rel, nil
}

// DeleteStoredFile: kompensasi best-effort. Gagal hapus hanya dilog,
// tidak pernah menimpa error asal pemanggil.
func DeleteStoredFile(relPath string) {
	if relPath == "" {
		return
	}
	fullPath := relPath
	if !filepath.IsAbs(relPath) {
		fullPath = filepath.Join(configs.UploadDir, relPath)
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] gagal hapus file %s: %v", fullPath, err)
	}
}

// DeleteOrphanFiles menghapus seluruh folder lampiran milik satu anak (saat row dihapus).
func DeleteOrphanFiles(orphanUID string) {
	dir := filepath.Join(configs.UploadDir, "orphans", orphanUID)
	if err := os.RemoveAll(dir); err != nil {
		log.Printf("[WARN] gagal hapus folder %s: %v", dir, err)
	}
}
