// file: internals/features/documents/documents/controller/document_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "yatimku_backend/internals/helpers"

	"yatimku_backend/internals/features/documents/documents/dto"
	"yatimku_backend/internals/features/documents/documents/model"
)

type DocumentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDocumentController(db *gorm.DB, v *validator.Validate) *DocumentController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &DocumentController{DB: db, Validate: v}
}

// POST /api/a/documents (multipart: file + title + description? + orphan_id?)
// Dua fase: simpan file dulu, lalu insert row. Kalau insert gagal,
// file yang sudah ditulis dihapus lagi (best-effort).
func (ctl *DocumentController) Create(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Judul dokumen wajib diisi")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File dokumen wajib diunggah")
	}

	var orphanID *uint
	if v := strings.TrimSpace(c.FormValue("orphan_id")); v != "" {
		n, convErr := strconv.ParseUint(v, 10, 64)
		if convErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "orphan_id tidak valid")
		}
		id := uint(n)
		orphanID = &id
	}

	storedPath, err := helper.SaveUploadedFile(fh, helper.DocumentDir())
	if err != nil {
		log.Printf("[ERROR] simpan file dokumen: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan file dokumen")
	}

	var desc *string
	if v := strings.TrimSpace(c.FormValue("description")); v != "" {
		desc = &v
	}

	row := model.DocumentModel{
		DocumentUID:         uuid.New(),
		DocumentTitle:       title,
		DocumentDescription: desc,
		DocumentOrphanID:    orphanID,
		DocumentFileName:    fh.Filename,
		DocumentStoredPath:  storedPath,
		DocumentContentType: fh.Header.Get("Content-Type"),
		DocumentSizeBytes:   fh.Size,
	}
	if userID, uidErr := helper.GetUserIDFromToken(c); uidErr == nil {
		row.DocumentUploadedByID = &userID
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		helper.DeleteStoredFile(storedPath)
		log.Printf("[ERROR] create document: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan dokumen")
	}

	return helper.JsonCreated(c, "Dokumen berhasil diunggah", row)
}

// GET /api/a/documents?orphan_id=&q=
func (ctl *DocumentController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.DocumentModel{})
	if v := strings.TrimSpace(c.Query("orphan_id")); v != "" {
		q = q.Where("document_orphan_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("document_title ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count documents: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data dokumen")
	}

	var rows []model.DocumentModel
	if err := q.Order("document_id DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list documents: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data dokumen")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /api/a/documents/:id
func (ctl *DocumentController) GetByID(c *fiber.Ctx) error {
	var row model.DocumentModel
	if err := ctl.DB.First(&row, "document_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
		}
		log.Printf("[ERROR] get document: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data dokumen")
	}
	return helper.JsonOK(c, "", row)
}

// PATCH /api/a/documents/:id (metadata saja, bukan file)
func (ctl *DocumentController) Update(c *fiber.Ctx) error {
	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := helper.FilterAllowedFields(raw, dto.UpdatableDocumentFields)
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang bisa diubah")
	}

	res := ctl.DB.Model(&model.DocumentModel{}).
		Where("document_id = ?", c.Params("id")).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] update document: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah dokumen")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Dokumen berhasil diubah", fiber.Map{"document_id": c.Params("id")})
}

// DELETE /api/a/documents/:id — hapus row dulu, baru file (best-effort).
func (ctl *DocumentController) Delete(c *fiber.Ctx) error {
	var row model.DocumentModel
	if err := ctl.DB.First(&row, "document_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
		}
		log.Printf("[ERROR] get document: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data dokumen")
	}

	if err := ctl.DB.Delete(&row).Error; err != nil {
		log.Printf("[ERROR] delete document: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus dokumen")
	}

	helper.DeleteStoredFile(row.DocumentStoredPath)

	return helper.JsonDeleted(c, "Dokumen berhasil dihapus", fiber.Map{"document_id": row.DocumentID})
}
