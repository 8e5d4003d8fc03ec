// file: internals/features/orphans/orphans/controller/orphan_photo_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "yatimku_backend/internals/helpers"

	"yatimku_backend/internals/features/orphans/orphans/model"
)

/* ============================ UPLOAD LAMPIRAN ============================ */

// POST /api/a/orphans/:id/attachments/:category
// Kategori: photos | certificates | medical | other.
// Foto dikompres ke webp dulu; kategori lain disimpan apa adanya.
func (ctl *OrphanController) UploadAttachment(c *fiber.Ctx) error {
	id := c.Params("id")
	category := strings.ToLower(strings.TrimSpace(c.Params("category")))

	if !helper.IsValidAttachmentCategory(category) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kategori lampiran tidak dikenal")
	}

	var orphan model.OrphanModel
	if err := ctl.DB.First(&orphan, "orphan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data anak tidak ditemukan")
		}
		log.Printf("[ERROR] get orphan %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	fh, err := c.FormFile("file")
	if err != nil || fh == nil || fh.Size == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak ditemukan di form field 'file'")
	}

	destDir := helper.OrphanAttachmentDir(orphan.OrphanUID.String(), category)

	var relPath string
	if category == "photos" {
		data, filename, convErr := helper.ConvertToWebP(fh)
		if convErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, convErr.Error())
		}
		relPath, err = helper.SaveBytes(data, destDir, filename)
	} else {
		relPath, err = helper.SaveUploadedFile(fh, destDir)
	}
	if err != nil {
		log.Printf("[ERROR] simpan lampiran orphan %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan file")
	}

	return helper.JsonCreated(c, "Lampiran berhasil diunggah", fiber.Map{
		"orphan_id": orphan.OrphanID,
		"category":  category,
		"file_path": relPath,
	})
}
