// file: internals/features/orphans/relatives/controller/sibling_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "yatimku_backend/internals/helpers"

	"yatimku_backend/internals/features/orphans/relatives/dto"
	"yatimku_backend/internals/features/orphans/relatives/model"
)

/* ============================ SIBLINGS ============================ */

// GET /api/a/siblings?orphan_id=
func (ctl *RelativesController) GetAllSiblings(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.SiblingModel{})
	if oid := strings.TrimSpace(c.Query("orphan_id")); oid != "" {
		q = q.Where("sibling_orphan_id = ?", oid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count siblings: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sibling")
	}

	var rows []model.SiblingModel
	if err := q.Order("sibling_id ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list siblings: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sibling")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /api/a/siblings/:id
func (ctl *RelativesController) GetSiblingByID(c *fiber.Ctx) error {
	var row model.SiblingModel
	return ctl.firstByID(c, &row, "sibling_id", "sibling")
}

// PATCH /api/a/siblings/:id
// Kolom relasi (father/mother/guardian) sengaja TIDAK ada di allow-list:
// relasinya selalu warisan dari anak utama.
func (ctl *RelativesController) UpdateSibling(c *fiber.Ctx) error {
	return ctl.partialUpdate(c, "orphan_siblings", "sibling_id", dto.UpdatableSiblingFields, "sibling")
}

// DELETE /api/a/siblings/:id
func (ctl *RelativesController) DeleteSibling(c *fiber.Ctx) error {
	res := ctl.DB.Delete(&model.SiblingModel{}, "sibling_id = ?", c.Params("id"))
	if res.Error != nil {
		log.Printf("[ERROR] delete sibling: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data sibling")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data sibling tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Data sibling berhasil dihapus", fiber.Map{"id": c.Params("id")})
}
