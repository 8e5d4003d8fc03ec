// file: internals/features/orphans/relatives/controller/residence_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	orphanModel "yatimku_backend/internals/features/orphans/orphans/model"
	"yatimku_backend/internals/features/orphans/relatives/dto"
)

/* ============================ RESIDENCES ============================ */

// GET /api/a/residences/:id
func (ctl *RelativesController) GetResidenceByID(c *fiber.Ctx) error {
	var row orphanModel.ResidenceInfoModel
	return ctl.firstByID(c, &row, "residence_id", "tempat tinggal")
}

// PATCH /api/a/residences/:id
func (ctl *RelativesController) UpdateResidence(c *fiber.Ctx) error {
	return ctl.partialUpdate(c, "residence_infos", "residence_id", dto.UpdatableResidenceFields, "tempat tinggal")
}
