package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/planovida/planovida/internal/pkg/importer"
)

type importPreviewRequest struct {
	Rows []importer.Row `json:"rows"`
}

// HandleImportPreview runs the merge on externally-parsed rows without
// creating anything, so the client can show the resulting grid and the
// warnings before committing. The actual plan creation goes through
// HandleCreatePlan with the same rows.
func HandleImportPreview(c *fiber.Ctx) error {
	var req importPreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "corpo da requisição inválido")
	}

	res, err := importer.Merge(req.Rows)
	if err != nil {
		if errors.Is(err, importer.ErrNoValidRows) {
			return jsonError(c, fiber.StatusUnprocessableEntity, "validation", err.Error())
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"goals":    res.Goals,
		"warnings": res.Warnings,
		"summary":  importer.Summarize(res.Goals),
	})
}
