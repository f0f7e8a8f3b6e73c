package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/planovida/planovida/app/models"
	"github.com/planovida/planovida/app/repository"
	"github.com/planovida/planovida/internal/pkg/areas"
	"github.com/planovida/planovida/internal/pkg/balance"
	"github.com/planovida/planovida/internal/pkg/usercontext"
)

type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Area    string `json:"area"`
}

// HandleCreateNote stores a plain note on a plan.
func HandleCreateNote(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := requirePlanOwnership(c, planID); err != nil {
		return err
	}

	var req createNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "corpo da requisição inválido")
	}
	if strings.TrimSpace(req.Title) == "" {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", "título é obrigatório")
	}

	note := &models.Note{
		PlanID:  planID,
		UserID:  usercontext.GetUserID(c),
		Title:   req.Title,
		Content: req.Content,
	}
	if req.Area != "" {
		area := areas.Area(req.Area)
		if !areas.IsValid(area) {
			return jsonError(c, fiber.StatusUnprocessableEntity, "validation", "área inválida")
		}
		note.Area = &area
	}
	if err := repository.GetGlobalRepositories().Note.Create(note); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"note": note})
}

// HandleCreateBalanceNote stores a reflection note tagged with the period
// label derived from the from/to query params. The tag is the only linkage
// between note and period.
func HandleCreateBalanceNote(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := requirePlanOwnership(c, planID); err != nil {
		return err
	}
	period, err := parsePeriodQuery(c)
	if err != nil {
		return err
	}

	var req createNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "corpo da requisição inválido")
	}
	if strings.TrimSpace(req.Title) == "" {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", "título é obrigatório")
	}

	note := &models.Note{
		PlanID:  planID,
		UserID:  usercontext.GetUserID(c),
		Title:   balance.TagTitle(period, req.Title),
		Content: req.Content,
	}
	if err := repository.GetGlobalRepositories().Note.Create(note); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"note":         note,
		"period_label": period.Label(),
	})
}

// HandleListBalanceNotes returns the balance notes of a period: exact tag
// prefix for a concrete range, any balance note otherwise. Titles come back
// stripped for display.
func HandleListBalanceNotes(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := requirePlanOwnership(c, planID); err != nil {
		return err
	}
	period, err := parsePeriodQuery(c)
	if err != nil {
		return err
	}

	notes, err := repository.GetGlobalRepositories().Note.GetByPlanIDAndTitlePrefix(planID, balance.TagPrefix(period))
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}

	out := make([]fiber.Map, 0, len(notes))
	for _, n := range notes {
		out = append(out, fiber.Map{
			"id":         n.ID,
			"title":      balance.StripTag(n.Title),
			"content":    n.Content,
			"area":       n.Area,
			"created_at": n.CreatedAt,
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"notes":        out,
		"period_label": period.Label(),
	})
}

// HandleListNotes returns all notes of a plan, tagged or not.
func HandleListNotes(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := requirePlanOwnership(c, planID); err != nil {
		return err
	}

	notes, err := repository.GetGlobalRepositories().Note.GetByPlanID(planID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"notes": notes})
}

// HandleDeleteNote removes one note.
func HandleDeleteNote(c *fiber.Ctx) error {
	noteID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	note, err := repository.GetGlobalRepositories().Note.GetByID(noteID)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "nota não encontrada")
	}
	if note.UserID != usercontext.GetUserID(c) {
		return jsonError(c, fiber.StatusNotFound, "not_found", "nota não encontrada")
	}
	if err := repository.GetGlobalRepositories().Note.Delete(note.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}
