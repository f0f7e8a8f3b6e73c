package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/planovida/planovida/app/models"
	"github.com/planovida/planovida/app/repository"
	"github.com/planovida/planovida/internal/pkg/areas"
	"github.com/planovida/planovida/internal/pkg/usercontext"
)

// HandleListGoals returns a plan's goal snapshot, optionally filtered to
// one area via ?area=.
func HandleListGoals(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := requirePlanOwnership(c, planID); err != nil {
		return err
	}

	repos := repository.GetGlobalRepositories()
	var goals []models.Goal
	if raw := c.Query("area"); raw != "" {
		area := areas.Area(raw)
		if !areas.IsValid(area) {
			return jsonError(c, fiber.StatusBadRequest, "bad_request", "área inválida")
		}
		goals, err = repos.Goal.GetByPlanIDAndArea(planID, area)
	} else {
		goals, err = repos.Goal.GetByPlanID(planID)
	}
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"goals": goals})
}

type createGoalRequest struct {
	PeriodYear int    `json:"period_year"`
	Age        int    `json:"age"`
	Area       string `json:"area"`
	GoalText   string `json:"goal_text"`
}

// HandleCreateGoal adds one goal to an existing plan. Extra goals beyond
// the generated grid are allowed; (plan, year, area) is not unique.
func HandleCreateGoal(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := requirePlanOwnership(c, planID); err != nil {
		return err
	}

	var req createGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "corpo da requisição inválido")
	}
	area := areas.Area(req.Area)
	if !areas.IsValid(area) {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", "área inválida")
	}

	goal := &models.Goal{
		PlanID:     planID,
		UserID:     usercontext.GetUserID(c),
		PeriodYear: req.PeriodYear,
		Age:        req.Age,
		Area:       area,
		GoalText:   req.GoalText,
	}
	if err := repository.GetGlobalRepositories().Goal.Create(goal); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	refreshPlanStats(planID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"goal": goal})
}

type updateGoalRequest struct {
	GoalText *string `json:"goal_text"`
}

// HandleUpdateGoal edits a goal's text.
func HandleUpdateGoal(c *fiber.Ctx) error {
	goal, err := requireGoalOwnership(c)
	if err != nil {
		return err
	}

	var req updateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "corpo da requisição inválido")
	}
	if req.GoalText != nil {
		goal.GoalText = *req.GoalText
	}
	if err := repository.GetGlobalRepositories().Goal.Update(goal); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	refreshPlanStats(goal.PlanID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"goal": goal})
}

type toggleGoalRequest struct {
	IsCompleted bool `json:"is_completed"`
}

// HandleToggleGoal flips a goal's completion flag. Only the boolean
// transition is tracked; there is no completion timestamp.
func HandleToggleGoal(c *fiber.Ctx) error {
	goal, err := requireGoalOwnership(c)
	if err != nil {
		return err
	}

	var req toggleGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "corpo da requisição inválido")
	}
	if err := repository.GetGlobalRepositories().Goal.SetCompleted(goal.ID, req.IsCompleted); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	goal.IsCompleted = req.IsCompleted
	refreshPlanStats(goal.PlanID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"goal": goal})
}

// HandleDeleteGoal removes one goal.
func HandleDeleteGoal(c *fiber.Ctx) error {
	goal, err := requireGoalOwnership(c)
	if err != nil {
		return err
	}
	if err := repository.GetGlobalRepositories().Goal.Delete(goal.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	refreshPlanStats(goal.PlanID)

	return c.SendStatus(fiber.StatusNoContent)
}

func requireGoalOwnership(c *fiber.Ctx) (*models.Goal, error) {
	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	goal, err := repository.GetGlobalRepositories().Goal.GetByID(goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jsonError(c, fiber.StatusNotFound, "not_found", "objetivo não encontrado")
		}
		return nil, jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	if goal.UserID != usercontext.GetUserID(c) {
		return nil, jsonError(c, fiber.StatusNotFound, "not_found", "objetivo não encontrado")
	}
	return goal, nil
}
