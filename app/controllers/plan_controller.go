package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/planovida/planovida/app/models"
	"github.com/planovida/planovida/app/repository"
	"github.com/planovida/planovida/internal/pkg/areas"
	"github.com/planovida/planovida/internal/pkg/importer"
	"github.com/planovida/planovida/internal/pkg/metrics/counter"
	"github.com/planovida/planovida/internal/pkg/planner"
	"github.com/planovida/planovida/internal/pkg/session"
	"github.com/planovida/planovida/internal/pkg/statistics"
	"github.com/planovida/planovida/internal/pkg/usercontext"
)

type customizationInput struct {
	AreaID      string `json:"area_id"`
	CustomLabel string `json:"custom_label"`
	CustomColor string `json:"custom_color"`
}

type createPlanRequest struct {
	Title      string `json:"title"`
	Motto      string `json:"motto"`
	PlanType   string `json:"plan_type"`
	MemberName string `json:"member_name"`
	HasPhoto   bool   `json:"has_photo"`

	// Grid parameters; ignored when Rows is present and Blend is false.
	StartYear  int  `json:"start_year"`
	StartAge   int  `json:"start_age"`
	YearsToAdd int  `json:"years_to_add"`
	Blend      bool `json:"blend"`

	// Externally-parsed import rows; when set the plan starts from the
	// merged import instead of (or blended with) the generated grid.
	Rows []importer.Row `json:"rows"`

	Customizations []customizationInput `json:"customizations"`
}

// HandleCreatePlan validates, checks the tier quota and the per-owner title
// uniqueness, then creates the plan with its goal set and customizations.
// Validation failures surface before any write.
func HandleCreatePlan(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	repos := repository.GetGlobalRepositories()

	var req createPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "corpo da requisição inválido")
	}

	plan := &models.LifePlan{
		UserID:     userCtx.UserID,
		Title:      req.Title,
		Motto:      req.Motto,
		PlanType:   req.PlanType,
		MemberName: req.MemberName,
	}
	if req.HasPhoto {
		plan.PhotoRef = uuid.New().String()
	}
	if err := plan.Validate(); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", err.Error())
	}

	// Advisory quota gate; the persistence layer is the authority.
	existing, err := repos.Plan.CountByUserIDAndType(userCtx.UserID, plan.PlanType)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	if err := userCtx.Capabilities().CheckPlanQuota(plan.PlanType, int(existing)); err != nil {
		return handlePolicyErr(c, err)
	}

	taken, err := repos.Plan.TitleExists(userCtx.UserID, plan.Title)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	if taken {
		return jsonError(c, fiber.StatusConflict, "validation", "já existe um plano com este título")
	}

	goals, warnings, err := buildInitialGoals(req)
	if err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", err.Error())
	}

	if err := repos.Plan.Create(plan); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	for i := range goals {
		goals[i].PlanID = plan.ID
		goals[i].UserID = userCtx.UserID
	}
	if err := repos.Goal.CreateBatch(goals); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	if err := saveCustomizations(plan.ID, req.Customizations); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}

	resp := fiber.Map{
		"plan":       plan,
		"goal_count": len(goals),
		"summary":    importer.Summarize(goals),
	}
	if len(warnings) > 0 {
		resp["warnings"] = warnings
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func buildInitialGoals(req createPlanRequest) ([]models.Goal, []string, error) {
	if len(req.Rows) == 0 {
		return planner.BuildSkeleton(req.StartYear, req.StartAge, req.YearsToAdd), nil, nil
	}

	res, err := importer.Merge(req.Rows)
	if err != nil {
		return nil, nil, err
	}
	if req.Blend {
		skeleton := planner.BuildSkeleton(req.StartYear, req.StartAge, req.YearsToAdd)
		return importer.Blend(skeleton, res.Goals), res.Warnings, nil
	}
	return res.Goals, res.Warnings, nil
}

func saveCustomizations(planID uint, inputs []customizationInput) error {
	if inputs == nil {
		return nil
	}
	rows := make([]models.AreaCustomization, 0, len(inputs))
	for _, in := range inputs {
		area := areas.Area(in.AreaID)
		if !areas.IsValid(area) {
			continue
		}
		rows = append(rows, models.AreaCustomization{
			AreaID:      area,
			CustomLabel: in.CustomLabel,
			CustomColor: in.CustomColor,
		})
	}
	return repository.GetGlobalRepositories().Customization.SaveAll(planID, rows)
}

// HandleListPlans returns the request user's plans.
func HandleListPlans(c *fiber.Ctx) error {
	plans, err := repository.GetGlobalRepositories().Plan.GetByUserID(usercontext.GetUserID(c))
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"plans": plans})
}

// HandleGetPlan returns one plan with its resolved area labels/colors.
func HandleGetPlan(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	plan, err := requirePlanOwnership(c, planID)
	if err != nil {
		return err
	}

	rows, err := repository.GetGlobalRepositories().Customization.GetByPlanID(plan.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	custom := models.CustomizationMap(rows)

	// Best effort; the counter is flushed to the database in the background.
	_ = counter.AddPlanView(plan.ID)

	resolved := make([]fiber.Map, 0, 7)
	for _, area := range areas.All() {
		resolved = append(resolved, fiber.Map{
			"area_id": area,
			"label":   areas.Label(area, custom),
			"color":   areas.Color(area, custom),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"plan":  plan,
		"areas": resolved,
	})
}

type updatePlanRequest struct {
	Title      string `json:"title"`
	Motto      string `json:"motto"`
	MemberName string `json:"member_name"`
}

// HandleUpdatePlan renames/edits a plan. The title uniqueness check excludes
// the plan's own id.
func HandleUpdatePlan(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	plan, err := requirePlanOwnership(c, planID)
	if err != nil {
		return err
	}

	var req updatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "corpo da requisição inválido")
	}

	if req.Title != "" {
		plan.Title = req.Title
	}
	if req.Motto != "" {
		plan.Motto = req.Motto
	}
	if req.MemberName != "" {
		plan.MemberName = req.MemberName
	}
	if err := plan.Validate(); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", err.Error())
	}

	taken, err := repository.GetGlobalRepositories().Plan.TitleExistsExceptID(plan.UserID, plan.Title, plan.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	if taken {
		return jsonError(c, fiber.StatusConflict, "validation", "já existe um plano com este título")
	}

	if err := repository.GetGlobalRepositories().Plan.Update(plan); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"plan": plan})
}

// deletePlanCascade removes a plan's dependents (goals, customizations,
// notes) before the plan row itself, so nothing is left unreachable behind
// the soft-deleted plan.
func deletePlanCascade(repos *repository.Repositories, planID uint) error {
	if err := repos.Goal.DeleteByPlanID(planID); err != nil {
		return err
	}
	if err := repos.Customization.DeleteByPlanID(planID); err != nil {
		return err
	}
	if err := repos.Note.DeleteByPlanID(planID); err != nil {
		return err
	}
	return repos.Plan.Delete(planID)
}

// HandleDeletePlan removes a plan with its goals, customizations and notes.
func HandleDeletePlan(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	plan, err := requirePlanOwnership(c, planID)
	if err != nil {
		return err
	}

	if err := deletePlanCascade(repository.GetGlobalRepositories(), plan.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}

	if session.GetCurrentPlanID(c) == plan.ID {
		_ = session.ClearCurrentPlanID(c)
	}
	statistics.InvalidatePlanOverall(plan.ID)

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSelectPlan stores the plan selection in the session; stats
// endpoints fall back to it when no plan id is given.
func HandleSelectPlan(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := requirePlanOwnership(c, planID); err != nil {
		return err
	}
	if err := session.SetCurrentPlanID(c, planID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", "sessão indisponível")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSaveCustomizations is the batch "save all customizations" call,
// replacing the plan's whole customization set at once.
func HandleSaveCustomizations(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := requirePlanOwnership(c, planID); err != nil {
		return err
	}

	var inputs []customizationInput
	if err := c.BodyParser(&inputs); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "corpo da requisição inválido")
	}
	if err := saveCustomizations(planID, inputs); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}
