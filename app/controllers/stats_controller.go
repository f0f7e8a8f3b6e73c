package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/planovida/planovida/app/models"
	"github.com/planovida/planovida/app/repository"
	"github.com/planovida/planovida/internal/pkg/aisummary"
	"github.com/planovida/planovida/internal/pkg/progress"
	"github.com/planovida/planovida/internal/pkg/session"
	"github.com/planovida/planovida/internal/pkg/statistics"
	"github.com/planovida/planovida/internal/pkg/usercontext"
)

// resolveStatsPlan picks the plan for a stats call and checks ownership:
// explicit :id param when present, otherwise the session's current plan
// selection. A stale selection is cleared when its plan no longer
// resolves, so follow-up calls fail fast with "nenhum plano selecionado".
func resolveStatsPlan(c *fiber.Ctx) (*models.LifePlan, error) {
	if c.Params("id") != "" {
		planID, err := parseIDParam(c, "id")
		if err != nil {
			return nil, err
		}
		return requirePlanOwnership(c, planID)
	}

	planID := session.GetCurrentPlanID(c)
	if planID == 0 {
		return nil, jsonError(c, fiber.StatusBadRequest, "bad_request", "nenhum plano selecionado")
	}
	plan, err := requirePlanOwnership(c, planID)
	if err != nil {
		if c.Response().StatusCode() == fiber.StatusNotFound {
			_ = session.ClearCurrentPlanID(c)
		}
		return nil, err
	}
	return plan, nil
}

func statsOptions(c *fiber.Ctx) (progress.Options, error) {
	period, err := parsePeriodQuery(c)
	if err != nil {
		return progress.Options{}, err
	}
	return progress.Options{
		Range:      progress.RangeFromDates(period.From, period.To),
		OnlyFilled: c.QueryBool("only_filled"),
	}, nil
}

// HandleGetPlanStats returns per-area stats, the overall percentage, the
// attention list and best/worst areas for one consistent goal snapshot.
func HandleGetPlanStats(c *fiber.Ctx) error {
	plan, err := resolveStatsPlan(c)
	if err != nil {
		return err
	}
	opts, err := statsOptions(c)
	if err != nil {
		return err
	}

	goals, err := repository.GetGlobalRepositories().Goal.GetByPlanIDInYearRange(plan.ID, opts.Range.Min, opts.Range.Max)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}

	stats := progress.ComputeAreaStats(goals, opts)
	classified := make([]fiber.Map, 0, len(stats))
	for _, s := range stats {
		classified = append(classified, fiber.Map{
			"area":       s.Area,
			"total":      s.Total,
			"completed":  s.Completed,
			"percentage": s.Percentage,
			"status":     progress.Classify(s),
		})
	}

	resp := fiber.Map{
		"areas":           classified,
		"overall":         progress.Overall(stats),
		"needs_attention": progress.NeedsAttention(stats),
	}
	if best, ok := progress.Best(stats); ok {
		resp["best_area"] = best.Area
	}
	if worst, ok := progress.Worst(stats); ok {
		resp["worst_area"] = worst.Area
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// HandleGetMonthlyEvolution returns the cumulative completion time series.
func HandleGetMonthlyEvolution(c *fiber.Ctx) error {
	plan, err := resolveStatsPlan(c)
	if err != nil {
		return err
	}
	opts, err := statsOptions(c)
	if err != nil {
		return err
	}

	goals, err := repository.GetGlobalRepositories().Goal.GetByPlanIDInYearRange(plan.ID, opts.Range.Min, opts.Range.Max)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"months": progress.MonthlyEvolution(goals, opts),
	})
}

// HandleGetAISummary generates (or assembles) the plan report, gated by the
// tier policy.
func HandleGetAISummary(c *fiber.Ctx) error {
	plan, err := resolveStatsPlan(c)
	if err != nil {
		return err
	}
	opts, err := statsOptions(c)
	if err != nil {
		return err
	}

	goals, err := repository.GetGlobalRepositories().Goal.GetByPlanIDInYearRange(plan.ID, opts.Range.Min, opts.Range.Max)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}

	stats := progress.ComputeAreaStats(goals, opts)
	in := aisummary.Input{
		PlanTitle: plan.Title,
		Stats:     stats,
		Overall:   progress.Overall(stats),
		Style:     aisummary.Style(c.Query("style", string(aisummary.StyleObjetivo))),
	}

	text, err := aisummary.NewGate(nil).Summarize(c.Context(), usercontext.GetUserContext(c).Capabilities(), in)
	if err != nil {
		return handlePolicyErr(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"summary": text})
}

// HandleGetInstanceStats serves the cached landing-page counters.
func HandleGetInstanceStats(c *fiber.Ctx) error {
	data := statistics.GetStatisticsData()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"total_plans": data.TotalPlans,
		"total_goals": data.TotalGoals,
	})
}
