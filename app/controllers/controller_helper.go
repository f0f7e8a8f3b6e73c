package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2/log"

	"github.com/planovida/planovida/app/models"
	"github.com/planovida/planovida/app/repository"
	"github.com/planovida/planovida/internal/pkg/balance"
	"github.com/planovida/planovida/internal/pkg/entitlements"
	"github.com/planovida/planovida/internal/pkg/jobqueue"
	"github.com/planovida/planovida/internal/pkg/statistics"
	"github.com/planovida/planovida/internal/pkg/usercontext"
)

const dateParamLayout = "2006-01-02"

// refreshPlanStats drops a plan's cached percentage and schedules an async
// recompute so the next stats read is warm again.
func refreshPlanStats(planID uint) {
	statistics.InvalidatePlanOverall(planID)
	if _, err := jobqueue.GetQueue().EnqueueRefreshPlanStats(planID); err != nil {
		log.Warnf("failed to enqueue stats refresh for plan %d: %v", planID, err)
	}
}

// jsonError is the generic error shape; policy denials use upgradeRequired
// instead so the client can route to an upsell flow.
func jsonError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}

func upgradeRequired(c *fiber.Ctx) error {
	return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
		"error":   "upgrade_required",
		"message": "Seu plano de assinatura não permite esta ação",
	})
}

func handlePolicyErr(c *fiber.Ctx, err error) error {
	if errors.Is(err, entitlements.ErrUpgradeRequired) {
		return upgradeRequired(c)
	}
	return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
}

// requirePlanOwnership loads a plan and verifies it belongs to the request
// user. Missing and foreign plans are indistinguishable to the caller.
func requirePlanOwnership(c *fiber.Ctx, planID uint) (*models.LifePlan, error) {
	plan, err := repository.GetGlobalRepositories().Plan.GetByID(planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jsonError(c, fiber.StatusNotFound, "not_found", "plano não encontrado")
		}
		return nil, jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	if plan.UserID != usercontext.GetUserID(c) {
		return nil, jsonError(c, fiber.StatusNotFound, "not_found", "plano não encontrado")
	}
	return plan, nil
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, jsonError(c, fiber.StatusBadRequest, "bad_request", "id inválido")
	}
	return uint(id), nil
}

// parsePeriodQuery reads the optional from/to query params shared by the
// stats and balance endpoints.
func parsePeriodQuery(c *fiber.Ctx) (balance.Period, error) {
	var p balance.Period
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(dateParamLayout, raw)
		if err != nil {
			return p, jsonError(c, fiber.StatusBadRequest, "bad_request", "parâmetro 'from' inválido, use AAAA-MM-DD")
		}
		p.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(dateParamLayout, raw)
		if err != nil {
			return p, jsonError(c, fiber.StatusBadRequest, "bad_request", "parâmetro 'to' inválido, use AAAA-MM-DD")
		}
		p.To = &t
	}
	return p, nil
}
