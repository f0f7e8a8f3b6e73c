package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/planovida/planovida/app/repository"
	"github.com/planovida/planovida/internal/pkg/session"
	"github.com/planovida/planovida/internal/pkg/usercontext"
	"github.com/planovida/planovida/internal/pkg/utils"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin authenticates against the local user table and opens a
// session. Signup, activation mails and OAuth live in the external auth
// collaborator.
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "corpo da requisição inválido")
	}

	user, err := repository.GetGlobalRepositories().User.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "credenciais inválidas")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal", err.Error())
	}
	if !user.IsActive() || !user.CheckPassword(req.Password) {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "credenciais inválidas")
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", "sessão indisponível")
	}
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUsername, user.Name)
	sess.Set(usercontext.KeyIsAdmin, user.IsAdmin())
	if err := sess.Save(); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", "sessão indisponível")
	}

	now := time.Now()
	user.LastLoginAt = &now
	_ = repository.GetGlobalRepositories().User.Update(user)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user_id": user.ID,
		"name":    user.Name,
	})
}

// HandleLogout destroys the session, which also clears the current plan
// selection.
func HandleLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", "sessão indisponível")
	}
	if err := sess.Destroy(); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal", "sessão indisponível")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetCapabilities exposes the resolved capability set so the client
// gates its UI on one object instead of re-deriving tier booleans.
func HandleGetCapabilities(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	caps := userCtx.Capabilities()

	avatarURL := ""
	if user, err := repository.GetGlobalRepositories().User.GetByID(usercontext.GetUserID(c)); err == nil {
		avatarURL = utils.GetGravatarURL(user.Email, 80)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"tier":          userCtx.Tier,
		"avatar_url":    avatarURL,
		"is_admin":      userCtx.IsAdmin,
		"has_ai_access": caps.HasAIAccess,
		"report_depth":  caps.ReportDepth,
		"max_plans": fiber.Map{
			"individual": caps.MaxPlans("individual"),
			"familiar":   caps.MaxPlans("familiar"),
			"filho":      caps.MaxPlans("filho"),
		},
	})
}
