package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/planovida/planovida/internal/pkg/billing"
	"github.com/planovida/planovida/internal/pkg/database"
	"github.com/planovida/planovida/internal/pkg/entitlements"
	"github.com/planovida/planovida/internal/pkg/session"
	"github.com/planovida/planovida/internal/pkg/usercontext"
)

// UserContextMiddleware sets up the complete user context for every request.
// This centralizes session handling so controllers consume one context
// object instead of reading session keys themselves.
func UserContextMiddleware(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
			IsLoggedIn: false,
			IsAdmin:    false,
		})
		return c.Next()
	}

	userID := sess.Get(usercontext.KeyUserID)
	if userID == nil {
		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
			IsLoggedIn: false,
			IsAdmin:    false,
		})
		return c.Next()
	}

	username := session.GetSessionValue(c, usercontext.KeyUsername)
	isAdmin := sess.Get(usercontext.KeyIsAdmin)

	// Resolve the subscription tier with a session-first strategy: the
	// billing tables are only consulted once per session.
	tier := entitlements.NormalizeTier(session.GetSessionValue(c, usercontext.KeyTier))
	if tier == entitlements.TierNone && sess.Get(usercontext.KeyTier) == nil {
		if db := database.GetDB(); db != nil {
			resolved, err := billing.NewServiceFromDB(db).ResolveTierForUser(context.Background(), userID.(uint))
			if err == nil {
				tier = resolved
			}
		}
		_ = session.SetSessionValue(c, usercontext.KeyTier, string(tier))
	}

	userCtx := usercontext.UserContext{
		UserID:     userID.(uint),
		Username:   username,
		IsLoggedIn: true,
		IsAdmin:    isAdmin != nil && isAdmin.(bool),
		Tier:       tier,
	}
	c.Locals(usercontext.KeyUserContext, userCtx)

	return c.Next()
}
