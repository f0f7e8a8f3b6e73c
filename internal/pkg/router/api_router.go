package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/planovida/planovida/app/controllers"
	"github.com/planovida/planovida/internal/pkg/constants"
	"github.com/planovida/planovida/internal/pkg/middleware"
	"github.com/planovida/planovida/internal/pkg/session"
)

type ApiRouter struct {
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	session.NewSessionStore()
	app.Use(middleware.UserContextMiddleware)

	api := app.Group(constants.APIRoute, limiter.New())

	v1 := api.Group(constants.APIV1Route)
	v1.Get("/stats", controllers.HandleGetInstanceStats)
	v1.Post("/login", controllers.HandleLogin)
	v1.Post("/logout", middleware.RequireAuth, controllers.HandleLogout)
	v1.Get("/me/capabilities", middleware.RequireAuth, controllers.HandleGetCapabilities)

	// Stats for the session's currently selected plan.
	me := v1.Group("/me", middleware.RequireAuth)
	me.Get("/stats", controllers.HandleGetPlanStats)
	me.Get("/stats/monthly", controllers.HandleGetMonthlyEvolution)
	me.Get("/summary", controllers.HandleGetAISummary)

	plans := v1.Group("/plans", middleware.RequireAuth)
	plans.Get("/", controllers.HandleListPlans)
	plans.Post("/", controllers.HandleCreatePlan)
	plans.Post("/import/preview", controllers.HandleImportPreview)
	plans.Get("/:id", controllers.HandleGetPlan)
	plans.Put("/:id", controllers.HandleUpdatePlan)
	plans.Delete("/:id", controllers.HandleDeletePlan)
	plans.Post("/:id/select", controllers.HandleSelectPlan)
	plans.Put("/:id/customizations", controllers.HandleSaveCustomizations)
	plans.Get("/:id/goals", controllers.HandleListGoals)
	plans.Post("/:id/goals", controllers.HandleCreateGoal)
	plans.Get("/:id/stats", controllers.HandleGetPlanStats)
	plans.Get("/:id/stats/monthly", controllers.HandleGetMonthlyEvolution)
	plans.Get("/:id/summary", controllers.HandleGetAISummary)
	plans.Get("/:id/notes", controllers.HandleListNotes)
	plans.Post("/:id/notes", controllers.HandleCreateNote)
	plans.Get("/:id/balances", controllers.HandleListBalanceNotes)
	plans.Post("/:id/balances", controllers.HandleCreateBalanceNote)

	goals := v1.Group("/goals", middleware.RequireAuth)
	goals.Put("/:id", controllers.HandleUpdateGoal)
	goals.Patch("/:id/toggle", controllers.HandleToggleGoal)
	goals.Delete("/:id", controllers.HandleDeleteGoal)

	notes := v1.Group("/notes", middleware.RequireAuth)
	notes.Delete("/:id", controllers.HandleDeleteNote)
}
