package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/tasktracker/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. Registration and
// login are the only operations outside the auth middleware; every task
// and user route requires a verified bearer token.
func Register(app *fiber.App, auth *handlers.AuthHandler, users *handlers.UserHandler, tasks *handlers.TaskHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	t := v1.Group("/tasks", authMW)
	t.Post("/", tasks.Create)
	t.Get("/", tasks.List)
	t.Get("/:id", tasks.GetByID)
	t.Put("/:id", tasks.Update)
	t.Delete("/:id", tasks.Delete)

	u := v1.Group("/users", authMW)
	u.Get("/me", users.Me)
	u.Delete("/me", users.DeleteMe)
}
