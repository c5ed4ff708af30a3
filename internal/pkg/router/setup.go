package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ecoexplore/EcoExplore/internal/pkg/env"
	"github.com/ecoexplore/EcoExplore/internal/pkg/security"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

// InstallRouter wires all route groups. The token config is assembled here
// and injected into the auth controller and middleware.
func InstallRouter(app *fiber.App) {
	tokens := security.TokenConfig{
		Secret: env.GetEnv("JWT_SECRET", ""),
		TTL:    24 * time.Hour,
	}
	setup(app, NewApiRouter(tokens))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
