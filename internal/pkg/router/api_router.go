package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/ecoexplore/EcoExplore/app/controllers"
	"github.com/ecoexplore/EcoExplore/internal/pkg/middleware"
	"github.com/ecoexplore/EcoExplore/internal/pkg/security"
)

type ApiRouter struct {
	tokens security.TokenConfig
}

func NewApiRouter(tokens security.TokenConfig) *ApiRouter {
	return &ApiRouter{tokens: tokens}
}

func (h *ApiRouter) InstallRouter(app *fiber.App) {
	authController := controllers.NewAuthController(h.tokens)
	requireAuth := middleware.BearerAuthMiddleware(h.tokens)

	// Public: credential endpoints only, rate limited.
	auth := app.Group("/auth", limiter.New(limiter.Config{Max: 30}))
	auth.Post("/register", authController.HandleRegister)
	auth.Post("/login", authController.HandleLogin)
	auth.Delete("/logout", requireAuth, authController.HandleLogout)
	auth.Get("/me", requireAuth, authController.HandleMe)

	sightings := app.Group("/sightings", requireAuth)
	sightings.Post("/", controllers.HandleCreateSighting)
	sightings.Get("/", controllers.HandleGetSightings)
	sightings.Get("/my_sightings", controllers.HandleGetMySightings)
	sightings.Post("/updateState", controllers.HandleUpdateSightingState)
	sightings.Get("/invasive", middleware.RequireAdmin, controllers.HandleGetInvasiveSightings)
	sightings.Put("/:id/mark_invasive", middleware.RequireAdmin, controllers.HandleMarkInvasive)

	ecosystems := app.Group("/ecosystems", requireAuth)
	ecosystems.Get("/", controllers.HandleGetEcosystems)
	ecosystems.Get("/:id", controllers.HandleGetEcosystem)
	ecosystems.Post("/", middleware.RequireAdmin, controllers.HandleCreateEcosystem)
	ecosystems.Patch("/:id", middleware.RequireAdmin, controllers.HandleUpdateEcosystem)
	ecosystems.Delete("/:id", middleware.RequireAdmin, controllers.HandleDeleteEcosystem)

	// Route names kept from the original API client.
	species := app.Group("/species", requireAuth)
	species.Get("/getSpecies", controllers.HandleGetSpecies)
	species.Post("/createSpecies", middleware.RequireAdmin, controllers.HandleCreateSpecie)
	species.Post("/updateSpecies", middleware.RequireAdmin, controllers.HandleUpdateSpecie)
	species.Delete("/deleteSpecies/:id", middleware.RequireAdmin, controllers.HandleDeleteSpecie)

	typeSpecie := app.Group("/type_specie", requireAuth)
	typeSpecie.Get("/index", controllers.HandleGetSpecieTypes)
	typeSpecie.Delete("/:id", middleware.RequireAdmin, controllers.HandleDeleteSpecieType)

	user := app.Group("/user", requireAuth)
	user.Get("/getUsers", middleware.RequireAdmin, controllers.HandleGetUsers)
	user.Delete("/deleteUser/:id", middleware.RequireAdmin, controllers.HandleDeleteUser)
	user.Get("/profile", controllers.HandleGetProfile)
	user.Patch("/profile", controllers.HandleUpdateProfile)
	user.Patch("/profile_photo", controllers.HandleUpdateProfilePhoto)

	userSpecies := app.Group("/user_species", requireAuth)
	userSpecies.Get("/my_contributed_species", controllers.HandleMyContributedSpecies)
	userSpecies.Get("/all_contributed_species", controllers.HandleAllContributedSpecies)
}
