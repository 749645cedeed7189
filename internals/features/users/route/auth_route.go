// file: internals/features/users/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suscriptores_backend/internals/features/users/controller"
	authMiddleware "suscriptores_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	h := controller.NewAuthHandler(db)

	g := app.Group("/auth")
	g.Post("/login", h.Login)
	g.Get("/me", authMiddleware.Required(), h.Me)
}
