// file: internals/features/subscribers/route/subscriber_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suscriptores_backend/internals/features/subscribers/controller"
)

func SubscriberRoutes(app *fiber.App, db *gorm.DB) {
	h := controller.NewSubscriberHandler(db)

	g := app.Group("/subscribers")
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/by-contract/:contract_number", h.GetByContract)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
