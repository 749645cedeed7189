// file: internals/features/expenses/route/expense_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suscriptores_backend/internals/features/expenses/controller"
)

func ExpenseRoutes(app *fiber.App, db *gorm.DB) {
	h := controller.NewExpenseHandler(db)

	g := app.Group("/expenses")
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
