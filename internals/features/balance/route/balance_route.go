// file: internals/features/balance/route/balance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suscriptores_backend/internals/features/balance/controller"
	paymentController "suscriptores_backend/internals/features/payments/controller"
)

func BalanceRoutes(app *fiber.App, db *gorm.DB) {
	h := controller.NewBalanceHandler(db)
	ih := paymentController.NewIncomeHandler(db)

	g := app.Group("/balance")
	g.Get("/", h.General)
	g.Get("/by-date-range", h.ByDateRange)
	g.Get("/monthly", h.Monthly)
	g.Get("/by-subscriber", h.BySubscriber)
	g.Get("/incomes", ih.List)
}
