// file: internals/features/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suscriptores_backend/internals/features/payments/controller"
)

func PaymentRoutes(app *fiber.App, db *gorm.DB) {
	ph := controller.NewPaymentHandler(db)
	rh := controller.NewReceiptHandler(db)

	p := app.Group("/payments")
	p.Post("/", ph.Create)
	p.Get("/", ph.List)
	p.Get("/subscriber/:id", ph.ListBySubscriber)
	p.Get("/:id", ph.GetByID)
	p.Delete("/:id", ph.Delete)

	r := app.Group("/receipts")
	r.Get("/", rh.List)
	r.Get("/by-payment/:payment_id", rh.GetByPayment)
	r.Get("/by-number/:number", rh.GetByNumber)
	r.Get("/:id", rh.GetByID)
}
