// file: internals/route/setup.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	balanceRoute "suscriptores_backend/internals/features/balance/route"
	expenseRoute "suscriptores_backend/internals/features/expenses/route"
	paymentRoute "suscriptores_backend/internals/features/payments/route"
	subscriberRoute "suscriptores_backend/internals/features/subscribers/route"
	authRoute "suscriptores_backend/internals/features/users/route"
	authMiddleware "suscriptores_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// identity is attached when a token is present; no ledger handler reads it
	app.Use(authMiddleware.Optional())

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up SubscriberRoutes...")
	subscriberRoute.SubscriberRoutes(app, db)

	log.Println("[INFO] Setting up PaymentRoutes...")
	paymentRoute.PaymentRoutes(app, db)

	log.Println("[INFO] Setting up ExpenseRoutes...")
	expenseRoute.ExpenseRoutes(app, db)

	log.Println("[INFO] Setting up BalanceRoutes...")
	balanceRoute.BalanceRoutes(app, db)
}
