package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"suscriptores_backend/internals/configs"
	expenseModel "suscriptores_backend/internals/features/expenses/model"
	paymentModel "suscriptores_backend/internals/features/payments/model"
	subscriberModel "suscriptores_backend/internals/features/subscribers/model"
	userModel "suscriptores_backend/internals/features/users/model"
)

var DB *gorm.DB

// ConnectDB opens the ledger store. DB_DRIVER selects the backend:
// "postgres" (default) or "sqlite" for the portable single-file build.
func ConnectDB() {
	driver := configs.GetEnv("DB_DRIVER", "postgres")

	var (
		db  *gorm.DB
		err error
	)

	switch driver {
	case "sqlite":
		path := configs.GetEnv("DB_PATH", "suscriptores.db")
		log.Printf("🔌 Opening SQLite database at %s ...", path)
		// cascades depend on the foreign-keys pragma, applied per connection
		db, err = gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
			Logger: configs.NewGormLogger(),
		})
	default:
		log.Println("🔌 Connecting to PostgreSQL ...")
		sslmode := configs.GetEnv("DB_SSLMODE", "require")
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=suscriptores&options=-c statement_timeout=3000",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_NAME"),
			sslmode,
		)
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // plays nice with PgBouncer transaction pooling
		}), &gorm.Config{
			Logger: configs.NewGormLogger(),
		})
	}

	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates the five ledger tables plus the auth users table.
// Constraint enforcement (unique indexes, checks, ON DELETE CASCADE FKs)
// lives in the model tags, so the DDL carries the invariants.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.User{},
		&subscriberModel.Subscriber{},
		&paymentModel.Payment{},
		&paymentModel.Receipt{},
		&paymentModel.Income{},
		&expenseModel.Expense{},
	)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
