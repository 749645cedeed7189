// file: internals/features/balance/controller/balance_controller_test.go
package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "suscriptores_backend/internals/databases"
	expenseModel "suscriptores_backend/internals/features/expenses/model"
	paymentModel "suscriptores_backend/internals/features/payments/model"
	subscriberModel "suscriptores_backend/internals/features/subscribers/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	h := NewBalanceHandler(db)
	g := app.Group("/balance")
	g.Get("/", h.General)
	g.Get("/by-date-range", h.ByDateRange)
	g.Get("/monthly", h.Monthly)
	g.Get("/by-subscriber", h.BySubscriber)
	return app, db
}

// seeder builds income rows with the full subscriber → payment → income chain
// behind each one, since an income cannot exist without its payment.
type seeder struct {
	t  *testing.T
	db *gorm.DB
	n  int
}

func (s *seeder) income(amount, date string) {
	s.t.Helper()
	s.n++
	d, err := time.Parse("2006-01-02", date)
	require.NoError(s.t, err)

	sub := subscriberModel.Subscriber{
		SubscriberContractNumber:   fmt.Sprintf("SEED-%03d", s.n),
		SubscriberNationalID:       fmt.Sprintf("SEED-NID-%03d", s.n),
		SubscriberFullName:         fmt.Sprintf("Seed Subscriber %d", s.n),
		SubscriberSubscriptionDate: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(s.t, s.db.Create(&sub).Error)

	v := decimal.RequireFromString(amount)
	p := paymentModel.Payment{
		PaymentSubscriberID: sub.SubscriberID,
		PaymentMonth:        1,
		PaymentYear:         2024,
		PaymentDate:         d,
		PaymentValue:        v,
		PaymentMethod:       paymentModel.PaymentMethodCash,
		PaymentCashAmount:   &v,
	}
	require.NoError(s.t, s.db.Create(&p).Error)

	require.NoError(s.t, s.db.Create(&paymentModel.Income{
		IncomePaymentID: p.PaymentID,
		IncomeAmount:    v,
		IncomeDate:      d,
		IncomeOrigin:    "Payment from subscriber: " + sub.SubscriberFullName,
	}).Error)
}

func (s *seeder) expense(value, date string) {
	s.t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(s.t, err)
	require.NoError(s.t, s.db.Create(&expenseModel.Expense{
		ExpenseType:        "maintenance",
		ExpenseDescription: "Pipe repair",
		ExpenseValue:       decimal.RequireFromString(value),
		ExpenseDate:        d,
	}).Error)
}

// seedSubscribersWithPayments creates three subscribers: the first has one
// payment of 45.00, the second two payments totalling 120.00, the third none.
// Returns their contract numbers in creation order.
func seedSubscribersWithPayments(t *testing.T, db *gorm.DB) []string {
	t.Helper()
	contracts := []string{"C-001", "C-002", "C-003"}
	var ids []uint
	for i, contract := range contracts {
		sub := subscriberModel.Subscriber{
			SubscriberContractNumber:   contract,
			SubscriberNationalID:       fmt.Sprintf("NID-%d", i),
			SubscriberFullName:         fmt.Sprintf("Subscriber %d", i+1),
			SubscriberSubscriptionDate: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, db.Create(&sub).Error)
		ids = append(ids, sub.SubscriberID)
	}

	pay := func(subscriberID uint, month int, value string) {
		v := decimal.RequireFromString(value)
		require.NoError(t, db.Create(&paymentModel.Payment{
			PaymentSubscriberID: subscriberID,
			PaymentMonth:        month,
			PaymentYear:         2024,
			PaymentDate:         time.Date(2024, time.Month(month), 10, 0, 0, 0, 0, time.UTC),
			PaymentValue:        v,
			PaymentMethod:       paymentModel.PaymentMethodCash,
			PaymentCashAmount:   &v,
		}).Error)
	}
	pay(ids[0], 1, "45.00")
	pay(ids[1], 1, "70.00")
	pay(ids[1], 2, "50.00")

	return contracts
}

func getJSON(t *testing.T, app *fiber.App, target string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	return resp, parsed
}

func dec(t *testing.T, v any) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(fmt.Sprintf("%v", v))
	require.NoError(t, err)
	return d
}

func TestBalanceGeneral(t *testing.T) {
	app, db := newTestApp(t)

	s := &seeder{t: t, db: db}
	s.income("100.00", "2024-01-10")
	s.income("50.50", "2024-02-10")
	s.expense("30.25", "2024-01-20")

	resp, body := getJSON(t, app, "/balance/")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.True(t, dec(t, data["total_income"]).Equal(decimal.RequireFromString("150.50")))
	assert.True(t, dec(t, data["total_expense"]).Equal(decimal.RequireFromString("30.25")))
	assert.True(t, dec(t, data["net"]).Equal(decimal.RequireFromString("120.25")))
}

func TestBalanceGeneral_EmptyLedgerIsZero(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := getJSON(t, app, "/balance/")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.True(t, dec(t, data["total_income"]).IsZero())
	assert.True(t, dec(t, data["total_expense"]).IsZero())
	assert.True(t, dec(t, data["net"]).IsZero())
}

func TestBalanceByDateRange(t *testing.T) {
	app, db := newTestApp(t)

	s := &seeder{t: t, db: db}
	s.income("100.00", "2024-01-01")
	s.income("200.00", "2024-01-31")
	s.income("400.00", "2024-02-01")
	s.expense("10.00", "2024-01-15")
	s.expense("20.00", "2024-02-15")

	// both bounds inclusive
	resp, body := getJSON(t, app, "/balance/by-date-range?date_from=2024-01-01&date_to=2024-01-31")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.True(t, dec(t, data["total_income"]).Equal(decimal.RequireFromString("300.00")))
	assert.True(t, dec(t, data["total_expense"]).Equal(decimal.RequireFromString("10.00")))
	assert.True(t, dec(t, data["net"]).Equal(decimal.RequireFromString("290.00")))

	// disjoint ranges add up to the whole
	_, feb := getJSON(t, app, "/balance/by-date-range?date_from=2024-02-01&date_to=2024-02-29")
	_, all := getJSON(t, app, "/balance/by-date-range?date_from=2024-01-01&date_to=2024-02-29")
	janNet := dec(t, data["net"])
	febNet := dec(t, feb["data"].(map[string]any)["net"])
	allNet := dec(t, all["data"].(map[string]any)["net"])
	assert.True(t, janNet.Add(febNet).Equal(allNet))
}

func TestBalanceByDateRange_BadInput(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := getJSON(t, app, "/balance/by-date-range?date_from=not-a-date&date_to=2024-01-31")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = getJSON(t, app, "/balance/by-date-range?date_from=2024-01-01")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = getJSON(t, app, "/balance/by-date-range?date_from=2024-02-01&date_to=2024-01-01")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBalanceMonthly(t *testing.T) {
	app, db := newTestApp(t)

	s := &seeder{t: t, db: db}
	s.income("100.00", "2024-03-05")
	s.income("50.00", "2024-03-28")
	s.expense("40.00", "2024-03-10")
	s.income("999.00", "2023-03-05") // other year, must not leak in

	resp, body := getJSON(t, app, "/balance/monthly?year=2024")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.EqualValues(t, 2024, data["year"])
	months := data["months"].([]any)
	require.Len(t, months, 12)

	march := months[2].(map[string]any)
	assert.EqualValues(t, 3, march["month"])
	assert.True(t, dec(t, march["total_income"]).Equal(decimal.RequireFromString("150.00")))
	assert.True(t, dec(t, march["total_expense"]).Equal(decimal.RequireFromString("40.00")))
	assert.True(t, dec(t, march["net"]).Equal(decimal.RequireFromString("110.00")))

	april := months[3].(map[string]any)
	assert.True(t, dec(t, april["total_income"]).IsZero(), "quiet months come back zero-filled")

	resp, _ = getJSON(t, app, "/balance/monthly")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBalanceBySubscriber(t *testing.T) {
	app, db := newTestApp(t)

	subs := seedSubscribersWithPayments(t, db)

	resp, body := getJSON(t, app, "/balance/by-subscriber")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rows := body["data"].([]any)
	require.Len(t, rows, 2, "subscribers without payments are omitted")

	first := rows[0].(map[string]any)
	second := rows[1].(map[string]any)
	assert.Equal(t, subs[1], first["subscriber_contract_number"], "biggest payer first")
	assert.True(t, dec(t, first["total_paid"]).Equal(decimal.RequireFromString("120.00")))
	assert.EqualValues(t, 2, first["payment_count"])
	assert.Equal(t, subs[0], second["subscriber_contract_number"])
	assert.True(t, dec(t, second["total_paid"]).Equal(decimal.RequireFromString("45.00")))
}
