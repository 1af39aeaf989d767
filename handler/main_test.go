package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"repair_shop/constants"
	"repair_shop/database"
	"repair_shop/helper"
	"repair_shop/model"
	"repair_shop/router"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp wires a fresh Fiber app against an isolated in-memory database.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	os.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db

	app := fiber.New()
	router.SetupRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any, token string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()
	return resp, raw
}

func decodeMap(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("decode object: %v (%s)", err, raw)
	}
	return m
}

func decodeList(t *testing.T, raw []byte) []map[string]any {
	t.Helper()
	var l []map[string]any
	if err := json.Unmarshal(raw, &l); err != nil {
		t.Fatalf("decode array: %v (%s)", err, raw)
	}
	return l
}

func mustCreateCustomer(t *testing.T, email string) model.Customer {
	t.Helper()
	hash, err := helper.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	customer := model.Customer{Name: "Test Customer", Email: email, Phone: "5551234567", Password: hash}
	if err := database.DB.Create(&customer).Error; err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return customer
}

func mustCreateMechanic(t *testing.T, name, email string) model.Mechanic {
	t.Helper()
	hash, err := helper.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	mechanic := model.Mechanic{Name: name, Email: email, Phone: "5559876543", Salary: 50000, Password: hash}
	if err := database.DB.Create(&mechanic).Error; err != nil {
		t.Fatalf("create mechanic: %v", err)
	}
	return mechanic
}

func mustCreateTicket(t *testing.T, customerId uint, vin string) model.Ticket {
	t.Helper()
	ticket := model.Ticket{Vin: vin, CustomerId: customerId}
	if err := database.DB.Create(&ticket).Error; err != nil {
		t.Fatalf("create ticket: %v", err)
	}
	return ticket
}

func mustCreatePart(t *testing.T, name string, price float64) model.Inventory {
	t.Helper()
	part := model.Inventory{Name: name, Price: price, Sku: name + "-sku"}
	if err := database.DB.Create(&part).Error; err != nil {
		t.Fatalf("create part: %v", err)
	}
	return part
}

func customerToken(t *testing.T, id uint) string {
	t.Helper()
	token, err := helper.GenerateToken(id, constants.ROLE_CUSTOMER)
	if err != nil {
		t.Fatalf("generate customer token: %v", err)
	}
	return token
}

func mechanicToken(t *testing.T, id uint) string {
	t.Helper()
	token, err := helper.GenerateToken(id, constants.ROLE_MECHANIC)
	if err != nil {
		t.Fatalf("generate mechanic token: %v", err)
	}
	return token
}
