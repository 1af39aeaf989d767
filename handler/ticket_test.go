package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"repair_shop/database"
	"repair_shop/model"

	"github.com/gofiber/fiber/v2"
)

func TestCreateTicket(t *testing.T) {
	app := setupApp(t)
	customer := mustCreateCustomer(t, "owner@example.com")

	resp, raw := doRequest(t, app, "POST", "/tickets/", fiber.Map{
		"vin":         "1HGCM82633A004352",
		"ticket_date": "2026-08-30",
		"customer_id": customer.ID,
	}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", resp.StatusCode, raw)
	}
	body := decodeMap(t, raw)
	if body["vin"] != "1HGCM82633A004352" {
		t.Errorf("vin = %v", body["vin"])
	}
	if body["ticket_date"] != "2026-08-30" {
		t.Errorf("ticket_date = %v, want 2026-08-30", body["ticket_date"])
	}

	// Unknown customer is a 404, not a creation.
	resp, _ = doRequest(t, app, "POST", "/tickets/", fiber.Map{
		"vin":         "VINX",
		"customer_id": 9999,
	}, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown customer status = %d, want 404", resp.StatusCode)
	}
}

func junctionCount(t *testing.T, table string, where string, args ...any) int64 {
	t.Helper()
	var count int64
	if err := database.DB.Table(table).Where(where, args...).Count(&count).Error; err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return count
}

func TestAssignMechanicIdempotent(t *testing.T) {
	app := setupApp(t)
	customer := mustCreateCustomer(t, "owner@example.com")
	ticket := mustCreateTicket(t, customer.ID, "VIN00001")
	mechanic := mustCreateMechanic(t, "Mech", "mech@example.com")

	path := fmt.Sprintf("/tickets/%d/assign-mechanic/%d", ticket.ID, mechanic.ID)
	for i := 0; i < 2; i++ {
		resp, raw := doRequest(t, app, "PUT", path, nil, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("assign #%d status = %d, want 200 (%s)", i+1, resp.StatusCode, raw)
		}
	}

	if got := junctionCount(t, "ticket_mechanic", "ticket_id = ? AND mechanic_id = ?", ticket.ID, mechanic.ID); got != 1 {
		t.Errorf("association rows = %d, want exactly 1 after double assign", got)
	}

	resp, _ := doRequest(t, app, "PUT", fmt.Sprintf("/tickets/%d/assign-mechanic/9999", ticket.ID), nil, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown mechanic status = %d, want 404", resp.StatusCode)
	}
}

func TestAssignMechanicRejectsBadIds(t *testing.T) {
	app := setupApp(t)
	customer := mustCreateCustomer(t, "owner@example.com")
	ticket := mustCreateTicket(t, customer.ID, "VIN00001")
	mechanic := mustCreateMechanic(t, "Mech", "mech@example.com")

	for _, path := range []string{
		fmt.Sprintf("/tickets/abc/assign-mechanic/%d", mechanic.ID),
		fmt.Sprintf("/tickets/%d/assign-mechanic/zero", ticket.ID),
		fmt.Sprintf("/tickets/%d/remove-mechanic/-1", ticket.ID),
	} {
		resp, _ := doRequest(t, app, "PUT", path, nil, "")
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("PUT %s status = %d, want 400", path, resp.StatusCode)
		}
	}

	if got := junctionCount(t, "ticket_mechanic", "ticket_id = ?", ticket.ID); got != 0 {
		t.Errorf("association rows = %d, want 0 after rejected requests", got)
	}
}

func TestRemoveMechanic(t *testing.T) {
	app := setupApp(t)
	customer := mustCreateCustomer(t, "owner@example.com")
	ticket := mustCreateTicket(t, customer.ID, "VIN00001")
	mechanic := mustCreateMechanic(t, "Mech", "mech@example.com")

	// Removing before assigning reports not-found.
	resp, _ := doRequest(t, app, "PUT", fmt.Sprintf("/tickets/%d/remove-mechanic/%d", ticket.ID, mechanic.ID), nil, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unassigned remove status = %d, want 404", resp.StatusCode)
	}

	doRequest(t, app, "PUT", fmt.Sprintf("/tickets/%d/assign-mechanic/%d", ticket.ID, mechanic.ID), nil, "")

	resp, raw := doRequest(t, app, "PUT", fmt.Sprintf("/tickets/%d/remove-mechanic/%d", ticket.ID, mechanic.ID), nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("remove status = %d, want 200 (%s)", resp.StatusCode, raw)
	}
	if got := junctionCount(t, "ticket_mechanic", "ticket_id = ?", ticket.ID); got != 0 {
		t.Errorf("association rows = %d, want 0 after remove", got)
	}
}

func TestBulkEditMechanics(t *testing.T) {
	app := setupApp(t)
	customer := mustCreateCustomer(t, "owner@example.com")
	ticket := mustCreateTicket(t, customer.ID, "VIN00001")
	keep := mustCreateMechanic(t, "Keep", "keep@example.com")
	drop := mustCreateMechanic(t, "Drop", "drop@example.com")

	doRequest(t, app, "PUT", fmt.Sprintf("/tickets/%d/assign-mechanic/%d", ticket.ID, drop.ID), nil, "")

	// Unknown ids in both lists are silently skipped.
	resp, raw := doRequest(t, app, "PUT", fmt.Sprintf("/tickets/%d", ticket.ID), fiber.Map{
		"add_mechanic_ids":    []uint{keep.ID, 999},
		"remove_mechanic_ids": []uint{drop.ID, 998},
	}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("bulk edit status = %d, want 200 (%s)", resp.StatusCode, raw)
	}

	if got := junctionCount(t, "ticket_mechanic", "ticket_id = ? AND mechanic_id = ?", ticket.ID, keep.ID); got != 1 {
		t.Errorf("added mechanic rows = %d, want 1", got)
	}
	if got := junctionCount(t, "ticket_mechanic", "ticket_id = ? AND mechanic_id = ?", ticket.ID, drop.ID); got != 0 {
		t.Errorf("removed mechanic rows = %d, want 0", got)
	}

	// Re-adding an assigned mechanic stays a single row.
	doRequest(t, app, "PUT", fmt.Sprintf("/tickets/%d", ticket.ID), fiber.Map{
		"add_mechanic_ids": []uint{keep.ID},
	}, "")
	if got := junctionCount(t, "ticket_mechanic", "ticket_id = ? AND mechanic_id = ?", ticket.ID, keep.ID); got != 1 {
		t.Errorf("idempotent bulk add rows = %d, want 1", got)
	}
}

func TestAddPartAccumulates(t *testing.T) {
	app := setupApp(t)
	customer := mustCreateCustomer(t, "owner@example.com")
	ticket := mustCreateTicket(t, customer.ID, "VIN00001")
	part := mustCreatePart(t, "oil-filter", 12.99)

	path := fmt.Sprintf("/tickets/%d/add-part", ticket.ID)
	resp, raw := doRequest(t, app, "POST", path, fiber.Map{"inventory_id": part.ID, "quantity": 2}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("first add status = %d, want 200 (%s)", resp.StatusCode, raw)
	}

	resp, raw = doRequest(t, app, "POST", path, fiber.Map{"inventory_id": part.ID, "quantity": 3}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("second add status = %d, want 200 (%s)", resp.StatusCode, raw)
	}
	if qty := decodeMap(t, raw)["quantity"].(float64); qty != 5 {
		t.Errorf("accumulated quantity = %v, want 5", qty)
	}

	var rows []model.TicketInventory
	database.DB.Where("ticket_id = ?", ticket.ID).Find(&rows)
	if len(rows) != 1 || rows[0].Quantity != 5 {
		t.Errorf("junction rows = %+v, want one row with quantity 5", rows)
	}

	// Quantity defaults to 1 when omitted.
	doRequest(t, app, "POST", path, fiber.Map{"inventory_id": part.ID}, "")
	database.DB.Where("ticket_id = ?", ticket.ID).Find(&rows)
	if rows[0].Quantity != 6 {
		t.Errorf("default-quantity add gave %d, want 6", rows[0].Quantity)
	}
}

func TestAddPartRejectsNonPositiveQuantity(t *testing.T) {
	app := setupApp(t)
	customer := mustCreateCustomer(t, "owner@example.com")
	ticket := mustCreateTicket(t, customer.ID, "VIN00001")
	part := mustCreatePart(t, "brake-pad", 54.50)

	for _, quantity := range []int{0, -3} {
		resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/tickets/%d/add-part", ticket.ID), fiber.Map{
			"inventory_id": part.ID,
			"quantity":     quantity,
		}, "")
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("quantity=%d status = %d, want 400", quantity, resp.StatusCode)
		}
	}

	resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/tickets/%d/add-part", ticket.ID), fiber.Map{
		"inventory_id": 9999,
	}, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown part status = %d, want 404", resp.StatusCode)
	}
}

func TestGetTicketMechanics(t *testing.T) {
	app := setupApp(t)
	customer := mustCreateCustomer(t, "owner@example.com")
	ticket := mustCreateTicket(t, customer.ID, "VIN00001")
	mechanic := mustCreateMechanic(t, "Mech", "mech@example.com")
	doRequest(t, app, "PUT", fmt.Sprintf("/tickets/%d/assign-mechanic/%d", ticket.ID, mechanic.ID), nil, "")

	resp, raw := doRequest(t, app, "GET", fmt.Sprintf("/tickets/%d/mechanics", ticket.ID), nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", resp.StatusCode, raw)
	}
	list := decodeList(t, raw)
	if len(list) != 1 || list[0]["email"] != "mech@example.com" {
		t.Errorf("mechanics = %v, want the assigned mechanic", list)
	}

	resp, _ = doRequest(t, app, "GET", "/tickets/9999/mechanics", nil, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown ticket status = %d, want 404", resp.StatusCode)
	}
}

func TestMyTickets(t *testing.T) {
	app := setupApp(t)
	owner := mustCreateCustomer(t, "owner@example.com")
	other := mustCreateCustomer(t, "other@example.com")
	mustCreateTicket(t, owner.ID, "VIN00001")
	mustCreateTicket(t, owner.ID, "VIN00002")
	mustCreateTicket(t, other.ID, "VIN00003")

	resp, raw := doRequest(t, app, "GET", "/tickets/my-tickets", nil, customerToken(t, owner.ID))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", resp.StatusCode, raw)
	}
	if got := len(decodeList(t, raw)); got != 2 {
		t.Errorf("my-tickets returned %d rows, want 2", got)
	}

	resp, _ = doRequest(t, app, "GET", "/tickets/my-tickets", nil, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("tokenless status = %d, want 401", resp.StatusCode)
	}

	mechanic := mustCreateMechanic(t, "Mech", "mech@example.com")
	resp, _ = doRequest(t, app, "GET", "/tickets/my-tickets", nil, mechanicToken(t, mechanic.ID))
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("mechanic-token status = %d, want 403", resp.StatusCode)
	}
}

func TestPatchTicket(t *testing.T) {
	app := setupApp(t)
	customer := mustCreateCustomer(t, "owner@example.com")
	ticket := mustCreateTicket(t, customer.ID, "OLDVIN")

	resp, raw := doRequest(t, app, "PATCH", fmt.Sprintf("/tickets/%d", ticket.ID), fiber.Map{
		"vin": "NEWVIN",
	}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", resp.StatusCode, raw)
	}
	if decodeMap(t, raw)["vin"] != "NEWVIN" {
		t.Error("patch did not apply the vin change")
	}

	resp, _ = doRequest(t, app, "PATCH", fmt.Sprintf("/tickets/%d", ticket.ID), fiber.Map{}, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty patch status = %d, want 400", resp.StatusCode)
	}

	resp, _ = doRequest(t, app, "PATCH", "/tickets/9999", fiber.Map{"vin": "X"}, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown ticket status = %d, want 404", resp.StatusCode)
	}
}

func TestTicketQR(t *testing.T) {
	app := setupApp(t)
	customer := mustCreateCustomer(t, "owner@example.com")
	ticket := mustCreateTicket(t, customer.ID, "VIN00001")

	resp, raw := doRequest(t, app, "GET", fmt.Sprintf("/tickets/%d/qr", ticket.ID), nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q, want image/png", ct)
	}
	if len(raw) == 0 {
		t.Error("expected PNG bytes in the response")
	}
}

func TestGetTickets(t *testing.T) {
	app := setupApp(t)
	customer := mustCreateCustomer(t, "owner@example.com")
	mustCreateTicket(t, customer.ID, "VIN00001")
	mustCreateTicket(t, customer.ID, "VIN00002")

	resp, raw := doRequest(t, app, "GET", "/tickets/", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", resp.StatusCode, raw)
	}
	if got := len(decodeList(t, raw)); got != 2 {
		t.Errorf("tickets list returned %d rows, want 2", got)
	}
}
