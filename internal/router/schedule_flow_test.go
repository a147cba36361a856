package router_test

import (
	"net/http"
	"testing"
)

func TestScheduleFlow_PayMonthly(t *testing.T) {
	app := setupApp(t)

	result := app.mustRequest(t, "POST", "/api/v1/schedules",
		`{"description":"Rent","amount":"1200","date":"2024-01-15","frequency":"monthly","category_id":"cat-rent","account_id":"acc-checking","type":"expense"}`,
		http.StatusCreated)
	scheduleID := result["schedule"].(map[string]interface{})["id"].(string)

	agenda := app.mustRequest(t, "GET", "/api/v1/schedules", "", http.StatusOK)["schedules"].([]interface{})
	if len(agenda) != 1 || agenda[0].(map[string]interface{})["status"] != "overdue" {
		t.Fatalf("expected one overdue schedule, got %v", agenda)
	}

	result = app.mustRequest(t, "POST", "/api/v1/schedules/"+scheduleID+"/pay", "", http.StatusCreated)
	tx := result["transaction"].(map[string]interface{})
	if tx["description"] != "Payment: Rent" {
		t.Errorf("expected Payment: Rent, got %v", tx["description"])
	}
	if tx["date"] != "2024-03-10" {
		t.Errorf("expected the payment dated today, got %v", tx["date"])
	}
	if got := app.balance(t, "acc-checking"); got != "-200" {
		t.Errorf("expected checking -200, got %s", got)
	}

	result = app.mustRequest(t, "GET", "/api/v1/schedules/"+scheduleID, "", http.StatusOK)
	if next := result["schedule"].(map[string]interface{})["date"]; next != "2024-02-15" {
		t.Errorf("expected next due 2024-02-15, got %v", next)
	}
}

func TestScheduleFlow_PayOnceRemoves(t *testing.T) {
	app := setupApp(t)

	result := app.mustRequest(t, "POST", "/api/v1/schedules",
		`{"description":"Insurance","amount":"90","date":"2024-03-12","frequency":"once","account_id":"acc-card","type":"expense"}`,
		http.StatusCreated)
	scheduleID := result["schedule"].(map[string]interface{})["id"].(string)

	app.mustRequest(t, "POST", "/api/v1/schedules/"+scheduleID+"/pay", "", http.StatusCreated)

	rec := app.request("GET", "/api/v1/schedules/"+scheduleID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected the one-off schedule to be gone, got %d", rec.Code)
	}
	if got := app.balance(t, "acc-card"); got != "-90" {
		t.Errorf("expected card -90, got %s", got)
	}
}
