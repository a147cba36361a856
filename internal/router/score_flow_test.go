package router_test

import (
	"net/http"
	"testing"
)

func TestScoreFlow_BudgetAndSavings(t *testing.T) {
	app := setupApp(t)

	result := app.mustRequest(t, "POST", "/api/v1/budgets", `{"category_id":"cat-rent","limit":"100"}`, http.StatusCreated)
	budgetID := result["budget"].(map[string]interface{})["id"].(string)

	app.mustRequest(t, "POST", "/api/v1/transactions",
		`{"description":"Rent","amount":"150","date":"2024-03-05","category_id":"cat-rent","account_id":"acc-checking","type":"expense"}`,
		http.StatusCreated)

	// Spent is pulled from the transactions on refresh.
	progress := app.mustRequest(t, "GET", "/api/v1/budgets/"+budgetID+"/progress", "", http.StatusOK)["progress"].(map[string]interface{})
	if progress["spent"] != "0" {
		t.Errorf("expected spent 0 before refresh, got %v", progress["spent"])
	}

	result = app.mustRequest(t, "POST", "/api/v1/budgets/refresh", "", http.StatusOK)
	if result["changed"] != true {
		t.Errorf("expected the refresh to change spent")
	}
	progress = app.mustRequest(t, "GET", "/api/v1/budgets/"+budgetID+"/progress", "", http.StatusOK)["progress"].(map[string]interface{})
	if progress["spent"] != "150" || progress["over"] != true {
		t.Errorf("unexpected progress: %v", progress)
	}

	// Over one budget with no income this month: 500 - 50.
	user := app.mustRequest(t, "GET", "/api/v1/profile", "", http.StatusOK)["user"].(map[string]interface{})
	if user["score"].(float64) != 450 {
		t.Errorf("expected score 450, got %v", user["score"])
	}
	achievements := user["achievements"].([]interface{})
	if len(achievements) != 1 || achievements[0].(map[string]interface{})["id"] != "first-transaction" {
		t.Errorf("expected the first-transaction achievement, got %v", achievements)
	}

	// Income 1000 against 150 spent is a savings rate above one half.
	app.mustRequest(t, "POST", "/api/v1/transactions",
		`{"description":"Salary","amount":"1000","date":"2024-03-06","category_id":"cat-salary","account_id":"acc-checking","type":"income"}`,
		http.StatusCreated)
	breakdown := app.mustRequest(t, "GET", "/api/v1/profile/score", "", http.StatusOK)["score"].(map[string]interface{})
	if breakdown["total"].(float64) != 650 {
		t.Errorf("expected score 650, got %v", breakdown)
	}
	user = app.mustRequest(t, "GET", "/api/v1/profile", "", http.StatusOK)["user"].(map[string]interface{})
	if user["score"].(float64) != 650 {
		t.Errorf("expected the stored score to follow, got %v", user["score"])
	}
}

func TestScoreFlow_CompletedGoal(t *testing.T) {
	app := setupApp(t)

	result := app.mustRequest(t, "POST", "/api/v1/goals", `{"name":"Trip","target_amount":"1000","current_amount":"400"}`, http.StatusCreated)
	goalID := result["goal"].(map[string]interface{})["id"].(string)

	app.mustRequest(t, "PUT", "/api/v1/goals/"+goalID, `{"current_amount":"1000"}`, http.StatusOK)

	goals := app.mustRequest(t, "GET", "/api/v1/goals", "", http.StatusOK)["goals"].([]interface{})
	if goals[0].(map[string]interface{})["completed"] != true {
		t.Errorf("expected the goal to be completed, got %v", goals[0])
	}
	user := app.mustRequest(t, "GET", "/api/v1/profile", "", http.StatusOK)["user"].(map[string]interface{})
	if user["score"].(float64) != 540 {
		t.Errorf("expected score 540, got %v", user["score"])
	}
}

func TestProfileFlow_LoginLogout(t *testing.T) {
	app := setupApp(t)

	app.mustRequest(t, "POST", "/api/v1/auth/logout", "", http.StatusOK)
	rec := app.request("GET", "/api/v1/profile", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after logout, got %d", rec.Code)
	}

	// Ledger data survives the logout.
	if got := app.balance(t, "acc-checking"); got != "1000" {
		t.Errorf("expected checking 1000, got %s", got)
	}

	user := app.mustRequest(t, "POST", "/api/v1/auth/login", `{"name":"Ana","email":"ana@example.com"}`, http.StatusOK)["user"].(map[string]interface{})
	if user["name"] != "Ana" || user["plan"] != "basic" {
		t.Errorf("unexpected user: %v", user)
	}
	if user["score"].(float64) != 500 {
		t.Errorf("expected the base score, got %v", user["score"])
	}
}
