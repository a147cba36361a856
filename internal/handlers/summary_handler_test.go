package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"verde/internal/models"
	"verde/internal/services"
)

// --- mock summary service ---

type mockSummaryService struct {
	getDashboardFn    func(month string) (*services.DashboardSummary, error)
	availableMonthsFn func() []string
}

func (m *mockSummaryService) GetDashboard(month string) (*services.DashboardSummary, error) {
	if m.getDashboardFn != nil {
		return m.getDashboardFn(month)
	}
	return &services.DashboardSummary{Month: month}, nil
}

func (m *mockSummaryService) AvailableMonths() []string {
	if m.availableMonthsFn != nil {
		return m.availableMonthsFn()
	}
	return []string{}
}

var _ services.SummaryServicer = (*mockSummaryService)(nil)

type stubStateReader struct {
	state *models.State
}

func (s stubStateReader) State() *models.State { return s.state }

var _ services.StateReader = stubStateReader{}

func setupSummaryRouter(handler *SummaryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/dashboard", handler.GetDashboard)
	r.GET("/dashboard/months", handler.GetMonths)
	r.GET("/state", handler.GetState)
	return r
}

func TestSummaryHandler_GetDashboard(t *testing.T) {
	t.Run("passes the month through", func(t *testing.T) {
		var gotMonth string
		svc := &mockSummaryService{
			getDashboardFn: func(month string) (*services.DashboardSummary, error) {
				gotMonth = month
				return &services.DashboardSummary{Month: month, MonthIncome: decimal.NewFromInt(1500)}, nil
			},
		}
		r := setupSummaryRouter(NewSummaryHandler(svc, stubStateReader{}))

		rec := doRequest(r, "GET", "/dashboard?month=2024-02", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotMonth != "2024-02" {
			t.Errorf("expected 2024-02, got %q", gotMonth)
		}
		dashboard := parseJSON(t, rec)["dashboard"].(map[string]interface{})
		if dashboard["month_income"] != "1500" {
			t.Errorf("expected month income 1500, got %v", dashboard["month_income"])
		}
	})

	t.Run("returns 400 on malformed month", func(t *testing.T) {
		r := setupSummaryRouter(NewSummaryHandler(&mockSummaryService{}, stubStateReader{}))

		rec := doRequest(r, "GET", "/dashboard?month=2024-2", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestSummaryHandler_GetMonths(t *testing.T) {
	svc := &mockSummaryService{
		availableMonthsFn: func() []string { return []string{"2024-03", "2024-01"} },
	}
	r := setupSummaryRouter(NewSummaryHandler(svc, stubStateReader{}))

	rec := doRequest(r, "GET", "/dashboard/months", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	months := parseJSON(t, rec)["months"].([]interface{})
	if len(months) != 2 || months[0] != "2024-03" {
		t.Errorf("unexpected months: %v", months)
	}
}

func TestSummaryHandler_GetState(t *testing.T) {
	state := &models.State{
		Accounts: []models.Account{{ID: "acc-checking", Name: "Checking", Type: models.AccountTypeBank, Balance: decimal.NewFromInt(1000)}},
	}
	r := setupSummaryRouter(NewSummaryHandler(&mockSummaryService{}, stubStateReader{state: state}))

	rec := doRequest(r, "GET", "/state", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	accounts := parseJSON(t, rec)["accounts"].([]interface{})
	if len(accounts) != 1 {
		t.Errorf("expected 1 account, got %v", accounts)
	}
}
