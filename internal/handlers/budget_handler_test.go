package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"verde/internal/budget"
	apperrors "verde/internal/errors"
	"verde/internal/models"
	"verde/internal/services"
)

// --- mock budget service ---

type mockBudgetService struct {
	addBudgetFn         func(ctx context.Context, b models.Budget) (*models.Budget, error)
	updateBudgetFn      func(ctx context.Context, id string, patch models.BudgetPatch) error
	deleteBudgetFn      func(ctx context.Context, id string) error
	getBudgetFn         func(id string) (*models.Budget, error)
	listBudgetsFn       func() []models.Budget
	refreshBudgetsFn    func(ctx context.Context) (bool, error)
	getBudgetProgressFn func(id string) (*budget.Progress, error)
}

func (m *mockBudgetService) AddBudget(ctx context.Context, b models.Budget) (*models.Budget, error) {
	if m.addBudgetFn != nil {
		return m.addBudgetFn(ctx, b)
	}
	b.ID = "bud-1"
	return &b, nil
}

func (m *mockBudgetService) UpdateBudget(ctx context.Context, id string, patch models.BudgetPatch) error {
	if m.updateBudgetFn != nil {
		return m.updateBudgetFn(ctx, id, patch)
	}
	return nil
}

func (m *mockBudgetService) DeleteBudget(ctx context.Context, id string) error {
	if m.deleteBudgetFn != nil {
		return m.deleteBudgetFn(ctx, id)
	}
	return nil
}

func (m *mockBudgetService) GetBudget(id string) (*models.Budget, error) {
	if m.getBudgetFn != nil {
		return m.getBudgetFn(id)
	}
	return &models.Budget{ID: id}, nil
}

func (m *mockBudgetService) ListBudgets() []models.Budget {
	if m.listBudgetsFn != nil {
		return m.listBudgetsFn()
	}
	return []models.Budget{}
}

func (m *mockBudgetService) RefreshBudgets(ctx context.Context) (bool, error) {
	if m.refreshBudgetsFn != nil {
		return m.refreshBudgetsFn(ctx)
	}
	return false, nil
}

func (m *mockBudgetService) GetBudgetProgress(id string) (*budget.Progress, error) {
	if m.getBudgetProgressFn != nil {
		return m.getBudgetProgressFn(id)
	}
	return &budget.Progress{BudgetID: id}, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	r.POST("/budgets", handler.CreateBudget)
	r.GET("/budgets", handler.GetBudgets)
	r.POST("/budgets/refresh", handler.RefreshBudgets)
	r.GET("/budgets/:id", handler.GetBudget)
	r.PUT("/budgets/:id", handler.UpdateBudget)
	r.DELETE("/budgets/:id", handler.DeleteBudget)
	r.GET("/budgets/:id/progress", handler.GetBudgetProgress)
	return r
}

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockBudgetService{
			addBudgetFn: func(_ context.Context, b models.Budget) (*models.Budget, error) {
				b.ID = "bud-1"
				b.Spent = decimal.NewFromInt(80)
				return &b, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "POST", "/budgets", `{"category_id":"cat-food","limit":"500"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		b := parseJSON(t, rec)["budget"].(map[string]interface{})
		if b["limit"] != "500" {
			t.Errorf("expected limit 500, got %v", b["limit"])
		}
		if b["spent"] != "80" {
			t.Errorf("expected spent 80, got %v", b["spent"])
		}
	})

	t.Run("returns 400 on zero limit", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}))

		rec := doRequest(r, "POST", "/budgets", `{"category_id":"cat-food","limit":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on missing category", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}))

		rec := doRequest(r, "POST", "/budgets", `{"limit":"100"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_UpdateBudget(t *testing.T) {
	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockBudgetService{
			getBudgetFn: func(_ string) (*models.Budget, error) {
				return nil, apperrors.ErrBudgetNotFound
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "PUT", "/budgets/bud-404", `{"limit":"10"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BUDGET_NOT_FOUND")
	})

	t.Run("returns 400 on negative limit", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}))

		rec := doRequest(r, "PUT", "/budgets/bud-1", `{"limit":"-10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_RefreshBudgets(t *testing.T) {
	svc := &mockBudgetService{
		refreshBudgetsFn: func(_ context.Context) (bool, error) { return true, nil },
		listBudgetsFn: func() []models.Budget {
			return []models.Budget{{ID: "bud-1", CategoryID: "cat-food", Limit: decimal.NewFromInt(500), Spent: decimal.NewFromInt(200)}}
		},
	}
	r := setupBudgetRouter(NewBudgetHandler(svc))

	rec := doRequest(r, "POST", "/budgets/refresh", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["changed"] != true {
		t.Errorf("expected changed true, got %v", result["changed"])
	}
	if len(result["budgets"].([]interface{})) != 1 {
		t.Errorf("expected 1 budget, got %v", result["budgets"])
	}
}

func TestBudgetHandler_GetBudgetProgress(t *testing.T) {
	t.Run("returns the progress", func(t *testing.T) {
		svc := &mockBudgetService{
			getBudgetProgressFn: func(id string) (*budget.Progress, error) {
				return &budget.Progress{
					BudgetID:   id,
					Limit:      decimal.NewFromInt(100),
					Spent:      decimal.NewFromInt(150),
					Remaining:  decimal.Zero,
					Percentage: 100,
					Over:       true,
				}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "GET", "/budgets/bud-1/progress", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		progress := parseJSON(t, rec)["progress"].(map[string]interface{})
		if progress["over"] != true || progress["percentage"].(float64) != 100 {
			t.Errorf("unexpected progress: %v", progress)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockBudgetService{
			getBudgetProgressFn: func(_ string) (*budget.Progress, error) {
				return nil, apperrors.ErrBudgetNotFound
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "GET", "/budgets/bud-404/progress", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
