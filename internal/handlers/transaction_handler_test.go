package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "verde/internal/errors"
	"verde/internal/models"
	"verde/internal/pagination"
	"verde/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	addTransactionFn     func(ctx context.Context, tx models.Transaction) (*models.Transaction, error)
	importTransactionsFn func(ctx context.Context, txs []models.Transaction) ([]models.Transaction, error)
	updateTransactionFn  func(ctx context.Context, id string, patch models.TransactionPatch) error
	deleteTransactionFn  func(ctx context.Context, id string) error
	getTransactionFn     func(id string) (*models.Transaction, error)
	listTransactionsFn   func(filter services.TransactionFilter, page pagination.PageRequest) pagination.PageResponse[services.TransactionView]
}

func (m *mockTransactionService) AddTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error) {
	if m.addTransactionFn != nil {
		return m.addTransactionFn(ctx, tx)
	}
	tx.ID = "tx-1"
	return &tx, nil
}

func (m *mockTransactionService) ImportTransactions(ctx context.Context, txs []models.Transaction) ([]models.Transaction, error) {
	if m.importTransactionsFn != nil {
		return m.importTransactionsFn(ctx, txs)
	}
	return txs, nil
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) error {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(ctx, id, patch)
	}
	return nil
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, id string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(ctx, id)
	}
	return nil
}

func (m *mockTransactionService) GetTransaction(id string) (*models.Transaction, error) {
	if m.getTransactionFn != nil {
		return m.getTransactionFn(id)
	}
	return &models.Transaction{ID: id}, nil
}

func (m *mockTransactionService) ListTransactions(filter services.TransactionFilter, page pagination.PageRequest) pagination.PageResponse[services.TransactionView] {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(filter, page)
	}
	return pagination.NewPageResponse([]services.TransactionView{}, page.Page, page.PageSize, 0)
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/transactions", handler.CreateTransaction)
	r.POST("/transactions/import", handler.ImportTransactions)
	r.GET("/transactions", handler.GetTransactions)
	r.GET("/transactions/:id", handler.GetTransaction)
	r.PUT("/transactions/:id", handler.UpdateTransaction)
	r.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got models.Transaction
		svc := &mockTransactionService{
			addTransactionFn: func(_ context.Context, tx models.Transaction) (*models.Transaction, error) {
				got = tx
				tx.ID = "tx-1"
				return &tx, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions",
			`{"description":"Lunch","amount":"42.90","date":"2024-03-10","category_id":"cat-food","account_id":"acc-checking","type":"expense"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.Amount.Equal(decimal.RequireFromString("42.90")) {
			t.Errorf("expected amount 42.90, got %s", got.Amount)
		}
		if got.Type != models.TransactionTypeExpense {
			t.Errorf("expected expense, got %s", got.Type)
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["id"] != "tx-1" {
			t.Errorf("expected id tx-1, got %v", tx["id"])
		}
	})

	t.Run("returns 400 on missing account", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions", `{"amount":"10","type":"expense"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on unknown type", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions", `{"amount":"10","account_id":"acc-checking","type":"refund"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions",
			`{"amount":"10","account_id":"acc-checking","type":"income","date":"2024-13-01"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("maps service validation errors", func(t *testing.T) {
		svc := &mockTransactionService{
			addTransactionFn: func(_ context.Context, _ models.Transaction) (*models.Transaction, error) {
				return nil, apperrors.ErrSameAccountTransfer
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions",
			`{"amount":"10","account_id":"acc-checking","to_account_id":"acc-checking","type":"transfer"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SAME_ACCOUNT_TRANSFER")
	})
}

func TestTransactionHandler_ImportTransactions(t *testing.T) {
	t.Run("returns 201 with the imported count", func(t *testing.T) {
		var got []models.Transaction
		svc := &mockTransactionService{
			importTransactionsFn: func(_ context.Context, txs []models.Transaction) ([]models.Transaction, error) {
				got = txs
				return txs, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions/import", `{"transactions":[
			{"amount":"500","account_id":"acc-checking","type":"income","date":"2024-03-01"},
			{"amount":"200","account_id":"acc-checking","type":"expense","date":"2024-03-02"}
		]}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(got) != 2 || got[0].Type != models.TransactionTypeIncome {
			t.Fatalf("expected records in request order, got %+v", got)
		}
		if parseJSON(t, rec)["count"].(float64) != 2 {
			t.Errorf("expected count 2")
		}
	})

	t.Run("returns 400 on an empty batch", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions/import", `{"transactions":[]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 when one record is invalid", func(t *testing.T) {
		called := false
		svc := &mockTransactionService{
			importTransactionsFn: func(_ context.Context, txs []models.Transaction) ([]models.Transaction, error) {
				called = true
				return txs, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions/import", `{"transactions":[
			{"amount":"500","account_id":"acc-checking","type":"income"},
			{"amount":"200","account_id":"acc-checking","type":"gift"}
		]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if called {
			t.Error("import should not run when binding fails")
		}
	})

	t.Run("returns 400 when the batch is too large", func(t *testing.T) {
		records := make([]string, maxImportBatch+1)
		for i := range records {
			records[i] = `{"amount":"1","account_id":"acc-checking","type":"income"}`
		}
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions/import", `{"transactions":[`+strings.Join(records, ",")+`]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	t.Run("passes filters and paging through", func(t *testing.T) {
		var gotFilter services.TransactionFilter
		var gotPage pagination.PageRequest
		svc := &mockTransactionService{
			listTransactionsFn: func(filter services.TransactionFilter, page pagination.PageRequest) pagination.PageResponse[services.TransactionView] {
				gotFilter = filter
				gotPage = page
				return pagination.NewPageResponse([]services.TransactionView{
					{Transaction: models.Transaction{ID: "tx-1"}, CategoryLabel: "Food > Market", AccountName: "Checking"},
				}, page.Page, page.PageSize, 1)
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions?search=lunch&type=expense&from_date=2024-03-01&to_date=2024-03-31&page=2&page_size=5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotFilter.Search != "lunch" || gotFilter.FromDate != "2024-03-01" || gotFilter.ToDate != "2024-03-31" {
			t.Errorf("unexpected filter: %+v", gotFilter)
		}
		if gotFilter.Type == nil || *gotFilter.Type != models.TransactionTypeExpense {
			t.Errorf("expected expense type filter, got %v", gotFilter.Type)
		}
		if gotPage.Page != 2 || gotPage.PageSize != 5 {
			t.Errorf("expected page 2 size 5, got %+v", gotPage)
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if data[0].(map[string]interface{})["category_label"] != "Food > Market" {
			t.Errorf("expected label Food > Market, got %v", data[0])
		}
	})

	t.Run("defaults paging", func(t *testing.T) {
		var gotPage pagination.PageRequest
		svc := &mockTransactionService{
			listTransactionsFn: func(_ services.TransactionFilter, page pagination.PageRequest) pagination.PageResponse[services.TransactionView] {
				gotPage = page
				return pagination.NewPageResponse([]services.TransactionView{}, page.Page, page.PageSize, 0)
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotPage.Page != 1 || gotPage.PageSize != 20 {
			t.Errorf("expected defaults, got %+v", gotPage)
		}
	})

	t.Run("returns 400 on invalid date filter", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions?from_date=yesterday", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_DATE")
	})

	t.Run("returns 400 on invalid type filter", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions?type=gift", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_TRANSACTION_TYPE")
	})

	t.Run("returns 400 on oversized page", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("returns the reposted transaction", func(t *testing.T) {
		stored := models.Transaction{ID: "tx-1", Amount: decimal.NewFromInt(200), Type: models.TransactionTypeExpense, AccountID: "acc-checking"}
		svc := &mockTransactionService{
			getTransactionFn: func(_ string) (*models.Transaction, error) {
				tx := stored
				return &tx, nil
			},
			updateTransactionFn: func(_ context.Context, _ string, patch models.TransactionPatch) error {
				patch.Apply(&stored)
				return nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "PUT", "/transactions/tx-1", `{"type":"income","amount":"100"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["type"] != "income" || tx["amount"] != "100" {
			t.Errorf("unexpected transaction: %v", tx)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockTransactionService{
			getTransactionFn: func(_ string) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "PUT", "/transactions/tx-404", `{"description":"x"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "DELETE", "/transactions/tx-1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockTransactionService{
			getTransactionFn: func(_ string) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "DELETE", "/transactions/tx-404", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
