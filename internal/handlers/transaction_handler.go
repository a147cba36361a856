package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "verde/internal/errors"
	"verde/internal/models"
	"verde/internal/services"
)

// maxImportBatch bounds the number of records accepted by one import call.
const maxImportBatch = 1000

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
// Adjustment amounts are signed deltas; every other type takes a non-negative amount.
type CreateTransactionRequest struct {
	Description string                 `json:"description" binding:"max=255"`
	Amount      decimal.Decimal        `json:"amount"`
	Date        string                 `json:"date" binding:"omitempty,iso_date"`
	CategoryID  string                 `json:"category_id" binding:"max=128"`
	AccountID   string                 `json:"account_id" binding:"required,max=128"`
	ToAccountID *string                `json:"to_account_id" binding:"omitempty,min=1,max=128"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
}

func (r CreateTransactionRequest) toModel() models.Transaction {
	return models.Transaction{
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date,
		CategoryID:  r.CategoryID,
		AccountID:   r.AccountID,
		ToAccountID: r.ToAccountID,
		Type:        r.Type,
	}
}

// ImportTransactionsRequest represents a batch of transactions to import.
type ImportTransactionsRequest struct {
	Transactions []CreateTransactionRequest `json:"transactions" binding:"required,min=1,dive"`
}

// UpdateTransactionRequest represents the request payload for updating a transaction.
type UpdateTransactionRequest struct {
	Description *string                 `json:"description" binding:"omitempty,max=255"`
	Amount      *decimal.Decimal        `json:"amount"`
	Date        *string                 `json:"date" binding:"omitempty,iso_date"`
	CategoryID  *string                 `json:"category_id" binding:"omitempty,max=128"`
	AccountID   *string                 `json:"account_id" binding:"omitempty,min=1,max=128"`
	ToAccountID *string                 `json:"to_account_id" binding:"omitempty,min=1,max=128"`
	Type        *models.TransactionType `json:"type" binding:"omitempty,transaction_type"`
}

// CreateTransaction handles the creation of a new transaction.
// @Summary     Create a transaction
// @Description Record income, an expense, a transfer or an adjustment and post it to the account balances
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	tx, err := h.transactionService.AddTransaction(c.Request.Context(), req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// ImportTransactions handles importing a batch of transactions.
// @Summary     Import transactions
// @Description Apply a batch of transactions in order as a single change. Nothing is applied if any record is invalid.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body ImportTransactionsRequest true "Transactions to import"
// @Success     201 {object} ImportResponse "Transactions imported"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/import [post]
func (h *TransactionHandler) ImportTransactions(c *gin.Context) {
	var req ImportTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	if len(req.Transactions) > maxImportBatch {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Too many transactions in one import"))
		return
	}

	txs := make([]models.Transaction, len(req.Transactions))
	for i, r := range req.Transactions {
		txs[i] = r.toModel()
	}

	created, err := h.transactionService.ImportTransactions(c.Request.Context(), txs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transactions": created, "count": len(created)})
}

// GetTransactions handles listing transactions.
// @Summary     Get transactions
// @Description Get a paginated list of transactions, newest first
// @Tags        transactions
// @Produce     json
// @Param       search      query string false "Case-insensitive description search"
// @Param       from_date   query string false "Earliest date (YYYY-MM-DD, inclusive)"
// @Param       to_date     query string false "Latest date (YYYY-MM-DD, inclusive)"
// @Param       type        query string false "Filter by type"
// @Param       category_id query string false "Filter by category"
// @Param       account_id  query string false "Filter by source or destination account"
// @Param       page        query int    false "Page number (default 1)"
// @Param       page_size   query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[services.TransactionView] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter := services.TransactionFilter{
		Search:     c.Query("search"),
		FromDate:   c.Query("from_date"),
		ToDate:     c.Query("to_date"),
		CategoryID: c.Query("category_id"),
		AccountID:  c.Query("account_id"),
	}
	for _, d := range []string{filter.FromDate, filter.ToDate} {
		if d == "" {
			continue
		}
		if _, err := models.ParseDate(d); err != nil {
			respondWithError(c, apperrors.ErrInvalidDate)
			return
		}
	}
	if v := c.Query("type"); v != "" {
		t := models.TransactionType(v)
		if !t.Valid() {
			respondWithError(c, apperrors.ErrInvalidTransactionType)
			return
		}
		filter.Type = &t
	}

	c.JSON(http.StatusOK, h.transactionService.ListTransactions(filter, page))
}

// GetTransaction handles retrieving a specific transaction.
// @Summary     Get transaction by ID
// @Description Get a specific transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} TransactionResponse "Transaction details"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.GetTransaction(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// UpdateTransaction handles editing a transaction.
// @Summary     Update transaction
// @Description Reverse the stored transaction, apply the changes and post it again
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to change"
// @Success     200 {object} TransactionResponse "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	if _, err := h.transactionService.GetTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}

	patch := models.TransactionPatch{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		CategoryID:  req.CategoryID,
		AccountID:   req.AccountID,
		ToAccountID: req.ToAccountID,
		Type:        req.Type,
	}
	if err := h.transactionService.UpdateTransaction(c.Request.Context(), id, patch); err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.GetTransaction(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// DeleteTransaction handles deleting a transaction.
// @Summary     Delete transaction
// @Description Reverse a transaction's effect on balances and remove it
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if _, err := h.transactionService.GetTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
