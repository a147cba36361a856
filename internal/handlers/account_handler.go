package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"verde/internal/models"
	"verde/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccountRequest represents the request payload for creating an account.
type CreateAccountRequest struct {
	Name     string             `json:"name" binding:"required,min=1,max=100"`
	Type     models.AccountType `json:"type" binding:"required,account_type"`
	Balance  decimal.Decimal    `json:"balance"`
	LastFour string             `json:"last_four" binding:"omitempty,len=4,numeric"`
}

// UpdateAccountRequest represents the request payload for updating an account.
// A balance is treated as a target and recorded as an adjustment transaction
// dated today.
type UpdateAccountRequest struct {
	Name     *string             `json:"name" binding:"omitempty,min=1,max=100"`
	Type     *models.AccountType `json:"type" binding:"omitempty,account_type"`
	Balance  *decimal.Decimal    `json:"balance"`
	LastFour *string             `json:"last_four" binding:"omitempty,len=4,numeric"`
}

// AdjustBalanceRequest represents the request payload for a balance adjustment.
type AdjustBalanceRequest struct {
	TargetBalance decimal.Decimal `json:"target_balance"`
	Date          string          `json:"date" binding:"omitempty,iso_date"`
	Description   string          `json:"description" binding:"max=255"`
}

// CreateAccount handles the creation of a new account.
// @Summary     Create an account
// @Description Create a bank or credit account with an opening balance
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       request body CreateAccountRequest true "Account details"
// @Success     201 {object} AccountResponse "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	account, err := h.accountService.AddAccount(c.Request.Context(), models.Account{
		Name:     req.Name,
		Type:     req.Type,
		Balance:  req.Balance,
		LastFour: req.LastFour,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// GetAccounts handles listing accounts.
// @Summary     Get accounts
// @Description List every account with its current balance
// @Tags        accounts
// @Produce     json
// @Success     200 {object} AccountListResponse "Accounts"
// @Router      /accounts [get]
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"accounts": h.accountService.ListAccounts()})
}

// GetAccount handles retrieving a specific account.
// @Summary     Get account by ID
// @Description Get a specific account by ID
// @Tags        accounts
// @Produce     json
// @Param       id path string true "Account ID"
// @Success     200 {object} AccountResponse "Account details"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetAccount(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// UpdateAccount handles updating an existing account.
// @Summary     Update account
// @Description Update an existing account
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       id      path string               true "Account ID"
// @Param       request body UpdateAccountRequest true "Updated account details"
// @Success     200 {object} AccountResponse "Updated account"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	if _, err := h.accountService.GetAccount(id); err != nil {
		respondWithError(c, err)
		return
	}

	patch := models.AccountPatch{Name: req.Name, Type: req.Type, Balance: req.Balance, LastFour: req.LastFour}
	if err := h.accountService.UpdateAccount(c.Request.Context(), id, patch); err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetAccount(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// DeleteAccount handles deleting an account.
// @Summary     Delete account
// @Description Delete an account. Its transactions are kept and show it as unknown.
// @Tags        accounts
// @Produce     json
// @Param       id path string true "Account ID"
// @Success     200 {object} MessageResponse "Account deleted"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if _, err := h.accountService.GetAccount(id); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

// AdjustBalance handles recording a balance adjustment.
// @Summary     Adjust account balance
// @Description Record an adjustment transaction that brings the account to the target balance
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       id      path string               true "Account ID"
// @Param       request body AdjustBalanceRequest true "Target balance"
// @Success     201 {object} TransactionResponse "Adjustment recorded"
// @Success     200 {object} MessageResponse "Balance already at target"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id}/adjust [post]
func (h *AccountHandler) AdjustBalance(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	tx, err := h.accountService.AdjustBalance(c.Request.Context(), id, req.TargetBalance, req.Date, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if tx == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Balance already matches the target"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}
