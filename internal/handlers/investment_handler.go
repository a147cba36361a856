package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"verde/internal/models"
	"verde/internal/services"
)

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// CreateInvestmentRequest represents the request payload for tracking an investment.
type CreateInvestmentRequest struct {
	Name        string                `json:"name" binding:"required,min=1,max=100"`
	Type        models.InvestmentType `json:"type" binding:"required,investment_type"`
	Amount      decimal.Decimal       `json:"amount" binding:"gte=0"`
	Institution string                `json:"institution" binding:"max=100"`
	Color       string                `json:"color" binding:"omitempty,hex_color"`
}

// UpdateInvestmentRequest represents the request payload for updating an investment.
type UpdateInvestmentRequest struct {
	Name        *string                `json:"name" binding:"omitempty,min=1,max=100"`
	Type        *models.InvestmentType `json:"type" binding:"omitempty,investment_type"`
	Amount      *decimal.Decimal       `json:"amount" binding:"omitempty,gte=0"`
	Institution *string                `json:"institution" binding:"omitempty,max=100"`
	Color       *string                `json:"color" binding:"omitempty,hex_color"`
}

// CreateInvestment handles tracking a new investment.
// @Summary     Create an investment
// @Description Track a new investment position
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       request body CreateInvestmentRequest true "Investment details"
// @Success     201 {object} InvestmentResponse "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	var req CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	inv, err := h.investmentService.AddInvestment(c.Request.Context(), models.Investment{
		Name:        req.Name,
		Type:        req.Type,
		Amount:      req.Amount,
		Institution: req.Institution,
		Color:       req.Color,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"investment": inv})
}

// GetInvestments handles listing investments.
// @Summary     Get investments
// @Description List every tracked investment
// @Tags        investments
// @Produce     json
// @Success     200 {object} InvestmentListResponse "Investments"
// @Router      /investments [get]
func (h *InvestmentHandler) GetInvestments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"investments": h.investmentService.ListInvestments()})
}

// GetPortfolio handles retrieving the portfolio summary.
// @Summary     Get portfolio summary
// @Description Total invested and its distribution by investment type
// @Tags        investments
// @Produce     json
// @Success     200 {object} PortfolioResponse "Portfolio summary"
// @Router      /investments/portfolio [get]
func (h *InvestmentHandler) GetPortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"portfolio": h.investmentService.GetPortfolio()})
}

// GetInvestment handles retrieving a specific investment.
// @Summary     Get investment by ID
// @Description Get a specific investment by ID
// @Tags        investments
// @Produce     json
// @Param       id path string true "Investment ID"
// @Success     200 {object} InvestmentResponse "Investment details"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investments/{id} [get]
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	inv, err := h.investmentService.GetInvestment(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investment": inv})
}

// UpdateInvestment handles updating an investment.
// @Summary     Update investment
// @Description Update an investment's details or current amount
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       id      path string                  true "Investment ID"
// @Param       request body UpdateInvestmentRequest true "Updated investment details"
// @Success     200 {object} InvestmentResponse "Updated investment"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	if _, err := h.investmentService.GetInvestment(id); err != nil {
		respondWithError(c, err)
		return
	}

	patch := models.InvestmentPatch{
		Name:        req.Name,
		Type:        req.Type,
		Amount:      req.Amount,
		Institution: req.Institution,
		Color:       req.Color,
	}
	if err := h.investmentService.UpdateInvestment(c.Request.Context(), id, patch); err != nil {
		respondWithError(c, err)
		return
	}

	inv, err := h.investmentService.GetInvestment(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investment": inv})
}

// DeleteInvestment handles deleting an investment.
// @Summary     Delete investment
// @Description Stop tracking an investment
// @Tags        investments
// @Produce     json
// @Param       id path string true "Investment ID"
// @Success     200 {object} MessageResponse "Investment deleted"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if _, err := h.investmentService.GetInvestment(id); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.investmentService.DeleteInvestment(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Investment deleted successfully"})
}
