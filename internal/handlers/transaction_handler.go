package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
	"pocketledger/internal/store"
)

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	store store.TransactionStorer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(s store.TransactionStorer) *TransactionHandler {
	return &TransactionHandler{store: s}
}

// TransactionRequest represents the payload for creating or updating a transaction
type TransactionRequest struct {
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount      decimal.Decimal        `json:"amount"`
	CategoryID  string                 `json:"category_id"`
	Date        time.Time              `json:"date"`
	Description string                 `json:"description"`
}

// listTransactionsQuery holds the filter and pagination query parameters.
type listTransactionsQuery struct {
	pagination.PageRequest
	Type       string `form:"type" binding:"omitempty,transaction_type"`
	CategoryID string `form:"category_id"`
	Month      *int   `form:"month" binding:"omitempty,min=1,max=12"`
	Year       *int   `form:"year"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record a money movement; month, year, and timestamp are derived from the date
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.store.AddTransaction(&models.Transaction{
		Type:        req.Type,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// ListTransactions handles the retrieval of transactions with optional filters
// @Summary     List transactions
// @Description List transactions, optionally narrowed by type, category, month, year, or date range
// @Tags        transactions
// @Produce     json
// @Param       type query string false "Filter by type (income/expense)"
// @Param       category_id query string false "Filter by category id"
// @Param       month query int false "Filter by month (1-12)"
// @Param       year query int false "Filter by year"
// @Param       from query string false "Range start (YYYY-MM-DD)"
// @Param       to query string false "Range end (YYYY-MM-DD)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Page of transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var q listTransactionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := store.TransactionFilter{Month: q.Month, Year: q.Year}
	if q.Type != "" {
		t := models.TransactionType(q.Type)
		filter.Type = &t
	}
	if q.CategoryID != "" {
		filter.CategoryID = &q.CategoryID
	}

	from, err := parseOptionalDateParam(c, "from")
	if err != nil {
		respondWithError(c, err)
		return
	}
	filter.From = from

	if to, err := parseOptionalDateParam(c, "to"); err != nil {
		respondWithError(c, err)
		return
	} else if to != nil {
		// End of the range day, so the range is inclusive of it.
		_, end := store.DayRange(*to)
		filter.To = &end
	}

	transactions, err := h.store.ListTransactions(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, pagination.Window(transactions, q.PageRequest))
}

// GetTransaction handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	tx, err := h.store.GetTransaction(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// UpdateTransaction handles a full-record replace of an existing transaction
// @Summary     Update a transaction
// @Description Replace the transaction's fields; the id is preserved and derived fields are recomputed
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Param       request body TransactionRequest true "Transaction details"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx := &models.Transaction{
		Type:        req.Type,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Date:        req.Date,
		Description: req.Description,
	}
	tx.ID = c.Param("id")

	updated, err := h.store.UpdateTransaction(tx)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": updated})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete a transaction
// @Tags        transactions
// @Param       id path string true "Transaction ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.store.DeleteTransaction(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
