package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/store"
)

// StatsHandler handles aggregate queries over the transactions collection
type StatsHandler struct {
	store store.Aggregator
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(s store.Aggregator) *StatsHandler {
	return &StatsHandler{store: s}
}

// DailyTotals returns income/expense/balance for one calendar day
// @Summary     Daily totals
// @Tags        stats
// @Produce     json
// @Param       date query string true "Day (YYYY-MM-DD)"
// @Success     200 {object} store.Totals "Totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /stats/daily [get]
func (h *StatsHandler) DailyTotals(c *gin.Context) {
	date, err := parseDateParam(c, "date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.store.CalculateDailyTotals(date)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// MonthlyTotals returns income/expense/balance for one calendar month
// @Summary     Monthly totals
// @Tags        stats
// @Produce     json
// @Param       year query int true "Year"
// @Param       month query int true "Month (1-12)"
// @Success     200 {object} store.Totals "Totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /stats/monthly [get]
func (h *StatsHandler) MonthlyTotals(c *gin.Context) {
	year, err := parseIntParam(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}
	month, err := parseMonthParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.store.CalculateMonthlyTotals(year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// CategoryTotals returns summed amounts per category over a date range
// @Summary     Category totals
// @Description Sum amounts per category id for one transaction type within [from, to]
// @Tags        stats
// @Produce     json
// @Param       type query string true "Transaction type (income/expense)"
// @Param       from query string true "Range start (YYYY-MM-DD)"
// @Param       to query string true "Range end (YYYY-MM-DD)"
// @Success     200 {object} map[string]string "Category id to summed amount"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /stats/categories [get]
func (h *StatsHandler) CategoryTotals(c *gin.Context) {
	txType := models.TransactionType(c.Query("type"))
	if txType != models.TransactionTypeIncome && txType != models.TransactionTypeExpense {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense"))
		return
	}

	from, err := parseDateParam(c, "from")
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseDateParam(c, "to")
	if err != nil {
		respondWithError(c, err)
		return
	}
	// Extend to the end of the "to" day so the range is inclusive of it.
	_, end := store.DayRange(to)

	totals, err := h.store.CategoryTotals(txType, from, end)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category_totals": totals})
}

// Statistics returns the single-pass yearly (or monthly) aggregate
// @Summary     Statistics
// @Description Totals, transaction count, category breakdown, and monthly trend for a year or one month
// @Tags        stats
// @Produce     json
// @Param       year query int true "Year"
// @Param       month query int false "Month (1-12)"
// @Success     200 {object} store.Statistics "Statistics"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /stats [get]
func (h *StatsHandler) Statistics(c *gin.Context) {
	year, err := parseIntParam(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var month *time.Month
	if c.Query("month") != "" {
		m, err := parseMonthParam(c)
		if err != nil {
			respondWithError(c, err)
			return
		}
		month = &m
	}

	stats, err := h.store.Statistics(year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// parseIntParam parses a required integer query parameter.
func parseIntParam(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, name+" query parameter is required")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+name)
	}
	return n, nil
}

// parseMonthParam parses the required month query parameter (1-12).
func parseMonthParam(c *gin.Context) (time.Month, error) {
	n, err := parseIntParam(c, "month")
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	return time.Month(n), nil
}
