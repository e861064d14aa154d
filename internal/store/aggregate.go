package store

import (
	"fmt"
	"time"

	"pocketledger/internal/models"

	"github.com/shopspring/decimal"
)

// Totals is the income/expense/balance summary over a set of transactions.
type Totals struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

// TrendEntry is one month's income and expense in a monthly trend.
type TrendEntry struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategoryBreakdown maps category ids to summed amounts, split by type.
// Categories with no matching transactions are absent, not present with 0.
type CategoryBreakdown struct {
	Income  map[string]decimal.Decimal `json:"income"`
	Expense map[string]decimal.Decimal `json:"expense"`
}

// Statistics is a single-pass aggregate over a year's transactions,
// optionally narrowed to one month. The monthly trend keys are "YYYY-MM";
// with a month filter the trend holds at most one key.
type Statistics struct {
	Totals
	TransactionCount  int                   `json:"transaction_count"`
	CategoryBreakdown CategoryBreakdown     `json:"category_breakdown"`
	MonthlyTrend      map[string]TrendEntry `json:"monthly_trend"`
}

// CalculateTotals sums a transaction list. Accumulation is decimal, not
// floating point: float64 addition drifts at cent level across thousands of
// records of typical currency magnitudes.
func CalculateTotals(transactions []models.Transaction) Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for i := range transactions {
		switch transactions[i].Type {
		case models.TransactionTypeIncome:
			income = income.Add(transactions[i].Amount)
		case models.TransactionTypeExpense:
			expense = expense.Add(transactions[i].Amount)
		}
	}
	return Totals{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// CalculateDailyTotals sums the transactions dated within the given calendar
// day, from 00:00:00.000 to 23:59:59.999 in the date's location.
func (s *Store) CalculateDailyTotals(date time.Time) (Totals, error) {
	from, to := DayRange(date)
	return s.rangeTotals(from, to)
}

// CalculateMonthlyTotals sums the transactions dated within the given
// calendar month.
func (s *Store) CalculateMonthlyTotals(year int, month time.Month) (Totals, error) {
	from, to := MonthRange(year, month)
	return s.rangeTotals(from, to)
}

// CategoryTotals sums amounts per category id over the transactions of one
// type within [from, to]. Category ids with no matching transactions do not
// appear in the result.
func (s *Store) CategoryTotals(txType models.TransactionType, from, to time.Time) (map[string]decimal.Decimal, error) {
	filter := TransactionFilter{Type: &txType, From: &from, To: &to}

	totals := make(map[string]decimal.Decimal)
	for rec, err := range s.TransactionSeq(filter) {
		if err != nil {
			return nil, err
		}
		totals[rec.CategoryID] = totals[rec.CategoryID].Add(rec.Amount)
	}
	return totals, nil
}

// Statistics aggregates a year's transactions in a single pass, narrowed to
// one month when month is non-nil.
func (s *Store) Statistics(year int, month *time.Month) (*Statistics, error) {
	filter := TransactionFilter{Year: &year}
	if month != nil {
		m := int(*month)
		filter.Month = &m
	}

	stats := &Statistics{
		Totals: Totals{
			TotalIncome:  decimal.Zero,
			TotalExpense: decimal.Zero,
			Balance:      decimal.Zero,
		},
		CategoryBreakdown: CategoryBreakdown{
			Income:  make(map[string]decimal.Decimal),
			Expense: make(map[string]decimal.Decimal),
		},
		MonthlyTrend: make(map[string]TrendEntry),
	}

	for rec, err := range s.TransactionSeq(filter) {
		if err != nil {
			return nil, err
		}
		stats.TransactionCount++

		trendKey := fmt.Sprintf("%04d-%02d", rec.Year, rec.Month)
		trend := stats.MonthlyTrend[trendKey]

		switch rec.Type {
		case models.TransactionTypeIncome:
			stats.TotalIncome = stats.TotalIncome.Add(rec.Amount)
			stats.CategoryBreakdown.Income[rec.CategoryID] = stats.CategoryBreakdown.Income[rec.CategoryID].Add(rec.Amount)
			trend.Income = trend.Income.Add(rec.Amount)
		case models.TransactionTypeExpense:
			stats.TotalExpense = stats.TotalExpense.Add(rec.Amount)
			stats.CategoryBreakdown.Expense[rec.CategoryID] = stats.CategoryBreakdown.Expense[rec.CategoryID].Add(rec.Amount)
			trend.Expense = trend.Expense.Add(rec.Amount)
		}
		stats.MonthlyTrend[trendKey] = trend
	}

	stats.Balance = stats.TotalIncome.Sub(stats.TotalExpense)
	return stats, nil
}

// DayRange returns the inclusive bounds of the calendar day containing date,
// in the date's location.
func DayRange(date time.Time) (from, to time.Time) {
	y, m, d := date.Date()
	from = time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	to = time.Date(y, m, d, 23, 59, 59, 999000000, date.Location())
	return from, to
}

// MonthRange returns the inclusive bounds of a calendar month. Day zero of
// the following month normalizes to the last day of this one, which keeps
// February and leap years correct without a days-in-month table.
func MonthRange(year int, month time.Month) (from, to time.Time) {
	from = time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	to = time.Date(year, month+1, 0, 23, 59, 59, 999000000, time.Local)
	return from, to
}

func (s *Store) rangeTotals(from, to time.Time) (Totals, error) {
	transactions, err := s.ListTransactions(TransactionFilter{From: &from, To: &to})
	if err != nil {
		return Totals{}, err
	}
	return CalculateTotals(transactions), nil
}
