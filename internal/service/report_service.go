package service

import (
	"context"
	"strconv"
	"time"

	"github.com/chotudairy/sales-api/internal/clock"
	"github.com/chotudairy/sales-api/internal/repository"
)

const (
	minReportYear = 1900
	maxReportYear = 2100

	// DefaultTopProductsLimit is used when the caller supplies no limit.
	DefaultTopProductsLimit = 5
)

// DayTotal is one bucket of a weekly or monthly report. The bucket is always
// present; days without sales carry a zero total.
type DayTotal struct {
	Day   string  `json:"day"`
	Total float64 `json:"total"`
}

// MonthTotal is one bucket of a yearly report.
type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// Summary holds the scalar totals relative to the current date.
type Summary struct {
	Today float64 `json:"today"`
	Week  float64 `json:"week"`
	Month float64 `json:"month"`
	Year  float64 `json:"year"`
}

// TopProduct is one row of the top-products ranking.
type TopProduct struct {
	ProductID     int64   `json:"product_id"`
	ProductName   string  `json:"product_name"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalSales    float64 `json:"total_sales"`
}

// ReportService computes the time-bucketed aggregations for the dashboard.
// The current date comes from an injected clock so summaries are testable.
type ReportService struct {
	sales repository.SaleRepository
	clock clock.Clock
}

// NewReportService creates a new ReportService.
func NewReportService(sales repository.SaleRepository, clk clock.Clock) *ReportService {
	return &ReportService{
		sales: sales,
		clock: clk,
	}
}

// WeeklyTotals returns the seven weekday buckets, Sun through Sat, for one
// full calendar week. The range must start on a Sunday and end on the
// following Saturday.
func (rs *ReportService) WeeklyTotals(ctx context.Context, startDate, endDate time.Time) ([]DayTotal, error) {
	start := dateOnly(startDate)
	end := dateOnly(endDate)

	if start.Weekday() != time.Sunday {
		return nil, newValidationError("Start date must be a Sunday")
	}
	if end.Weekday() != time.Saturday {
		return nil, newValidationError("End date must be a Saturday")
	}
	if !end.Equal(start.AddDate(0, 0, 6)) {
		return nil, newValidationError("Dates must form a full week")
	}

	rows, err := rs.sales.TotalsByDate(ctx, start, end)
	if err != nil {
		return nil, err
	}

	// Weekday is determined by the calendar, not by position in the range.
	var weekdayTotals [7]float64
	for _, row := range rows {
		weekdayTotals[int(row.Date.Weekday())] += row.Total
	}

	buckets := make([]DayTotal, 0, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		buckets = append(buckets, DayTotal{
			Day:   day.String()[:3],
			Total: weekdayTotals[int(day)],
		})
	}
	return buckets, nil
}

// MonthlyTotals returns one bucket per day of the given month, leap years
// included, ordered by numeric day.
func (rs *ReportService) MonthlyTotals(ctx context.Context, year, month int) ([]DayTotal, error) {
	if month < 1 || month > 12 {
		return nil, newValidationError("Invalid month")
	}

	rows, err := rs.sales.TotalsByDateInMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	numDays := daysInMonth(year, time.Month(month))
	dayTotals := make([]float64, numDays)
	for _, row := range rows {
		dayTotals[row.Date.Day()-1] += row.Total
	}

	buckets := make([]DayTotal, 0, numDays)
	for day := 1; day <= numDays; day++ {
		buckets = append(buckets, DayTotal{
			Day:   strconv.Itoa(day),
			Total: dayTotals[day-1],
		})
	}
	return buckets, nil
}

// YearlyTotals returns the twelve month buckets, Jan through Dec, for one year.
func (rs *ReportService) YearlyTotals(ctx context.Context, year int) ([]MonthTotal, error) {
	if year < minReportYear || year > maxReportYear {
		return nil, newValidationError("Invalid year")
	}

	rows, err := rs.sales.TotalsByMonth(ctx, year)
	if err != nil {
		return nil, err
	}

	var monthTotals [12]float64
	for _, row := range rows {
		monthTotals[row.Month-1] += row.Total
	}

	buckets := make([]MonthTotal, 0, 12)
	for month := time.January; month <= time.December; month++ {
		buckets = append(buckets, MonthTotal{
			Month: month.String()[:3],
			Total: monthTotals[int(month)-1],
		})
	}
	return buckets, nil
}

// Summary returns the scalar totals for today and the current week, month and
// year. The week runs Sunday through Saturday; the week containing today
// starts at the most recent Sunday on or before today.
func (rs *ReportService) Summary(ctx context.Context) (*Summary, error) {
	today := dateOnly(rs.clock.Now())

	daily, err := rs.sales.SumInRange(ctx, today, today)
	if err != nil {
		return nil, err
	}

	startOfWeek := today.AddDate(0, 0, -int(today.Weekday()))
	endOfWeek := startOfWeek.AddDate(0, 0, 6)
	weekly, err := rs.sales.SumInRange(ctx, startOfWeek, endOfWeek)
	if err != nil {
		return nil, err
	}

	startOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	endOfMonth := startOfMonth.AddDate(0, 1, -1)
	monthly, err := rs.sales.SumInRange(ctx, startOfMonth, endOfMonth)
	if err != nil {
		return nil, err
	}

	startOfYear := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	endOfYear := time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	yearly, err := rs.sales.SumInRange(ctx, startOfYear, endOfYear)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Today: daily,
		Week:  weekly,
		Month: monthly,
		Year:  yearly,
	}, nil
}

// TopProducts ranks products by total quantity sold, ties broken by ascending
// product id, truncated to limit. A non-positive limit falls back to the
// default of 5.
func (rs *ReportService) TopProducts(ctx context.Context, limit int) ([]TopProduct, error) {
	if limit <= 0 {
		limit = DefaultTopProductsLimit
	}

	rows, err := rs.sales.TopProducts(ctx, limit)
	if err != nil {
		return nil, err
	}

	products := make([]TopProduct, 0, len(rows))
	for _, row := range rows {
		products = append(products, TopProduct{
			ProductID:     row.ProductID,
			ProductName:   row.ProductName,
			TotalQuantity: row.TotalQuantity,
			TotalSales:    row.TotalSales,
		})
	}
	return products, nil
}

// dateOnly strips the time-of-day component, keeping the calendar date.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysInMonth returns the number of days in the given month. Day zero of the
// following month normalizes to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
