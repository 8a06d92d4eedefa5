package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chotudairy/sales-api/internal/service"
)

// ReportController handles HTTP requests for the dashboard aggregations.
type ReportController struct {
	reportService *service.ReportService
}

// NewReportController creates a new ReportController with the given report service.
func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// WeeklySales handles the HTTP GET request for weekday bucket totals over one
// full Sunday-to-Saturday week.
func (rc *ReportController) WeeklySales(c *gin.Context) {
	start, err := parseDate(c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, expected YYYY-MM-DD"})
		return
	}
	end, err := parseDate(c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date, expected YYYY-MM-DD"})
		return
	}

	buckets, err := rc.reportService.WeeklyTotals(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, buckets)
}

// MonthQuery represents the query parameters for the monthly report.
type MonthQuery struct {
	Year  int `form:"year" binding:"required"`
	Month int `form:"month" binding:"required"`
}

// MonthlySales handles the HTTP GET request for day-of-month bucket totals.
func (rc *ReportController) MonthlySales(c *gin.Context) {
	var req MonthQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	buckets, err := rc.reportService.MonthlyTotals(c.Request.Context(), req.Year, req.Month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, buckets)
}

// YearlySales handles the HTTP GET request for month bucket totals over one year.
func (rc *ReportController) YearlySales(c *gin.Context) {
	var req YearQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	buckets, err := rc.reportService.YearlyTotals(c.Request.Context(), req.Year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, buckets)
}

// Summary handles the HTTP GET request for the today/week/month/year totals.
func (rc *ReportController) Summary(c *gin.Context) {
	summary, err := rc.reportService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// TopProductsQuery represents the query parameters for the top-products report.
type TopProductsQuery struct {
	Limit int `form:"limit"`
}

// TopProducts handles the HTTP GET request for the top-N products by quantity sold.
func (rc *ReportController) TopProducts(c *gin.Context) {
	var req TopProductsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := rc.reportService.TopProducts(c.Request.Context(), req.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}
