package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chotudairy/sales-api/internal/model"
	"github.com/chotudairy/sales-api/internal/repository"
	"github.com/chotudairy/sales-api/internal/service"
)

// SalesController handles HTTP requests for sales records.
type SalesController struct {
	salesService *service.SalesService
}

// NewSalesController creates a new SalesController with the given sales service.
func NewSalesController(salesService *service.SalesService) *SalesController {
	return &SalesController{
		salesService: salesService,
	}
}

// CreateSaleRequest represents the request body for recording a sale. The
// total_price is the actual charged amount and is stored as supplied.
type CreateSaleRequest struct {
	Name       string  `json:"name" binding:"required"`
	ProductID  int64   `json:"product_id" binding:"required"`
	Quantity   int     `json:"quantity"`
	Date       string  `json:"date" binding:"required"`
	TotalPrice float64 `json:"total_price"`
}

// SaleResponse represents the response body for a created sale.
type SaleResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	ProductID  int64   `json:"product_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	Date       string  `json:"date"`
	CreatedAt  string  `json:"created_at"`
}

// SaleWithPriceResponse is a sale enriched with the product's current price.
type SaleWithPriceResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	ProductID  int64   `json:"product_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	Date       string  `json:"date"`
	Price      float64 `json:"price"`
}

// CreateSale handles the HTTP POST request for recording a new sale.
// A sale referencing a missing product is rejected with 404.
func (sc *SalesController) CreateSale(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	created, err := sc.salesService.CreateSale(c.Request.Context(), req.Name, req.ProductID, req.Quantity, date, req.TotalPrice)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SaleResponse{
		ID:         created.ID,
		Name:       created.Name,
		ProductID:  created.ProductID,
		Quantity:   created.Quantity,
		TotalPrice: created.TotalPrice,
		Date:       created.Date.Format(model.DateFormat),
		CreatedAt:  created.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// ListSales handles the HTTP GET request for listing sales, optionally
// filtered to an exact date.
func (sc *SalesController) ListSales(c *gin.Context) {
	var filter repository.SaleFilter
	if dateParam := c.Query("date"); dateParam != "" {
		date, err := parseDate(dateParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		filter.Date = &date
	}

	sales, err := sc.salesService.ListSales(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSaleWithPriceResponses(sales))
}

// ListSalesByDateRange handles the HTTP GET request for listing sales within
// an inclusive [start_date, end_date] range.
func (sc *SalesController) ListSalesByDateRange(c *gin.Context) {
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

	filter := repository.SaleFilter{StartDate: &start, EndDate: &end}
	sales, err := sc.salesService.ListSales(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSaleWithPriceResponses(sales))
}

// YearQuery represents the query parameters for year-scoped listings.
type YearQuery struct {
	Year int `form:"year" binding:"required"`
}

// ListSalesByYear handles the HTTP GET request for listing all sales in a
// calendar year, ordered by date.
func (sc *SalesController) ListSalesByYear(c *gin.Context) {
	var req YearQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sales, err := sc.salesService.ListSalesByYear(c.Request.Context(), req.Year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSaleWithPriceResponses(sales))
}

func toSaleWithPriceResponses(sales []model.SaleWithPrice) []SaleWithPriceResponse {
	responses := make([]SaleWithPriceResponse, 0, len(sales))
	for _, sale := range sales {
		responses = append(responses, SaleWithPriceResponse{
			ID:         sale.ID,
			Name:       sale.Name,
			ProductID:  sale.ProductID,
			Quantity:   sale.Quantity,
			TotalPrice: sale.TotalPrice,
			Date:       sale.Date.Format(model.DateFormat),
			Price:      sale.Price,
		})
	}
	return responses
}
