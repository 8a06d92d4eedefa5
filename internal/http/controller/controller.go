package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chotudairy/sales-api/internal/model"
	"github.com/chotudairy/sales-api/internal/repository"
	"github.com/chotudairy/sales-api/internal/service"
)

// Controller handles general HTTP requests.
type Controller struct{}

// New creates a new Controller.
func New() *Controller {
	return &Controller{}
}

// Home handles the HTTP GET request for the root endpoint.
func (con *Controller) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Chotu Dairy!",
	})
}

// Ping handles the HTTP GET request for health check endpoint.
func (con *Controller) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

// respondError translates the service error taxonomy to HTTP statuses:
// validation failures and blocked deletes map to 400, missing references to
// 404, everything else to a generic 500.
func respondError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.Is(err, repository.ErrProductInUse):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete: Product is used in sales records"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

// parseDate parses a YYYY-MM-DD query or body value.
func parseDate(value string) (time.Time, error) {
	return time.Parse(model.DateFormat, value)
}
