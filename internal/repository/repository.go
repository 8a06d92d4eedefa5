package repository

import (
	"context"
	"errors"
	"time"

	"github.com/chotudairy/sales-api/internal/model"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrProductInUse is returned when a product cannot be deleted because
	// sales records still reference it.
	ErrProductInUse = errors.New("product is referenced by sales records")
)

// ProductRepository manages the product catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	DeleteByID(ctx context.Context, id int64) error
}

// SaleFilter narrows a sales listing to an exact date or an inclusive
// [StartDate, EndDate] range. A zero filter returns everything.
type SaleFilter struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time
}

// DateTotal is the summed total_price of all sales on one calendar date.
type DateTotal struct {
	Date  time.Time
	Total float64
}

// MonthTotal is the summed total_price of all sales in one calendar month.
type MonthTotal struct {
	Month int
	Total float64
}

// ProductSalesTotals is the per-product aggregate used for top-product rankings.
type ProductSalesTotals struct {
	ProductID     int64
	ProductName   string
	TotalQuantity int64
	TotalSales    float64
}

// SaleRepository manages sales records and the aggregate queries over them.
// Listing results are enriched with the referenced product's current price.
type SaleRepository interface {
	Create(ctx context.Context, sale *model.Sale) (*model.Sale, error)
	List(ctx context.Context, filter SaleFilter) ([]model.SaleWithPrice, error)
	ListByYear(ctx context.Context, year int) ([]model.SaleWithPrice, error)
	ExistsForProduct(ctx context.Context, productID int64) (bool, error)
	TotalsByDate(ctx context.Context, start, end time.Time) ([]DateTotal, error)
	TotalsByDateInMonth(ctx context.Context, year, month int) ([]DateTotal, error)
	TotalsByMonth(ctx context.Context, year int) ([]MonthTotal, error)
	SumInRange(ctx context.Context, start, end time.Time) (float64, error)
	TopProducts(ctx context.Context, limit int) ([]ProductSalesTotals, error)
}
