package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/chotudairy/sales-api/internal/metrics"
	"github.com/chotudairy/sales-api/internal/model"
	"github.com/chotudairy/sales-api/internal/repository"
	"github.com/chotudairy/sales-api/internal/sqs"
)

// SalesService implements the transaction-record operations. Every sale must
// reference an existing product at creation time; the supplied total_price is
// stored as given and never recomputed from quantity and product price.
type SalesService struct {
	sales     repository.SaleRepository
	products  repository.ProductRepository
	publisher *sqs.Publisher
}

// NewSalesService creates a new SalesService. The publisher may be nil, in
// which case no events are emitted.
func NewSalesService(sales repository.SaleRepository, products repository.ProductRepository, publisher *sqs.Publisher) *SalesService {
	return &SalesService{
		sales:     sales,
		products:  products,
		publisher: publisher,
	}
}

// CreateSale validates the product reference and persists the sale. A missing
// product yields repository.ErrNotFound and no record is written.
func (ss *SalesService) CreateSale(ctx context.Context, name string, productID int64, quantity int, date time.Time, totalPrice float64) (*model.Sale, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newValidationError("Sale name must not be empty")
	}
	if quantity <= 0 {
		return nil, newValidationError("Quantity must be positive")
	}

	if _, err := ss.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	sale := &model.Sale{
		Name:       name,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: totalPrice,
		Date:       date,
	}

	created, err := ss.sales.Create(ctx, sale)
	if err != nil {
		return nil, err
	}

	metrics.SalesCreated.Inc()

	if ss.publisher != nil {
		msg := sqs.SaleMessage{
			Action:     "created",
			SaleID:     created.ID,
			ProductID:  created.ProductID,
			Quantity:   created.Quantity,
			TotalPrice: created.TotalPrice,
			Date:       created.Date.Format(model.DateFormat),
		}
		if err := ss.publisher.PublishSaleMessage(ctx, msg); err != nil {
			// Log error but don't fail the request
			slog.Error("Failed to send SQS message", slog.Any("err", err), slog.String("action", "created"), slog.Int64("sale_id", created.ID))
		}
	}

	return created, nil
}

// ListSales returns sales enriched with the product's current price,
// optionally filtered to an exact date or an inclusive date range.
func (ss *SalesService) ListSales(ctx context.Context, filter repository.SaleFilter) ([]model.SaleWithPrice, error) {
	return ss.sales.List(ctx, filter)
}

// ListSalesByYear returns all sales in a calendar year ordered by date.
func (ss *SalesService) ListSalesByYear(ctx context.Context, year int) ([]model.SaleWithPrice, error) {
	return ss.sales.ListByYear(ctx, year)
}
