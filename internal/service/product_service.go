package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chotudairy/sales-api/internal/metrics"
	"github.com/chotudairy/sales-api/internal/model"
	"github.com/chotudairy/sales-api/internal/repository"
	"github.com/chotudairy/sales-api/internal/sqs"
)

// ProductService implements the catalog operations: create, list and a
// delete that is refused while sales still reference the product.
type ProductService struct {
	products  repository.ProductRepository
	sales     repository.SaleRepository
	publisher *sqs.Publisher
}

// NewProductService creates a new ProductService. The publisher may be nil,
// in which case no events are emitted.
func NewProductService(products repository.ProductRepository, sales repository.SaleRepository, publisher *sqs.Publisher) *ProductService {
	return &ProductService{
		products:  products,
		sales:     sales,
		publisher: publisher,
	}
}

// CreateProduct persists a new product after validating its fields.
func (ps *ProductService) CreateProduct(ctx context.Context, name string, price float64) (*model.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newValidationError("Product name must not be empty")
	}
	if price <= 0 {
		return nil, newValidationError("Product price must be positive")
	}

	product := &model.Product{
		ProductName: name,
		Price:       price,
	}

	created, err := ps.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreated.Inc()

	if ps.publisher != nil {
		msg := sqs.ProductMessage{
			Action:      "created",
			ProductID:   created.ID,
			ProductName: created.ProductName,
			Price:       created.Price,
		}
		if err := ps.publisher.PublishProductMessage(ctx, msg); err != nil {
			// Log error but don't fail the request
			slog.Error("Failed to send SQS message", slog.Any("err", err), slog.String("action", "created"), slog.Int64("product_id", created.ID))
		}
	}

	return created, nil
}

// ListProducts returns every product, ordered by id.
func (ps *ProductService) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return ps.products.List(ctx)
}

// DeleteProduct removes a product. It fails with repository.ErrNotFound when
// the product does not exist and with repository.ErrProductInUse when any
// sale still references it; no cascading delete, no orphaning.
func (ps *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	product, err := ps.products.FindByID(ctx, id)
	if err != nil {
		return err
	}

	inUse, err := ps.sales.ExistsForProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check sales for product: %w", err)
	}
	if inUse {
		return repository.ErrProductInUse
	}

	if err := ps.products.DeleteByID(ctx, id); err != nil {
		return err
	}

	metrics.ProductsDeleted.Inc()

	if ps.publisher != nil {
		msg := sqs.ProductMessage{
			Action:      "deleted",
			ProductID:   product.ID,
			ProductName: product.ProductName,
			Price:       product.Price,
		}
		if err := ps.publisher.PublishProductMessage(ctx, msg); err != nil {
			// Log error but don't fail the request
			slog.Error("Failed to send SQS message", slog.Any("err", err), slog.String("action", "deleted"), slog.Int64("product_id", product.ID))
		}
	}

	return nil
}
