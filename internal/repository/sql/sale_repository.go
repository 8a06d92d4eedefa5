package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/chotudairy/sales-api/internal/model"
	"github.com/chotudairy/sales-api/internal/repository"
)

const saleWithPriceColumns = `s.id, s.name, s.product_id, s.quantity, s.total_price, s.date, s.created_at, p.price`

// SaleRepository implements repository.SaleRepository on Postgres. Listing
// queries join products so responses carry the product's current price.
type SaleRepository struct {
	db *sql.DB
}

// NewSaleRepository creates a new SaleRepository instance.
func NewSaleRepository(db *sql.DB) repository.SaleRepository {
	return &SaleRepository{db: db}
}

// Create inserts a new sale. The product reference is validated in the
// service layer; the foreign key is the backstop and is reported as not found.
func (r *SaleRepository) Create(ctx context.Context, sale *model.Sale) (*model.Sale, error) {
	if sale.CreatedAt.IsZero() {
		sale.InitMeta()
	}

	query := `INSERT INTO sales (name, product_id, quantity, total_price, date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	err = stmt.QueryRowContext(ctx, sale.Name, sale.ProductID, sale.Quantity, sale.TotalPrice, sale.Date, sale.CreatedAt).Scan(&sale.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolationErrCode {
			return nil, fmt.Errorf("product %d: %w", sale.ProductID, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to insert sale: %w", err)
	}

	return sale, nil
}

// List retrieves sales enriched with the current product price, optionally
// narrowed to an exact date or an inclusive date range.
func (r *SaleRepository) List(ctx context.Context, filter repository.SaleFilter) ([]model.SaleWithPrice, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT " + saleWithPriceColumns + " FROM sales s JOIN products p ON s.product_id = p.id")

	var args []interface{}
	switch {
	case filter.Date != nil:
		queryBuilder.WriteString(" WHERE s.date = $1")
		args = append(args, *filter.Date)
	case filter.StartDate != nil && filter.EndDate != nil:
		queryBuilder.WriteString(" WHERE s.date BETWEEN $1 AND $2")
		args = append(args, *filter.StartDate, *filter.EndDate)
	}

	queryBuilder.WriteString(" ORDER BY s.id ASC")

	return r.querySalesWithPrice(ctx, queryBuilder.String(), args...)
}

// ListByYear retrieves all sales in a calendar year ordered by date.
func (r *SaleRepository) ListByYear(ctx context.Context, year int) ([]model.SaleWithPrice, error) {
	query := "SELECT " + saleWithPriceColumns + ` FROM sales s JOIN products p ON s.product_id = p.id
	          WHERE EXTRACT(YEAR FROM s.date) = $1 ORDER BY s.date ASC`

	return r.querySalesWithPrice(ctx, query, year)
}

func (r *SaleRepository) querySalesWithPrice(ctx context.Context, query string, args ...interface{}) ([]model.SaleWithPrice, error) {
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var sales []model.SaleWithPrice
	for rows.Next() {
		var sale model.SaleWithPrice
		err := rows.Scan(&sale.ID, &sale.Name, &sale.ProductID, &sale.Quantity, &sale.TotalPrice, &sale.Date, &sale.CreatedAt, &sale.Price)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return sales, nil
}

// ExistsForProduct reports whether any sale references the given product.
func (r *SaleRepository) ExistsForProduct(ctx context.Context, productID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM sales WHERE product_id = $1)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return false, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	var exists bool
	if err := stmt.QueryRowContext(ctx, productID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to query sales for product: %w", err)
	}

	return exists, nil
}

// TotalsByDate sums total_price per calendar date within [start, end].
// Dates without sales produce no row; bucket zero-filling happens upstream.
func (r *SaleRepository) TotalsByDate(ctx context.Context, start, end time.Time) ([]repository.DateTotal, error) {
	query := `SELECT date, SUM(total_price) AS total FROM sales
	          WHERE date BETWEEN $1 AND $2 GROUP BY date`

	return r.queryDateTotals(ctx, query, start, end)
}

// TotalsByDateInMonth sums total_price per calendar date for one month.
func (r *SaleRepository) TotalsByDateInMonth(ctx context.Context, year, month int) ([]repository.DateTotal, error) {
	query := `SELECT date, SUM(total_price) AS total FROM sales
	          WHERE EXTRACT(YEAR FROM date) = $1 AND EXTRACT(MONTH FROM date) = $2 GROUP BY date`

	return r.queryDateTotals(ctx, query, year, month)
}

func (r *SaleRepository) queryDateTotals(ctx context.Context, query string, args ...interface{}) ([]repository.DateTotal, error) {
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query date totals: %w", err)
	}
	defer rows.Close()

	var totals []repository.DateTotal
	for rows.Next() {
		var total repository.DateTotal
		if err := rows.Scan(&total.Date, &total.Total); err != nil {
			return nil, fmt.Errorf("failed to scan date total: %w", err)
		}
		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return totals, nil
}

// TotalsByMonth sums total_price per calendar month for one year.
func (r *SaleRepository) TotalsByMonth(ctx context.Context, year int) ([]repository.MonthTotal, error) {
	query := `SELECT EXTRACT(MONTH FROM date)::int AS month, SUM(total_price) AS total FROM sales
	          WHERE EXTRACT(YEAR FROM date) = $1 GROUP BY EXTRACT(MONTH FROM date)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query month totals: %w", err)
	}
	defer rows.Close()

	var totals []repository.MonthTotal
	for rows.Next() {
		var total repository.MonthTotal
		if err := rows.Scan(&total.Month, &total.Total); err != nil {
			return nil, fmt.Errorf("failed to scan month total: %w", err)
		}
		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return totals, nil
}

// SumInRange sums total_price over the inclusive [start, end] date range.
// An empty range yields 0, never an error.
func (r *SaleRepository) SumInRange(ctx context.Context, start, end time.Time) (float64, error) {
	query := `SELECT COALESCE(SUM(total_price), 0) FROM sales WHERE date BETWEEN $1 AND $2`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	var sum float64
	if err := stmt.QueryRowContext(ctx, start, end).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to query sales sum: %w", err)
	}

	return sum, nil
}

// TopProducts aggregates quantity and revenue per product. The ordering is
// total_quantity descending with product_id ascending as the tie-break, so
// rankings are deterministic.
func (r *SaleRepository) TopProducts(ctx context.Context, limit int) ([]repository.ProductSalesTotals, error) {
	query := `SELECT s.product_id, p.product_name, SUM(s.quantity) AS total_quantity, SUM(s.total_price) AS total_sales
	          FROM sales s JOIN products p ON s.product_id = p.id
	          GROUP BY s.product_id, p.product_name
	          ORDER BY total_quantity DESC, s.product_id ASC
	          LIMIT $1`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top products: %w", err)
	}
	defer rows.Close()

	var totals []repository.ProductSalesTotals
	for rows.Next() {
		var total repository.ProductSalesTotals
		if err := rows.Scan(&total.ProductID, &total.ProductName, &total.TotalQuantity, &total.TotalSales); err != nil {
			return nil, fmt.Errorf("failed to scan product totals: %w", err)
		}
		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return totals, nil
}
