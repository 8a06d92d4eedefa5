package model

import "time"

// DateFormat is the wire format for sale dates (calendar date, no time of day).
const DateFormat = "2006-01-02"

// Sale represents a single recorded transaction. TotalPrice is the amount
// actually charged and is never recomputed from quantity and product price.
type Sale struct {
	ID         int64
	Name       string
	ProductID  int64
	Quantity   int
	TotalPrice float64
	Date       time.Time
	CreatedAt  time.Time
}

// InitMeta initializes the creation timestamp. The ID is assigned by the
// database on insert.
func (s *Sale) InitMeta() {
	s.CreatedAt = time.Now()
}

// SaleWithPrice is a sale enriched with the referenced product's current
// price. The price comes from a live join, not a snapshot taken at sale time.
type SaleWithPrice struct {
	Sale
	Price float64
}
