package model

import "time"

// Product represents a catalog entry sold by the shop.
type Product struct {
	ID          int64
	ProductName string
	Price       float64
	CreatedAt   time.Time
}

// InitMeta initializes the creation timestamp. The ID is assigned by the
// database on insert.
func (p *Product) InitMeta() {
	p.CreatedAt = time.Now()
}
