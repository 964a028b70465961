package domain

import "time"

// Orders is one purchased line; a customer's history is their rows
// newest-first.
type Orders struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	UserID      int       `gorm:"column:user_id;not null" json:"user_id"`
	CardID      uint64    `gorm:"column:card_id;not null" json:"card_id"`
	Quantity    int       `gorm:"column:quantity;not null" json:"quantity"`
	PriceEach   float64   `gorm:"column:price_each" json:"price_each"`
	Subtotal    float64   `gorm:"column:subtotal" json:"subtotal"`
	OrderStatus string    `gorm:"column:order_status" json:"order_status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Orders) TableName() string {
	return "orders"
}
