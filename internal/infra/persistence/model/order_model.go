package model

import "time"

// OrderModel mirrors the 'product_orders' table. Price is the product price
// at purchase time, copied on insert.
type OrderModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"not null;index"`
	ProductID int64     `gorm:"not null;index"`
	Price     float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "product_orders"
}
