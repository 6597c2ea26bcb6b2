package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// OrderItem is one cart line. Lines live inside the order's JSON items
// column and are immutable once the order exists.
type OrderItem struct {
	MenuID   uint    `json:"menu_id,omitempty"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

type OrderItems []OrderItem

func (items OrderItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *OrderItems) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	case nil:
		*items = nil
		return nil
	default:
		return errors.New("unsupported type for order items")
	}
}

func (items OrderItems) Total() float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

// Order is created once at checkout and only its Status ever changes
// afterwards. The ID doubles as the pickup token shown to the student.
type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	UserID     uint        `gorm:"not null;index" json:"user_id"`
	User       User        `gorm:"foreignKey:UserID" json:"-"`
	Items      OrderItems  `gorm:"type:json;not null" json:"items"`
	TotalPrice float64     `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt  time.Time   `gorm:"not null" json:"created_at"`
}
