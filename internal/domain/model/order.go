package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPacked    OrderStatus = "packed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// バッジ表示の固定順
var AllOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPacked,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPacked, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// completed / cancelled からは遷移できない
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// 許可される遷移だけtrue
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusPacked || next == OrderStatusCancelled
	case OrderStatusPacked:
		return next == OrderStatusCompleted || next == OrderStatusCancelled
	}
	return false
}

type Order struct {
	ID            string      `gorm:"type:varchar(64);primaryKey" json:"id"`
	CustomerID    string      `gorm:"type:varchar(64);not null;index" json:"customer_id"`
	CustomerName  string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone string      `gorm:"type:varchar(32);not null" json:"customer_phone"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	TotalAmount   int64       `gorm:"not null" json:"total_amount"`
	Status        OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt     time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
}
