package model

type OrderItem struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID     string `gorm:"type:varchar(64);not null;index" json:"-"`
	ProductID   string `gorm:"type:varchar(64);not null" json:"product_id"`
	ProductName string `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity    int64  `gorm:"not null" json:"quantity"`
	UnitPrice   int64  `gorm:"not null" json:"unit_price"`
	LineTotal   int64  `gorm:"not null" json:"line_total"`
}

// 保存値は信用せず単価×数量で計算し直す
func (i OrderItem) ComputedLineTotal() int64 {
	return i.UnitPrice * i.Quantity
}
