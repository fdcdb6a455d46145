package model

import "time"

type Unit string

const (
	UnitKg    Unit = "kg"
	UnitLiter Unit = "L"
	UnitPiece Unit = "piece"
	UnitDozen Unit = "dozen"
	UnitLoaf  Unit = "loaf"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitKg, UnitLiter, UnitPiece, UnitDozen, UnitLoaf:
		return true
	}
	return false
}

// 価格は最小通貨単位（パイサ）のint64で持つ
type Product struct {
	ID              string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Category        string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Price           int64     `gorm:"not null" json:"price"`
	DiscountedPrice *int64    `json:"discounted_price,omitempty"`
	InStock         bool      `gorm:"not null;default:true" json:"in_stock"`
	IsHotDeal       bool      `gorm:"not null;default:false" json:"is_hot_deal"`
	Quantity        int64     `gorm:"not null" json:"quantity"`
	Unit            Unit      `gorm:"type:varchar(20);not null" json:"unit"`
	ImageURL        string    `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
