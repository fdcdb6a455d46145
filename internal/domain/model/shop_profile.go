package model

import "time"

type ShopType string

const (
	ShopTypeGrocery    ShopType = "Grocery"
	ShopTypeVegetables ShopType = "Vegetables"
	ShopTypeMedical    ShopType = "Medical"
	ShopTypeAllItems   ShopType = "All Items"
)

func (t ShopType) Valid() bool {
	switch t {
	case ShopTypeGrocery, ShopTypeVegetables, ShopTypeMedical, ShopTypeAllItems:
		return true
	}
	return false
}

// 店舗ごとに1件
type ShopProfile struct {
	ID              string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	OwnerName       string    `gorm:"type:varchar(255);not null" json:"owner_name"`
	Email           string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone           string    `gorm:"type:varchar(32);not null" json:"phone"`
	PinCode         string    `gorm:"type:varchar(16);not null" json:"pin_code"`
	ShopType        ShopType  `gorm:"type:varchar(20);not null" json:"shop_type"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	Address         string    `gorm:"type:text" json:"address,omitempty"`
	LogoURL         string    `gorm:"type:text" json:"logo_url,omitempty"`
	BannerURL       string    `gorm:"type:text" json:"banner_url,omitempty"`
	PickupAvailable bool      `gorm:"not null;default:false" json:"pickup_available"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
