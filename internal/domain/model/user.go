package model

import "time"

type Role string

const (
	RoleOwner Role = "OWNER"
)

// 店舗オーナーのアカウント
type User struct {
	ID           string `gorm:"type:varchar(64);primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'OWNER'"`
	ShopID       string `gorm:"type:varchar(64);not null;index"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
