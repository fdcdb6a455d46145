package usecase

import (
	"time"

	"app/internal/domain/model"
)

// Session はリクエストごとにmiddlewareが組み立てて渡す。
// グローバルな「現在のログイン状態」は持たない。
type Session struct {
	UserID string
	ShopID string
	Role   model.Role
}

func (s Session) Valid() bool {
	return s.UserID != "" && s.ShopID != ""
}

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}
