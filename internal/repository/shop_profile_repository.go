package repository

import (
	"context"

	"app/internal/domain/model"
)

// 店舗プロフィール（店舗ごとに1件）の保存・取得を約束。
type ShopProfileRepository interface {
	FindByShopID(ctx context.Context, shopID string) (model.ShopProfile, error)
	Create(ctx context.Context, p model.ShopProfile) error
	Update(ctx context.Context, p model.ShopProfile) error
}
