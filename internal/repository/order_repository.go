package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

// 注文の永続化（取得・ステータス更新）だけを約束。
// 並び順はストア任せ（呼び出し側は順序を仮定しない）。
type OrderRepository interface {
	//全件スナップショット（明細込み）
	ListAll(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	Create(ctx context.Context, order model.Order) (string, error)

	//ステータスと更新時刻だけを書き換える
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus, updatedAt time.Time) error
}
