package usecase

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ダッシュボードは購読なしの読み取り専用プレビュー。
// 表示は同じ導出関数から作るので、注文ページとズレない。
type DashboardUsecase struct {
	orderRepo   repo.OrderRepository
	productRepo repo.ProductRepository
}

func NewDashboardUsecase(orderRepo repo.OrderRepository, productRepo repo.ProductRepository) *DashboardUsecase {
	return &DashboardUsecase{orderRepo: orderRepo, productRepo: productRepo}
}

type DashboardSummary struct {
	RecentOrders []model.Order             `json:"recent_orders"`
	HotDeals     []model.Product           `json:"hot_deals"`
	Counts       map[model.OrderStatus]int `json:"counts"`
	TotalOrders  int                       `json:"total_orders"`
	//完了済み注文の合計金額（パイサ）
	CompletedRevenue int64 `json:"completed_revenue"`
}

func (u *DashboardUsecase) Summary(ctx context.Context, sess Session) (DashboardSummary, error) {
	if !sess.Valid() {
		return DashboardSummary{}, ErrUnauthorized
	}

	orders, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	products, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	var revenue int64
	for _, o := range orders {
		if o.Status == model.OrderStatusCompleted {
			revenue += o.TotalAmount
		}
	}

	deals := DeriveCatalogView(products, CatalogFilter{ShowOutOfStock: true, HotDealsOnly: true})
	if len(deals) > 3 {
		deals = deals[:3]
	}

	return DashboardSummary{
		RecentOrders:     RecentOrders(orders, 3),
		HotDeals:         deals,
		Counts:           OrderStatusCounts(orders),
		TotalOrders:      len(orders),
		CompletedRevenue: revenue,
	}, nil
}
