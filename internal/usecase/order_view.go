package usecase

import (
	"sort"
	"strings"

	"app/internal/domain/model"
)

// DeriveOrderView はスナップショットから表示対象を導出する純関数。
// ステータス絞り込み→検索の順に適用し、元の相対順を保つ。
// ソートはしない（並びはストアが届けたまま）。
func DeriveOrderView(snapshot []model.Order, statusFilter *model.OrderStatus, query string) []model.Order {
	out := make([]model.Order, 0, len(snapshot))

	q := strings.ToLower(query)
	for _, o := range snapshot {
		if statusFilter != nil && o.Status != *statusFilter {
			continue
		}
		if q != "" && !orderMatchesQuery(o, q) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// 顧客名・注文ID・商品名は小文字化して比較、電話番号だけは
// 入力をそのまま部分一致させる（数字なので大小は関係ない）。
func orderMatchesQuery(o model.Order, q string) bool {
	if strings.Contains(strings.ToLower(o.CustomerName), q) {
		return true
	}
	if strings.Contains(o.CustomerPhone, q) {
		return true
	}
	if strings.Contains(strings.ToLower(o.ID), q) {
		return true
	}
	for _, item := range o.Items {
		if strings.Contains(strings.ToLower(item.ProductName), q) {
			return true
		}
	}
	return false
}

// RecentOrders は作成日時の新しい順に並べて先頭n件を返す。
// 入力スライスは変更しない。
func RecentOrders(snapshot []model.Order, n int) []model.Order {
	sorted := make([]model.Order, len(snapshot))
	copy(sorted, snapshot)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// OrderStatusCounts はタブのバッジ用カウント。
// 絞り込み結果と同じ導出から数えるので、一覧とズレない。
func OrderStatusCounts(snapshot []model.Order) map[model.OrderStatus]int {
	counts := make(map[model.OrderStatus]int, len(model.AllOrderStatuses))
	for _, s := range model.AllOrderStatuses {
		status := s
		counts[s] = len(DeriveOrderView(snapshot, &status, ""))
	}
	return counts
}
