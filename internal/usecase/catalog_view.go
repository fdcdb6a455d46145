package usecase

import (
	"strings"

	"app/internal/domain/model"
)

// カタログの絞り込み条件。4つの述語はすべてANDで効く。
type CatalogFilter struct {
	Query          string
	Category       string
	ShowOutOfStock bool
	HotDealsOnly   bool
}

// DeriveCatalogView はスナップショットから表示対象の商品を導出する純関数。
func DeriveCatalogView(products []model.Product, f CatalogFilter) []model.Product {
	out := make([]model.Product, 0, len(products))

	q := strings.ToLower(f.Query)
	for _, p := range products {
		matchesSearch := q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q)

		matchesCategory := f.Category == "" || p.Category == f.Category

		matchesStock := f.ShowOutOfStock || p.InStock

		matchesHotDeal := !f.HotDealsOnly || p.IsHotDeal

		if matchesSearch && matchesCategory && matchesStock && matchesHotDeal {
			out = append(out, p)
		}
	}
	return out
}

// Categories は重複を除いたカテゴリ一覧（初出順）。
func Categories(products []model.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
