package usecase_test

import (
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func sampleProducts() []model.Product {
	return []model.Product{
		{ID: "prod-1", Name: "Basmati Rice", Category: "Grains", Price: 2500, InStock: true, IsHotDeal: true, DiscountedPrice: int64Ptr(2000)},
		{ID: "prod-2", Name: "Wheat Flour", Category: "Grains", Price: 1800, InStock: false},
		{ID: "prod-3", Name: "Milk", Category: "Dairy", Price: 350, InStock: true},
		{ID: "prod-4", Name: "Cheddar Cheese", Category: "Dairy", Price: 1200, InStock: true, IsHotDeal: true, DiscountedPrice: int64Ptr(900)},
	}
}

func productIDs(products []model.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestDeriveCatalogView_NoFilter(t *testing.T) {
	//在庫切れ表示ONなら全件そのまま
	got := usecase.DeriveCatalogView(sampleProducts(), usecase.CatalogFilter{ShowOutOfStock: true})
	assert.Equal(t, []string{"prod-1", "prod-2", "prod-3", "prod-4"}, productIDs(got))
}

func TestDeriveCatalogView_HidesOutOfStock(t *testing.T) {
	got := usecase.DeriveCatalogView(sampleProducts(), usecase.CatalogFilter{ShowOutOfStock: false})
	assert.Equal(t, []string{"prod-1", "prod-3", "prod-4"}, productIDs(got))
}

func TestDeriveCatalogView_Search(t *testing.T) {
	//商品名に部分一致（大文字小文字を区別しない）
	got := usecase.DeriveCatalogView(sampleProducts(), usecase.CatalogFilter{Query: "RICE", ShowOutOfStock: true})
	assert.Equal(t, []string{"prod-1"}, productIDs(got))

	//カテゴリ名にもヒットする
	got = usecase.DeriveCatalogView(sampleProducts(), usecase.CatalogFilter{Query: "dairy", ShowOutOfStock: true})
	assert.Equal(t, []string{"prod-3", "prod-4"}, productIDs(got))
}

func TestDeriveCatalogView_Category(t *testing.T) {
	//カテゴリは完全一致
	got := usecase.DeriveCatalogView(sampleProducts(), usecase.CatalogFilter{Category: "Grains", ShowOutOfStock: true})
	assert.Equal(t, []string{"prod-1", "prod-2"}, productIDs(got))

	got = usecase.DeriveCatalogView(sampleProducts(), usecase.CatalogFilter{Category: "grains", ShowOutOfStock: true})
	assert.Empty(t, got)
}

func TestDeriveCatalogView_HotDealsOnly(t *testing.T) {
	got := usecase.DeriveCatalogView(sampleProducts(), usecase.CatalogFilter{HotDealsOnly: true, ShowOutOfStock: true})
	assert.Equal(t, []string{"prod-1", "prod-4"}, productIDs(got))
}

// 4述語はANDで重なる
func TestDeriveCatalogView_CombinedFilters(t *testing.T) {
	got := usecase.DeriveCatalogView(sampleProducts(), usecase.CatalogFilter{
		Query:          "cheese",
		Category:       "Dairy",
		ShowOutOfStock: false,
		HotDealsOnly:   true,
	})
	assert.Equal(t, []string{"prod-4"}, productIDs(got))

	//どれか1つでも落ちれば除外
	got = usecase.DeriveCatalogView(sampleProducts(), usecase.CatalogFilter{
		Query:        "cheese",
		Category:     "Grains",
		HotDealsOnly: true,
	})
	assert.Empty(t, got)
}

func TestCategories(t *testing.T) {
	//初出順・重複なし
	got := usecase.Categories(sampleProducts())
	assert.Equal(t, []string{"Grains", "Dairy"}, got)

	assert.Empty(t, usecase.Categories(nil))
}
