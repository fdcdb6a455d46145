package model_test

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range model.AllOrderStatuses {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}
	assert.False(t, model.OrderStatus("shipped").Valid())
	assert.False(t, model.OrderStatus("").Valid())
	assert.False(t, model.OrderStatus("PENDING").Valid())
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.False(t, model.OrderStatusPending.Terminal())
	assert.False(t, model.OrderStatusPacked.Terminal())
	assert.True(t, model.OrderStatusCompleted.Terminal())
	assert.True(t, model.OrderStatusCancelled.Terminal())
}

// 許可される辺は4本だけ。全組み合わせを総当たりで確認する。
func TestOrderStatus_CanTransitionTo_Exhaustive(t *testing.T) {
	allowed := map[[2]model.OrderStatus]bool{
		{model.OrderStatusPending, model.OrderStatusPacked}:    true,
		{model.OrderStatusPending, model.OrderStatusCancelled}: true,
		{model.OrderStatusPacked, model.OrderStatusCompleted}:  true,
		{model.OrderStatusPacked, model.OrderStatusCancelled}:  true,
	}

	for _, from := range model.AllOrderStatuses {
		for _, to := range model.AllOrderStatuses {
			want := allowed[[2]model.OrderStatus{from, to}]
			got := from.CanTransitionTo(to)
			assert.Equal(t, want, got, "%s -> %s", from, to)
		}
	}

	//未知のステータスへは常に不可
	assert.False(t, model.OrderStatusPending.CanTransitionTo("shipped"))
	assert.False(t, model.OrderStatus("shipped").CanTransitionTo(model.OrderStatusPacked))
}

func TestOrderItem_ComputedLineTotal(t *testing.T) {
	item := model.OrderItem{Quantity: 3, UnitPrice: 250, LineTotal: 999}
	//保存されたline_totalではなく再計算した値
	assert.Equal(t, int64(750), item.ComputedLineTotal())
}

func TestUnit_Valid(t *testing.T) {
	for _, u := range []model.Unit{model.UnitKg, model.UnitLiter, model.UnitPiece, model.UnitDozen, model.UnitLoaf} {
		assert.True(t, u.Valid(), "unit %q should be valid", u)
	}
	assert.False(t, model.Unit("gram").Valid())
	assert.False(t, model.Unit("").Valid())
}
