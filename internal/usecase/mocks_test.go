package usecase_test

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

type OrderRepositoryMock struct {
	mock.Mock
}

func (m *OrderRepositoryMock) ListAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepositoryMock) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	order, _ := args.Get(0).(model.Order)
	return order, args.Error(1)
}

func (m *OrderRepositoryMock) Create(ctx context.Context, order model.Order) (string, error) {
	args := m.Called(ctx, order)
	return args.String(0), args.Error(1)
}

func (m *OrderRepositoryMock) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus, updatedAt time.Time) error {
	args := m.Called(ctx, orderID, status, updatedAt)
	return args.Error(0)
}

type ProductRepositoryMock struct {
	mock.Mock
}

func (m *ProductRepositoryMock) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepositoryMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepositoryMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepositoryMock) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *ProductRepositoryMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ShopProfileRepositoryMock struct {
	mock.Mock
}

func (m *ShopProfileRepositoryMock) FindByShopID(ctx context.Context, shopID string) (model.ShopProfile, error) {
	args := m.Called(ctx, shopID)
	p, _ := args.Get(0).(model.ShopProfile)
	return p, args.Error(1)
}

func (m *ShopProfileRepositoryMock) Create(ctx context.Context, p model.ShopProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ShopProfileRepositoryMock) Update(ctx context.Context, p model.ShopProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type AuditLogRepositoryMock struct {
	mock.Mock
}

func (m *AuditLogRepositoryMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AuditLogRepositoryMock) List(ctx context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	args := m.Called(ctx, filter)
	logs, _ := args.Get(0).([]model.AuditLog)
	return logs, args.Error(1)
}

type ChangeNotifierMock struct {
	mock.Mock
}

func (m *ChangeNotifierMock) NotifyChanged(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// テストでは時刻を固定する
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type fixedIDGenerator struct {
	id string
}

func (g *fixedIDGenerator) NewID() string { return g.id }
