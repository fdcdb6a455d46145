package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var ownerSession = usecase.Session{
	UserID: "user-1",
	ShopID: "shop-1",
	Role:   model.RoleOwner,
}

func newOrderUsecaseForTest(now time.Time) (*usecase.OrderUsecase, *OrderRepositoryMock, *AuditLogRepositoryMock, *ChangeNotifierMock) {
	orderRepo := new(OrderRepositoryMock)
	auditRepo := new(AuditLogRepositoryMock)
	notifier := new(ChangeNotifierMock)
	uc := usecase.NewOrderUsecase(orderRepo, auditRepo, notifier, &fixedClock{now: now})
	return uc, orderRepo, auditRepo, notifier
}

func TestOrderUsecase_List(t *testing.T) {
	uc, orderRepo, _, _ := newOrderUsecaseForTest(viewBase)
	orderRepo.On("ListAll", mock.Anything).Return(sampleOrders(), nil)

	status := model.OrderStatusPending
	out, err := uc.List(context.Background(), ownerSession, &status, "")

	assert.NoError(t, err)
	assert.Equal(t, []string{"order-1"}, orderIDs(out.Items))
	//カウントはフィルタ前のスナップショット全体から出す
	assert.Equal(t, 1, out.Counts[model.OrderStatusPacked])
	assert.Equal(t, 1, out.Counts[model.OrderStatusCompleted])
	orderRepo.AssertExpectations(t)
}

func TestOrderUsecase_List_UnknownStatus(t *testing.T) {
	uc, orderRepo, _, _ := newOrderUsecaseForTest(viewBase)

	status := model.OrderStatus("shipped")
	_, err := uc.List(context.Background(), ownerSession, &status, "")

	ve, ok := usecase.AsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "status", ve.Field)
	orderRepo.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestOrderUsecase_List_Unauthorized(t *testing.T) {
	uc, orderRepo, _, _ := newOrderUsecaseForTest(viewBase)

	_, err := uc.List(context.Background(), usecase.Session{}, nil, "")

	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
	orderRepo.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestOrderUsecase_Recent_DefaultsToThree(t *testing.T) {
	uc, orderRepo, _, _ := newOrderUsecaseForTest(viewBase)
	orderRepo.On("ListAll", mock.Anything).Return(sampleOrders(), nil)

	got, err := uc.Recent(context.Background(), ownerSession, 0)

	assert.NoError(t, err)
	assert.Equal(t, []string{"order-1", "order-2", "order-3"}, orderIDs(got))
}

func TestOrderUsecase_TransitionStatus(t *testing.T) {
	now := viewBase
	uc, orderRepo, auditRepo, notifier := newOrderUsecaseForTest(now)

	orderRepo.On("FindByID", mock.Anything, "order-1").
		Return(model.Order{ID: "order-1", Status: model.OrderStatusPending}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, "order-1", model.OrderStatusPacked, now).
		Return(nil)
	auditRepo.On("Create", mock.Anything, mock.MatchedBy(func(log model.AuditLog) bool {
		return log.Action == model.AuditActionUpdateOrderStatus &&
			log.ResourceID == "order-1" &&
			log.ActorUserID == "user-1"
	})).Return(nil)
	notifier.On("NotifyChanged", mock.Anything).Return(nil)

	err := uc.TransitionStatus(context.Background(), ownerSession, "order-1", model.OrderStatusPacked)

	assert.NoError(t, err)
	orderRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

// 不正な遷移は書き込みも通知も起こさない
func TestOrderUsecase_TransitionStatus_Rejected(t *testing.T) {
	cases := []struct {
		name    string
		current model.OrderStatus
		next    model.OrderStatus
	}{
		{"pending to completed", model.OrderStatusPending, model.OrderStatusCompleted},
		{"packed to pending", model.OrderStatusPacked, model.OrderStatusPending},
		{"completed is terminal", model.OrderStatusCompleted, model.OrderStatusPacked},
		{"cancelled is terminal", model.OrderStatusCancelled, model.OrderStatusPending},
		{"same status", model.OrderStatusPending, model.OrderStatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, orderRepo, auditRepo, notifier := newOrderUsecaseForTest(viewBase)
			orderRepo.On("FindByID", mock.Anything, "order-1").
				Return(model.Order{ID: "order-1", Status: tc.current}, nil)

			err := uc.TransitionStatus(context.Background(), ownerSession, "order-1", tc.next)

			_, ok := usecase.AsValidationError(err)
			assert.True(t, ok, "expected ValidationError, got %v", err)
			orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			auditRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			notifier.AssertNotCalled(t, "NotifyChanged", mock.Anything)
		})
	}
}

func TestOrderUsecase_TransitionStatus_UnknownStatus(t *testing.T) {
	uc, orderRepo, _, _ := newOrderUsecaseForTest(viewBase)

	err := uc.TransitionStatus(context.Background(), ownerSession, "order-1", model.OrderStatus("shipped"))

	_, ok := usecase.AsValidationError(err)
	assert.True(t, ok)
	orderRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestOrderUsecase_TransitionStatus_NotFound(t *testing.T) {
	uc, orderRepo, _, _ := newOrderUsecaseForTest(viewBase)
	orderRepo.On("FindByID", mock.Anything, "missing").
		Return(model.Order{}, repo.ErrNotFound)

	err := uc.TransitionStatus(context.Background(), ownerSession, "missing", model.OrderStatusPacked)

	assert.ErrorIs(t, err, repo.ErrNotFound)
}

// ストア書き込みの失敗はStoreWriteErrorに包む
func TestOrderUsecase_TransitionStatus_WriteFailure(t *testing.T) {
	uc, orderRepo, auditRepo, notifier := newOrderUsecaseForTest(viewBase)
	orderRepo.On("FindByID", mock.Anything, "order-1").
		Return(model.Order{ID: "order-1", Status: model.OrderStatusPending}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, "order-1", model.OrderStatusPacked, mock.Anything).
		Return(errors.New("connection reset"))

	err := uc.TransitionStatus(context.Background(), ownerSession, "order-1", model.OrderStatusPacked)

	swe, ok := usecase.AsStoreWriteError(err)
	assert.True(t, ok)
	assert.Equal(t, "update order status", swe.Op)
	auditRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "NotifyChanged", mock.Anything)
}

// 通知の失敗で遷移自体は失敗しない
func TestOrderUsecase_TransitionStatus_NotifyFailureIsNotFatal(t *testing.T) {
	uc, orderRepo, auditRepo, notifier := newOrderUsecaseForTest(viewBase)
	orderRepo.On("FindByID", mock.Anything, "order-1").
		Return(model.Order{ID: "order-1", Status: model.OrderStatusPacked}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, "order-1", model.OrderStatusCompleted, mock.Anything).
		Return(nil)
	auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifier.On("NotifyChanged", mock.Anything).Return(errors.New("redis down"))

	err := uc.TransitionStatus(context.Background(), ownerSession, "order-1", model.OrderStatusCompleted)

	assert.NoError(t, err)
	notifier.AssertExpectations(t)
}
