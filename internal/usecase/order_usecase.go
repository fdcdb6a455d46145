package usecase

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 注文の書き込み後に購読者へ知らせる約束。
// ダッシュボードのプレビュー経路はNopChangeNotifierを挿して「通知しない」を明示する。
type ChangeNotifier interface {
	NotifyChanged(ctx context.Context) error
}

// 通知しない経路用
type NopChangeNotifier struct{}

func (NopChangeNotifier) NotifyChanged(ctx context.Context) error { return nil }

type OrderUsecase struct {
	orderRepo repo.OrderRepository
	auditRepo repo.AuditLogRepository
	notifier  ChangeNotifier
	clock     Clock
}

// DI
func NewOrderUsecase(
	orderRepo repo.OrderRepository,
	auditRepo repo.AuditLogRepository,
	notifier ChangeNotifier,
	clock Clock,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo: orderRepo,
		auditRepo: auditRepo,
		notifier:  notifier,
		clock:     clock,
	}
}

type OrderListOutput struct {
	Items  []model.Order             `json:"items"`
	Counts map[model.OrderStatus]int `json:"counts"`
}

// 注文一覧（ステータス＋検索で導出）
func (u *OrderUsecase) List(ctx context.Context, sess Session, statusFilter *model.OrderStatus, query string) (OrderListOutput, error) {
	if !sess.Valid() {
		return OrderListOutput{}, ErrUnauthorized
	}
	if statusFilter != nil && !statusFilter.Valid() {
		return OrderListOutput{}, NewValidationError("status", "unknown status")
	}

	snapshot, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return OrderListOutput{}, err
	}

	return OrderListOutput{
		Items:  DeriveOrderView(snapshot, statusFilter, query),
		Counts: OrderStatusCounts(snapshot),
	}, nil
}

// 直近n件（作成日時の新しい順）
func (u *OrderUsecase) Recent(ctx context.Context, sess Session, n int) ([]model.Order, error) {
	if !sess.Valid() {
		return nil, ErrUnauthorized
	}
	if n <= 0 {
		n = 3
	}

	snapshot, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return RecentOrders(snapshot, n), nil
}

// ステータス遷移。許可される辺は
// pending→packed / pending→cancelled / packed→completed / packed→cancelled のみ。
// それ以外（同一ステータス・終端からの遷移を含む）は書き込む前に弾く。
func (u *OrderUsecase) TransitionStatus(ctx context.Context, sess Session, orderID string, next model.OrderStatus) error {
	if !sess.Valid() {
		return ErrUnauthorized
	}
	if orderID == "" {
		return NewValidationError("order_id", "required")
	}
	if !next.Valid() {
		return NewValidationError("status", "unknown status")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return repo.ErrNotFound
	}
	if err != nil {
		return err
	}

	if o.Status == next {
		return NewValidationError("status", "already "+string(next))
	}
	if o.Status.Terminal() {
		return NewValidationError("status", "cannot change "+string(o.Status)+" order")
	}
	if !o.Status.CanTransitionTo(next) {
		return NewValidationError("status", "cannot change "+string(o.Status)+" order to "+string(next))
	}

	now := u.clock.Now()
	if err := u.orderRepo.UpdateStatus(ctx, orderID, next, now); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return repo.ErrNotFound
		}
		return NewStoreWriteError("update order status", err)
	}

	//操作ログ（UPDATE_ORDER_STATUS）
	beforeJSON := `{"status":"` + string(o.Status) + `"}`
	afterJSON := `{"status":"` + string(next) + `"}`
	if err := u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  sess.UserID,
		Action:       model.AuditActionUpdateOrderStatus,
		ResourceType: model.AuditResourceOrder,
		ResourceID:   orderID,
		BeforeJSON:   beforeJSON,
		AfterJSON:    afterJSON,
		CreatedAt:    now,
	}); err != nil {
		return NewStoreWriteError("write audit log", err)
	}

	//配信失敗は致命ではない。次の書き込みのシグナルで追いつく。
	_ = u.notifier.NotifyChanged(ctx)

	return nil
}
