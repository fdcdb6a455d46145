package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

//操作ログの絞り込み条件。

type AuditLogFilter struct {
	ActorUserID  *string
	Action       *model.AuditAction
	ResourceType *model.AuditResourceType
	ResourceID   *string
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
	Limit        int
	Offset       int
}

// 操作ログの保存・一覧取得の約束。
type AuditLogRepository interface {
	//ログを1件保存
	Create(ctx context.Context, log model.AuditLog) error

	//ログを条件で一覧取得。
	List(ctx context.Context, filter AuditLogFilter) ([]model.AuditLog, error)
}
