package alert

import "context"

type AlertRepository interface {
	Create(ctx context.Context, a Alert) (Alert, error)

	// List returns alerts newest first, optionally unread only, capped at
	// limit.
	List(ctx context.Context, companyID string, unreadOnly bool, limit int) ([]Alert, error)

	MarkRead(ctx context.Context, id string, companyID string, isRead bool) (Alert, error)
	MarkAllRead(ctx context.Context, companyID string) error
	CountUnread(ctx context.Context, companyID string) (int, error)
}
