package alert

import "context"

// AlertService creates and serves alerts. Emit is the write path used by the
// time-tracking service and the missed-shift sweeper; the rest backs the
// dashboard.
type AlertService interface {
	Emit(ctx context.Context, req EmitAlertRequest) error
	ListAlerts(ctx context.Context, req ListAlertsRequest) ([]AlertResponse, error)
	MarkAlertRead(ctx context.Context, companyID string, id string, isRead bool) (AlertResponse, error)
	MarkAllAlertsRead(ctx context.Context, companyID string) error
	UnreadCount(ctx context.Context, companyID string) (int, error)
}
