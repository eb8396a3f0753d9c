package worker

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campushub/studenthub/internal/domain"
	"github.com/campushub/studenthub/internal/events"
	"github.com/campushub/studenthub/internal/service"
)

// NotificationWorker turns feedback lifecycle events into inbox entries for
// the ticket owner. Anonymous tickets have no owner and produce nothing.
type NotificationWorker struct {
	notifications *service.NotificationService
	logger        *zap.Logger
}

// NewNotificationWorker constructs the worker.
func NewNotificationWorker(notifications *service.NotificationService, logger *zap.Logger) *NotificationWorker {
	return &NotificationWorker{notifications: notifications, logger: logger}
}

// Register subscribes the worker to feedback events.
func (w *NotificationWorker) Register(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventFeedbackStatusChanged, w.handleStatusChanged)
	dispatcher.Subscribe(events.EventFeedbackResponded, w.handleResponded)
}

func (w *NotificationWorker) handleStatusChanged(ctx context.Context, event events.Event) error {
	if event.OwnerID == "" {
		return nil
	}
	payload, ok := event.Payload.(events.FeedbackStatusChangedPayload)
	if !ok {
		return nil
	}

	notification := domain.Notification{
		Title:   "Request Status Updated",
		Message: fmt.Sprintf("%s: your request %q is now %s", payload.Department, payload.Subject, payload.NewStatus),
		Type:    statusNotificationType(payload.NewStatus),
		Link:    "requests",
	}
	if err := w.notifications.Append(ctx, event.OwnerID, notification); err != nil {
		w.logger.Error("append status notification",
			zap.String("feedback_id", event.FeedbackID),
			zap.String("owner_id", event.OwnerID),
			zap.Error(err))
		return err
	}
	return nil
}

func (w *NotificationWorker) handleResponded(ctx context.Context, event events.Event) error {
	if event.OwnerID == "" {
		return nil
	}
	payload, ok := event.Payload.(events.FeedbackRespondedPayload)
	if !ok {
		return nil
	}

	notification := domain.Notification{
		Title:   "Feedback Response Received",
		Message: fmt.Sprintf("%s has responded to %q", payload.Department, payload.Subject),
		Type:    domain.NotificationTypeInfo,
		Link:    "requests",
	}
	if err := w.notifications.Append(ctx, event.OwnerID, notification); err != nil {
		w.logger.Error("append response notification",
			zap.String("feedback_id", event.FeedbackID),
			zap.String("owner_id", event.OwnerID),
			zap.Error(err))
		return err
	}
	return nil
}

func statusNotificationType(status domain.FeedbackStatus) domain.NotificationType {
	switch status {
	case domain.FeedbackStatusResolved, domain.FeedbackStatusClosed:
		return domain.NotificationTypeSuccess
	default:
		return domain.NotificationTypeInfo
	}
}
