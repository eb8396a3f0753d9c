package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/studenthub/internal/domain"
	"github.com/campushub/studenthub/internal/kv"
)

// NotificationService owns per-user inboxes with read-tracking and unread
// counting. The profile's notificationCount is a cache refreshed here; the
// inbox list is always the source of truth.
type NotificationService struct {
	store    kv.Store
	profiles *ProfileService
}

// NewNotificationService constructs the service.
func NewNotificationService(store kv.Store, profiles *ProfileService) *NotificationService {
	return &NotificationService{store: store, profiles: profiles}
}

// List returns the user's notifications as stored; callers sort for display.
func (s *NotificationService) List(ctx context.Context, identity domain.Identity) ([]domain.Notification, error) {
	return s.load(ctx, identity.ID)
}

// MarkRead flags one notification as read. Unknown ids are a no-op, so the
// call is idempotent and permissive. The unread count is then recomputed
// from the full list and written into the profile cache; the two writes are
// not atomic.
func (s *NotificationService) MarkRead(ctx context.Context, identity domain.Identity, notificationID string) error {
	notifications, err := s.load(ctx, identity.ID)
	if err != nil {
		return err
	}

	for i := range notifications {
		if notifications[i].ID == notificationID {
			notifications[i].Read = true
		}
	}

	if err := s.store.Set(ctx, kv.InboxKey(identity.ID), notifications); err != nil {
		return err
	}
	return s.profiles.SetNotificationCount(ctx, identity.ID, domain.UnreadCount(notifications))
}

// UnreadCount recomputes the count from the notification list. It never
// reads the cached profile field.
func (s *NotificationService) UnreadCount(ctx context.Context, identity domain.Identity) (int, error) {
	notifications, err := s.load(ctx, identity.ID)
	if err != nil {
		return 0, err
	}
	return domain.UnreadCount(notifications), nil
}

// Append adds an unread notification to a user's inbox and refreshes the
// cached count. Invoked by the notification worker on feedback events.
func (s *NotificationService) Append(ctx context.Context, userID string, notification domain.Notification) error {
	if notification.ID == "" {
		notification.ID = "notif-" + uuid.NewString()
	}
	if notification.Timestamp.IsZero() {
		notification.Timestamp = time.Now()
	}
	if !domain.ValidNotificationType(notification.Type) {
		notification.Type = domain.NotificationTypeInfo
	}
	notification.Read = false

	notifications, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	notifications = append(notifications, notification)

	if err := s.store.Set(ctx, kv.InboxKey(userID), notifications); err != nil {
		return err
	}
	return s.profiles.SetNotificationCount(ctx, userID, domain.UnreadCount(notifications))
}

func (s *NotificationService) load(ctx context.Context, userID string) ([]domain.Notification, error) {
	var notifications []domain.Notification
	if _, err := s.store.Get(ctx, kv.InboxKey(userID), &notifications); err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	return notifications, nil
}
