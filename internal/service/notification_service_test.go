package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campushub/studenthub/internal/domain"
	"github.com/campushub/studenthub/internal/kv"
)

func newNotificationFixture() (*NotificationService, *ProfileService, kv.Store) {
	store := kv.NewMemoryStore()
	profiles := NewProfileService(store)
	return NewNotificationService(store, profiles), profiles, store
}

func TestNotificationsAppendAndList(t *testing.T) {
	svc, _, _ := newNotificationFixture()
	ctx := context.Background()

	err := svc.Append(ctx, testIdentity.ID, domain.Notification{
		Title:   "Feedback Response Received",
		Message: "IT Services has responded to your WiFi issue",
		Type:    domain.NotificationTypeInfo,
		Link:    "requests",
	})
	require.NoError(t, err)

	notifications, err := svc.List(ctx, testIdentity)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.NotEmpty(t, notifications[0].ID)
	require.False(t, notifications[0].Read)
	require.False(t, notifications[0].Timestamp.IsZero())
}

func TestNotificationsList_EmptyInbox(t *testing.T) {
	svc, _, _ := newNotificationFixture()

	notifications, err := svc.List(context.Background(), testIdentity)
	require.NoError(t, err)
	require.NotNil(t, notifications)
	require.Empty(t, notifications)
}

func TestNotificationsMarkRead_Idempotent(t *testing.T) {
	svc, profiles, _ := newNotificationFixture()
	ctx := context.Background()

	require.NoError(t, svc.Append(ctx, testIdentity.ID, domain.Notification{ID: "notif-1", Title: "a", Message: "m", Type: domain.NotificationTypeInfo}))
	require.NoError(t, svc.Append(ctx, testIdentity.ID, domain.Notification{ID: "notif-2", Title: "b", Message: "m", Type: domain.NotificationTypeWarning}))

	require.NoError(t, svc.MarkRead(ctx, testIdentity, "notif-1"))
	require.NoError(t, svc.MarkRead(ctx, testIdentity, "notif-1"))

	notifications, err := svc.List(ctx, testIdentity)
	require.NoError(t, err)
	readStates := map[string]bool{}
	for _, n := range notifications {
		readStates[n.ID] = n.Read
	}
	require.True(t, readStates["notif-1"])
	require.False(t, readStates["notif-2"])

	// the cached profile count follows the list
	profile, err := profiles.Get(ctx, testIdentity)
	require.NoError(t, err)
	require.Equal(t, 1, profile.NotificationCount)
}

func TestNotificationsMarkRead_UnknownIDIsNoOp(t *testing.T) {
	svc, _, _ := newNotificationFixture()
	ctx := context.Background()

	require.NoError(t, svc.Append(ctx, testIdentity.ID, domain.Notification{ID: "notif-1", Title: "a", Message: "m", Type: domain.NotificationTypeInfo}))
	require.NoError(t, svc.MarkRead(ctx, testIdentity, "notif-missing"))

	count, err := svc.UnreadCount(ctx, testIdentity)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestNotificationsUnreadCount_IgnoresCachedProfileValue(t *testing.T) {
	svc, profiles, _ := newNotificationFixture()
	ctx := context.Background()

	require.NoError(t, svc.Append(ctx, testIdentity.ID, domain.Notification{ID: "notif-1", Title: "a", Message: "m", Type: domain.NotificationTypeInfo}))
	require.NoError(t, svc.Append(ctx, testIdentity.ID, domain.Notification{ID: "notif-2", Title: "b", Message: "m", Type: domain.NotificationTypeError}))

	// poison the cache; the count endpoint must not trust it
	require.NoError(t, profiles.SetNotificationCount(ctx, testIdentity.ID, 99))

	count, err := svc.UnreadCount(ctx, testIdentity)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestNotificationsAppend_DefaultsInvalidType(t *testing.T) {
	svc, _, _ := newNotificationFixture()
	ctx := context.Background()

	require.NoError(t, svc.Append(ctx, testIdentity.ID, domain.Notification{
		Title:     "odd",
		Message:   "m",
		Type:      "critical",
		Timestamp: time.Now(),
	}))

	notifications, err := svc.List(ctx, testIdentity)
	require.NoError(t, err)
	require.Equal(t, domain.NotificationTypeInfo, notifications[0].Type)
}
