package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublishFillsIDAndTimestamp(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen Event
	dispatcher.Subscribe(EventFeedbackSubmitted, func(_ context.Context, e Event) error {
		seen = e
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventFeedbackSubmitted, FeedbackID: "REQ-1"})
	require.NoError(t, err)
	require.NotEmpty(t, seen.ID)
	require.False(t, seen.Timestamp.IsZero())
	require.Equal(t, "REQ-1", seen.FeedbackID)
}

func TestPublishOnlyReachesSubscribedType(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	calls := 0
	dispatcher.Subscribe(EventFeedbackResponded, func(context.Context, Event) error {
		calls++
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventFeedbackStatusChanged}))
	require.Zero(t, calls)

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventFeedbackResponded}))
	require.Equal(t, 1, calls)
}

func TestHandlerErrorDoesNotStopOthers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	dispatcher.Subscribe(EventFeedbackSubmitted, func(context.Context, Event) error {
		return errors.New("boom")
	})
	reached := false
	dispatcher.Subscribe(EventFeedbackSubmitted, func(context.Context, Event) error {
		reached = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventFeedbackSubmitted}))
	require.True(t, reached)
}
