package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campushub/studenthub/internal/domain"
	"github.com/campushub/studenthub/internal/events"
	"github.com/campushub/studenthub/internal/kv"
	apperrors "github.com/campushub/studenthub/pkg/util"
)

var testIdentity = domain.Identity{ID: "user-1", Email: "dana@university.edu", Name: "Dana"}

func validInput() FeedbackInput {
	return FeedbackInput{
		Department:  "IT Services",
		Category:    "Issue/Problem",
		Subject:     "WiFi down",
		Description: "No connectivity in the library since this morning.",
		Priority:    domain.FeedbackPriorityHigh,
	}
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	require.Equal(t, status, domainErr.HTTPStatus)
}

func TestFeedbackSubmit(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := NewFeedbackService(store, events.NewInMemoryDispatcher())
	ctx := context.Background()

	feedback, err := svc.Submit(ctx, testIdentity, validInput())
	require.NoError(t, err)
	require.NotEmpty(t, feedback.ID)
	require.Equal(t, domain.FeedbackStatusPending, feedback.Status)
	require.Equal(t, feedback.SubmittedDate, feedback.LastUpdate)
	require.Equal(t, testIdentity.ID, feedback.UserID)
	require.Equal(t, testIdentity.Email, feedback.UserEmail)
	require.Equal(t, "Dana", feedback.UserName)

	owned, err := svc.ListOwned(ctx, testIdentity)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	require.Equal(t, feedback.ID, owned[0].ID)
}

func TestFeedbackSubmit_UniqueIDs(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := NewFeedbackService(store, events.NewInMemoryDispatcher())
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		feedback, err := svc.Submit(ctx, testIdentity, validInput())
		require.NoError(t, err)
		require.False(t, seen[feedback.ID], "duplicate id %s", feedback.ID)
		seen[feedback.ID] = true
	}
}

func TestFeedbackSubmit_Validation(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := NewFeedbackService(store, events.NewInMemoryDispatcher())

	input := validInput()
	input.Subject = "   "
	_, err := svc.Submit(context.Background(), testIdentity, input)
	requireStatus(t, err, http.StatusBadRequest)

	input = validInput()
	input.Priority = "urgent"
	_, err = svc.Submit(context.Background(), testIdentity, input)
	requireStatus(t, err, http.StatusBadRequest)
}

func TestFeedbackSubmit_Anonymous(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := NewFeedbackService(store, events.NewInMemoryDispatcher())
	ctx := context.Background()

	input := validInput()
	input.Anonymous = true
	feedback, err := svc.Submit(ctx, testIdentity, input)
	require.NoError(t, err)
	require.Equal(t, domain.AnonymousUserID, feedback.UserID)
	require.Equal(t, domain.AnonymousUserID, feedback.UserEmail)
	require.Equal(t, "Anonymous", feedback.UserName)

	owned, err := svc.ListOwned(ctx, testIdentity)
	require.NoError(t, err)
	require.Empty(t, owned)

	// anonymous tickets are retrievable by id by any authenticated caller
	other := domain.Identity{ID: "user-2", Email: "sam@university.edu", Name: "Sam"}
	got, err := svc.GetOne(ctx, other, feedback.ID)
	require.NoError(t, err)
	require.Equal(t, feedback.ID, got.ID)
}

func TestFeedbackGetOne_Authorization(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := NewFeedbackService(store, events.NewInMemoryDispatcher())
	ctx := context.Background()

	feedback, err := svc.Submit(ctx, testIdentity, validInput())
	require.NoError(t, err)

	got, err := svc.GetOne(ctx, testIdentity, feedback.ID)
	require.NoError(t, err)
	require.Equal(t, feedback.ID, got.ID)

	other := domain.Identity{ID: "user-2", Email: "sam@university.edu", Name: "Sam"}
	_, err = svc.GetOne(ctx, other, feedback.ID)
	requireStatus(t, err, http.StatusUnauthorized)

	_, err = svc.GetOne(ctx, testIdentity, "REQ-does-not-exist")
	requireStatus(t, err, http.StatusNotFound)
}

func TestFeedbackListOwned_ToleratesMissingRecords(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := NewFeedbackService(store, events.NewInMemoryDispatcher())
	ctx := context.Background()

	first, err := svc.Submit(ctx, testIdentity, validInput())
	require.NoError(t, err)
	second, err := svc.Submit(ctx, testIdentity, validInput())
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, kv.FeedbackKey(first.ID)))

	owned, err := svc.ListOwned(ctx, testIdentity)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	require.Equal(t, second.ID, owned[0].ID)
}

func TestFeedbackAdvanceStatus(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := NewFeedbackService(store, events.NewInMemoryDispatcher())
	ctx := context.Background()

	feedback, err := svc.Submit(ctx, testIdentity, validInput())
	require.NoError(t, err)

	updated, err := svc.AdvanceStatus(ctx, feedback.ID, domain.FeedbackStatusInProgress, "assigned to network team")
	require.NoError(t, err)
	require.Equal(t, domain.FeedbackStatusInProgress, updated.Status)
	require.Len(t, updated.Updates, 1)
	require.True(t, !updated.LastUpdate.Before(updated.SubmittedDate))

	// backward transitions are rejected
	_, err = svc.AdvanceStatus(ctx, feedback.ID, domain.FeedbackStatusPending, "")
	requireStatus(t, err, http.StatusBadRequest)

	_, err = svc.AdvanceStatus(ctx, feedback.ID, domain.FeedbackStatusResolved, "fixed")
	require.NoError(t, err)
	_, err = svc.AdvanceStatus(ctx, feedback.ID, domain.FeedbackStatusClosed, "")
	require.NoError(t, err)
	_, err = svc.AdvanceStatus(ctx, feedback.ID, domain.FeedbackStatusResolved, "")
	requireStatus(t, err, http.StatusBadRequest)
}

func TestFeedbackAddResponse(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := NewFeedbackService(store, events.NewInMemoryDispatcher())
	ctx := context.Background()

	feedback, err := svc.Submit(ctx, testIdentity, validInput())
	require.NoError(t, err)

	updated, err := svc.AddResponse(ctx, feedback.ID, "IT Services", "A technician is on the way.")
	require.NoError(t, err)
	require.Len(t, updated.Responses, 1)
	require.Equal(t, "IT Services", updated.Responses[0].Author)

	_, err = svc.AddResponse(ctx, feedback.ID, "IT Services", "  ")
	requireStatus(t, err, http.StatusBadRequest)
}

func TestFeedbackRebuildOwnerIndexes(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := NewFeedbackService(store, events.NewInMemoryDispatcher())
	ctx := context.Background()

	first, err := svc.Submit(ctx, testIdentity, validInput())
	require.NoError(t, err)
	second, err := svc.Submit(ctx, testIdentity, validInput())
	require.NoError(t, err)

	anonymous := validInput()
	anonymous.Anonymous = true
	_, err = svc.Submit(ctx, testIdentity, anonymous)
	require.NoError(t, err)

	// simulate a partial write: the index is lost but tickets survive
	require.NoError(t, store.Delete(ctx, kv.OwnerIndexKey(testIdentity.ID)))
	owned, err := svc.ListOwned(ctx, testIdentity)
	require.NoError(t, err)
	require.Empty(t, owned)

	rebuilt, err := svc.RebuildOwnerIndexes(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, rebuilt)

	owned, err = svc.ListOwned(ctx, testIdentity)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	require.Equal(t, []string{first.ID, second.ID}, []string{owned[0].ID, owned[1].ID})
}
