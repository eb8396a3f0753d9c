package service

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/studenthub/internal/domain"
	"github.com/campushub/studenthub/internal/events"
	"github.com/campushub/studenthub/internal/kv"
	apperrors "github.com/campushub/studenthub/pkg/util"
)

// FeedbackService owns the ticket lifecycle and enforces ownership-based
// read access.
type FeedbackService struct {
	store      kv.Store
	dispatcher events.Dispatcher
}

// NewFeedbackService constructs the service.
func NewFeedbackService(store kv.Store, dispatcher events.Dispatcher) *FeedbackService {
	return &FeedbackService{store: store, dispatcher: dispatcher}
}

// FeedbackInput describes a submission payload.
type FeedbackInput struct {
	Department  string
	Category    string
	Subject     string
	Description string
	Priority    domain.FeedbackPriority
	Anonymous   bool
}

func (in *FeedbackInput) validate() error {
	details := map[string]any{}
	for field, value := range map[string]string{
		"department":  in.Department,
		"category":    in.Category,
		"subject":     in.Subject,
		"description": in.Description,
	} {
		if strings.TrimSpace(value) == "" {
			details[field] = "required"
		}
	}
	if !domain.ValidPriority(in.Priority) {
		details["priority"] = "must be one of low, medium, high"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid feedback payload", details)
	}
	return nil
}

// Submit creates a ticket and, for non-anonymous submissions, appends its id
// to the submitter's owner index. The two writes are not atomic; a crash in
// between leaves a ticket invisible to ListOwned until the next
// reconciliation pass.
func (s *FeedbackService) Submit(ctx context.Context, identity domain.Identity, input FeedbackInput) (*domain.Feedback, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	feedback := &domain.Feedback{
		ID:            generateFeedbackID(now),
		UserID:        identity.ID,
		UserEmail:     identity.Email,
		UserName:      identity.Name,
		Department:    strings.TrimSpace(input.Department),
		Category:      strings.TrimSpace(input.Category),
		Subject:       strings.TrimSpace(input.Subject),
		Description:   strings.TrimSpace(input.Description),
		Priority:      input.Priority,
		Status:        domain.FeedbackStatusPending,
		SubmittedDate: now,
		LastUpdate:    now,
		Updates:       []domain.FeedbackUpdate{},
		Responses:     []domain.FeedbackResponse{},
	}
	if input.Anonymous {
		feedback.UserID = domain.AnonymousUserID
		feedback.UserEmail = domain.AnonymousUserID
		feedback.UserName = "Anonymous"
	}
	if feedback.UserName == "" {
		feedback.UserName = feedback.UserEmail
	}

	if err := s.store.Set(ctx, kv.FeedbackKey(feedback.ID), feedback); err != nil {
		return nil, err
	}

	if !input.Anonymous {
		if err := s.appendToOwnerIndex(ctx, identity.ID, feedback.ID); err != nil {
			return nil, err
		}
	}

	s.publish(ctx, events.Event{
		Type:       events.EventFeedbackSubmitted,
		FeedbackID: feedback.ID,
		OwnerID:    ownerID(feedback),
		Payload: events.FeedbackSubmittedPayload{
			Department: feedback.Department,
			Category:   feedback.Category,
			Subject:    feedback.Subject,
			Priority:   feedback.Priority,
			Anonymous:  input.Anonymous,
		},
	})
	return feedback, nil
}

// ListOwned resolves the caller's owner index to ticket records, dropping
// ids whose record is missing. Index order (submission order) is preserved.
func (s *FeedbackService) ListOwned(ctx context.Context, identity domain.Identity) ([]domain.Feedback, error) {
	var ids []string
	if _, err := s.store.Get(ctx, kv.OwnerIndexKey(identity.ID), &ids); err != nil {
		return nil, err
	}

	list := make([]domain.Feedback, 0, len(ids))
	for _, id := range ids {
		var feedback domain.Feedback
		found, err := s.store.Get(ctx, kv.FeedbackKey(id), &feedback)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		list = append(list, feedback)
	}
	return list, nil
}

// GetOne fetches a ticket by id. Anonymous tickets are readable by any
// authenticated caller; owned tickets only by their owner.
func (s *FeedbackService) GetOne(ctx context.Context, identity domain.Identity, feedbackID string) (*domain.Feedback, error) {
	var feedback domain.Feedback
	found, err := s.store.Get(ctx, kv.FeedbackKey(feedbackID), &feedback)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFound("Feedback")
	}
	if feedback.UserID != identity.ID && !feedback.Anonymous() {
		return nil, apperrors.NewUnauthorized()
	}
	return &feedback, nil
}

// AdvanceStatus moves a ticket forward through its lifecycle. No end-user
// route reaches this; it exists for department-side actors and enforces
// forward-only transitions.
func (s *FeedbackService) AdvanceStatus(ctx context.Context, feedbackID string, next domain.FeedbackStatus, note string) (*domain.Feedback, error) {
	var feedback domain.Feedback
	found, err := s.store.Get(ctx, kv.FeedbackKey(feedbackID), &feedback)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFound("Feedback")
	}
	if !domain.ValidStatusTransition(feedback.Status, next) {
		return nil, apperrors.NewValidationError("invalid status transition", map[string]any{
			"from": feedback.Status,
			"to":   next,
		})
	}

	oldStatus := feedback.Status
	now := time.Now()
	feedback.Status = next
	feedback.LastUpdate = now
	feedback.Updates = append(feedback.Updates, domain.FeedbackUpdate{
		Status:    next,
		Note:      note,
		Timestamp: now,
	})

	if err := s.store.Set(ctx, kv.FeedbackKey(feedback.ID), &feedback); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:       events.EventFeedbackStatusChanged,
		FeedbackID: feedback.ID,
		OwnerID:    ownerID(&feedback),
		Payload: events.FeedbackStatusChangedPayload{
			OldStatus:  oldStatus,
			NewStatus:  next,
			Department: feedback.Department,
			Subject:    feedback.Subject,
			Note:       note,
		},
	})
	return &feedback, nil
}

// AddResponse appends a department reply visible to the submitter.
func (s *FeedbackService) AddResponse(ctx context.Context, feedbackID, author, message string) (*domain.Feedback, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apperrors.NewValidationError("invalid response payload", map[string]any{"message": "required"})
	}

	var feedback domain.Feedback
	found, err := s.store.Get(ctx, kv.FeedbackKey(feedbackID), &feedback)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFound("Feedback")
	}

	now := time.Now()
	feedback.LastUpdate = now
	feedback.Responses = append(feedback.Responses, domain.FeedbackResponse{
		Author:    author,
		Message:   strings.TrimSpace(message),
		Timestamp: now,
	})

	if err := s.store.Set(ctx, kv.FeedbackKey(feedback.ID), &feedback); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:       events.EventFeedbackResponded,
		FeedbackID: feedback.ID,
		OwnerID:    ownerID(&feedback),
		Payload: events.FeedbackRespondedPayload{
			Department: feedback.Department,
			Subject:    feedback.Subject,
			Author:     author,
		},
	})
	return &feedback, nil
}

// RebuildOwnerIndexes rescans every ticket and rewrites the per-user owner
// indexes in submission order. Recovers tickets orphaned by a crash between
// the ticket write and the index write.
func (s *FeedbackService) RebuildOwnerIndexes(ctx context.Context) (int, error) {
	raws, err := s.store.GetByPrefix(ctx, kv.FeedbackPrefix)
	if err != nil {
		return 0, err
	}

	byOwner := map[string][]domain.Feedback{}
	for _, raw := range raws {
		var feedback domain.Feedback
		if err := json.Unmarshal(raw, &feedback); err != nil {
			continue
		}
		if feedback.Anonymous() || feedback.UserID == "" {
			continue
		}
		byOwner[feedback.UserID] = append(byOwner[feedback.UserID], feedback)
	}

	for owner, list := range byOwner {
		sort.Slice(list, func(i, j int) bool {
			if list[i].SubmittedDate.Equal(list[j].SubmittedDate) {
				return list[i].ID < list[j].ID
			}
			return list[i].SubmittedDate.Before(list[j].SubmittedDate)
		})
		ids := make([]string, 0, len(list))
		for _, feedback := range list {
			ids = append(ids, feedback.ID)
		}
		if err := s.store.Set(ctx, kv.OwnerIndexKey(owner), ids); err != nil {
			return 0, err
		}
	}
	return len(byOwner), nil
}

func (s *FeedbackService) appendToOwnerIndex(ctx context.Context, userID, feedbackID string) error {
	key := kv.OwnerIndexKey(userID)
	var ids []string
	if _, err := s.store.Get(ctx, key, &ids); err != nil {
		return err
	}
	ids = append(ids, feedbackID)
	return s.store.Set(ctx, key, ids)
}

func (s *FeedbackService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func ownerID(feedback *domain.Feedback) string {
	if feedback.Anonymous() {
		return ""
	}
	return feedback.UserID
}

// generateFeedbackID derives an id from the submission instant plus a
// random suffix so concurrent submissions within the same millisecond
// cannot collide.
func generateFeedbackID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "REQ-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix
}
