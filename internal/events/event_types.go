package events

import (
	"time"

	"github.com/campushub/studenthub/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventFeedbackSubmitted     EventType = "feedback_submitted"
	EventFeedbackStatusChanged EventType = "feedback_status_changed"
	EventFeedbackResponded     EventType = "feedback_responded"
)

// Event represents a domain event emitted by the feedback service.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	FeedbackID string      `json:"feedback_id"`
	// OwnerID is empty for anonymous tickets; handlers must not assume an
	// inbox exists.
	OwnerID   string      `json:"owner_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// FeedbackSubmittedPayload payload.
type FeedbackSubmittedPayload struct {
	Department string                  `json:"department"`
	Category   string                  `json:"category"`
	Subject    string                  `json:"subject"`
	Priority   domain.FeedbackPriority `json:"priority"`
	Anonymous  bool                    `json:"anonymous"`
}

// FeedbackStatusChangedPayload payload.
type FeedbackStatusChangedPayload struct {
	OldStatus  domain.FeedbackStatus `json:"old_status"`
	NewStatus  domain.FeedbackStatus `json:"new_status"`
	Department string                `json:"department"`
	Subject    string                `json:"subject"`
	Note       string                `json:"note,omitempty"`
}

// FeedbackRespondedPayload payload.
type FeedbackRespondedPayload struct {
	Department string `json:"department"`
	Subject    string `json:"subject"`
	Author     string `json:"author"`
}
