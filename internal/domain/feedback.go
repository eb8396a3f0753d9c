package domain

import "time"

// FeedbackStatus enumerates lifecycle states for feedback tickets.
type FeedbackStatus string

const (
	FeedbackStatusPending    FeedbackStatus = "pending"
	FeedbackStatusInProgress FeedbackStatus = "in-progress"
	FeedbackStatusResolved   FeedbackStatus = "resolved"
	FeedbackStatusClosed     FeedbackStatus = "closed"
)

// FeedbackPriority enumerates submitter-declared urgency.
type FeedbackPriority string

const (
	FeedbackPriorityLow    FeedbackPriority = "low"
	FeedbackPriorityMedium FeedbackPriority = "medium"
	FeedbackPriorityHigh   FeedbackPriority = "high"
)

// AnonymousUserID marks tickets submitted without an owning identity.
// Such tickets never appear in any owner index.
const AnonymousUserID = "anonymous"

// FeedbackUpdate is a department-side status or progress note appended to
// a ticket over its lifetime.
type FeedbackUpdate struct {
	Status    FeedbackStatus `json:"status"`
	Note      string         `json:"note,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// FeedbackResponse is a department reply visible to the submitter.
type FeedbackResponse struct {
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Feedback is the aggregate for a submitted ticket.
type Feedback struct {
	ID            string             `json:"id"`
	UserID        string             `json:"userId"`
	UserEmail     string             `json:"userEmail"`
	UserName      string             `json:"userName"`
	Department    string             `json:"department"`
	Category      string             `json:"category"`
	Subject       string             `json:"subject"`
	Description   string             `json:"description"`
	Priority      FeedbackPriority   `json:"priority"`
	Status        FeedbackStatus     `json:"status"`
	SubmittedDate time.Time          `json:"submittedDate"`
	LastUpdate    time.Time          `json:"lastUpdate"`
	Updates       []FeedbackUpdate   `json:"updates"`
	Responses     []FeedbackResponse `json:"responses"`
}

// Anonymous reports whether the ticket has no owning identity.
func (f *Feedback) Anonymous() bool {
	return f.UserID == AnonymousUserID
}

var allowedStatusTransitions = map[FeedbackStatus][]FeedbackStatus{
	FeedbackStatusPending:    {FeedbackStatusInProgress, FeedbackStatusResolved, FeedbackStatusClosed},
	FeedbackStatusInProgress: {FeedbackStatusResolved, FeedbackStatusClosed},
	FeedbackStatusResolved:   {FeedbackStatusClosed},
	FeedbackStatusClosed:     {},
}

// ValidStatusTransition reports whether a ticket may move from current to
// next. The lifecycle only moves forward through
// pending -> in-progress -> resolved -> closed.
func ValidStatusTransition(current, next FeedbackStatus) bool {
	for _, candidate := range allowedStatusTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// ValidPriority reports whether p is a known priority value.
func ValidPriority(p FeedbackPriority) bool {
	switch p {
	case FeedbackPriorityLow, FeedbackPriorityMedium, FeedbackPriorityHigh:
		return true
	}
	return false
}
