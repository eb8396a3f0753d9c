package domain

import "time"

// Profile is the per-identity record created at sign-up. NotificationCount
// is a denormalized cache of the unread inbox size; the notification list
// remains the source of truth.
type Profile struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	Name              string     `json:"name,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	StudentID         string     `json:"studentId,omitempty"`
	Major             string     `json:"major,omitempty"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
	NotificationCount int        `json:"notificationCount"`
}
