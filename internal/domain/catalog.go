package domain

import "time"

// Resource is a downloadable catalog entry published by a department.
type Resource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Department  string   `json:"department"`
	Type        string   `json:"type"`
	Downloads   int      `json:"downloads"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Department is a directory entry for a campus service department.
type Department struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Contact      string   `json:"contact"`
	Phone        string   `json:"phone"`
	Location     string   `json:"location"`
	Hours        string   `json:"hours"`
	Services     []string `json:"services"`
	Staff        int      `json:"staff"`
	ResponseTime string   `json:"responseTime"`
	Available    bool     `json:"available"`
}

// Announcement is a campus-wide notice shown on the dashboard.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
