package dto

// SubmitFeedbackRequest payload for ticket submission.
type SubmitFeedbackRequest struct {
	Department  string `json:"department" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high"`
	Anonymous   bool   `json:"anonymous"`
}
