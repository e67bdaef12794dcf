package dto

import "time"

// Request DTOs

type JobApplicationRequest struct {
	FullName        string `json:"full_name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,phone"`
	OpeningID       string `json:"opening_id" validate:"required"`
	YearsExperience int    `json:"years_experience" validate:"gte=0,lte=60"`
	CoverLetter     string `json:"cover_letter" validate:"required,min=50,max=5000"`
}

// Response DTOs

type JobOpeningResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department,omitempty"`
	Type       string `json:"type"`
	Location   string `json:"location"`
}

type JobOpeningListResponse struct {
	Openings []JobOpeningResponse `json:"openings"`
	Total    int                  `json:"total"`
}

type JobApplicationResponse struct {
	Reference   string    `json:"reference"`
	OpeningID   string    `json:"opening_id"`
	Title       string    `json:"title"`
	SubmittedAt time.Time `json:"submitted_at"`
}
