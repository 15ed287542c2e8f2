package dto

import "time"

type CreateBookingRequest struct {
	TalentID     string    `json:"talent_id"`
	ProjectName  string    `json:"project_name"`
	Description  string    `json:"description"`
	ShootDate    time.Time `json:"shoot_date"`
	DurationDays int       `json:"duration_days"`
	Budget       int       `json:"budget"`
}
