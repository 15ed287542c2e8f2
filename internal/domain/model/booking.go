package model

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
)

type BookingRequest struct {
	ID           string        `json:"id"`
	TalentID     string        `json:"talent_id"`
	TalentName   string        `json:"talent_name"`
	AgencyID     string        `json:"agency_id"`
	ProjectName  string        `json:"project_name"`
	Description  string        `json:"project_description"`
	ShootDate    time.Time     `json:"shoot_date"`
	DurationDays int           `json:"duration_days"`
	Budget       int           `json:"budget"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}
