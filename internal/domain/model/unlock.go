package model

import "time"

// UnlockRecord is one viewer's paid access to one talent. The
// (ViewerID, TalentID) pair is unique; records are never mutated or
// deleted within a session.
type UnlockRecord struct {
	ID         string    `json:"id"`
	ViewerID   string    `json:"viewer_id"`
	TalentID   string    `json:"talent_id"`
	AmountPaid int       `json:"amount_paid"`
	UnlockedAt time.Time `json:"unlocked_at"`
}
