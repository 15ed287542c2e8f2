package payments

import (
	"errors"
	"time"
)

type State string

const (
	StateIdle               State = "idle"
	StateMethodSelected     State = "method_selected"
	StateCredentialsEntered State = "credentials_entered"
	StateProcessing         State = "processing"
	StateSuccess            State = "success"
	StateFailure            State = "failure"
)

type Method string

const (
	MethodESewa  Method = "esewa"
	MethodKhalti Method = "khalti"
)

func (m Method) Valid() bool {
	switch m {
	case MethodESewa, MethodKhalti:
		return true
	}
	return false
}

var (
	ErrValidation        = errors.New("validation error")
	ErrAttemptNotFound   = errors.New("payment attempt not found")
	ErrInvalidTransition = errors.New("invalid payment state transition")
	ErrProcessing        = errors.New("payment attempt is processing")
	ErrAlreadyUnlocked   = errors.New("talent is already unlocked")
	ErrForbidden         = errors.New("payment attempt belongs to another viewer")
)

// Attempt is the externally visible snapshot of one payment attempt.
// Wallet credentials never leave the service.
type Attempt struct {
	ID            string    `json:"id"`
	ViewerID      string    `json:"viewer_id"`
	TalentID      string    `json:"talent_id"`
	Amount        int       `json:"amount"`
	Currency      string    `json:"currency"`
	Method        Method    `json:"method,omitempty"`
	State         State     `json:"state"`
	FailureReason string    `json:"failure_reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
