package discovery

import (
	"time"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/model"
)

// Card is one talent as the viewer is allowed to see it. Contact and
// portfolio fields are only populated once the viewer has unlocked the
// talent.
type Card struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Role        string         `json:"role"`
	Category    string         `json:"category"`
	Tags        []string       `json:"tags"`
	Age         int            `json:"age"`
	Gender      string         `json:"gender"`
	Ethnicity   []string       `json:"ethnicity"`
	Location    string         `json:"location"`
	Price       int            `json:"price"`
	PriceType   string         `json:"price_type"`
	UnlockPrice int            `json:"unlock_price"`
	UnionStatus string         `json:"union_status"`
	ImageURL    string         `json:"image_url"`
	Socials     []model.Social `json:"socials,omitempty"`

	Model *model.ModelStats `json:"model_stats,omitempty"`
	Craft *model.CraftStats `json:"craft_stats,omitempty"`

	Unlocked      bool     `json:"unlocked"`
	ContactEmail  string   `json:"contact_email,omitempty"`
	ContactPhone  string   `json:"contact_phone,omitempty"`
	Availability  string   `json:"availability,omitempty"`
	PortfolioURLs []string `json:"portfolio_urls,omitempty"`
}

// View is one computed discovery result. Stale marks a last-known-good
// snapshot served because the roster backend was unavailable.
type View struct {
	Cards       []Card    `json:"cards"`
	Total       int       `json:"total"`
	Stale       bool      `json:"stale"`
	GeneratedAt time.Time `json:"generated_at"`

	seq uint64
}
