package model

import (
	"time"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/enums"
)

type Social struct {
	Platform  enums.SocialPlatform `json:"platform"`
	Handle    string               `json:"handle"`
	Followers int                  `json:"followers"`
}

// ModelStats is the measurement group carried only by records with
// role Model.
type ModelStats struct {
	HeightCM    int    `json:"height_cm"`
	BustCM      int    `json:"bust_cm"`
	WaistCM     int    `json:"waist_cm"`
	HipsCM      int    `json:"hips_cm"`
	ShoeSizeEU  int    `json:"shoe_size_eu"`
	DressSize   string `json:"dress_size"`
	EyeColor    string `json:"eye_color"`
	HairColor   string `json:"hair_color"`
	HairTexture string `json:"hair_texture"`
}

// CraftStats is the attribute group photographers and make-up artists
// carry instead of measurements.
type CraftStats struct {
	Specialties []string `json:"specialties"`
	Styles      []string `json:"styles"`
	Equipment   []string `json:"equipment"`
}

type TalentRecord struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Role     enums.ProfessionalRole `json:"role"`
	Category string                 `json:"category"`
	Tags     []string               `json:"tags"`

	Age    int    `json:"age"`
	Gender string `json:"gender"`
	// Ethnicity is a set: multiracial talents carry every value that
	// applies.
	Ethnicity []string `json:"ethnicity"`
	Location  string   `json:"location"`

	// At most one of the stat groups is populated, keyed by Role.
	Model *ModelStats `json:"model_stats,omitempty"`
	Craft *CraftStats `json:"craft_stats,omitempty"`

	Price       int               `json:"price"`
	PriceType   enums.PriceType   `json:"price_type"`
	UnlockPrice int               `json:"unlock_price"`
	UnionStatus enums.UnionStatus `json:"union_status,omitempty"`

	Socials []Social `json:"socials"`

	ImageURL      string   `json:"image_url"`
	PortfolioKeys []string `json:"portfolio_keys"`

	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Availability string `json:"availability"`

	CreatedAt time.Time `json:"created_at"`
}

// MaxFollowers returns the largest follower count across social
// entries, 0 when the record has none.
func (t TalentRecord) MaxFollowers() int {
	max := 0
	for _, s := range t.Socials {
		if s.Followers > max {
			max = s.Followers
		}
	}
	return max
}

// HeightCM returns the record's height and whether the role carries one.
func (t TalentRecord) HeightCM() (int, bool) {
	if t.Model == nil || t.Model.HeightCM <= 0 {
		return 0, false
	}
	return t.Model.HeightCM, true
}
