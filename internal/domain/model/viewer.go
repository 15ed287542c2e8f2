package model

import (
	"time"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/enums"
)

type Viewer struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	Role      enums.ViewerRole `json:"role"`
	CreatedAt time.Time        `json:"created_at"`
}
