package domain

import (
	"time"

	"github.com/google/uuid"
)

// OfficialRole represents the function an official performs in competitions.
type OfficialRole string

const (
	OfficialRoleReferee       OfficialRole = "REFEREE"
	OfficialRoleUmpire        OfficialRole = "UMPIRE"
	OfficialRoleScorer        OfficialRole = "SCORER"
	OfficialRoleMatchDirector OfficialRole = "MATCH_DIRECTOR"
)

// Official represents a competition official (referee, umpire, scorer).
type Official struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Email     *string      `json:"email,omitempty"`
	Role      OfficialRole `json:"role"`
	Active    bool         `json:"active"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
