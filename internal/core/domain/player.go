package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player represents a registered player belonging to a club.
type Player struct {
	ID           uuid.UUID  `json:"id"`
	ClubID       uuid.UUID  `json:"club_id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        *string    `json:"email,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	AadharNumber *string    `json:"aadhar_number,omitempty"` // National ID, masked in audit records
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
