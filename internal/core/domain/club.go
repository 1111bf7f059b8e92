package domain

import (
	"time"

	"github.com/google/uuid"
)

// Club represents a member club of the association.
type Club struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"` // Short registration code, unique
	City        string    `json:"city"`
	FoundedYear int       `json:"founded_year"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
