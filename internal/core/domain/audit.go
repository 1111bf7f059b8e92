package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditOp is the operation part of an audit action.
type AuditOp string

const (
	AuditOpCreate     AuditOp = "CREATE"
	AuditOpUpdate     AuditOp = "UPDATE"
	AuditOpDelete     AuditOp = "DELETE"
	AuditOpUpdateMany AuditOp = "UPDATEMANY"
	AuditOpDeleteMany AuditOp = "DELETEMANY"
)

// AuditLog records a single observed data mutation. Records are append-only:
// application logic never updates or deletes them (only the retention pruner
// removes old rows).
type AuditLog struct {
	ID         uuid.UUID `json:"id"`
	Action     string    `json:"action"` // <ENTITY>_<OP>, e.g. CLUB_UPDATE
	EntityType string    `json:"entity_type"`
	EntityID   *string   `json:"entity_id,omitempty"` // nil for bulk operations
	ActorID    *string   `json:"actor_id,omitempty"`
	ActorName  *string   `json:"actor_name,omitempty"`
	ActorEmail *string   `json:"actor_email,omitempty"`
	ActorRole  *string   `json:"actor_role,omitempty"`
	IPAddress  *string   `json:"ip_address,omitempty"`
	UserAgent  *string   `json:"user_agent,omitempty"`
	Changes    string    `json:"changes,omitempty"` // JSON string of field -> {old,new}
	CreatedAt  time.Time `json:"created_at"`
}
