package dto

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=100"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8,max=128"`
	Role     string  `json:"role,omitempty" binding:"omitempty,oneof=admin staff club_admin"`
	Phone    *string `json:"phone,omitempty"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// UserResponse is the wire form of a user account. The password hash
// never leaves the server.
type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Phone     *string `json:"phone,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// ClubRequest is the request body for club create/update.
type ClubRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Code        string `json:"code" binding:"required,min=2,max=10,safe_id"`
	City        string `json:"city" binding:"max=100"`
	FoundedYear int    `json:"founded_year" binding:"omitempty,gte=1800,lte=2100"`
	Active      *bool  `json:"active,omitempty"`
}

// PlayerRequest is the request body for player create/update.
type PlayerRequest struct {
	ClubID       string  `json:"club_id" binding:"required,uuid"`
	FirstName    string  `json:"first_name" binding:"required,min=1,max=100"`
	LastName     string  `json:"last_name" binding:"required,min=1,max=100"`
	Email        *string `json:"email,omitempty" binding:"omitempty,email"`
	DateOfBirth  *string `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	AadharNumber *string `json:"aadhar_number,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

// OfficialRequest is the request body for official create/update.
type OfficialRequest struct {
	Name   string  `json:"name" binding:"required,min=1,max=100"`
	Email  *string `json:"email,omitempty" binding:"omitempty,email"`
	Role   string  `json:"role" binding:"required,oneof=REFEREE UMPIRE SCORER MATCH_DIRECTOR"`
	Active *bool   `json:"active,omitempty"`
}

// BulkResultResponse reports how many rows a bulk operation touched.
type BulkResultResponse struct {
	Count int64 `json:"count"`
}
