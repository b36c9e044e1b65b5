package users

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	FirstName string    `json:"first_name" gorm:"not null"`
	LastName  string    `json:"last_name" gorm:"not null"`
	Password  string    `json:"-" gorm:"not null"` // hide in json
	Role      Role      `json:"role" gorm:"not null;default:'STAFF'"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Role string

const (
	// RoleAdmin has full access to the tour builder, CMS and ops consoles.
	RoleAdmin Role = "ADMIN"
	// RoleStaff can read the ops dashboard and manage inquiries.
	RoleStaff Role = "STAFF"
)

func IsValidRole(role string) bool {
	switch role {
	case string(RoleAdmin), string(RoleStaff):
		return true
	default:
		return false
	}
}
