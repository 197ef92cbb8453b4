package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a directory account. Credentials are issued and verified by
// the external auth system; this service only reads identities.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Role         string    `gorm:"not null;check:role IN ('consumer','provider','admin')" json:"role"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
