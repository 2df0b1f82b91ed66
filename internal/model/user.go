package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a login identity. Password holds a bcrypt hash and is empty for
// accounts that only sign in with Google.
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username  string    `json:"username" gorm:"not null;uniqueIndex"`
	Password  string    `json:"-"`
	GoogleID  *string   `json:"-" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// CanSignIn reports whether at least one credential is attached.
func (u *User) CanSignIn() bool {
	return u.Password != "" || (u.GoogleID != nil && *u.GoogleID != "")
}
