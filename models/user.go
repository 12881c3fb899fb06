package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User mirrors the profile handed to us by the external identity provider.
// Rows are upserted on every login callback and never deleted.
type User struct {
	ID              string    `gorm:"primaryKey;size:64" json:"id"`
	Email           string    `gorm:"size:191;uniqueIndex" json:"email"`
	FirstName       string    `gorm:"column:first_name" json:"firstName"`
	LastName        string    `gorm:"column:last_name" json:"lastName"`
	ProfileImageURL string    `gorm:"column:profile_image_url" json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID when the identity provider did not supply a
// stable subject (MySQL has no gen_random_uuid() column default).
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// FullName is the display name used in the webhook payload.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
