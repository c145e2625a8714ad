// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	FirstName    string    `json:"first_name" gorm:"not null;size:50"`
	LastName     string    `json:"last_name" gorm:"not null;size:50"`
	MobileNumber string    `json:"mobile_number" gorm:"uniqueIndex;not null;size:10"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password     string    `json:"-" gorm:"not null;size:255"`
	CreatedAt    time.Time `json:"created_at"`

	// Relationships
	CreatedEvents []Event `json:"created_events,omitempty" gorm:"foreignKey:OrganizerID"`
}

// FullName is the display name used on participant entries.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
