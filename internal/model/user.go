package model

import "time"

// User represents a registered account. Deleting a user cascades to their
// workouts and, through those, to their sets.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"type:text;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Workouts []Workout `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
