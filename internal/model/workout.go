package model

import "time"

// Workout is a training session owned by a user. A nil CompletedAt means the
// workout is still in progress; only completed workouts count towards history
// and streaks.
type Workout struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"not null;index"`
	Date        time.Time  `json:"date" gorm:"type:date;not null"`
	Notes       string     `json:"notes" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at" gorm:"index"`

	// Relations
	Sets []Set `json:"-" gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE"`
}
