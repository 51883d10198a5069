package model

import "github.com/shopspring/decimal"

// Set is one logged exercise set inside a workout. It has no user reference
// of its own: ownership is transitive through the parent workout. The
// exercise FK is RESTRICT so a catalog entry can't be deleted while any set
// still points at it.
type Set struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	WorkoutID  uint            `json:"workout_id" gorm:"not null;index"`
	ExerciseID uint            `json:"exercise_id" gorm:"not null;index"`
	SetNumber  int             `json:"set_number" gorm:"not null"`
	Reps       int             `json:"reps" gorm:"not null"`
	Weight     decimal.Decimal `json:"weight" gorm:"type:decimal(5,1);not null"`
	RPE        int             `json:"rpe" gorm:"column:rpe;not null;check:rpe >= 1 AND rpe <= 10"`

	// Relations
	Exercise Exercise `json:"-" gorm:"foreignKey:ExerciseID;constraint:OnDelete:RESTRICT"`
}

// TableName overrides GORM's default "sets"; the raw history and list
// queries reference workout_sets.
func (Set) TableName() string { return "workout_sets" }
