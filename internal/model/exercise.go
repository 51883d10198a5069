package model

// MuscleGroups is the fixed set of valid muscle_group values. The same list
// backs the table-level check constraint, so an invalid value is rejected by
// the store even if it slips past request validation.
var MuscleGroups = []string{
	"Chest",
	"Back",
	"Legs",
	"Shoulders",
	"Biceps",
	"Triceps",
	"Core",
	"Forearms",
	"Cardio",
	"Full Body",
}

// Exercise is an entry in the shared exercise catalog. Exercises are not
// owned by any user; name uniqueness is case-insensitive (MySQL ci collation
// on the unique index).
type Exercise struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;size:255;not null"`
	MuscleGroup string `json:"muscle_group" gorm:"size:20;not null;check:muscle_group IN ('Chest','Back','Legs','Shoulders','Biceps','Triceps','Core','Forearms','Cardio','Full Body')"`
}
