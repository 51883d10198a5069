package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fitlog/internal/model"
)

// SetWithExercise is a set row joined with its exercise's name and muscle
// group, the shape the list-sets endpoint returns.
type SetWithExercise struct {
	ID           uint            `json:"id"`
	WorkoutID    uint            `json:"workout_id"`
	ExerciseID   uint            `json:"exercise_id"`
	SetNumber    int             `json:"set_number"`
	Reps         int             `json:"reps"`
	Weight       decimal.Decimal `json:"weight"`
	RPE          int             `json:"rpe" gorm:"column:rpe"`
	ExerciseName string          `json:"exercise_name"`
	MuscleGroup  string          `json:"muscle_group"`
}

// SetRepository defines set persistence operations. Sets carry no owner
// column, so every owner-scoped lookup joins through the parent workout.
type SetRepository interface {
	Create(ctx context.Context, set *model.Set) error
	Update(ctx context.Context, set *model.Set) error
	Delete(ctx context.Context, id uint) error
	FindOwned(ctx context.Context, id, userID uint) (*model.Set, error)
	ListByWorkout(ctx context.Context, workoutID uint) ([]SetWithExercise, error)
}

type setRepository struct {
	db *gorm.DB
}

// NewSetRepository creates a new set repository.
func NewSetRepository(db *gorm.DB) SetRepository {
	return &setRepository{db: db}
}

func (r *setRepository) Create(ctx context.Context, set *model.Set) error {
	return r.db.WithContext(ctx).Create(set).Error
}

func (r *setRepository) Update(ctx context.Context, set *model.Set) error {
	return r.db.WithContext(ctx).Save(set).Error
}

func (r *setRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Set{}, id).Error
}

// FindOwned resolves a set only when its parent workout belongs to userID.
// A missing set and another user's set both come back as ErrRecordNotFound.
func (r *setRepository) FindOwned(ctx context.Context, id, userID uint) (*model.Set, error) {
	var set model.Set
	err := r.db.WithContext(ctx).
		Joins("JOIN workouts ON workouts.id = workout_sets.workout_id").
		Where("workout_sets.id = ? AND workouts.user_id = ?", id, userID).
		First(&set).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

// ListByWorkout returns a workout's sets joined with exercise metadata,
// ordered by set number. Ownership of the workout is the caller's problem.
func (r *setRepository) ListByWorkout(ctx context.Context, workoutID uint) ([]SetWithExercise, error) {
	var sets []SetWithExercise
	err := r.db.WithContext(ctx).Raw(`
		SELECT ws.id, ws.workout_id, ws.exercise_id, ws.set_number, ws.reps, ws.weight, ws.rpe,
		       e.name AS exercise_name, e.muscle_group
		FROM workout_sets ws
		JOIN exercises e ON e.id = ws.exercise_id
		WHERE ws.workout_id = ?
		ORDER BY ws.set_number`, workoutID).
		Scan(&sets).Error
	if err != nil {
		return nil, err
	}
	return sets, nil
}
