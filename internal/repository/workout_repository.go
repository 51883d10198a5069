package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fitlog/internal/model"
)

// HistoryRow is one row of the completed-workout history join. Set and
// exercise columns are nullable because the join through workout_sets is an
// outer join: a completed workout with no sets still produces a row.
type HistoryRow struct {
	WorkoutID    uint                `gorm:"column:workout_id"`
	Date         time.Time           `gorm:"column:date"`
	Notes        string              `gorm:"column:notes"`
	CreatedAt    time.Time           `gorm:"column:created_at"`
	CompletedAt  *time.Time          `gorm:"column:completed_at"`
	SetID        *uint               `gorm:"column:set_id"`
	SetNumber    *int                `gorm:"column:set_number"`
	Reps         *int                `gorm:"column:reps"`
	Weight       decimal.NullDecimal `gorm:"column:weight"`
	RPE          *int                `gorm:"column:rpe"`
	ExerciseID   *uint               `gorm:"column:exercise_id"`
	ExerciseName *string             `gorm:"column:exercise_name"`
	MuscleGroup  *string             `gorm:"column:muscle_group"`
}

// WorkoutRepository defines workout persistence operations. Everything that
// reads or mutates an existing workout filters on owner as well as id.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *model.Workout) error
	Update(ctx context.Context, workout *model.Workout) error
	ListByUser(ctx context.Context, userID uint) ([]model.Workout, error)
	FindByIDAndUser(ctx context.Context, id, userID uint) (*model.Workout, error)
	DeleteByIDAndUser(ctx context.Context, id, userID uint) (found bool, err error)
	HistoryRows(ctx context.Context, userID uint) ([]HistoryRow, error)
	CompletedDays(ctx context.Context, userID uint) ([]time.Time, error)
	CountCompleted(ctx context.Context, userID uint) (int64, error)
	CountCompletedSince(ctx context.Context, userID uint, since time.Time) (int64, error)
}

type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository creates a new workout repository.
func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) Create(ctx context.Context, workout *model.Workout) error {
	return r.db.WithContext(ctx).Create(workout).Error
}

func (r *workoutRepository) Update(ctx context.Context, workout *model.Workout) error {
	return r.db.WithContext(ctx).Save(workout).Error
}

func (r *workoutRepository) ListByUser(ctx context.Context, userID uint) ([]model.Workout, error) {
	var workouts []model.Workout
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *workoutRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*model.Workout, error) {
	var workout model.Workout
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&workout).Error
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) DeleteByIDAndUser(ctx context.Context, id, userID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Workout{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// HistoryRows returns the caller's completed workouts left-joined through
// sets to exercises. Ordering (date desc, exercise name asc, set number asc)
// drives the first-seen order the aggregator preserves.
func (r *workoutRepository) HistoryRows(ctx context.Context, userID uint) ([]HistoryRow, error) {
	var rows []HistoryRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT w.id AS workout_id, w.date, w.notes, w.created_at, w.completed_at,
		       s.id AS set_id, s.set_number, s.reps, s.weight, s.rpe,
		       e.id AS exercise_id, e.name AS exercise_name, e.muscle_group
		FROM workouts w
		LEFT JOIN workout_sets s ON s.workout_id = w.id
		LEFT JOIN exercises e ON e.id = s.exercise_id
		WHERE w.user_id = ? AND w.completed_at IS NOT NULL
		ORDER BY w.date DESC, e.name ASC, s.set_number ASC`, userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CompletedDays returns the distinct calendar days with at least one
// completed workout, most recent first. Distinctness matters: several
// workouts on one day count as a single streak day.
func (r *workoutRepository) CompletedDays(ctx context.Context, userID uint) ([]time.Time, error) {
	var rows []struct {
		Day time.Time `gorm:"column:day"`
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT DATE(completed_at) AS day
		FROM workouts
		WHERE user_id = ? AND completed_at IS NOT NULL
		ORDER BY day DESC`, userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	days := make([]time.Time, len(rows))
	for i, row := range rows {
		days[i] = row.Day
	}
	return days, nil
}

func (r *workoutRepository) CountCompleted(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Workout{}).
		Where("user_id = ? AND completed_at IS NOT NULL", userID).
		Count(&count).Error
	return count, err
}

func (r *workoutRepository) CountCompletedSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Workout{}).
		Where("user_id = ? AND completed_at IS NOT NULL AND DATE(completed_at) >= ?", userID, since.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}
