package model

// DefaultExercises is the built-in catalog seeded on first boot and by the
// seed command. Seeding is idempotent: entries are matched by name.
var DefaultExercises = []Exercise{
	{Name: "Bench Press", MuscleGroup: "Chest"},
	{Name: "Incline Bench Press", MuscleGroup: "Chest"},
	{Name: "Dumbbell Fly", MuscleGroup: "Chest"},
	{Name: "Push-ups", MuscleGroup: "Chest"},
	{Name: "Pull-ups", MuscleGroup: "Back"},
	{Name: "Barbell Row", MuscleGroup: "Back"},
	{Name: "Lat Pulldown", MuscleGroup: "Back"},
	{Name: "Deadlift", MuscleGroup: "Back"},
	{Name: "Seated Cable Row", MuscleGroup: "Back"},
	{Name: "Squat", MuscleGroup: "Legs"},
	{Name: "Front Squat", MuscleGroup: "Legs"},
	{Name: "Leg Press", MuscleGroup: "Legs"},
	{Name: "Lunges", MuscleGroup: "Legs"},
	{Name: "Leg Curl", MuscleGroup: "Legs"},
	{Name: "Calf Raises", MuscleGroup: "Legs"},
	{Name: "Overhead Press", MuscleGroup: "Shoulders"},
	{Name: "Lateral Raise", MuscleGroup: "Shoulders"},
	{Name: "Front Raise", MuscleGroup: "Shoulders"},
	{Name: "Face Pulls", MuscleGroup: "Shoulders"},
	{Name: "Barbell Curl", MuscleGroup: "Biceps"},
	{Name: "Hammer Curl", MuscleGroup: "Biceps"},
	{Name: "Preacher Curl", MuscleGroup: "Biceps"},
	{Name: "Tricep Dips", MuscleGroup: "Triceps"},
	{Name: "Skull Crushers", MuscleGroup: "Triceps"},
	{Name: "Overhead Tricep Extension", MuscleGroup: "Triceps"},
	{Name: "Plank", MuscleGroup: "Core"},
	{Name: "Crunches", MuscleGroup: "Core"},
	{Name: "Russian Twist", MuscleGroup: "Core"},
	{Name: "Wrist Curls", MuscleGroup: "Forearms"},
	{Name: "Farmer's Walk", MuscleGroup: "Forearms"},
	{Name: "Running", MuscleGroup: "Cardio"},
	{Name: "Cycling", MuscleGroup: "Cardio"},
	{Name: "Rowing", MuscleGroup: "Cardio"},
	{Name: "Burpees", MuscleGroup: "Full Body"},
	{Name: "Thrusters", MuscleGroup: "Full Body"},
}
