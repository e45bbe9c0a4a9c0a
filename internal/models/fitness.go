package models

// FitnessSuggestion is one exercise suggestion derived from an environment
// photo by the external suggestion service.
type FitnessSuggestion struct {
	ItemName        string   `json:"item_name"`
	TargetMuscle    string   `json:"target_muscle"`
	ExerciseName    string   `json:"exercise_name"`
	DifficultyLevel string   `json:"difficulty_level"`
	SafetyWarning   string   `json:"safety_warning"`
	Instructions    []string `json:"instructions"`
}

// EnvironmentResult is the structured response of the environment-to-exercise
// suggestion service.
type EnvironmentResult struct {
	EnvironmentDetected string              `json:"environment_detected"`
	FitnessSuggestions  []FitnessSuggestion `json:"fitness_suggestions"`
}
