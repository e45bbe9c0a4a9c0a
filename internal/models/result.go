package models

// UserInfo holds optional user-supplied anthropometric measurements.
type UserInfo struct {
	Height float64 `json:"height,omitempty"` // cm
	Weight float64 `json:"weight,omitempty"` // kg
	Waist  float64 `json:"waist,omitempty"`  // cm
	Hip    float64 `json:"hip,omitempty"`    // cm
}

// Exercise is one entry of a corrective action plan.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// AnalysisResult is the aggregate of one posture analysis session. It is
// created once at the end of an analysis pass and is immutable afterwards.
type AnalysisResult struct {
	ID                  string              `json:"id"`
	Date                string              `json:"date"` // RFC 3339
	Score               int                 `json:"score"`
	Metrics             []PostureMetric     `json:"metrics"`
	ImageURL            string              `json:"imageUrl"`
	Landmarks           []Landmark          `json:"landmarks"`
	View                View                `json:"view"`
	ActionPlan          []Exercise          `json:"actionPlan,omitempty"`
	PotentialConditions []string            `json:"potentialConditions,omitempty"`
	Images              map[View]string     `json:"images,omitempty"`
	AllLandmarks        map[View][]Landmark `json:"allLandmarks,omitempty"`
	UserInfo            *UserInfo           `json:"userInfo,omitempty"`
}
