package models

// Severity is the four-tier ordinal classification of a posture metric.
type Severity string

const (
	SeverityNormal   Severity = "Normal"
	SeverityMild     Severity = "Mild"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
)

// Rank returns the ordinal position of the severity (Normal=0 .. Severe=3).
func (s Severity) Rank() int {
	switch s {
	case SeverityMild:
		return 1
	case SeverityModerate:
		return 2
	case SeveritySevere:
		return 3
	default:
		return 0
	}
}

// Penalty returns the score deduction for this severity.
func (s Severity) Penalty() int {
	switch s {
	case SeverityMild:
		return 5
	case SeverityModerate:
		return 15
	case SeveritySevere:
		return 30
	default:
		return 0
	}
}

// Thresholds is a triple of severity cut-offs. In ascending mode values at or
// above a threshold escalate; in inverse mode values at or below escalate.
type Thresholds struct {
	Mild     float64
	Moderate float64
	Severe   float64
}

// PostureMetric is one measured deviation. Severity is always derived from
// Value and a threshold triple, never set independently.
type PostureMetric struct {
	Key            string   `json:"key,omitempty"`
	Name           string   `json:"name"`
	Value          float64  `json:"value"`
	Unit           string   `json:"unit"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
	SearchKeywords string   `json:"searchKeywords,omitempty"`
	Cues           []string `json:"cues,omitempty"`
}

// View is the photographic angle a metric or result derives from.
type View string

const (
	ViewFront    View = "Front"
	ViewSide     View = "Side"
	ViewBack     View = "Back"
	ViewCombined View = "Combined"
)

// CaptureViews lists the physical views in processing order.
var CaptureViews = []View{ViewFront, ViewSide, ViewBack}
