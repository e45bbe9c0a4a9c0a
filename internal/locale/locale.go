// Package locale holds the read-only per-language text catalogs consumed by
// the posture analysis pipeline. A catalog is injected into the extractor
// and aggregator as a constructor dependency so that classification logic
// stays independent of any particular locale's strings: language never
// affects numeric values or severities.
package locale

// Language selects a text catalog.
type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// MetricText is the display text bundle for one posture metric rule.
type MetricText struct {
	Name           string
	Description    string
	Recommendation string // shown for non-Normal severities
	NormalNote     string // shown when the metric is Normal
	SearchKeywords string
	Cues           []string
}

// LegAlignmentText carries the pattern-specific naming for the leg
// alignment rule, which renames itself by detected pattern.
type LegAlignmentText struct {
	KnockKneeName    string
	KnockKneeKeyword string
	BowLegName       string
	BowLegKeyword    string
}

// PlanTemplate is a static corrective-exercise template keyed by metric key.
type PlanTemplate struct {
	Name        string
	Description string
	Duration    string
}

// BMIText holds band-specific recommendations for the body mass index metric.
type BMIText struct {
	Name        string
	Description string
	Underweight string
	Normal      string
	Overweight  string
	Obese       string
	SevereObese string
}

// WHRText holds band-specific recommendations for the waist-hip ratio metric.
type WHRText struct {
	Name        string
	Description string
	Normal      string
	Mild        string
	Moderate    string
	Severe      string
}

// Messages are the user-visible failure strings. The failure kind itself is
// language-independent; only these display strings vary.
type Messages struct {
	NoPerson    string
	FailAnalyze string
	FailInit    string
	CameraError string
}

// Catalog is the complete text table for one language.
type Catalog struct {
	Lang       Language
	Metrics    map[string]MetricText
	Leg        LegAlignmentText
	BMI        BMIText
	WHR        WHRText
	Plans      map[string]PlanTemplate
	Conditions map[string]string
	Messages   Messages
}

// For returns the catalog for the given language, defaulting to English.
func For(lang Language) Catalog {
	if lang == Chinese {
		return chineseCatalog
	}
	return englishCatalog
}
