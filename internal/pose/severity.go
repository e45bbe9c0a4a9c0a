package pose

import "github.com/jengzang/shapist-backend-go/internal/models"

// Classify maps a metric value to a severity tier. In ascending mode the
// highest tier whose threshold the value meets or exceeds wins; in inverse
// mode thresholds are upper bounds and the value escalates by falling at or
// below them. Thresholds must satisfy mild < moderate < severe (ascending)
// or mild > moderate > severe (inverse); ordering is a precondition and is
// not validated here.
func Classify(value float64, t models.Thresholds, inverse bool) models.Severity {
	if !inverse {
		switch {
		case value >= t.Severe:
			return models.SeveritySevere
		case value >= t.Moderate:
			return models.SeverityModerate
		case value >= t.Mild:
			return models.SeverityMild
		}
		return models.SeverityNormal
	}

	switch {
	case value <= t.Severe:
		return models.SeveritySevere
	case value <= t.Moderate:
		return models.SeverityModerate
	case value <= t.Mild:
		return models.SeverityMild
	}
	return models.SeverityNormal
}
