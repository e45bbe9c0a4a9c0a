package models

// Pose landmark indices following the MediaPipe 33-point convention.
// The detector returns landmarks in exactly this order; the indexing is an
// external contract and must be preserved.
const (
	LandmarkNose          = 0
	LandmarkLeftEar       = 7
	LandmarkRightEar      = 8
	LandmarkLeftShoulder  = 11
	LandmarkRightShoulder = 12
	LandmarkLeftWrist     = 15
	LandmarkRightWrist    = 16
	LandmarkLeftHip       = 23
	LandmarkRightHip      = 24
	LandmarkLeftKnee      = 25
	LandmarkRightKnee     = 26
	LandmarkLeftAnkle     = 27
	LandmarkRightAnkle    = 28
	NumLandmarks          = 33
)

// Landmark is one normalized pose keypoint. X and Y are relative to the
// image width/height (0-1), Z is an optional depth estimate and Visibility
// is the detector's confidence in [0,1].
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z,omitempty"`
	Visibility float64 `json:"visibility,omitempty"`
}

// LandmarkAt returns the landmark at idx, reporting whether it is present in
// the set. Detectors may return truncated sets for partially visible bodies.
func LandmarkAt(landmarks []Landmark, idx int) (Landmark, bool) {
	if idx < 0 || idx >= len(landmarks) {
		return Landmark{}, false
	}
	return landmarks[idx], true
}

// FirstLandmark returns the first present landmark among the given indices.
func FirstLandmark(landmarks []Landmark, indices ...int) (Landmark, bool) {
	for _, idx := range indices {
		if lm, ok := LandmarkAt(landmarks, idx); ok {
			return lm, true
		}
	}
	return Landmark{}, false
}
