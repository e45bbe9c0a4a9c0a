package game

import (
	"math"

	"github.com/jengzang/shapist-backend-go/internal/models"
)

const (
	// squatMargin is how far (normalized) the hips must drop below the
	// knees before a squat registers; the slack tolerates shallow squats.
	squatMargin = 0.1
	// ankleSpreadMin separates a jumping jack from plain hands-up.
	ankleSpreadMin = 0.2
)

// ClassifyAction maps one landmark set to a player action. Checks run in
// priority order so that a jumping jack is never reported as HANDS_UP: the
// most specific pose wins.
func ClassifyAction(landmarks []models.Landmark) models.Action {
	if len(landmarks) <= models.LandmarkRightAnkle {
		return models.ActionIdle
	}

	nose := landmarks[models.LandmarkNose]
	lWrist := landmarks[models.LandmarkLeftWrist]
	rWrist := landmarks[models.LandmarkRightWrist]
	lHip := landmarks[models.LandmarkLeftHip]
	rHip := landmarks[models.LandmarkRightHip]
	lKnee := landmarks[models.LandmarkLeftKnee]
	rKnee := landmarks[models.LandmarkRightKnee]
	lAnkle := landmarks[models.LandmarkLeftAnkle]
	rAnkle := landmarks[models.LandmarkRightAnkle]

	// Image coordinates grow downward, so "above" means a smaller Y.
	handsUp := lWrist.Y < nose.Y && rWrist.Y < nose.Y
	ankleSpread := math.Abs(lAnkle.X - rAnkle.X)

	if handsUp && ankleSpread > ankleSpreadMin {
		return models.ActionJumpJack
	}
	if handsUp {
		return models.ActionHandsUp
	}

	hipY := (lHip.Y + rHip.Y) / 2
	kneeY := (lKnee.Y + rKnee.Y) / 2
	if hipY > kneeY-squatMargin {
		return models.ActionSquat
	}

	return models.ActionIdle
}
