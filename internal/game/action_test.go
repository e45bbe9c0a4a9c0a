package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jengzang/shapist-backend-go/internal/models"
)

// bodyPose builds a full landmark set from the few points action detection
// reads, with everything else at a neutral standing position.
type bodyPose struct {
	wristY      float64
	hipY        float64
	kneeY       float64
	ankleSpread float64
}

func (p bodyPose) landmarks() []models.Landmark {
	lm := make([]models.Landmark, models.NumLandmarks)
	lm[models.LandmarkNose] = models.Landmark{X: 0.5, Y: 0.1}
	lm[models.LandmarkLeftWrist] = models.Landmark{X: 0.6, Y: p.wristY}
	lm[models.LandmarkRightWrist] = models.Landmark{X: 0.4, Y: p.wristY}
	lm[models.LandmarkLeftHip] = models.Landmark{X: 0.55, Y: p.hipY}
	lm[models.LandmarkRightHip] = models.Landmark{X: 0.45, Y: p.hipY}
	lm[models.LandmarkLeftKnee] = models.Landmark{X: 0.54, Y: p.kneeY}
	lm[models.LandmarkRightKnee] = models.Landmark{X: 0.46, Y: p.kneeY}
	lm[models.LandmarkLeftAnkle] = models.Landmark{X: 0.5 + p.ankleSpread/2, Y: 0.95}
	lm[models.LandmarkRightAnkle] = models.Landmark{X: 0.5 - p.ankleSpread/2, Y: 0.95}
	return lm
}

func standing() bodyPose {
	return bodyPose{wristY: 0.5, hipY: 0.55, kneeY: 0.75, ankleSpread: 0.1}
}

func TestClassifyAction(t *testing.T) {
	t.Parallel()

	t.Run("standing is idle", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, models.ActionIdle, ClassifyAction(standing().landmarks()))
	})

	t.Run("wrists above nose is hands up", func(t *testing.T) {
		t.Parallel()
		pose := standing()
		pose.wristY = 0.05
		assert.Equal(t, models.ActionHandsUp, ClassifyAction(pose.landmarks()))
	})

	t.Run("hands up with spread ankles is a jumping jack", func(t *testing.T) {
		t.Parallel()
		pose := standing()
		pose.wristY = 0.05
		pose.ankleSpread = 0.4
		assert.Equal(t, models.ActionJumpJack, ClassifyAction(pose.landmarks()))
	})

	t.Run("hips dropped to the knees is a squat", func(t *testing.T) {
		t.Parallel()
		pose := standing()
		pose.hipY = 0.7
		assert.Equal(t, models.ActionSquat, ClassifyAction(pose.landmarks()))
	})

	t.Run("jumping jack wins over a simultaneous squat", func(t *testing.T) {
		t.Parallel()
		pose := standing()
		pose.wristY = 0.05
		pose.ankleSpread = 0.4
		pose.hipY = 0.7
		assert.Equal(t, models.ActionJumpJack, ClassifyAction(pose.landmarks()))
	})

	t.Run("hands up wins over a simultaneous squat", func(t *testing.T) {
		t.Parallel()
		pose := standing()
		pose.wristY = 0.05
		pose.hipY = 0.7
		assert.Equal(t, models.ActionHandsUp, ClassifyAction(pose.landmarks()))
	})

	t.Run("truncated landmark set is idle", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, models.ActionIdle, ClassifyAction(nil))
		assert.Equal(t, models.ActionIdle, ClassifyAction(standing().landmarks()[:20]))
	})

	t.Run("one wrist up is not hands up", func(t *testing.T) {
		t.Parallel()
		lm := standing().landmarks()
		lm[models.LandmarkLeftWrist].Y = 0.05
		assert.Equal(t, models.ActionIdle, ClassifyAction(lm))
	})
}
