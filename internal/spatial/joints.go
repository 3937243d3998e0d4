package spatial

import (
	"github.com/golang/geo/r2"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

// RequiredLandmarks lists the joints a frame must carry to yield a sample.
// A frame missing any of them is handled as a detection failure.
var RequiredLandmarks = []models.Landmark{
	models.Nose,
	models.LeftShoulder,
	models.RightShoulder,
	models.LeftElbow,
	models.LeftWrist,
	models.LeftHip,
	models.RightHip,
	models.LeftKnee,
	models.LeftAnkle,
	models.RightAnkle,
}

// Usable reports whether a frame carries every required landmark
func Usable(frame models.PoseFrame) bool {
	return frame.HasAll(RequiredLandmarks...)
}

// WeightTransfer returns hip-midpoint x minus ankle-midpoint x.
// Positive values mean the hips sit ahead of the base.
func WeightTransfer(frame models.PoseFrame) float64 {
	hips := Midpoint(joint(frame, models.LeftHip), joint(frame, models.RightHip))
	ankles := Midpoint(joint(frame, models.LeftAnkle), joint(frame, models.RightAnkle))
	return hips.X - ankles.X
}

// Sample derives the per-frame metrics for a usable frame.
// The elbow angle is only recorded while the stroke is in the downswing.
func Sample(frame models.PoseFrame, phase models.Phase) (models.PhaseSample, bool) {
	if !Usable(frame) {
		return models.PhaseSample{}, false
	}

	lShoulder := joint(frame, models.LeftShoulder)
	rShoulder := joint(frame, models.RightShoulder)
	lHip := joint(frame, models.LeftHip)
	lKnee := joint(frame, models.LeftKnee)

	sample := models.PhaseSample{
		KneeAngle:      AngleAt(lHip, lKnee, joint(frame, models.LeftAnkle)),
		LegDirection:   Bearing(lKnee, lHip),
		BodyDirection:  Bearing(rShoulder, lShoulder),
		HeadDirection:  Bearing(Midpoint(lShoulder, rShoulder), joint(frame, models.Nose)),
		WeightTransfer: WeightTransfer(frame),
	}

	if phase == models.PhaseDownswing {
		sample.ElbowAngle = AngleAt(lShoulder, joint(frame, models.LeftElbow), joint(frame, models.LeftWrist))
		sample.HasElbow = true
	}

	return sample, true
}

func joint(frame models.PoseFrame, l models.Landmark) r2.Point {
	p, _ := frame.Point(l)
	return Vec(p)
}
