package models

import "encoding/json"

// Landmark names a tracked body joint
type Landmark string

const (
	Nose          Landmark = "nose"
	LeftShoulder  Landmark = "left_shoulder"
	RightShoulder Landmark = "right_shoulder"
	LeftElbow     Landmark = "left_elbow"
	RightElbow    Landmark = "right_elbow"
	LeftWrist     Landmark = "left_wrist"
	RightWrist    Landmark = "right_wrist"
	LeftHip       Landmark = "left_hip"
	RightHip      Landmark = "right_hip"
	LeftKnee      Landmark = "left_knee"
	RightKnee     Landmark = "right_knee"
	LeftAnkle     Landmark = "left_ankle"
	RightAnkle    Landmark = "right_ankle"
)

// JointPoint is a normalized image coordinate of one landmark.
// X grows to the right and Y grows downward, both in [0, 1] for on-screen joints.
type JointPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PoseFrame holds the landmarks detected in one video frame.
// Detected is false when the pose estimator found no body in the frame.
type PoseFrame struct {
	Index     int                     `json:"frame"`
	Detected  bool                    `json:"detected"`
	Landmarks map[Landmark]JointPoint `json:"landmarks,omitempty"`
}

// UnmarshalJSON infers detection from the landmarks when "detected" is
// absent. An explicit false, or an empty landmark set, marks the frame
// undetected.
func (f *PoseFrame) UnmarshalJSON(data []byte) error {
	var raw struct {
		Index     int                     `json:"frame"`
		Detected  *bool                   `json:"detected"`
		Landmarks map[Landmark]JointPoint `json:"landmarks"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	detected := len(raw.Landmarks) > 0
	if raw.Detected != nil {
		detected = *raw.Detected && detected
	}

	*f = PoseFrame{Index: raw.Index, Detected: detected}
	if detected {
		f.Landmarks = raw.Landmarks
	}
	return nil
}

// UndetectedFrame returns the failure marker for a frame index
func UndetectedFrame(index int) PoseFrame {
	return PoseFrame{Index: index}
}

// Point returns the coordinate of a landmark, if present
func (f PoseFrame) Point(l Landmark) (JointPoint, bool) {
	if !f.Detected {
		return JointPoint{}, false
	}
	p, ok := f.Landmarks[l]
	return p, ok
}

// HasAll reports whether every listed landmark is present
func (f PoseFrame) HasAll(landmarks ...Landmark) bool {
	if !f.Detected {
		return false
	}
	for _, l := range landmarks {
		if _, ok := f.Landmarks[l]; !ok {
			return false
		}
	}
	return true
}

// Preview is the per-frame progress value emitted while a run is in flight.
// It is presentation-only; nothing in the analysis depends on it.
type Preview struct {
	Frame     int                     `json:"frame"`
	Detected  bool                    `json:"detected"`
	Phase     Phase                   `json:"phase"`
	Landmarks map[Landmark]JointPoint `json:"landmarks,omitempty"`
}
