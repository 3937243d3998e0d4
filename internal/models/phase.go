package models

import "fmt"

// Phase is one stage of a batting stroke. Phases are totally ordered:
// Unknown < Stance < Backlift < Downswing < FollowThrough.
type Phase int

const (
	PhaseUnknown Phase = iota
	PhaseStance
	PhaseBacklift
	PhaseDownswing
	PhaseFollowThrough
)

var phaseNames = map[Phase]string{
	PhaseUnknown:       "UNKNOWN",
	PhaseStance:        "STANCE",
	PhaseBacklift:      "BACKLIFT",
	PhaseDownswing:     "DOWNSWING",
	PhaseFollowThrough: "FOLLOW_THROUGH",
}

// StrokePhases lists the four recorded phases in order
func StrokePhases() []Phase {
	return []Phase{PhaseStance, PhaseBacklift, PhaseDownswing, PhaseFollowThrough}
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// MarshalText encodes the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a phase name
func (p *Phase) UnmarshalText(text []byte) error {
	for phase, name := range phaseNames {
		if name == string(text) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", string(text))
}

// PhaseSample holds the metrics derived from one frame.
// ElbowAngle is only recorded while the stroke is in the downswing.
type PhaseSample struct {
	KneeAngle      float64 `json:"knee_angle"`
	LegDirection   float64 `json:"leg_direction"`
	BodyDirection  float64 `json:"body_direction"`
	HeadDirection  float64 `json:"head_direction"`
	WeightTransfer float64 `json:"weight_transfer"`
	ElbowAngle     float64 `json:"elbow_angle,omitempty"`
	HasElbow       bool    `json:"-"`
}
