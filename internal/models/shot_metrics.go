package models

// Category is the shot label assigned by the classifier
type Category string

const (
	CategoryDefensive       Category = "DEFENSIVE"
	CategoryDrive           Category = "DRIVE"
	CategoryPullHook        Category = "PULL/HOOK"
	CategoryCut             Category = "CUT"
	CategorySweep           Category = "SWEEP"
	CategoryLofted          Category = "LOFTED"
	CategoryForwardShot     Category = "FORWARD SHOT"
	CategoryFlick           Category = "FLICK"
	CategoryLeave           Category = "LEAVE"
	CategoryBackFootDefense Category = "BACK FOOT DEFENSE"
	CategoryUnknown         Category = "UNKNOWN"
)

// MetricName identifies a scalar of ShotMetrics used for scoring
type MetricName string

const (
	MetricMaxElbowAngle        MetricName = "max_elbow_angle"
	MetricWeightTransferAmount MetricName = "weight_transfer_amount"
	MetricBodyRotationTotal    MetricName = "body_rotation_total"
	MetricHeadMovement         MetricName = "head_movement"
)

// ShotMetrics is the summary of one analyzed stroke.
// It is produced once per run and treated as read-only afterwards.
type ShotMetrics struct {
	StanceBodyDirection    float64 `json:"stance_body_direction"`
	ImpactBodyDirection    float64 `json:"impact_body_direction"`
	StanceLegDirection     float64 `json:"stance_leg_direction"`
	ImpactLegDirection     float64 `json:"impact_leg_direction"`
	StanceKneeAngle        float64 `json:"stance_knee_angle"`
	DownswingKneeAngle     float64 `json:"downswing_knee_angle"`
	StanceHeadDirection    float64 `json:"stance_head_direction"`
	DownswingHeadDirection float64 `json:"downswing_head_direction"`

	WeightTransferAmount float64 `json:"weight_transfer_amount"`
	MaxElbowAngle        float64 `json:"max_elbow_angle"`
	BodyRotationTotal    float64 `json:"body_rotation_total"`
	HeadMovement         float64 `json:"head_movement"`
	KneeBracing          float64 `json:"knee_bracing"`

	ShotType       Category `json:"shot_type"`
	ShotConfidence float64  `json:"shot_confidence"`

	BodyRotationOverTime []float64     `json:"body_rotation_over_time"`
	PhaseCounts          map[Phase]int `json:"phase_counts,omitempty"`
	FramesProcessed      int           `json:"frames_processed"`
	FramesDetected       int           `json:"frames_detected"`
}

// Value returns the scalar stored under a metric name
func (m ShotMetrics) Value(name MetricName) (float64, bool) {
	switch name {
	case MetricMaxElbowAngle:
		return m.MaxElbowAngle, true
	case MetricWeightTransferAmount:
		return m.WeightTransferAmount, true
	case MetricBodyRotationTotal:
		return m.BodyRotationTotal, true
	case MetricHeadMovement:
		return m.HeadMovement, true
	}
	return 0, false
}

// Category returns the shot type, treating an empty label as UNKNOWN
func (m ShotMetrics) Category() Category {
	if m.ShotType == "" {
		return CategoryUnknown
	}
	return m.ShotType
}
