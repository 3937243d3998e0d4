package models

// Status is the qualitative grade of one metric against its band
type Status string

const (
	StatusExcellent        Status = "excellent"
	StatusNeedsImprovement Status = "needs_improvement"
	StatusPoor             Status = "poor"
)

// Priority orders flaws; high sorts before medium
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// AdviceMetric names a metric graded by the advice engine
type AdviceMetric string

const (
	AdviceElbowAngle     AdviceMetric = "elbow_angle"
	AdviceWeightTransfer AdviceMetric = "weight_transfer"
	AdviceBodyRotation   AdviceMetric = "body_rotation"
	AdviceHeadStability  AdviceMetric = "head_stability"
	AdviceKneeBracing    AdviceMetric = "knee_bracing"
	AdviceStanceKnee     AdviceMetric = "stance_knee"
)

// MetricAnalysis is the grade given to one metric of a stroke
type MetricAnalysis struct {
	Metric AdviceMetric `json:"metric"`
	Value  float64      `json:"value"`
	Status Status       `json:"status"`
}

// ShotInsights carries the category-specific coaching material
type ShotInsights struct {
	Description       string   `json:"description,omitempty"`
	KeyFocusAreas     []string `json:"key_focus_areas,omitempty"`
	RecommendedDrills []string `json:"recommended_drills,omitempty"`
}

// AdviceResult is the coaching feedback for a single attempt
type AdviceResult struct {
	ShotType        Category     `json:"shot_type"`
	ShotConfidence  float64      `json:"shot_confidence"`
	Strengths       []string     `json:"strengths"`
	Flaws           []string     `json:"flaws"`
	Recommendations []string     `json:"recommendations"`
	ShotInsights    ShotInsights `json:"shot_insights"`
}
