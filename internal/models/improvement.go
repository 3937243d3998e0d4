package models

// Verdict is the overall outcome of comparing two attempts
type Verdict string

const (
	VerdictImproved          Verdict = "IMPROVED"
	VerdictSlightImprovement Verdict = "SLIGHT_IMPROVEMENT"
	VerdictMaintained        Verdict = "MAINTAINED"
	VerdictSlightRegression  Verdict = "SLIGHT_REGRESSION"
	VerdictRegressed         Verdict = "REGRESSED"
)

// ChangeStatus classifies the score change of one metric
type ChangeStatus string

const (
	ChangeImproved   ChangeStatus = "improved"
	ChangeRegressed  ChangeStatus = "regressed"
	ChangeMaintained ChangeStatus = "maintained"
)

// OptimalRange is the inclusive [Min, Max] band a metric is scored against
type OptimalRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// MetricComparison holds the scores of one metric across both attempts
type MetricComparison struct {
	Metric        MetricName   `json:"metric"`
	OriginalValue float64      `json:"original_value"`
	FollowupValue float64      `json:"followup_value"`
	OriginalScore float64      `json:"original_score"`
	FollowupScore float64      `json:"followup_score"`
	ScoreChange   float64      `json:"score_change"`
	Status        ChangeStatus `json:"status"`
	OptimalRange  OptimalRange `json:"optimal_range"`
}

// AreaChange is one entry of the improved/regressed/maintained groupings
type AreaChange struct {
	Metric    MetricName `json:"metric"`
	Name      string     `json:"name"`
	Change    float64    `json:"change"`
	FromValue float64    `json:"from_value"`
	ToValue   float64    `json:"to_value"`
	Unit      string     `json:"unit"`
}

// ImprovementResult is the comparison of an original and a follow-up attempt
type ImprovementResult struct {
	ShotType           Category           `json:"shot_type"`
	FollowupShotType   Category           `json:"followup_shot_type"`
	MetricComparisons  []MetricComparison `json:"metric_comparisons"`
	ImprovedAreas      []AreaChange       `json:"improved_areas"`
	RegressedAreas     []AreaChange       `json:"regressed_areas"`
	MaintainedAreas    []AreaChange       `json:"maintained_areas"`
	OriginalAccuracy   float64            `json:"original_accuracy"`
	FollowupAccuracy   float64            `json:"followup_accuracy"`
	AccuracyChange     float64            `json:"accuracy_change"`
	OverallVerdict     Verdict            `json:"overall_verdict"`
	VerdictDescription string             `json:"verdict_description"`
	ImprovementScore   float64            `json:"improvement_score"`
}

// ImprovementFeedback is the text feedback derived from an ImprovementResult
type ImprovementFeedback struct {
	Summary      string   `json:"summary"`
	Improvements []string `json:"improvements"`
	Regressions  []string `json:"regressions"`
	FocusAreas   []string `json:"focus_areas"`
	Drills       []string `json:"drills"`
}
