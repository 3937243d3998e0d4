package models

import "time"

// Attempt is an analyzed practice stroke kept for later comparison
type Attempt struct {
	ID        string      `json:"id" db:"id"`
	Label     string      `json:"label,omitempty" db:"label"`
	Metrics   ShotMetrics `json:"metrics" db:"metrics_json"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

// AnalyzeRequest is the body of POST /api/v1/attempts
type AnalyzeRequest struct {
	Label  string      `json:"label"`
	Frames []PoseFrame `json:"frames" binding:"required"`
}

// CompareRequest is the body of POST /api/v1/comparisons
type CompareRequest struct {
	OriginalID string `json:"original_id" form:"original_id" binding:"required"`
	FollowupID string `json:"followup_id" form:"followup_id" binding:"required"`
}

// AdviceResponse bundles advice with the dashboard score and its label
type AdviceResponse struct {
	Advice           AdviceResult `json:"advice"`
	PerformanceScore int          `json:"performance_score"`
	PerformanceLabel string       `json:"performance_label"`
}

// ComparisonResponse bundles a comparison with its feedback
type ComparisonResponse struct {
	Result   ImprovementResult   `json:"result"`
	Feedback ImprovementFeedback `json:"feedback"`
}
