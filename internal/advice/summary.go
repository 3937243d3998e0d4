package advice

import (
	"fmt"
	"strings"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

const (
	summaryRule        = "============================================================"
	maxSummaryFocus    = 6
	maxSummaryDrills   = 3
	summaryClosingLine = "Keep practicing - consistency is the key to mastery!"
)

// GenerateSummary renders advice as a plain text report
func (e *Engine) GenerateSummary(advice models.AdviceResult) string {
	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	add(summaryRule)
	add("CRICKET COACHING ANALYSIS REPORT")
	add(summaryRule)

	shotType := advice.ShotType
	if shotType == "" {
		shotType = models.CategoryUnknown
	}
	add("\n🏏 Shot Type Detected: %s (Confidence: %.0f%%)", shotType, advice.ShotConfidence*100)
	if advice.ShotInsights.Description != "" {
		add("   %s", advice.ShotInsights.Description)
	}

	if len(advice.Strengths) > 0 {
		add("\n✅ STRENGTHS:")
		for _, s := range advice.Strengths {
			add("   %s", s)
		}
	}

	if len(advice.Flaws) > 0 {
		add("\n⚠️  AREAS FOR IMPROVEMENT:")
		for _, f := range advice.Flaws {
			add("   %s", f)
		}
	}

	if len(advice.Recommendations) > 0 {
		add("\n💡 ACTIONABLE RECOMMENDATIONS:")
		for i, r := range advice.Recommendations {
			add("   %d. %s", i+1, r)
		}
	}

	if focus := advice.ShotInsights.KeyFocusAreas; len(focus) > 0 {
		add("\n🎯 KEY FOCUS AREAS FOR %s:", shotType)
		for _, f := range focus[:min(len(focus), maxSummaryFocus)] {
			add("   • %s", f)
		}
	}

	if drills := advice.ShotInsights.RecommendedDrills; len(drills) > 0 {
		add("\n🏋️ PRACTICE DRILLS:")
		for _, d := range drills[:min(len(drills), maxSummaryDrills)] {
			add("   • %s", d)
		}
	}

	add("\n%s", summaryRule)
	add(summaryClosingLine)
	add(summaryRule)

	return strings.Join(lines, "\n")
}
