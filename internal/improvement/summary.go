package improvement

import (
	"fmt"
	"strings"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

// GenerateSummary renders a comparison and its feedback as a plain text report
func (c *Comparator) GenerateSummary(r models.ImprovementResult, feedback models.ImprovementFeedback) string {
	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}
	section := func(title string, items []string, numbered bool) {
		if len(items) == 0 {
			return
		}
		add("\n%s", title)
		for i, item := range items {
			if numbered {
				add("   %d. %s", i+1, item)
			} else {
				add("   %s", item)
			}
		}
	}

	add(reportRule)
	add("CRICKET SHOT IMPROVEMENT ANALYSIS REPORT")
	add(reportRule)

	add("\n📊 SHOT TYPE: %s", r.ShotType)

	add("\n📈 ACCURACY COMPARISON:")
	add("   Original Attempt:  %.0f/100", r.OriginalAccuracy)
	add("   Follow-up Attempt: %.0f/100", r.FollowupAccuracy)
	add("   Change:            %+.0f points", r.AccuracyChange)

	add("\n🏆 VERDICT: %s", strings.ReplaceAll(string(r.OverallVerdict), "_", " "))
	add("   %s", r.VerdictDescription)

	section("✅ AREAS OF IMPROVEMENT:", feedback.Improvements, false)
	section("⚠️ AREAS NEEDING ATTENTION:", feedback.Regressions, false)
	section("🎯 FOCUS AREAS:", feedback.FocusAreas, false)
	section("🏋️ RECOMMENDED DRILLS:", feedback.Drills, true)

	add("\n%s", reportRule)
	add(reportClosingLine)
	add(reportRule)

	return strings.Join(lines, "\n")
}
