package improvement

import (
	"fmt"
	"slices"

	"github.com/jengzang/cricketsense-backend-go/internal/bands"
	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

const (
	maxFocusAreas      = 3
	maxDrills          = 4
	maintainedDrillCap = 3
	minDrills          = 2
)

// GenerateFeedback turns a comparison into the text shown to the player
func (c *Comparator) GenerateFeedback(r models.ImprovementResult) models.ImprovementFeedback {
	feedback := models.ImprovementFeedback{
		Summary:      summaryLine(r),
		Improvements: []string{},
		Regressions:  []string{},
		FocusAreas:   focusAreas(r),
		Drills:       drills(r),
	}

	for _, a := range r.ImprovedAreas {
		feedback.Improvements = append(feedback.Improvements,
			fmt.Sprintf(improvementFormat, a.Name, a.FromValue, a.Unit, a.ToValue, a.Unit, a.Change))
	}
	for _, a := range r.RegressedAreas {
		feedback.Regressions = append(feedback.Regressions,
			fmt.Sprintf(regressionFormat, a.Name, a.FromValue, a.Unit, a.ToValue, a.Unit, a.Change))
	}

	return feedback
}

func summaryLine(r models.ImprovementResult) string {
	format, ok := summaryFormats[r.OverallVerdict]
	if !ok || r.OverallVerdict == models.VerdictMaintained {
		return fmt.Sprintf(summaryFormats[models.VerdictMaintained], r.FollowupAccuracy)
	}
	return fmt.Sprintf(format, r.OriginalAccuracy, r.FollowupAccuracy)
}

func focusText(metric models.MetricName, c models.Category) (string, bool) {
	byFamily, ok := focusTexts[metric]
	if !ok {
		return "", false
	}
	if text, ok := byFamily[bands.FamilyOf(c)]; ok {
		return text, true
	}
	text, ok := byFamily[bands.FamilyGeneric]
	return text, ok
}

// focusAreas lists one line per regressed metric, or general advice when
// nothing regressed
func focusAreas(r models.ImprovementResult) []string {
	var focus []string
	for _, a := range r.RegressedAreas {
		text, ok := focusText(a.Metric, r.ShotType)
		if ok && !slices.Contains(focus, text) {
			focus = append(focus, text)
		}
	}

	if len(focus) == 0 {
		if r.OverallVerdict == models.VerdictMaintained || r.OverallVerdict == models.VerdictSlightRegression {
			focus = append(focus, focusConsistency)
		}
		focus = append(focus, focusTimingBalance)
	}

	return focus[:min(len(focus), maxFocusAreas)]
}

// drills picks the first drill of every regressed metric, then the second
// drill of maintained metrics while there is room
func drills(r models.ImprovementResult) []string {
	var picked []string
	for _, a := range r.RegressedAreas {
		if a.Metric == models.MetricWeightTransferAmount {
			if bands.FamilyOf(r.ShotType) == bands.FamilyForward {
				picked = append(picked, forwardWeightDrills[0])
			} else {
				picked = append(picked, backWeightDrills[0])
			}
			continue
		}
		if book, ok := drillBook[a.Metric]; ok {
			picked = append(picked, book[0])
		}
	}

	for _, a := range r.MaintainedAreas {
		book, ok := drillBook[a.Metric]
		if !ok || len(picked) >= maintainedDrillCap {
			continue
		}
		picked = append(picked, book[min(1, len(book)-1)])
	}

	if len(picked) < minDrills {
		picked = append(picked, genericDrills...)
	}

	return picked[:min(len(picked), maxDrills)]
}
