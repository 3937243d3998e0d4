package improvement

import (
	"github.com/jengzang/cricketsense-backend-go/internal/bands"
	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

type metricInfo struct {
	name string
	unit string
}

var metricInfos = map[models.MetricName]metricInfo{
	models.MetricMaxElbowAngle:        {name: "Elbow Extension", unit: "°"},
	models.MetricWeightTransferAmount: {name: "Weight Transfer", unit: "%"},
	models.MetricBodyRotationTotal:    {name: "Body Rotation", unit: "°"},
	models.MetricHeadMovement:         {name: "Head Stability", unit: "°"},
}

var verdictDescriptions = map[models.Verdict]string{
	models.VerdictImproved:          "Great progress! Your technique has measurably improved.",
	models.VerdictRegressed:         "Your follow-up attempt shows some regression. This can happen when trying new techniques - keep practicing.",
	models.VerdictSlightImprovement: "Marginal improvement detected. You're on the right track but there's more work to do.",
	models.VerdictSlightRegression:  "Your technique has slightly regressed. Review the feedback from your first attempt and focus on those areas.",
	models.VerdictMaintained:        "Your technique is consistent between attempts. Focus on specific areas to see improvement.",
}

// summaryFormats take the original and follow-up accuracy, except
// MAINTAINED which only reports the follow-up
var summaryFormats = map[models.Verdict]string{
	models.VerdictImproved:          "Excellent work! Your accuracy improved from %.0f/100 to %.0f/100. Your dedication to practice is paying off.",
	models.VerdictRegressed:         "Your accuracy dropped from %.0f/100 to %.0f/100. Don't be discouraged - this often happens when making technical changes. Review the original advice and try again.",
	models.VerdictSlightImprovement: "You're making progress! Accuracy moved from %.0f/100 to %.0f/100. Keep working on the areas highlighted below.",
	models.VerdictSlightRegression:  "Your accuracy dipped slightly from %.0f/100 to %.0f/100. Focus on the fundamentals and try again.",
	models.VerdictMaintained:        "Your technique is consistent at %.0f/100. To see improvement, focus specifically on the areas marked for improvement.",
}

const (
	improvementFormat = "✅ %s: Improved from %.1f%s to %.1f%s (+%.0f points)"
	regressionFormat  = "⚠️ %s: Regressed from %.1f%s to %.1f%s (%.0f points)"

	focusConsistency   = "🎯 Focus on consistency - practice the same shot repeatedly with attention to form"
	focusTimingBalance = "🎯 Continue working on timing and balance throughout your shot"
)

// focusTexts maps a regressed metric to its focus line. Metrics keyed by
// family fall back to FamilyGeneric.
var focusTexts = map[models.MetricName]map[bands.Family]string{
	models.MetricMaxElbowAngle: {
		bands.FamilyGeneric: "🎯 Focus on elbow extension - keep your front arm straighter through the shot",
	},
	models.MetricWeightTransferAmount: {
		bands.FamilyForward: "🎯 Work on weight transfer - commit more to moving forward into the shot",
		bands.FamilyGeneric: "🎯 Adjust weight distribution - for this shot, stay more balanced or back",
	},
	models.MetricBodyRotationTotal: {
		bands.FamilyBackFoot:  "🎯 Generate more power through hip and shoulder rotation",
		bands.FamilyDefensive: "🎯 Minimize body rotation - defensive shots need stillness",
		bands.FamilyGeneric:   "🎯 Optimize body rotation for better power and control",
	},
	models.MetricHeadMovement: {
		bands.FamilyGeneric: "🎯 Keep your head still - excessive movement disrupts timing",
	},
}

// drillBook lists follow-up drills per metric. Weight transfer is split by
// the direction the shot needs.
var drillBook = map[models.MetricName][]string{
	models.MetricMaxElbowAngle: {
		"Shadow batting drill: Practice with focus on full arm extension at impact point",
		"Wall drill: Stand sideways to wall, practice extending arm without hitting wall",
		"Mirror work: Watch your elbow position throughout the swing",
	},
	models.MetricBodyRotationTotal: {
		"Hip rotation exercise: Practice rotating hips while keeping head still",
		"Core strengthening: Planks and rotational exercises improve power generation",
		"Resistance band rotation: Builds muscle memory for proper rotation",
	},
	models.MetricHeadMovement: {
		"Balance book drill: Practice with object balanced on head (forces stillness)",
		"Eyes on ball drill: Track the ball with only your eyes, not your head",
		"Video analysis: Record yourself and check head position frame by frame",
	},
}

var (
	forwardWeightDrills = []string{
		"Step and drive: Exaggerate stepping into the shot during practice",
		"Single stump drill: Focus on driving through the line towards a single stump",
		"Weighted bat practice: Builds strength for committed forward movement",
	}
	backWeightDrills = []string{
		"Back foot punch drill: Practice quick weight shifts to back foot",
		"Short ball reaction drill: Tennis ball bouncer practice for back foot shots",
	}
	genericDrills = []string{
		"General: Practice the shot 20-30 times focusing on one aspect at a time",
		"Video review: Record each session and compare to identify patterns",
	}
)

const (
	reportRule        = "================================================================="
	reportClosingLine = "Keep practicing - improvement comes with consistent, focused effort!"
)
