package advice

import (
	"fmt"
	"slices"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

const (
	fallbackStrength       = "✅ Good attempt - continue practicing to refine your technique"
	fallbackFlaw           = "✅ Solid technique overall - minor refinements will take you to the next level"
	fallbackRecommendation = "💡 Keep practicing your current technique with focus on consistency"

	drillFormat = "🏋️ Recommended Drill: %s"
)

var proTips = map[models.Category]string{
	models.CategoryDrive:           "💡 Pro Tip: For classic drives, imagine painting a straight line from your bat's position at address to your follow-through. Your head should be the heaviest thing going forward.",
	models.CategoryPullHook:        "💡 Pro Tip: Watch the ball onto the bat - pull shots require excellent ball tracking. Commit early but execute late, and roll your wrists at impact to keep the ball down.",
	models.CategoryCut:             "💡 Pro Tip: Use your bottom hand to guide and your top hand to control - wrist flexibility is key. Wait for the ball to come to you, don't go looking for it.",
	models.CategoryDefensive:       "💡 Pro Tip: Think 'soft hands' - defensive shots should deaden the ball, not push it. Imagine you're catching an egg - that's the grip pressure you need.",
	models.CategorySweep:           "💡 Pro Tip: Get your front pad outside the line to give yourself room and protection. The sweep is premeditated - decide early and commit fully.",
	models.CategoryLofted:          "💡 Pro Tip: Trust your technique and swing through - don't try to hit too hard, let timing do the work. Get to the pitch of the ball with your feet.",
	models.CategoryForwardShot:     "💡 Pro Tip: Your head should lead every forward movement. Where your head goes, your body follows. Practice until it becomes automatic.",
	models.CategoryFlick:           "💡 Pro Tip: The flick is all about timing the wrist turn. Play along the line first, then roll the wrists - think of it as redirecting, not hitting.",
	models.CategoryLeave:           "💡 Pro Tip: The best batsmen know what not to play. A good leave is as valuable as a good shot - it shows control and understanding of your off stump.",
	models.CategoryBackFootDefense: "💡 Pro Tip: Get back and across quickly, but play the ball under your eyes. High hands and soft grip are your best friends against pace.",
}

// is reports whether c is one of the listed categories
func is(c models.Category, categories ...models.Category) bool {
	return slices.Contains(categories, c)
}

// metricTexts renders the feedback lines for one graded metric
type metricTexts struct {
	strength       func(c models.Category, v float64) string
	flaw           func(c models.Category, v float64) string
	recommendation func(c models.Category, v float64) string
}

var texts = map[models.AdviceMetric]metricTexts{
	models.AdviceElbowAngle: {
		strength: func(_ models.Category, v float64) string {
			return fmt.Sprintf("✅ Excellent arm extension (%.1f°) - your front arm is beautifully straight, generating optimal power and control", v)
		},
		flaw: func(c models.Category, v float64) string {
			if is(c, models.CategoryDrive, models.CategoryForwardShot) {
				return fmt.Sprintf("⚠️ Bent front arm (%.1f°) - for drives, keep your front arm straighter through impact for better timing and power", v)
			}
			return fmt.Sprintf("⚠️ Elbow too bent (%.1f°) - work on fuller arm extension to improve bat speed", v)
		},
		recommendation: func(_ models.Category, v float64) string {
			return fmt.Sprintf("💡 Drill: Practice shadow batting with emphasis on keeping your front arm fully extended (currently %.1f°). Hold the finish position to feel the stretch", v)
		},
	},
	models.AdviceWeightTransfer: {
		strength: func(c models.Category, v float64) string {
			switch {
			case is(c, models.CategoryDrive, models.CategoryForwardShot, models.CategoryLofted):
				return fmt.Sprintf("✅ Perfect weight transfer forward (%.1f) - you're getting excellent momentum into the shot", v)
			case is(c, models.CategoryPullHook, models.CategoryCut):
				return fmt.Sprintf("✅ Good weight distribution (%.1f) - well balanced for a back-foot shot", v)
			}
			return fmt.Sprintf("✅ Controlled weight transfer (%.1f) - your base stays balanced through the shot", v)
		},
		flaw: func(c models.Category, v float64) string {
			switch {
			case is(c, models.CategoryDrive, models.CategoryForwardShot, models.CategoryLofted):
				if v < 0 {
					return fmt.Sprintf("⚠️ Weight going backwards (%.1f) - you're falling away from the ball. Get your weight moving forward", v)
				}
				return fmt.Sprintf("⚠️ Insufficient weight transfer (%.1f) - commit more to moving forward into the shot", v)
			case is(c, models.CategoryPullHook, models.CategoryCut):
				return fmt.Sprintf("⚠️ Too much forward weight transfer (%.1f) - these back-foot shots need weight back, not forward", v)
			case v < 0:
				return fmt.Sprintf("⚠️ Weight falling back (%.1f) - stay level and let your weight move with the shot", v)
			}
			return fmt.Sprintf("⚠️ Too much weight transfer (%.1f) - keep your weight centred for this shot", v)
		},
		recommendation: func(c models.Category, v float64) string {
			switch {
			case is(c, models.CategoryDrive, models.CategoryForwardShot, models.CategoryLofted):
				return fmt.Sprintf("💡 Drill: Practice stepping forward into a front-foot drive, focusing on feeling your weight shift onto your front foot (currently %.1f)", v)
			case is(c, models.CategoryPullHook, models.CategoryCut):
				return fmt.Sprintf("💡 Drill: Practice weight transfer to your back foot (currently %.1f). Do shadow pulls, ensuring you feel balanced on your back leg", v)
			}
			return fmt.Sprintf("💡 Drill: Shadow bat from a balanced, centred base and hold the finish to check your weight (currently %.1f)", v)
		},
	},
	models.AdviceBodyRotation: {
		strength: func(c models.Category, v float64) string {
			switch {
			case is(c, models.CategoryPullHook, models.CategorySweep):
				return fmt.Sprintf("✅ Powerful body rotation (%.1f°) - great use of your core to generate power", v)
			case c == models.CategoryDefensive:
				return fmt.Sprintf("✅ Controlled body movement (%.1f°) - excellent defensive technique with minimal rotation", v)
			}
			return fmt.Sprintf("✅ Good shoulder turn (%.1f°) - optimal rotation for this shot", v)
		},
		flaw: func(c models.Category, v float64) string {
			switch {
			case is(c, models.CategoryPullHook, models.CategoryCut, models.CategorySweep):
				return fmt.Sprintf("⚠️ Limited body rotation (%.1f°) - generate more power by using your hips and shoulders", v)
			case c == models.CategoryDefensive:
				return fmt.Sprintf("⚠️ Excessive body movement (%.1f°) - defensive shots need minimal rotation for better control", v)
			case v < 15:
				return fmt.Sprintf("⚠️ Too little body rotation (%.1f°) - engage your core more to generate power", v)
			}
			return fmt.Sprintf("⚠️ Over-rotating (%.1f°) - this can cause loss of balance and power", v)
		},
		recommendation: func(c models.Category, v float64) string {
			switch {
			case c == models.CategoryPullHook:
				return fmt.Sprintf("💡 Drill: Practice hip and shoulder rotation exercises (currently %.1f°). Focus on pivoting your back foot to generate power", v)
			case c == models.CategoryDefensive:
				return fmt.Sprintf("💡 Drill: Practice defensive shots with focus on minimal body movement (currently %.1f°) - quiet hands and solid base", v)
			}
			return fmt.Sprintf("💡 Drill: Work on core rotation (currently %.1f°) - practice turning your shoulders while keeping head still", v)
		},
	},
	models.AdviceHeadStability: {
		strength: func(_ models.Category, v float64) string {
			return fmt.Sprintf("✅ Excellent head stability (%.1f° movement) - your head position is rock solid, crucial for timing", v)
		},
		flaw: func(_ models.Category, v float64) string {
			return fmt.Sprintf("⚠️ Head movement detected (%.1f°) - excessive head movement disrupts timing and ball tracking", v)
		},
		recommendation: func(_ models.Category, v float64) string {
			return fmt.Sprintf("💡 Drill: Place a cap with water on your head during shadow batting (head moved %.1f°). Practice keeping it balanced - this forces head stillness", v)
		},
	},
	models.AdviceKneeBracing: {
		strength: func(_ models.Category, v float64) string {
			return fmt.Sprintf("✅ Strong front leg bracing (%.1f° extension) - solid base for power transfer", v)
		},
		flaw: func(_ models.Category, v float64) string {
			return fmt.Sprintf("⚠️ Weak front leg (%.1f° change) - brace your front leg more firmly for better energy transfer", v)
		},
		recommendation: func(_ models.Category, v float64) string {
			return fmt.Sprintf("💡 Drill: Practice leg strengthening exercises (lunges, single-leg squats) to build a stronger, more stable base (currently %.1f°)", v)
		},
	},
	models.AdviceStanceKnee: {
		strength: func(_ models.Category, v float64) string {
			return fmt.Sprintf("✅ Balanced stance position (%.1f°) - good athletic base", v)
		},
		flaw: func(_ models.Category, v float64) string {
			if v < 120 {
				return fmt.Sprintf("⚠️ Stance too low (%.1f°) - raise your stance slightly for better movement", v)
			}
			return fmt.Sprintf("⚠️ Stance too upright (%.1f°) - lower your stance for better balance", v)
		},
		recommendation: func(_ models.Category, v float64) string {
			return fmt.Sprintf("💡 Drill: Rehearse your set-up in front of a mirror, aiming for a knee bend between 120° and 145° (currently %.1f°)", v)
		},
	},
}
