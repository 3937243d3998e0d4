package advice

import "github.com/jengzang/cricketsense-backend-go/internal/models"

// ShotGuide is the coaching material kept for one category
type ShotGuide struct {
	Description string
	KeyFocus    []string
	Drills      []string
}

// shotGuides holds the insights shown for each category. UNKNOWN has none.
var shotGuides = map[models.Category]ShotGuide{
	models.CategoryDrive: {
		Description: "The drive is the cornerstone of classical batting technique. A flowing, elegant stroke played to full-length deliveries, it requires perfect synchronization of footwork, head position, and bat swing. The front-foot drive is considered the measure of a batsman's technical proficiency.",
		KeyFocus: []string{
			"Full front arm extension through the shot",
			"Balanced weight transfer onto front foot",
			"Head still and over the ball at impact",
			"High elbow position maintaining bat control",
			"Front foot pointing towards the ball",
			"Smooth follow-through towards target",
			"Eyes level throughout the stroke",
			"Front knee bent but firm at impact",
		},
		Drills: []string{
			"Front foot drives off a bowling machine at 70% pace - focus on head position",
			"Shadow batting with mirror - check elbow height at impact point",
			"Throw-downs with tennis ball - exaggerate weight transfer",
			"Drive against wall with taped target - practice follow-through direction",
		},
	},
	models.CategoryPullHook: {
		Description: "The pull and hook are aggressive back-foot shots played to short-pitched deliveries. The pull is played to balls at chest height with a horizontal bat, while the hook is played to balls at head height. Both require excellent reflexes, quick weight transfer, and precise timing to control the ball's trajectory.",
		KeyFocus: []string{
			"Quick weight transfer to back foot",
			"Strong hip and shoulder rotation",
			"Head still and eyes on the ball",
			"Balanced finish position",
			"Back foot pivoting for power generation",
			"Arms away from body for free swing",
			"Roll wrists to keep ball down",
			"Watch ball onto bat until contact",
		},
		Drills: []string{
			"Short ball machine work - start at reduced pace and gradually increase",
			"Tennis ball throws at head height - practice ducking vs playing",
			"Pull shot shadow batting focusing on hip rotation",
			"Reaction drills with colored balls - decide pull vs duck",
		},
	},
	models.CategoryCut: {
		Description: "The cut shot is a controlled horizontal bat stroke played to short, wide deliveries outside off stump. It requires excellent judgment of length and width, late bat movement, and precise wrist control. The square cut and late cut are variations based on timing and placement.",
		KeyFocus: []string{
			"Late bat movement for deception",
			"Weight centered or slightly back",
			"Strong wrist control at impact",
			"Upper body rotation for power",
			"Back foot moving across to the ball",
			"High hands through the shot",
			"Watch ball right onto the bat",
			"Controlled follow-through",
		},
		Drills: []string{
			"Side-on throw-downs outside off stump - practice leaving vs cutting decision",
			"Cut shot against spin bowling - develops timing and placement",
			"Back foot movement drills - quick lateral steps",
			"Wrist strengthening exercises for better bat control",
		},
	},
	models.CategoryDefensive: {
		Description: "The defensive shot is the foundation of all batting. It's about survival, occupying the crease, and negating good deliveries. A solid defense frustrates bowlers and creates opportunities for scoring. The forward and back defensive are essential for building innings.",
		KeyFocus: []string{
			"Soft, relaxed hands to deaden the ball",
			"Head directly over the ball at contact",
			"Minimal backlift for control",
			"Solid, balanced base",
			"Bat angled down to cover bounce",
			"Eyes level and watching the ball",
			"Front elbow high and leading",
			"Pad and bat close together",
		},
		Drills: []string{
			"Defense against spin on turning pitches - practice smothering turn",
			"Ball drop exercises - soft hands catching drill",
			"Forward defense with eyes closed (after release) - trust technique",
			"Defense against seam movement - focus on playing late",
		},
	},
	models.CategorySweep: {
		Description: "The sweep is a premeditated shot played against spin bowling, particularly to full-length deliveries. It involves getting low and using a horizontal bat to sweep the ball to the leg side. Variations include the paddle sweep and reverse sweep for different placements.",
		KeyFocus: []string{
			"Low body position with bent knees",
			"Weight committed forward",
			"Top hand controlling bat face",
			"Head over front knee",
			"Front pad outside line of ball",
			"Roll bat face for placement",
			"Committed decisive movement",
			"Use pad as secondary defense",
		},
		Drills: []string{
			"Sweep against underarm spin throws - build confidence",
			"Knee strengthening for low position maintenance",
			"Placement practice - cones at fine leg, square leg, backward square",
			"Switch between sweep and pad-first defense based on line",
		},
	},
	models.CategoryLofted: {
		Description: "Lofted shots are aggressive aerial strokes designed to clear the infield or hit boundaries. They require confident technique, excellent timing, and commitment. The straight drive over the bowler and the lofted on-drive are high-risk, high-reward shots that can change a game.",
		KeyFocus: []string{
			"Full, free swing through the ball",
			"Strong, stable base throughout",
			"Head still at point of contact",
			"Complete follow-through high",
			"Trust your technique and timing",
			"Get to the pitch of the ball",
			"Smooth acceleration through impact",
			"Maintain balance on landing",
		},
		Drills: []string{
			"Lofted drives with tennis ball first - build confidence",
			"Target practice - hit cones at different distances",
			"Footwork drills - quick steps to pitch of ball",
			"Balance exercises - single leg stability",
		},
	},
	models.CategoryForwardShot: {
		Description: "A general forward playing shot that encompasses various front-foot strokes. The key is transferring weight onto the front foot while maintaining balance and keeping the head over the ball. This forms the basis for all attacking and defensive front-foot play.",
		KeyFocus: []string{
			"Front foot moving towards pitch of ball",
			"Head leading the movement",
			"Straight bat face at impact",
			"Balanced weight transfer",
			"Eyes level and watching ball",
			"Front knee bent for stability",
			"Back foot stays grounded initially",
			"Smooth weight shift not lunge",
		},
		Drills: []string{
			"Front foot stride practice with marker cones",
			"Head position drills - balance book on head during shadow batting",
			"Weight transfer exercises with resistance bands",
			"Slow motion practice focusing on sequence of movements",
		},
	},
	models.CategoryFlick: {
		Description: "The flick or clip is a wristy shot played to deliveries on the pads, directing the ball to the leg side. It requires excellent timing, supple wrists, and precise bat control. The shot can be played off front or back foot and is essential for scoring against straight bowling.",
		KeyFocus: []string{
			"Wrist rotation at point of contact",
			"Meet ball in front of pad",
			"Soft hands for control",
			"Head still over the ball",
			"Front foot clearing the way",
			"Bottom hand guides placement",
			"Watch ball onto bat",
			"Controlled follow-through",
		},
		Drills: []string{
			"Wrist flexibility exercises with bat",
			"Throw-downs on leg stump - practice placement",
			"Flick vs defend decision drills",
			"One-handed bottom hand practice for feel",
		},
	},
	models.CategoryLeave: {
		Description: "Leaving the ball is as important as playing it. Good judgment of line and length, combined with proper technique when shouldering arms, protects your wicket and frustrates bowlers. The leave is a statement of control and composure.",
		KeyFocus: []string{
			"Early judgment of line and length",
			"Bat raised out of way",
			"Body balanced and still",
			"Eyes following ball past",
			"Back foot movement if needed",
			"Confident, decisive movement",
			"Arms away from body",
			"Relaxed shoulders",
		},
		Drills: []string{
			"Leave practice with colored balls - leave red, play blue",
			"Line and length judgment from side on video",
			"Practice sessions where you can only leave - builds patience",
			"Shoulder arms technique in front of mirror",
		},
	},
	models.CategoryBackFootDefense: {
		Description: "The back foot defensive shot is played to short-of-length deliveries that don't warrant an attacking stroke. It's about getting behind the line, playing late, and controlling the ball down. Essential against pace and bounce.",
		KeyFocus: []string{
			"Quick back foot movement",
			"Get behind the line of ball",
			"High hands, soft grip",
			"Play under the eyes",
			"Angled bat to play down",
			"Weight balanced on both feet",
			"Watch ball onto bat",
			"Controlled follow-through down",
		},
		Drills: []string{
			"Back foot trigger movement practice",
			"Short ball defense with tennis balls",
			"Shadow batting focusing on high hands",
			"Catching practice to develop soft hands",
		},
	},
}
