package analysis

import (
	"github.com/jengzang/cricketsense-backend-go/internal/models"
	"github.com/jengzang/cricketsense-backend-go/internal/spatial"
)

// DefaultFollowThroughBuffer is the number of follow-through frames captured
// before a run stops
const DefaultFollowThroughBuffer = 30

// PhaseData holds the per-phase sample accumulators of one run
type PhaseData map[models.Phase][]models.PhaseSample

// Samples returns the samples recorded for a phase
func (d PhaseData) Samples(p models.Phase) []models.PhaseSample {
	return d[p]
}

// Len returns the number of samples recorded for a phase
func (d PhaseData) Len(p models.Phase) int {
	return len(d[p])
}

// Total returns the number of samples across all phases
func (d PhaseData) Total() int {
	total := 0
	for _, samples := range d {
		total += len(samples)
	}
	return total
}

// transition advances the stroke from one of the listed phases when the
// frame satisfies its condition
type transition struct {
	name string
	from []models.Phase
	to   models.Phase
	when func(f models.PoseFrame) bool
}

func (t transition) applies(phase models.Phase) bool {
	for _, p := range t.from {
		if p == phase {
			return true
		}
	}
	return false
}

// strokeTransitions are evaluated in order on every frame. Each check sees the
// phase left by the previous one, so a single frame may advance several steps.
var strokeTransitions = []transition{
	{
		name: "bat_raised",
		from: []models.Phase{models.PhaseStance, models.PhaseBacklift},
		to:   models.PhaseBacklift,
		when: func(f models.PoseFrame) bool {
			return y(f, models.LeftWrist) < y(f, models.Nose)*1.1
		},
	},
	{
		name: "bat_dropping",
		from: []models.Phase{models.PhaseBacklift},
		to:   models.PhaseDownswing,
		when: func(f models.PoseFrame) bool {
			return y(f, models.LeftWrist) > y(f, models.Nose)*0.9
		},
	},
	{
		name: "wrist_crossed",
		from: []models.Phase{models.PhaseDownswing},
		to:   models.PhaseFollowThrough,
		when: func(f models.PoseFrame) bool {
			return x(f, models.LeftWrist) > x(f, models.RightShoulder)
		},
	},
}

func x(f models.PoseFrame, l models.Landmark) float64 {
	p, _ := f.Point(l)
	return p.X
}

func y(f models.PoseFrame, l models.Landmark) float64 {
	p, _ := f.Point(l)
	return p.Y
}

// Segmenter is the per-run phase state machine. It is not safe for concurrent
// use and must not be shared between runs.
type Segmenter struct {
	phase         models.Phase
	data          PhaseData
	history       []models.Phase
	followThrough int
	buffer        int
}

// NewSegmenter creates a segmenter that stops after buffer follow-through frames
func NewSegmenter(buffer int) *Segmenter {
	if buffer <= 0 {
		buffer = DefaultFollowThroughBuffer
	}

	return &Segmenter{
		phase:  models.PhaseUnknown,
		data:   make(PhaseData),
		buffer: buffer,
	}
}

// Process feeds one frame through the state machine and returns the phase
// after it. The second result is false when the frame was skipped, either
// because it carried no usable pose or because the run is already done.
func (s *Segmenter) Process(frame models.PoseFrame) (models.Phase, bool) {
	if s.Done() || !spatial.Usable(frame) {
		return s.phase, false
	}

	if s.phase == models.PhaseUnknown {
		s.phase = models.PhaseStance
	}
	for _, t := range strokeTransitions {
		if t.applies(s.phase) && t.when(frame) {
			s.phase = t.to
		}
	}

	sample, _ := spatial.Sample(frame, s.phase)
	s.data[s.phase] = append(s.data[s.phase], sample)
	s.history = append(s.history, s.phase)

	if s.phase == models.PhaseFollowThrough {
		s.followThrough++
	}

	return s.phase, true
}

// Phase returns the current phase
func (s *Segmenter) Phase() models.Phase {
	return s.phase
}

// Done reports whether enough follow-through frames have been captured
func (s *Segmenter) Done() bool {
	return s.phase == models.PhaseFollowThrough && s.followThrough >= s.buffer
}

// History returns the phase recorded for every processed frame
func (s *Segmenter) History() []models.Phase {
	out := make([]models.Phase, len(s.history))
	copy(out, s.history)
	return out
}

// Counts returns the number of samples recorded per phase
func (s *Segmenter) Counts() map[models.Phase]int {
	counts := make(map[models.Phase]int, len(s.data))
	for phase, samples := range s.data {
		counts[phase] = len(samples)
	}
	return counts
}

// Data returns the accumulated phase samples
func (s *Segmenter) Data() PhaseData {
	return s.data
}
