package advice

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

// Narrator writes free text from a prompt. Implementations may block on a
// remote model.
type Narrator interface {
	Narrate(ctx context.Context, prompt string) (string, error)
}

// GenerateNarrative asks the narrator for a short personal coaching note.
// Without a narrator, or when it fails, a templated note is returned instead.
func (e *Engine) GenerateNarrative(ctx context.Context, advice models.AdviceResult, m models.ShotMetrics) string {
	if e.narrator == nil {
		return FallbackNarrative(advice)
	}

	text, err := e.narrator.Narrate(ctx, NarrativePrompt(advice, m))
	if err != nil {
		e.logger.Warn("narrative generation failed", zap.Error(err))
		return FallbackNarrative(advice)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		e.logger.Warn("narrative generation returned no text")
		return FallbackNarrative(advice)
	}
	return text
}

// NarrativePrompt builds the request sent to the narrator
func NarrativePrompt(advice models.AdviceResult, m models.ShotMetrics) string {
	bullets := func(items []string, placeholder, fallback string) string {
		if len(items) == 0 || (len(items) == 1 && items[0] == fallback) {
			return "- " + placeholder
		}
		lines := make([]string, len(items))
		for i, item := range items {
			lines[i] = "- " + item
		}
		return strings.Join(lines, "\n")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an experienced cricket batting coach providing personalized feedback to a player.\n\n")
	fmt.Fprintf(&b, "Based on the video analysis of their %s, here's what was detected:\n\n", advice.ShotType)
	fmt.Fprintf(&b, "**Strengths identified:**\n%s\n\n", bullets(advice.Strengths, "No major strengths detected", fallbackStrength))
	fmt.Fprintf(&b, "**Areas needing improvement:**\n%s\n\n", bullets(advice.Flaws, "No major issues detected", fallbackFlaw))
	fmt.Fprintf(&b, "**Key metrics:**\n")
	fmt.Fprintf(&b, "- Elbow angle: %.1f°\n", m.MaxElbowAngle)
	fmt.Fprintf(&b, "- Weight transfer: %.1f%%\n", m.WeightTransferAmount)
	fmt.Fprintf(&b, "- Body rotation: %.1f°\n", m.BodyRotationTotal)
	fmt.Fprintf(&b, "- Head movement: %.1f°\n\n", m.HeadMovement)
	b.WriteString(`Write a 3-4 sentence personalized coaching summary that:
1. Acknowledges what they did well (be specific)
2. Identifies the most important thing to work on
3. Gives one actionable tip they can try in their next session
4. Sounds encouraging but honest

Keep it conversational and cricket-specific. Reference professional players if relevant.`)

	return b.String()
}

// FallbackNarrative is the deterministic note used when no narrator answers.
// The generic placeholder entries do not count as findings.
func FallbackNarrative(advice models.AdviceResult) string {
	shotType := string(advice.ShotType)
	if shotType == "" {
		shotType = "shot"
	}

	strengthText := "Keep working on the basics"
	if hasFindings(advice.Strengths, fallbackStrength) {
		strengthText = "Your technique shows good fundamentals"
	}

	focusText := "Continue refining your current technique"
	if hasFindings(advice.Flaws, fallbackFlaw) {
		focusText = "Focus on the areas highlighted above for improvement"
	}

	return fmt.Sprintf("Good effort on your %s. %s. %s. Consistent practice will help you develop muscle memory and confidence.",
		shotType, strengthText, focusText)
}

func hasFindings(items []string, fallback string) bool {
	return len(items) > 0 && !(len(items) == 1 && items[0] == fallback)
}
