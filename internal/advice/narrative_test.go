package advice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

type stubNarrator struct {
	text   string
	err    error
	prompt string
}

func (s *stubNarrator) Narrate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.text, s.err
}

func TestGenerateNarrativeUsesNarrator(t *testing.T) {
	narrator := &stubNarrator{text: "  Lovely high elbow, now get that front foot moving.  "}
	engine := NewEngine(WithNarrator(narrator))
	m := weakDrive()

	text := engine.GenerateNarrative(context.Background(), engine.GenerateAdvice(m), m)

	assert.Equal(t, "Lovely high elbow, now get that front foot moving.", text)
	assert.Contains(t, narrator.prompt, "video analysis of their DRIVE")
	assert.Contains(t, narrator.prompt, "- Elbow angle: 150.0°")
	assert.Contains(t, narrator.prompt, "- No major strengths detected")
}

func TestGenerateNarrativeFallsBack(t *testing.T) {
	m := weakDrive()

	tests := []struct {
		name     string
		narrator Narrator
	}{
		{"no narrator", nil},
		{"narrator error", &stubNarrator{err: errors.New("quota exceeded")}},
		{"empty answer", &stubNarrator{text: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(WithNarrator(tt.narrator))
			advice := engine.GenerateAdvice(m)

			text := engine.GenerateNarrative(context.Background(), advice, m)
			assert.Equal(t, FallbackNarrative(advice), text)
		})
	}
}

func TestFallbackNarrative(t *testing.T) {
	assert.Equal(t,
		"Good effort on your DRIVE. Keep working on the basics. Focus on the areas highlighted above for improvement. Consistent practice will help you develop muscle memory and confidence.",
		FallbackNarrative(models.AdviceResult{
			ShotType:  models.CategoryDrive,
			Strengths: []string{fallbackStrength},
			Flaws:     []string{"⚠️ Head movement detected (12.0°)"},
		}))

	assert.Equal(t,
		"Good effort on your shot. Your technique shows good fundamentals. Continue refining your current technique. Consistent practice will help you develop muscle memory and confidence.",
		FallbackNarrative(models.AdviceResult{Strengths: []string{"✅ Balanced stance position (130.0°)"}}))
}
