package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(79, 30))
	assert.True(t, IsTooSmall(100, 23))
	assert.False(t, IsTooSmall(80, 24))
}

func TestRenderFooterDropsOverflow(t *testing.T) {
	hints := []KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+B", Description: "Profile"},
		{Key: "Ctrl+N", Description: "Aptitude quiz"},
	}
	wide := RenderFooter(hints, 100)
	assert.Contains(t, wide, "Aptitude quiz")

	narrow := RenderFooter(hints, 30)
	assert.Contains(t, narrow, "Send")
	assert.NotContains(t, narrow, "Aptitude quiz")
}

func TestRenderHeaderDropsTitleWhenNarrow(t *testing.T) {
	h := RenderHeader("Career Guidance", "✦ Professor Alex", 40)
	assert.Contains(t, h, "Professor Alex")
	assert.NotContains(t, h, "Career Guidance")
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Chat", "Professor Alex", 100)
	assert.Contains(t, h, "Dream Teacher")
	assert.Contains(t, h, "Chat")
	assert.Contains(t, h, "Professor Alex")
}

func TestRenderStepper(t *testing.T) {
	labels := []string{"Mentor", "Chat", "Quiz"}
	wide := RenderStepper(labels, 1, 120)
	assert.Contains(t, wide, "✓ Mentor")
	assert.Contains(t, wide, "● Chat")
	assert.Contains(t, wide, "○ Quiz")

	narrow := RenderStepper(labels, 2, 10)
	assert.Contains(t, narrow, "Step 3/3")
}
