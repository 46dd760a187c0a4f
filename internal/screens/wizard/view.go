package wizard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dreamteacher/internal/aptitude"
	"github.com/abhisek/dreamteacher/internal/ui/components"
	"github.com/abhisek/dreamteacher/internal/ui/layout"
	"github.com/abhisek/dreamteacher/internal/ui/theme"
	wiz "github.com/abhisek/dreamteacher/internal/wizard"
)

var stepTitles = map[wiz.Step]string{
	wiz.StepHero:          "Find Your Dream Teacher",
	wiz.StepMentorProfile: "Meet Your Mentor",
	wiz.StepChat:          "Chat",
	wiz.StepAptitude:      "Aptitude Quiz",
	wiz.StepInterests:     "Your Interests",
	wiz.StepStudyStyle:    "How You Learn",
	wiz.StepGuidance:      "Career Guidance",
	wiz.StepFeedback:      "Thank You",
}

var stepLabels = []string{"Start", "Mentor", "Chat", "Quiz", "Interests", "Style", "Guidance", "Done"}

func stepIndex(step wiz.Step) int {
	for i, s := range wiz.Steps() {
		if s == step {
			return i
		}
	}
	return 0
}

func (s *WizardScreen) View(width, height int) string {
	st := s.engine.State()
	cw := components.ContentWidth(width)

	var body string
	if st.Loading {
		body = s.viewLoading(st, cw)
	} else {
		switch st.Step {
		case wiz.StepHero:
			body = s.viewHero(cw)
		case wiz.StepMentorProfile:
			body = s.viewProfile(st, cw)
		case wiz.StepChat:
			body = s.viewChat(st, cw, height)
		case wiz.StepAptitude:
			body = s.viewAptitude(st, cw)
		case wiz.StepInterests:
			body = s.viewInterests(st, cw)
		case wiz.StepStudyStyle:
			body = s.viewStudyStyle(cw)
		case wiz.StepGuidance:
			body = s.viewGuidance(st, cw, height)
		case wiz.StepFeedback:
			body = s.viewFeedback(st, cw)
		}
	}

	sections := []string{layout.RenderStepper(stepLabels, stepIndex(st.Step), width), "", body}
	if s.notice != "" {
		sections = append(sections, "", theme.Warning.Render(s.notice))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, strings.Join(sections, "\n"))
}

func (s *WizardScreen) viewLoading(st wiz.State, cw int) string {
	content := strings.Join([]string{
		s.spinner.View() + "  " + theme.Label.Render(st.LoadingHeadline()),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Width(cw - 6).Render("“" + st.Quote() + "”"),
	}, "\n")
	return components.Card(content, cw)
}

func (s *WizardScreen) viewHero(cw int) string {
	label := func(text string, focused bool) string {
		if focused {
			return theme.Selected.Render(text)
		}
		return theme.Label.Render(text)
	}
	content := strings.Join([]string{
		theme.Title.Render("Describe the teacher you have always wanted"),
		theme.Hint.Render("We will turn it into a mentor who chats, quizzes and guides you."),
		"",
		label("Your name", s.heroFocus == 0),
		s.nameInput.View(),
		"",
		label("Your dream teacher", s.heroFocus == 1),
		s.descInput.View(),
	}, "\n")
	return components.Card(content, cw)
}

func (s *WizardScreen) viewProfile(st wiz.State, cw int) string {
	m := st.Mentor
	var b strings.Builder
	b.WriteString(theme.Title.Render("✦ " + m.Name))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("“" + m.Motto + "”"))
	b.WriteString("\n\n")
	b.WriteString(theme.Label.Render("Personality  ") + theme.Body.Render(m.Personality) + "\n")
	b.WriteString(theme.Label.Render("Teaches      ") + theme.Body.Render(strings.Join(m.Subjects, ", ")) + "\n")
	if m.TeachingStyle != "" {
		b.WriteString(theme.Label.Render("Style        ") + theme.Body.Width(cw-19).Render(m.TeachingStyle) + "\n")
	}
	if st.MentorFallback {
		b.WriteString("\n" + theme.Hint.Render("We could not reach the mentor service, so here is a trusted classic."))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.profileMenu.View())
	return components.Card(b.String(), cw)
}

func (s *WizardScreen) viewChat(st wiz.State, cw, height int) string {
	bubbleWidth := cw * 3 / 4
	var lines []string
	for _, m := range st.Chat {
		if m.Role == wiz.RoleUser {
			bubble := theme.StudentBubble.Width(bubbleWidth).Render(m.Content)
			lines = append(lines, lipgloss.PlaceHorizontal(cw, lipgloss.Right, bubble))
			continue
		}
		name := theme.Label.Render(st.Mentor.Name)
		bubble := theme.MentorBubble.Width(bubbleWidth).Render(m.Content)
		lines = append(lines, name, bubble)
	}
	if st.Composing {
		lines = append(lines, s.spinner.View()+theme.Hint.Render(" "+st.Mentor.Name+" is typing…"))
	}
	if len(lines) == 0 {
		lines = append(lines, theme.Hint.Render("Say hello to "+st.Mentor.Name+"!"))
	}

	// Keep the newest messages in view.
	log := strings.Join(lines, "\n")
	if budget := height - 8; budget > 0 {
		rows := strings.Split(log, "\n")
		if len(rows) > budget {
			rows = rows[len(rows)-budget:]
		}
		log = strings.Join(rows, "\n")
	}
	return log + "\n\n" + s.chatInput.View()
}

func (s *WizardScreen) viewAptitude(st wiz.State, cw int) string {
	progress := components.NewProgressBar("Answered", st.AnsweredCount(), aptitude.Count(), cw-6)
	header := theme.Hint.Render(fmt.Sprintf("Question %d of %d", s.question+1, aptitude.Count()))
	content := strings.Join([]string{
		progress.View(),
		"",
		header,
		s.choice.View(),
	}, "\n")
	return components.Card(content, cw)
}

func (s *WizardScreen) viewInterests(st wiz.State, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("What lights you up?"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Pick as many as you like."))
	b.WriteString("\n\n")
	for i, tag := range s.interestOptions {
		mark := "[ ]"
		if st.HasInterest(tag) {
			mark = "[✓]"
		}
		line := fmt.Sprintf("%s %s", mark, tag)
		if i == s.interestCursor {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d selected", len(st.Interests))))
	return components.Card(b.String(), cw)
}

func (s *WizardScreen) viewStudyStyle(cw int) string {
	content := strings.Join([]string{
		theme.Title.Render("How do you learn best?"),
		theme.Hint.Render("Visual, hands-on, listening, reading... tell us in your own words."),
		"",
		s.styleInput.View(),
	}, "\n")
	return components.Card(content, cw)
}

func (s *WizardScreen) viewGuidance(st wiz.State, cw, height int) string {
	text := theme.Body.Width(cw - 6).Render(st.Guidance)
	rows := strings.Split(text, "\n")
	visible := height - 14
	if visible < 4 {
		visible = 4
	}
	maxScroll := max(0, len(rows)-visible)
	scroll := min(s.guidanceScroll, maxScroll)
	end := min(len(rows), scroll+visible)
	body := strings.Join(rows[scroll:end], "\n")
	if st.GuidanceFallback {
		body += "\n\n" + theme.Hint.Render("Generated offline from your answers.")
	}
	return components.Card(body, cw) + "\n" + components.ButtonRow(feedbackButtons, s.feedbackFocus)
}

func (s *WizardScreen) viewFeedback(st wiz.State, cw int) string {
	headline := "Thank you for your feedback!"
	detail := "We're glad the guidance helped. Keep learning with " + st.Mentor.Name + "."
	if st.Feedback == wiz.SentimentNegative {
		detail = "Thanks for being honest. We'll use it to make your mentor better."
	}
	content := strings.Join([]string{
		theme.Title.Render(headline),
		"",
		theme.Body.Width(cw - 6).Render(detail),
		"",
		theme.Hint.Render("Press r to start over or q to quit."),
	}, "\n")
	return components.Card(content, cw)
}
