package wizard

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dreamteacher/internal/aptitude"
	"github.com/abhisek/dreamteacher/internal/guidance"
	"github.com/abhisek/dreamteacher/internal/screen"
	"github.com/abhisek/dreamteacher/internal/ui/components"
	"github.com/abhisek/dreamteacher/internal/ui/layout"
	"github.com/abhisek/dreamteacher/internal/ui/theme"
	wiz "github.com/abhisek/dreamteacher/internal/wizard"
)

// WizardScreen drives a wizard.Engine from the keyboard.
type WizardScreen struct {
	engine *wiz.Engine
	ctx    context.Context

	nameInput  components.TextInput
	descInput  components.TextInput
	heroFocus  int
	chatInput  components.TextInput
	styleInput components.TextInput

	profileMenu components.Menu

	question int
	choice   components.MultiChoice

	interestOptions []string
	interestCursor  int

	guidanceScroll int
	feedbackFocus  int

	spinner  spinner.Model
	spinning bool
	notice   string
}

var _ screen.Screen = (*WizardScreen)(nil)
var _ screen.KeyHintProvider = (*WizardScreen)(nil)
var _ screen.StatusProvider = (*WizardScreen)(nil)

// New creates a WizardScreen. ctx bounds every effect the screen starts.
func New(ctx context.Context, engine *wiz.Engine) *WizardScreen {
	s := &WizardScreen{
		engine: engine,
		ctx:    ctx,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Highlight)),
		),
	}
	s.resetWidgets()
	return s
}

func (s *WizardScreen) resetWidgets() {
	s.nameInput = components.NewTextInput("Your name", 40)
	s.descInput = components.NewTextInput("Describe your dream teacher (tone, style, attitude)", 280)
	s.descInput.Blur()
	s.heroFocus = 0
	s.chatInput = components.NewTextInput("Ask your mentor anything...", 500)
	s.styleInput = components.NewTextInput("e.g. I learn best with diagrams and hands-on projects", 280)
	s.question = 0
	s.interestCursor = 0
	s.guidanceScroll = 0
	s.feedbackFocus = 0
	s.notice = ""
}

func (s *WizardScreen) Init() tea.Cmd {
	return s.nameInput.Init()
}

func (s *WizardScreen) Title() string {
	return stepTitles[s.engine.State().Step]
}

func (s *WizardScreen) Status() string {
	st := s.engine.State()
	if st.Mentor == nil {
		return ""
	}
	return "✦ " + st.Mentor.Name
}

func (s *WizardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case effectDoneMsg:
		return s, s.apply(msg.Action)

	case navigateMsg:
		return s, s.navigate(msg.To)

	case feedbackMsg:
		s.report(s.engine.SubmitFeedback(msg.Sentiment))
		return s, nil

	case spinner.TickMsg:
		st := s.engine.State()
		if !st.Loading && !st.Composing {
			s.spinning = false
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		if s.engine.State().Loading {
			return s, nil
		}
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *WizardScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch s.engine.State().Step {
	case wiz.StepHero:
		return s.handleHeroKey(msg)
	case wiz.StepMentorProfile:
		var cmd tea.Cmd
		s.profileMenu, cmd = s.profileMenu.Update(msg)
		return s, cmd
	case wiz.StepChat:
		return s.handleChatKey(msg)
	case wiz.StepAptitude:
		return s.handleAptitudeKey(msg)
	case wiz.StepInterests:
		return s.handleInterestsKey(msg)
	case wiz.StepStudyStyle:
		return s.handleStudyStyleKey(msg)
	case wiz.StepGuidance:
		return s.handleGuidanceKey(msg)
	case wiz.StepFeedback:
		return s.handleFeedbackKey(msg)
	}
	return s, nil
}

func (s *WizardScreen) handleHeroKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		return s, s.toggleHeroFocus()
	case "enter":
		if s.heroFocus == 0 {
			return s, s.toggleHeroFocus()
		}
		eff, err := s.engine.CreateMentor(s.descInput.Value(), s.nameInput.Value())
		if err != nil {
			s.report(err)
			return s, nil
		}
		s.notice = ""
		return s, tea.Batch(s.run(eff), s.startSpinner())
	}
	return s.forwardToInput(msg)
}

func (s *WizardScreen) toggleHeroFocus() tea.Cmd {
	if s.heroFocus == 0 {
		s.heroFocus = 1
		s.nameInput.Blur()
		return s.descInput.Focus()
	}
	s.heroFocus = 0
	s.descInput.Blur()
	return s.nameInput.Focus()
}

func (s *WizardScreen) handleChatKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		eff, err := s.engine.SendChatMessage(s.chatInput.Value())
		if err != nil {
			s.report(err)
			return s, nil
		}
		s.notice = ""
		s.chatInput.Reset()
		return s, tea.Batch(s.run(eff), s.startSpinner())
	case "ctrl+b":
		return s, s.navigate(wiz.StepMentorProfile)
	case "ctrl+n":
		return s, s.navigate(wiz.StepAptitude)
	}
	return s.forwardToInput(msg)
}

func (s *WizardScreen) handleAptitudeKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if s.question > 0 {
			s.setQuestion(s.question - 1)
		}
		return s, nil
	case "right", "l":
		if s.question < aptitude.Count()-1 {
			s.setQuestion(s.question + 1)
		}
		return s, nil
	case "tab":
		return s, s.navigate(wiz.StepInterests)
	case "c":
		return s, s.navigate(wiz.StepChat)
	}

	var picked bool
	s.choice, picked = s.choice.Update(msg)
	if !picked {
		return s, nil
	}
	if err := s.engine.RecordAptitudeAnswer(s.question, s.choice.Chosen); err != nil {
		s.report(err)
		return s, nil
	}
	s.notice = ""
	if s.question < aptitude.Count()-1 {
		s.setQuestion(s.question + 1)
	}
	return s, nil
}

func (s *WizardScreen) setQuestion(i int) {
	s.question = i
	q, _ := aptitude.At(i)
	s.choice = components.NewMultiChoice(q.Text, q.Options[:], s.engine.State().Answers[i])
}

func (s *WizardScreen) handleInterestsKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.interestCursor > 0 {
			s.interestCursor--
		}
	case "down", "j":
		if s.interestCursor < len(s.interestOptions)-1 {
			s.interestCursor++
		}
	case "space", "enter":
		if s.interestCursor < len(s.interestOptions) {
			s.report(s.engine.ToggleInterest(s.interestOptions[s.interestCursor]))
		}
	case "tab":
		return s, s.navigate(wiz.StepStudyStyle)
	case "shift+tab":
		return s, s.navigate(wiz.StepAptitude)
	}
	return s, nil
}

func (s *WizardScreen) handleStudyStyleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		eff, err := s.engine.RequestGuidance(s.styleInput.Value())
		if err != nil {
			s.report(err)
			return s, nil
		}
		s.notice = ""
		return s, tea.Batch(s.run(eff), s.startSpinner())
	case "shift+tab":
		return s, s.navigate(wiz.StepInterests)
	}
	return s.forwardToInput(msg)
}

var feedbackButtons = []components.Button{
	components.NewButton("👍 Helpful", func() tea.Cmd {
		return func() tea.Msg { return feedbackMsg{Sentiment: wiz.SentimentPositive} }
	}),
	components.NewButton("👎 Not helpful", func() tea.Cmd {
		return func() tea.Msg { return feedbackMsg{Sentiment: wiz.SentimentNegative} }
	}),
	components.NewButton("💬 Back to chat", func() tea.Cmd {
		return func() tea.Msg { return navigateMsg{To: wiz.StepChat} }
	}),
}

func (s *WizardScreen) handleGuidanceKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "shift+tab":
		if s.feedbackFocus > 0 {
			s.feedbackFocus--
		}
	case "right", "tab":
		if s.feedbackFocus < len(feedbackButtons)-1 {
			s.feedbackFocus++
		}
	case "up", "k":
		if s.guidanceScroll > 0 {
			s.guidanceScroll--
		}
	case "down", "j":
		s.guidanceScroll++
	case "enter":
		b := feedbackButtons[s.feedbackFocus]
		b.Focused = true
		_, cmd := b.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *WizardScreen) handleFeedbackKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "r", "enter":
		if err := s.engine.Restart(); err != nil {
			return s, nil
		}
		s.resetWidgets()
		return s, s.nameInput.Init()
	case "q":
		return s, tea.Quit
	}
	return s, nil
}

// forwardToInput passes msg to the text input owned by the current step.
func (s *WizardScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.engine.State().Step {
	case wiz.StepHero:
		if s.heroFocus == 0 {
			s.nameInput, cmd = s.nameInput.Update(msg)
		} else {
			s.descInput, cmd = s.descInput.Update(msg)
		}
	case wiz.StepChat:
		s.chatInput, cmd = s.chatInput.Update(msg)
	case wiz.StepStudyStyle:
		s.styleInput, cmd = s.styleInput.Update(msg)
	}
	return s, cmd
}

// run executes eff off the event loop.
func (s *WizardScreen) run(eff wiz.Effect) tea.Cmd {
	ctx := s.ctx
	return func() tea.Msg {
		return effectDoneMsg{Action: eff(ctx)}
	}
}

func (s *WizardScreen) startSpinner() tea.Cmd {
	if s.spinning {
		return nil
	}
	s.spinning = true
	return s.spinner.Tick
}

func (s *WizardScreen) apply(a wiz.Action) tea.Cmd {
	before := s.engine.State().Step
	if err := s.engine.Apply(a); err != nil {
		s.report(err)
		return nil
	}
	if after := s.engine.State().Step; after != before {
		return s.enter(after)
	}
	return nil
}

func (s *WizardScreen) navigate(to wiz.Step) tea.Cmd {
	if err := s.engine.Navigate(to); err != nil {
		s.report(err)
		return nil
	}
	s.notice = ""
	return s.enter(to)
}

// enter prepares the widgets of a step the wizard just moved to.
func (s *WizardScreen) enter(step wiz.Step) tea.Cmd {
	st := s.engine.State()
	switch step {
	case wiz.StepMentorProfile:
		s.profileMenu = components.NewMenu([]components.MenuItem{
			{Label: "Chat with " + st.Mentor.Name, Action: navigateTo(wiz.StepChat)},
			{Label: "Take the aptitude quiz", Action: navigateTo(wiz.StepAptitude)},
		})
	case wiz.StepChat:
		return s.chatInput.Focus()
	case wiz.StepAptitude:
		first := 0
		for i, a := range st.Answers {
			if a == aptitude.Unanswered {
				first = i
				break
			}
		}
		s.setQuestion(first)
	case wiz.StepInterests:
		var suggested []string
		if st.Mentor != nil {
			suggested = st.Mentor.SuggestedInterests
		}
		s.interestOptions = guidance.InterestOptions(suggested)
		if s.interestCursor >= len(s.interestOptions) {
			s.interestCursor = 0
		}
	case wiz.StepStudyStyle:
		return s.styleInput.Focus()
	case wiz.StepGuidance:
		s.guidanceScroll = 0
		s.feedbackFocus = 0
	}
	return nil
}

func navigateTo(step wiz.Step) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return navigateMsg{To: step} }
	}
}

// report turns a rejected operation into a short notice for the user.
func (s *WizardScreen) report(err error) {
	switch {
	case err == nil:
		s.notice = ""
	case errors.Is(err, wiz.ErrBlankInput):
		s.notice = "Please fill in the field first."
	case errors.Is(err, wiz.ErrBusy):
		s.notice = "Hang on, still waiting for a reply."
	case errors.Is(err, wiz.ErrOutOfRange):
		s.notice = "That option is not available."
	default:
		s.notice = rejectionNotice(s.engine.State().Step)
	}
}

func rejectionNotice(step wiz.Step) string {
	switch step {
	case wiz.StepAptitude:
		return "Answer every question before continuing."
	case wiz.StepInterests:
		return "Pick at least one interest."
	}
	return "That move is not available right now."
}

func (s *WizardScreen) KeyHints() []layout.KeyHint {
	st := s.engine.State()
	if st.Loading {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	switch st.Step {
	case wiz.StepHero:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Switch field"},
			{Key: "Enter", Description: "Next / Create mentor"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case wiz.StepMentorProfile:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	case wiz.StepChat:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Ctrl+B", Description: "Profile"},
			{Key: "Ctrl+N", Description: "Aptitude quiz"},
		}
	case wiz.StepAptitude:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Option"},
			{Key: "Enter/1-4", Description: "Answer"},
			{Key: "←→", Description: "Question"},
			{Key: "Tab", Description: "Continue"},
			{Key: "C", Description: "Chat"},
		}
	case wiz.StepInterests:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Space", Description: "Toggle"},
			{Key: "Tab", Description: "Continue"},
			{Key: "Shift+Tab", Description: "Back"},
		}
	case wiz.StepStudyStyle:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Get guidance"},
			{Key: "Shift+Tab", Description: "Back"},
		}
	case wiz.StepGuidance:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
		}
	case wiz.StepFeedback:
		return []layout.KeyHint{
			{Key: "R", Description: "Start over"},
			{Key: "Q", Description: "Quit"},
		}
	}
	return nil
}
