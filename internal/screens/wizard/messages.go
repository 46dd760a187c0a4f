package wizard

import wiz "github.com/abhisek/dreamteacher/internal/wizard"

// effectDoneMsg carries the action produced by a finished effect.
type effectDoneMsg struct {
	Action wiz.Action
}

// navigateMsg asks the screen to move the wizard to another step.
type navigateMsg struct {
	To wiz.Step
}

// feedbackMsg submits the guidance verdict.
type feedbackMsg struct {
	Sentiment wiz.Sentiment
}
