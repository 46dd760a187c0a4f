package gateway

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func sampleRequest() Request {
	return Request{
		Message: "How should I prepare for exams?",
		MentorProfile: Persona{
			Name:        "Professor Sage",
			Personality: "Patient & Nurturing",
			Subjects:    []string{"Mathematics", "Physics"},
		},
		StudentName: "Ana",
		Context: StudentContext{
			Interests:     []string{"Technology", "Science"},
			StudyStyle:    "Visual",
			AptitudeScore: intPtr(4),
		},
	}
}

func TestPrompt_Chat(t *testing.T) {
	req := sampleRequest()
	req.ChatHistory = []Turn{
		{Role: "user", Content: "Hi!"},
		{Role: "assistant", Content: "Hello Ana, how can I help?"},
	}

	got := Prompt(req)

	assert.True(t, strings.HasPrefix(got, "You are Professor Sage, a Patient & Nurturing AI mentor.\n"))
	assert.Contains(t, got, "You teach: Mathematics, Physics.\n")
	assert.Contains(t, got, "Student: Ana\n")
	assert.Contains(t, got, "Interests: Technology, Science\n")
	assert.Contains(t, got, "Learning Style: Visual\n")
	assert.Contains(t, got, "Aptitude Score: 4/5\n")
	assert.Contains(t, got, "Here is the chat history:\nAna: Hi!\nProfessor Sage: Hello Ana, how can I help?\n")
	assert.Contains(t, got, "Respond helpfully, encouragingly, and in the tone of the mentor.\n")
	assert.True(t, strings.HasSuffix(got, "Answer the latest student question:\n\"How should I prepare for exams?\"\n"))
}

func TestPrompt_NoHistorySection(t *testing.T) {
	got := Prompt(sampleRequest())
	assert.NotContains(t, got, "chat history")
}

func TestPrompt_ScoreFromResults(t *testing.T) {
	req := sampleRequest()
	req.Context.AptitudeScore = nil
	req.Context.AptitudeResults = []int{1, 3, 1, 1, 0}
	assert.Contains(t, Prompt(req), "Aptitude Score: 5/5\n")

	req.Context.AptitudeResults = nil
	assert.NotContains(t, Prompt(req), "Aptitude Score")
}

func TestPrompt_Guidance(t *testing.T) {
	req := sampleRequest()
	req.Kind = KindGuidance
	req.Message = "Give me career guidance"
	req.Context.CareerPath = "Software Engineering"

	got := Prompt(req)
	assert.Contains(t, got, "Career Path: Software Engineering\n")
	assert.Contains(t, got, "career guidance")
	assert.True(t, strings.HasSuffix(got, "Task: \"Give me career guidance\"\n"))
	assert.NotContains(t, got, "Answer the latest student question")
}

func TestPrompt_Profile(t *testing.T) {
	req := Request{Kind: KindProfile, Message: "calm, loves space and stars", StudentName: "Ana"}
	got := Prompt(req)

	assert.Contains(t, got, "A student named Ana described their dream teacher:\n\"calm, loves space and stars\"")
	assert.Contains(t, got, "\"aptitudeQuestions\": exactly 5 questions")
	assert.Contains(t, got, "without markdown")
	assert.NotContains(t, got, "You are")
}

func TestBuildRequest(t *testing.T) {
	chat := BuildRequest(sampleRequest(), Settings{MaxTokens: 500, Temperature: 0.7})
	assert.Equal(t, mentorSystemPrompt, chat.System)
	assert.Nil(t, chat.Schema)
	assert.Equal(t, 500, chat.MaxTokens)
	assert.InDelta(t, 0.7, chat.Temperature, 1e-9)
	require.Len(t, chat.Messages, 1)

	profile := BuildRequest(Request{Kind: KindProfile, Message: "x"}, Settings{MaxTokens: 1200})
	assert.Equal(t, profileSystemPrompt, profile.System)
	assert.Same(t, ProfileSchema, profile.Schema)
}

func TestRequestValidate(t *testing.T) {
	assert.NoError(t, sampleRequest().Normalize().Validate())

	blank := sampleRequest()
	blank.Message = "   "
	assert.ErrorIs(t, blank.Normalize().Validate(), ErrInvalidRequest)

	bad := sampleRequest()
	bad.Kind = "poem"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidRequest)
}

func TestRequestNormalize_DefaultsToChat(t *testing.T) {
	assert.Equal(t, KindChat, Request{}.Normalize().Kind)
	assert.Equal(t, KindGuidance, Request{Kind: KindGuidance}.Normalize().Kind)
}
