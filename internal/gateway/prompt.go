package gateway

import (
	"fmt"
	"strings"

	"github.com/abhisek/dreamteacher/internal/aptitude"
	"github.com/abhisek/dreamteacher/internal/llm"
)

const mentorSystemPrompt = "You are a helpful and encouraging AI mentor."

const profileSystemPrompt = "You design AI mentor personas for students. You always answer with a single JSON object and no other text."

// Settings bounds one kind of completion.
type Settings struct {
	MaxTokens   int
	Temperature float64
}

// BuildRequest assembles the upstream llm.Request for req.
func BuildRequest(req Request, s Settings) llm.Request {
	req = req.Normalize()
	out := llm.Request{
		System:      mentorSystemPrompt,
		MaxTokens:   s.MaxTokens,
		Temperature: s.Temperature,
	}
	if req.Kind == KindProfile {
		out.System = profileSystemPrompt
		out.Schema = ProfileSchema
	}
	out.Messages = []llm.Message{{Role: llm.RoleUser, Content: Prompt(req)}}
	return out
}

// Prompt renders the user prompt for req.
func Prompt(req Request) string {
	req = req.Normalize()
	if req.Kind == KindProfile {
		return profilePrompt(req)
	}

	var b strings.Builder
	writePersona(&b, req.MentorProfile)
	b.WriteString("\n")
	writeContext(&b, req)

	if len(req.ChatHistory) > 0 {
		b.WriteString("\nHere is the chat history:\n")
		for _, t := range req.ChatHistory {
			fmt.Fprintf(&b, "%s: %s\n", speaker(req, t), t.Content)
		}
	}

	b.WriteString("\n")
	switch req.Kind {
	case KindGuidance:
		b.WriteString("Write personalized career guidance for the student in the tone of the mentor.\n")
		b.WriteString("Suggest career paths that fit their interests, a study technique that suits their learning style, and three concrete next steps.\n")
		fmt.Fprintf(&b, "Task: %q\n", req.Message)
	default:
		b.WriteString("Respond helpfully, encouragingly, and in the tone of the mentor.\n")
		fmt.Fprintf(&b, "Answer the latest student question:\n%q\n", req.Message)
	}
	return b.String()
}

func writePersona(b *strings.Builder, p Persona) {
	name := orDefault(p.Name, "your mentor")
	personality := orDefault(p.Personality, "supportive")
	fmt.Fprintf(b, "You are %s, a %s AI mentor.\n", name, personality)
	if len(p.Subjects) > 0 {
		fmt.Fprintf(b, "You teach: %s.\n", strings.Join(p.Subjects, ", "))
	}
	if p.Motto != "" {
		fmt.Fprintf(b, "Your motto: %q\n", p.Motto)
	}
	if p.TeachingStyle != "" {
		fmt.Fprintf(b, "Your teaching style: %s\n", p.TeachingStyle)
	}
}

func writeContext(b *strings.Builder, req Request) {
	ctx := req.Context
	fmt.Fprintf(b, "Student: %s\n", orDefault(req.StudentName, "Student"))
	if len(ctx.Interests) > 0 {
		fmt.Fprintf(b, "Interests: %s\n", strings.Join(ctx.Interests, ", "))
	}
	if ctx.StudyStyle != "" {
		fmt.Fprintf(b, "Learning Style: %s\n", ctx.StudyStyle)
	}
	if score, ok := aptitudeScore(ctx); ok {
		fmt.Fprintf(b, "Aptitude Score: %d/%d\n", score, aptitude.Count())
	}
	if ctx.CareerPath != "" {
		fmt.Fprintf(b, "Career Path: %s\n", ctx.CareerPath)
	}
}

func aptitudeScore(ctx StudentContext) (int, bool) {
	if ctx.AptitudeScore != nil {
		return *ctx.AptitudeScore, true
	}
	if len(ctx.AptitudeResults) > 0 {
		return aptitude.Score(ctx.AptitudeResults), true
	}
	return 0, false
}

func speaker(req Request, t Turn) string {
	if t.IsStudent() {
		return orDefault(req.StudentName, "Student")
	}
	return orDefault(req.MentorProfile.Name, "Mentor")
}

func profilePrompt(req Request) string {
	var b strings.Builder
	if req.StudentName != "" {
		fmt.Fprintf(&b, "A student named %s described their dream teacher:\n", req.StudentName)
	} else {
		b.WriteString("A student described their dream teacher:\n")
	}
	fmt.Fprintf(&b, "%q\n\n", req.Message)
	b.WriteString("Generate a mentor profile for an AI assistant as one JSON object with these fields:\n")
	b.WriteString("- \"name\": a creative name for the mentor, e.g. \"Professor Aiden Kumar\"\n")
	b.WriteString("- \"motto\": a short, inspiring motto\n")
	b.WriteString("- \"subjects\": an array of 3-5 subjects based on the description\n")
	b.WriteString("- \"personality\": a brief description of the personality, e.g. \"Patient & Understanding\"\n")
	b.WriteString("- \"teachingStyle\": one sentence on how the mentor teaches\n")
	fmt.Fprintf(&b, "- \"aptitudeQuestions\": exactly %d questions, each with \"question\", \"options\" (exactly %d strings) and \"correctIndex\" (0-%d)\n",
		aptitude.Count(), aptitude.OptionCount, aptitude.OptionCount-1)
	b.WriteString("- \"interestTags\": 6-12 short interest tags a student of this mentor might pick\n")
	b.WriteString("The JSON must be clean, without markdown or any text outside the object.\n")
	return b.String()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
