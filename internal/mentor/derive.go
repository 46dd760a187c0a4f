package mentor

import (
	"math/rand/v2"
	"strings"
)

type personalityRule struct {
	keywords    []string
	personality string
	style       string
}

// Checked in order; the first rule with a matching keyword wins.
var personalityRules = []personalityRule{
	{[]string{"patient", "calm", "gentle", "kind"}, "Patient & Nurturing",
		"Takes time to explain every step and never rushes a question."},
	{[]string{"strict", "disciplin", "tough", "rigorous"}, "Disciplined & Demanding",
		"Sets clear goals, checks the work carefully and expects steady practice."},
	{[]string{"fun", "funny", "humor", "playful"}, "Playful & Energetic",
		"Turns lessons into games, stories and challenges."},
	{[]string{"wise", "philosoph", "thoughtful"}, "Wise & Reflective",
		"Asks guiding questions and connects lessons to the bigger picture."},
	{[]string{"motivat", "inspir", "energetic"}, "Motivating & Inspiring",
		"Links every topic to the student's goals and keeps momentum high."},
}

const (
	defaultPersonality = "Encouraging & Supportive"
	defaultStyle       = "Breaks big ideas into small steps and celebrates every bit of progress."
)

type subjectRule struct {
	keywords []string
	subject  string
}

var subjectRules = []subjectRule{
	{[]string{"math", "number", "algebra", "calcul", "geometry"}, "Mathematics"},
	{[]string{"physic", "space", "star", "astronom"}, "Physics"},
	{[]string{"chemi", "biolog", "science", "nature"}, "Science"},
	{[]string{"code", "coding", "program", "computer", "tech"}, "Computer Science"},
	{[]string{"write", "writing", "story", "stori", "poet", "literat", "read"}, "Literature"},
	{[]string{"history", "past", "ancient"}, "History"},
	{[]string{"art", "draw", "paint", "design"}, "Art & Design"},
	{[]string{"music", "sing", "instrument"}, "Music"},
	{[]string{"business", "money", "finance", "entrepreneur"}, "Business"},
	{[]string{"language", "english", "spanish", "french"}, "Languages"},
	{[]string{"career", "life", "confidence", "habit"}, "Life Skills"},
}

const maxSubjects = 5

var namePool = []string{
	"Professor Aiden Kumar",
	"Dr. Maya Chen",
	"Mentor Leo Hart",
	"Professor Iris Vale",
	"Coach Sam Rivera",
	"Dr. Nora Quinn",
	"Professor Ravi Mehta",
	"Sage Elena Brooks",
}

var mottoPool = []string{
	"Every expert was once a beginner.",
	"Curiosity is the engine of achievement.",
	"Small steps every day add up to big results.",
	"Mistakes are proof that you are trying.",
	"Learn deeply, think freely, grow boldly.",
	"The best way to predict your future is to create it.",
}

// Derive builds a profile locally from the student's description. The
// same description and rng sequence always produce the same profile.
func Derive(description string, rng *rand.Rand) *Profile {
	desc := strings.ToLower(description)

	personality, style := defaultPersonality, defaultStyle
	for _, r := range personalityRules {
		if containsAny(desc, r.keywords) {
			personality, style = r.personality, r.style
			break
		}
	}

	var subjects []string
	for _, r := range subjectRules {
		if len(subjects) == maxSubjects {
			break
		}
		if containsAny(desc, r.keywords) {
			subjects = append(subjects, r.subject)
		}
	}
	if len(subjects) == 0 {
		subjects = []string{"General Studies", "Life Skills"}
	}

	return &Profile{
		Name:          namePool[rng.IntN(len(namePool))],
		Motto:         mottoPool[rng.IntN(len(mottoPool))],
		Subjects:      subjects,
		Personality:   personality,
		Avatar:        AvatarPlaceholder,
		TeachingStyle: style,
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
