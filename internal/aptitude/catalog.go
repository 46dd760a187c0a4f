// Package aptitude holds the fixed aptitude quiz and its scoring.
package aptitude

// Unanswered marks a question the student has not answered yet.
const Unanswered = -1

// OptionCount is the number of options every question offers.
const OptionCount = 4

// Question is a single multiple-choice aptitude item.
type Question struct {
	Text    string
	Options [OptionCount]string
	Correct int
}

// catalog is never mutated. Callers get copies through Questions and At.
var catalog = [...]Question{
	{
		Text:    "What comes next in the sequence: 2, 4, 8, 16, ?",
		Options: [OptionCount]string{"24", "32", "20", "18"},
		Correct: 1,
	},
	{
		Text:    "If all roses are flowers and some flowers fade quickly, which statement must be true?",
		Options: [OptionCount]string{"All roses fade quickly", "No roses fade quickly", "Some roses fade quickly", "Roses are flowers"},
		Correct: 3,
	},
	{
		Text:    "A book costs $12 after a 25% discount. What was the original price?",
		Options: [OptionCount]string{"$15", "$16", "$14", "$18"},
		Correct: 1,
	},
	{
		Text:    "Which word does not belong: Apple, Carrot, Banana, Mango?",
		Options: [OptionCount]string{"Apple", "Carrot", "Banana", "Mango"},
		Correct: 1,
	},
	{
		Text:    "You face north and turn 90 degrees clockwise twice. Which way are you facing?",
		Options: [OptionCount]string{"South", "East", "West", "North"},
		Correct: 0,
	},
}

// Count returns the number of questions in the quiz.
func Count() int { return len(catalog) }

// Questions returns a copy of the quiz in order.
func Questions() []Question {
	out := make([]Question, len(catalog))
	copy(out, catalog[:])
	return out
}

// At returns the question at index i.
func At(i int) (Question, bool) {
	if i < 0 || i >= len(catalog) {
		return Question{}, false
	}
	return catalog[i], true
}

// AnswerKey returns the correct option index for every question.
func AnswerKey() []int {
	key := make([]int, len(catalog))
	for i, q := range catalog {
		key[i] = q.Correct
	}
	return key
}

// ValidAnswer reports whether (question, option) addresses a real option.
func ValidAnswer(question, option int) bool {
	return question >= 0 && question < len(catalog) &&
		option >= 0 && option < OptionCount
}

// NewAnswerSheet returns one Unanswered slot per question.
func NewAnswerSheet() []int {
	sheet := make([]int, len(catalog))
	for i := range sheet {
		sheet[i] = Unanswered
	}
	return sheet
}
