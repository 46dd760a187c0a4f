package mentor

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/dreamteacher/internal/gateway"
	"github.com/abhisek/dreamteacher/internal/llm"
)

const validProfileJSON = `{
	"name": "Professor Aiden Kumar",
	"motto": "Curiosity fuels discovery.",
	"subjects": ["Physics", "Astronomy", "Mathematics"],
	"personality": "Patient & Understanding",
	"teachingStyle": "Uses the night sky to explain hard ideas.",
	"aptitudeQuestions": [
		{"question": "q1", "options": ["a","b","c","d"], "correctIndex": 0},
		{"question": "q2", "options": ["a","b","c","d"], "correctIndex": 1},
		{"question": "q3", "options": ["a","b","c","d"], "correctIndex": 2},
		{"question": "q4", "options": ["a","b","c","d"], "correctIndex": 3},
		{"question": "q5", "options": ["a","b","c","d"], "correctIndex": 0}
	],
	"interestTags": ["Space", "Robotics", "space", " "]
}`

func TestDefault(t *testing.T) {
	p := Default()
	require.True(t, p.Valid())
	assert.Equal(t, "Professor Alex", p.Name)
	assert.Equal(t, []string{"General Studies", "Life Skills"}, p.Subjects)
	assert.Equal(t, AvatarPlaceholder, p.Avatar)
}

func TestValid(t *testing.T) {
	var nilProfile *Profile
	assert.False(t, nilProfile.Valid())

	p := Default()
	p.Subjects = nil
	assert.False(t, p.Valid())

	p = Default()
	p.Motto = "  "
	assert.False(t, p.Valid())
}

func TestClone(t *testing.T) {
	p := Default()
	c := p.Clone()
	c.Subjects[0] = "Changed"
	assert.Equal(t, "General Studies", p.Subjects[0])
}

func TestDerive_Keywords(t *testing.T) {
	tests := []struct {
		desc        string
		personality string
		subjects    []string
	}{
		{"A calm teacher who loves math and space", "Patient & Nurturing", []string{"Mathematics", "Physics"}},
		{"Strict but fair, great at coding", "Disciplined & Demanding", []string{"Computer Science"}},
		{"someone funny who tells stories", "Playful & Energetic", []string{"Literature"}},
		{"a wise old soul", "Wise & Reflective", []string{"General Studies", "Life Skills"}},
		{"anyone really", "Encouraging & Supportive", []string{"General Studies", "Life Skills"}},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			p := Derive(tt.desc, rand.New(rand.NewPCG(1, 2)))
			require.True(t, p.Valid())
			assert.Equal(t, tt.personality, p.Personality)
			assert.Equal(t, tt.subjects, p.Subjects)
		})
	}
}

func TestDerive_CapsSubjects(t *testing.T) {
	p := Derive("math physics biology coding writing history art music", rand.New(rand.NewPCG(1, 2)))
	assert.Len(t, p.Subjects, maxSubjects)
}

func TestDerive_SeededIsDeterministic(t *testing.T) {
	a := Derive("kind mentor", rand.New(rand.NewPCG(42, 7)))
	b := Derive("kind mentor", rand.New(rand.NewPCG(42, 7)))
	assert.Equal(t, a, b)
}

func TestParse(t *testing.T) {
	p, err := Parse(validProfileJSON)
	require.NoError(t, err)
	assert.Equal(t, "Professor Aiden Kumar", p.Name)
	assert.Equal(t, []string{"Physics", "Astronomy", "Mathematics"}, p.Subjects)
	assert.Equal(t, []string{"Space", "Robotics"}, p.SuggestedInterests)
	assert.Equal(t, AvatarPlaceholder, p.Avatar)
}

func TestParse_Fenced(t *testing.T) {
	p, err := Parse("```json\n" + validProfileJSON + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "Professor Aiden Kumar", p.Name)
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]string{
		"not json":        "Here is your mentor!",
		"missing name":    `{"motto":"m","subjects":["x"],"personality":"p"}`,
		"no subjects":     `{"name":"n","motto":"m","subjects":[],"personality":"p"}`,
		"wrong quiz size": `{"name":"n","motto":"m","subjects":["x"],"personality":"p","aptitudeQuestions":[{"question":"q","options":["a","b","c","d"],"correctIndex":0}]}`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(raw)
			assert.ErrorIs(t, err, ErrMalformedProfile)
		})
	}
}

func TestBuilder_LLM(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse(validProfileJSON))
	svc := gateway.NewService(mock, gateway.DefaultConfig(), nil)
	b := NewBuilder(SourceLLM, svc, nil)

	res := b.Build(context.Background(), "calm, loves stars", "Ana", 1)
	assert.False(t, res.Fallback)
	assert.Equal(t, "Professor Aiden Kumar", res.Profile.Name)

	call, ok := mock.LastCall()
	require.True(t, ok)
	assert.Same(t, gateway.ProfileSchema, call.Schema)
}

func TestBuilder_LLMFailureFallsBack(t *testing.T) {
	b := NewBuilder(SourceLLM, gateway.Offline{}, nil)
	res := b.Build(context.Background(), "calm", "Ana", 1)
	assert.True(t, res.Fallback)
	assert.Equal(t, Default(), res.Profile)
}

func TestBuilder_LLMMalformedFallsBack(t *testing.T) {
	b := NewBuilder(SourceLLM, stubCompleter{text: `{"name":"only a name"}`}, nil)
	res := b.Build(context.Background(), "calm", "Ana", 1)
	assert.True(t, res.Fallback)
	assert.True(t, res.Profile.Valid())
}

func TestBuilder_Local(t *testing.T) {
	b := NewBuilder(SourceLocal, nil, nil)
	a := b.Build(context.Background(), "patient math teacher", "Ana", 99)
	c := b.Build(context.Background(), "patient math teacher", "Ana", 99)
	assert.False(t, a.Fallback)
	assert.Equal(t, a.Profile, c.Profile)
	assert.Equal(t, "Patient & Nurturing", a.Profile.Personality)
}

func TestParseSource(t *testing.T) {
	s, err := ParseSource("LOCAL")
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, s)

	s, err = ParseSource("")
	require.NoError(t, err)
	assert.Equal(t, SourceLLM, s)

	_, err = ParseSource("magic")
	assert.Error(t, err)
}

type stubCompleter struct {
	text string
	err  error
}

func (s stubCompleter) Complete(context.Context, gateway.Request) (string, error) {
	return s.text, s.err
}
