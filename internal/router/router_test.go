package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/dreamteacher/internal/screen"
)

type keyMsg string

// fakeScreen records what the router does to it.
type fakeScreen struct {
	name  string
	inits int
	seen  []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.seen = append(f.seen, msg)
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func TestRouterNavigation(t *testing.T) {
	tests := []struct {
		name      string
		msgs      func(welcome, wizard *fakeScreen) []tea.Msg
		wantDepth int
		wantTop   string
	}{
		{
			name:      "push",
			msgs:      func(_, wz *fakeScreen) []tea.Msg { return []tea.Msg{PushScreenMsg{Screen: wz}} },
			wantDepth: 2,
			wantTop:   "wizard",
		},
		{
			name: "pop",
			msgs: func(_, wz *fakeScreen) []tea.Msg {
				return []tea.Msg{PushScreenMsg{Screen: wz}, PopScreenMsg{}}
			},
			wantDepth: 1,
			wantTop:   "welcome",
		},
		{
			name:      "pop keeps the last screen",
			msgs:      func(_, _ *fakeScreen) []tea.Msg { return []tea.Msg{PopScreenMsg{}, PopScreenMsg{}} },
			wantDepth: 1,
			wantTop:   "welcome",
		},
		{
			name:      "replace at the root",
			msgs:      func(_, wz *fakeScreen) []tea.Msg { return []tea.Msg{ReplaceScreenMsg{Screen: wz}} },
			wantDepth: 1,
			wantTop:   "wizard",
		},
		{
			name: "replace on a pushed stack",
			msgs: func(_, wz *fakeScreen) []tea.Msg {
				return []tea.Msg{
					PushScreenMsg{Screen: &fakeScreen{name: "help"}},
					ReplaceScreenMsg{Screen: wz},
				}
			},
			wantDepth: 2,
			wantTop:   "wizard",
		},
		{
			name: "pop after replace returns to the root",
			msgs: func(_, wz *fakeScreen) []tea.Msg {
				return []tea.Msg{
					PushScreenMsg{Screen: &fakeScreen{name: "help"}},
					ReplaceScreenMsg{Screen: wz},
					PopScreenMsg{},
				}
			},
			wantDepth: 1,
			wantTop:   "welcome",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			welcome := &fakeScreen{name: "welcome"}
			wizard := &fakeScreen{name: "wizard"}
			r := New(welcome)

			for _, msg := range tt.msgs(welcome, wizard) {
				r.Update(msg)
			}

			assert.Equal(t, tt.wantDepth, r.Depth())
			assert.Equal(t, tt.wantTop, r.View(80, 24))
			assert.Empty(t, welcome.seen, "navigation messages must not reach screens")
		})
	}
}

func TestReplaceRunsInitOnce(t *testing.T) {
	r := New(&fakeScreen{name: "welcome"})
	wizard := &fakeScreen{name: "wizard"}

	r.Replace(wizard)

	assert.Equal(t, 1, wizard.inits)
	assert.Same(t, wizard, r.Active())
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	welcome := &fakeScreen{name: "welcome"}
	wizard := &fakeScreen{name: "wizard"}
	r := New(welcome)
	r.Push(wizard)

	r.Update(keyMsg("enter"))

	assert.Empty(t, welcome.seen)
	assert.Equal(t, []tea.Msg{keyMsg("enter")}, wizard.seen)
}

func TestEmptyRouter(t *testing.T) {
	r := &Router{}
	assert.Nil(t, r.Active())
	assert.Nil(t, r.Update(keyMsg("x")))
	assert.Equal(t, "", r.View(80, 24))

	r.Replace(&fakeScreen{name: "wizard"})
	assert.Equal(t, 1, r.Depth())
}
