// Package router holds the active screen and swaps it on navigation.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/riskcheck/internal/screen"
)

// ReplaceScreenMsg asks the router to make Screen the active screen.
// The flow is strictly linear (welcome, interview, result, interview...),
// so screens are swapped rather than stacked.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router owns the active screen.
type Router struct {
	active screen.Screen
}

func New(initial screen.Screen) *Router {
	return &Router{active: initial}
}

// Replace makes s the active screen and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.active = s
	if s == nil {
		return nil
	}
	return s.Init()
}

func (r *Router) Active() screen.Screen {
	return r.active
}

// Update handles ReplaceScreenMsg and forwards anything else to the active
// screen, keeping whatever screen it returns.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(ReplaceScreenMsg); ok {
		return r.Replace(msg.Screen)
	}
	if r.active == nil {
		return nil
	}
	var cmd tea.Cmd
	r.active, cmd = r.active.Update(msg)
	return cmd
}

func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
