package core

import "strings"

// Page actions.
const (
	ActionQuit     = "quit"
	ActionUp       = "focus-up"
	ActionDown     = "focus-down"
	ActionLeft     = "focus-left"
	ActionRight    = "focus-right"
	ActionActivate = "activate"
	ActionToggleAt = "toggle-at"
	ActionOpenLink = "open-link"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"up", "k"}, Action: ActionUp, Description: "up", Help: "↑/k", Scopes: []string{ScopeAny}},
		{Keys: []string{"down", "j"}, Action: ActionDown, Description: "down", Help: "↓/j", Scopes: []string{ScopeAny}},
		{Keys: []string{"left", "h"}, Action: ActionLeft, Scopes: []string{ScopeAny}},
		{Keys: []string{"right", "l"}, Action: ActionRight, Scopes: []string{ScopeAny}},
		{Keys: []string{"enter", " "}, Action: ActionActivate, Description: "más información", Help: "enter", Scopes: []string{ScopeCard}},
		{Keys: []string{"enter", " "}, Action: ActionActivate, Description: "abrir enlace", Help: "enter", Scopes: []string{ScopeLink}},
		{Keys: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, Action: ActionToggleAt, Description: "tarjeta", Help: "1-9", Scopes: []string{ScopeAny}},
		{Keys: []string{"o"}, Action: ActionOpenLink, Description: "admisión web", Scopes: []string{ScopeAny}},
		{Keys: []string{"q", "ctrl+c"}, Action: ActionQuit, Description: "salir", Scopes: []string{ScopeAny}},
	}
}

// ApplyActionKeybindings replaces the keys of every binding whose action has
// an entry in actionKeys.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Help:        b.Help,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[strings.TrimSpace(b.Action)]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
			next.Help = ""
		}
		out = append(out, next)
	}
	return out
}
