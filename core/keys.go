package core

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Scopes used by the page. ScopeAny matches every scope.
const (
	ScopeAny  = "*"
	ScopeCard = "card"
	ScopeLink = "link"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	// Help replaces the first key in the footer, e.g. "1-9".
	Help   string
	Scopes []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// HelpBindings converts the bindings of a scope into bubbles key bindings
// for help rendering.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	bindings := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 || b.Description == "" {
			continue
		}
		label := b.Help
		if label == "" {
			label = b.Keys[0]
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(label, b.Description)))
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	return r.ActionFor(msg, scope) == action
}

// ActionFor returns the first action bound to the pressed key in scope, or
// "" when the key is unbound.
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) string {
	action, _ := r.Match(msg, scope)
	return action
}

// Match is ActionFor plus the position of the pressed key in the binding's
// key list, or -1 when the key is unbound.
func (r *KeyRegistry) Match(msg tea.KeyMsg, scope string) (string, int) {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for i, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action, i
			}
		}
	}
	return "", -1
}

func normalizeKey(k string) string {
	if k == " " || strings.EqualFold(strings.TrimSpace(k), "space") {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == ScopeAny || s == scope {
			return true
		}
	}
	return false
}
