// Package page is the admission modalities page: a banner, one expandable
// card per catalog record, and a call-to-action link.
//
// The model owns the expansion state and keyboard focus. Rendering is a pure
// function of both (see render.go); Update only changes state and refreshes
// the scrollable body.
package page

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/umss/ingreso/core"
	"github.com/umss/ingreso/internal/browser"
	"github.com/umss/ingreso/internal/catalog"
	"github.com/umss/ingreso/internal/config"
	"github.com/umss/ingreso/internal/expansion"
	"github.com/umss/ingreso/internal/icons"
	"github.com/umss/ingreso/internal/logging"
	"github.com/umss/ingreso/widgets"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures a Model. Zero fields fall back to defaults.
type Options struct {
	Catalog catalog.Catalog
	Icons   icons.Table
	Columns int
	Link    Link
	Keys    *core.KeyRegistry
	Open    browser.Opener
	Logger  *zap.SugaredLogger
}

type linkOpenedMsg struct {
	URL string
	Err error
}

type Model struct {
	ctx     context.Context
	catalog catalog.Catalog
	icons   icons.Table
	columns int
	link    Link
	keys    *core.KeyRegistry
	open    browser.Opener
	log     *zap.SugaredLogger

	state     expansion.State
	focus     int
	width     int
	height    int
	vp        viewport.Model
	body      string
	layout    layout
	status    string
	statusErr bool
}

func New(ctx context.Context, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Icons == nil {
		opts.Icons = icons.Default()
	}
	if opts.Keys == nil {
		opts.Keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	if opts.Open == nil {
		opts.Open = browser.Open
	}
	if opts.Link.URL == "" {
		opts.Link.URL = config.DefaultLinkURL
	}
	m := &Model{
		ctx:     ctx,
		catalog: opts.Catalog,
		icons:   opts.Icons,
		columns: opts.Columns,
		link:    opts.Link,
		keys:    opts.Keys,
		open:    opts.Open,
		log:     logging.Component(opts.Logger, "page"),
		width:   defaultWidth,
		height:  defaultHeight,
		vp:      viewport.New(defaultWidth, defaultHeight),
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	m.log.Infow("page opened", "cards", m.catalog.Len())
	return tea.SetWindowTitle(Title)
}

// State returns the current expansion state.
func (m *Model) State() expansion.State { return m.state }

// Focus returns the focused position: a card index, or Len() for the link.
func (m *Model) Focus() int { return m.focus }

// Content returns the full scrollable body, including off-screen lines.
func (m *Model) Content() string { return m.body }

func (m *Model) linkPos() int { return m.catalog.Len() }

func (m *Model) scope() string {
	if m.focus == m.linkPos() {
		return core.ScopeLink
	}
	return core.ScopeCard
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = max(1, msg.Width), max(1, msg.Height)
		m.log.Debugw("resize", logging.FieldWidth, m.width, logging.FieldHeight, m.height)
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case linkOpenedMsg:
		if msg.Err != nil {
			m.log.Warnw("open link failed", logging.FieldURL, msg.URL, logging.FieldError, msg.Err)
			m.setError(fmt.Errorf("no se pudo abrir %s: %w", msg.URL, msg.Err))
			return m, nil
		}
		m.log.Infow("link opened", logging.FieldURL, msg.URL)
		m.setStatus("Abriendo " + msg.URL)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := m.catalog.Len()
	cols := columnsFor(m.columns, m.width, n)
	action, pos := m.keys.Match(msg, m.scope())
	switch action {
	case core.ActionQuit:
		m.log.Infow("page closed", logging.FieldState, m.state.String())
		return tea.Quit
	case core.ActionUp:
		switch {
		case m.focus == m.linkPos() && n > 0:
			m.setFocus(n - 1)
		case m.focus-cols >= 0:
			m.setFocus(m.focus - cols)
		}
	case core.ActionDown:
		if m.focus+cols < n {
			m.setFocus(m.focus + cols)
		} else {
			m.setFocus(m.linkPos())
		}
	case core.ActionLeft:
		if m.focus < n && m.focus%cols > 0 {
			m.setFocus(m.focus - 1)
		}
	case core.ActionRight:
		if m.focus < n && m.focus%cols < cols-1 && m.focus+1 < n {
			m.setFocus(m.focus + 1)
		}
	case core.ActionActivate:
		if m.focus == m.linkPos() {
			return m.openLink()
		}
		m.Toggle(m.focus)
	case core.ActionToggleAt:
		if pos >= n {
			m.setError(fmt.Errorf("no existe la modalidad %d", pos+1))
			return nil
		}
		m.Toggle(pos)
	case core.ActionOpenLink:
		return m.openLink()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if tea.MouseEvent(msg).IsWheel() {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return cmd
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	top := m.bodyTop()
	if msg.Y < top || msg.Y >= top+m.vp.Height {
		return nil
	}
	x, y := msg.X, msg.Y-top+m.vp.YOffset
	for i, b := range m.layout.cards {
		if !b.contains(x, y) {
			continue
		}
		if y == m.layout.toggleRow(i) {
			m.Toggle(i)
		} else {
			m.setFocus(i)
		}
		return nil
	}
	if m.layout.link.contains(x, y) {
		m.setFocus(m.linkPos())
		return m.openLink()
	}
	return nil
}

// Toggle applies the toggle action to card i and moves focus to it.
func (m *Model) Toggle(i int) {
	n := m.catalog.Len()
	prev := m.state
	m.state = m.state.Toggle(i, n)
	r, ok := m.catalog.At(i)
	m.log.Debugw("toggle",
		logging.FieldIndex, i,
		logging.FieldTitle, r.Title,
		logging.FieldFrom, prev.String(),
		logging.FieldState, m.state.String())
	if ok {
		m.focus = i
		if m.state.IsExpanded(i) {
			m.setStatus(r.Title)
		} else {
			m.setStatus("")
		}
	}
	m.refresh()
}

func (m *Model) setFocus(i int) {
	if i < 0 || i > m.linkPos() || i == m.focus {
		return
	}
	m.focus = i
	m.refresh()
}

func (m *Model) openLink() tea.Cmd {
	ctx, open, target := m.ctx, m.open, m.link.URL
	m.log.Debugw("open link", logging.FieldURL, target)
	return func() tea.Msg {
		return linkOpenedMsg{URL: target, Err: open(ctx, target)}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	if err == nil {
		m.setStatus("")
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m *Model) banner() widgets.Banner {
	return widgets.Banner{Title: Title}
}

func (m *Model) bodyTop() int {
	return lipgloss.Height(m.banner().Render(m.width, 0))
}

func (m *Model) chrome() (status, footer string) {
	status = core.RenderStatusBar(m.status, m.statusErr, m.width)
	footer = core.RenderFooter(m.keys.HelpBindings(m.scope()), m.width)
	return status, footer
}

// refresh re-renders the body and keeps the focused item on screen.
func (m *Model) refresh() {
	if m.focus > m.linkPos() {
		m.focus = m.linkPos()
	}
	m.state = m.state.Bound(m.catalog.Len())
	m.body, m.layout = view{
		catalog: m.catalog,
		icons:   m.icons,
		state:   m.state,
		focus:   m.focus,
		columns: m.columns,
		link:    m.link,
	}.render(m.width)

	status, footer := m.chrome()
	m.vp.Width = m.width
	m.vp.Height = max(1, m.height-m.bodyTop()-lipgloss.Height(status)-lipgloss.Height(footer))
	m.vp.SetContent(m.body)

	target := m.layout.link
	if m.focus < len(m.layout.cards) {
		target = m.layout.cards[m.focus]
	}
	switch {
	case target.top < m.vp.YOffset:
		m.vp.SetYOffset(target.top)
	case target.bottom >= m.vp.YOffset+m.vp.Height:
		m.vp.SetYOffset(min(target.top, target.bottom-m.vp.Height+1))
	}
}

func (m *Model) View() string {
	status, footer := m.chrome()
	screen := widgets.VStack{Widgets: []widgets.Widget{
		m.banner(),
		rendered(m.vp.View()),
		rendered(status),
		rendered(footer),
	}}
	return core.FitHeight(screen.Render(m.width, 0), m.height)
}
