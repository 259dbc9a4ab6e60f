package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/scenetree/internal/session"
	"github.com/matzehuels/scenetree/pkg/anim"
	"github.com/matzehuels/scenetree/pkg/errors"
	"github.com/matzehuels/scenetree/pkg/nav"
	"github.com/matzehuels/scenetree/pkg/render"
	"github.com/matzehuels/scenetree/pkg/router"
)

const (
	frameInterval = time.Second / 30
	// dragStep is the share of a card's travel one drag key press covers.
	dragStep = 0.15
)

var (
	navBarStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(lipgloss.Color("24"))
	navBarDimStyle = lipgloss.NewStyle().Foreground(colorGray).Background(lipgloss.Color("236"))
	tabBarStyle    = lipgloss.NewStyle().Foreground(colorGray).Background(lipgloss.Color("236"))
	cardStyle      = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	statusStyle    = lipgloss.NewStyle().Foreground(colorYellow)
)

// frameMsg drives the position clock.
type frameMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// browseModel is the bubbletea host of a session.
type browseModel struct {
	sess          *session.Session
	name          string
	steps         []router.Action
	next          int
	width, height int

	gesture     *anim.Gesture
	gesturePath []string

	status  string
	exiting bool
}

func newBrowseModel(name string, steps []router.Action) *browseModel {
	return &browseModel{name: name, steps: steps, width: 80, height: 24}
}

// exit handles back presses at the root.
func (m *browseModel) exit() bool {
	m.exiting = true
	return true
}

func (m *browseModel) Init() tea.Cmd {
	return tick()
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return m, tick()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		m.status = ""
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "backspace":
			m.cancelGesture()
			m.sess.Back()
			if m.exiting {
				return m, tea.Quit
			}
		case "h", "left":
			m.report(m.sess.Press(render.Left))
		case "l", "right":
			m.report(m.sess.Press(render.Right))
		case "tab":
			m.report(m.nextTab())
		case "n", "enter":
			m.report(m.step())
		case "[":
			m.drag()
		case "]":
			m.release()
		}
	}
	return m, nil
}

func (m *browseModel) report(err error) {
	if err != nil {
		m.status = errors.UserMessage(err)
	}
}

func (m *browseModel) step() error {
	if m.next >= len(m.steps) {
		return errors.New(errors.ErrCodeNotFound, "no more steps")
	}
	a := m.steps[m.next]
	m.next++
	m.status = strings.TrimSpace(a.Type + " " + a.Key)
	return m.sess.Dispatch(a)
}

func (m *browseModel) nextTab() error {
	root, _ := m.sess.State()
	for _, n := range nav.ActivePath(root) {
		if n.Tabs && len(n.Children) > 1 {
			next := n.Children[(n.Index+1)%len(n.Children)]
			return m.sess.Dispatch(router.Action{Type: router.Jump, Key: next.Key})
		}
	}
	return errors.New(errors.ErrCodeNotFound, "no tabs on the active path")
}

// drag moves the active card towards the previous one. Only the position
// signal changes; the tree is untouched until release.
func (m *browseModel) drag() {
	stack := deepestStack(m.sess.Frame())
	card := stack.Active()
	if card == nil || !card.Pan.Enabled {
		m.status = "nothing to drag"
		return
	}
	if m.gesture == nil {
		m.gesture = card.Pan.Begin(stack.Index)
		m.gesturePath = stack.Path
	}
	m.sess.Clock().Drag(m.gesturePath, m.gesture.Move(card.Pan.Distance*dragStep))
}

func (m *browseModel) release() {
	if m.gesture == nil {
		return
	}
	commit, settle := m.gesture.Release()
	path := m.gesturePath
	m.gesture, m.gesturePath = nil, nil
	if commit {
		m.report(m.sess.Dispatch(router.Action{Type: router.BackAction}))
		return
	}
	m.sess.Clock().Settle(path, settle, anim.DefaultDuration)
}

func (m *browseModel) cancelGesture() {
	if m.gesture == nil {
		return
	}
	_, settle := m.gesture.Release()
	m.sess.Clock().Settle(m.gesturePath, settle, anim.DefaultDuration)
	m.gesture, m.gesturePath = nil, nil
}

func (m *browseModel) View() string {
	f := m.sess.Frame()
	root, rev := m.sess.State()
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.name))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  rev %d  %s", rev, m.sess.ID())))
	b.WriteString("\n\n")

	if h := session.ActiveHeader(f); h != nil {
		style := navBarStyle
		if h.Opacity < 0.5 || h.Props.HideNavBar {
			style = navBarDimStyle
		}
		b.WriteString(style.Render(navBarText(h, m.width)))
		b.WriteString("\n")
	}

	for _, s := range activeFrames(f) {
		if s.Kind == render.KindStack {
			b.WriteString(cardsText(s, m.width))
			b.WriteString("\n")
		}
	}

	leaf := nav.ActiveLeaf(root)
	b.WriteString("\n")
	b.WriteString(cardStyle.Render(leafText(leaf)))
	b.WriteString("\n")

	if tabs := tabsFrame(f); tabs != nil && !tabs.HideTabBar {
		b.WriteString("\n")
		b.WriteString(tabBarStyle.Render(tabBarText(tabs.Tabs, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  h/l buttons  tab tabs  n step  [ ] drag  q quit"))
	if m.next < len(m.steps) {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.next, len(m.steps))))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	return b.String()
}

// activeFrames follows the displayed path through f.
func activeFrames(f *render.Frame) []*render.Frame {
	var out []*render.Frame
	for f != nil {
		out = append(out, f)
		switch f.Kind {
		case render.KindTabs:
			f = f.Selected
		case render.KindStack:
			c := f.Active()
			if c == nil {
				return out
			}
			f = c.Frame
		default:
			return out
		}
	}
	return out
}

func deepestStack(f *render.Frame) *render.Frame {
	var stack *render.Frame
	for _, a := range activeFrames(f) {
		if a.Kind == render.KindStack {
			stack = a
		}
	}
	return stack
}

func tabsFrame(f *render.Frame) *render.Frame {
	for _, a := range activeFrames(f) {
		if a.Kind == render.KindTabs {
			return a
		}
	}
	return nil
}

// navBarText lays out a header across width cells: left button, centred
// title, right button.
func navBarText(h *render.Header, width int) string {
	left := h.Props.LeftTitle
	if b := h.Props.LeftButton; b != nil {
		left = b.Label
	}
	if left == "" && h.Back {
		left = "‹ Back"
	}
	right := h.Props.RightTitle
	if b := h.Props.RightButton; b != nil {
		right = b.Label
	}

	side := max(runewidth.StringWidth(left), runewidth.StringWidth(right))
	room := width - 2*side - 2
	if room < 1 {
		return runewidth.Truncate(h.Title, width, "…")
	}
	title := runewidth.Truncate(h.Title, room, "…")
	pad := room - runewidth.StringWidth(title)

	return runewidth.FillRight(left, side) + " " +
		strings.Repeat(" ", pad/2) + title + strings.Repeat(" ", pad-pad/2) +
		" " + runewidth.FillLeft(right, side)
}

// tabBarText lists tab titles with the selected one bracketed.
func tabBarText(tabs []render.Tab, width int) string {
	parts := make([]string, len(tabs))
	for i, t := range tabs {
		title := t.Title
		if title == "" {
			title = t.Key
		}
		if t.Selected {
			title = "[" + title + "]"
		}
		parts[i] = title
	}
	return runewidth.FillRight(runewidth.Truncate(strings.Join(parts, "  "), width, "…"), width)
}

// cardsText shows each card of a stack at its current horizontal offset
// and opacity.
func cardsText(stack *render.Frame, width int) string {
	if stack == nil {
		return ""
	}
	var b strings.Builder
	for i, c := range stack.Cards {
		if i > 0 {
			b.WriteString("\n")
		}
		marker := "  "
		if i == stack.Index {
			marker = "▸ "
		}
		line := fmt.Sprintf("%s%-12s x=%+6.1f y=%+6.1f opacity=%.2f scale=%.2f",
			marker, c.Key, c.Style.TranslateX, c.Style.TranslateY, c.Style.Opacity, c.Style.Scale)
		b.WriteString(runewidth.Truncate(line, width, "…"))
	}
	return b.String()
}

func leafText(leaf *nav.Node) string {
	if leaf == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(leaf.Key)
	if t := leaf.DisplayTitle(); t != "" && t != leaf.Key {
		b.WriteString(" · " + t)
	}
	for _, k := range slices.Sorted(maps.Keys(leaf.Props)) {
		fmt.Fprintf(&b, "\n  %s: %v", k, leaf.Props[k])
	}
	return b.String()
}
