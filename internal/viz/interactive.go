package viz

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/zetalab/internal/config"
	"github.com/san-kum/zetalab/internal/experiment"
	"github.com/san-kum/zetalab/internal/logging"
	"github.com/san-kum/zetalab/internal/series"
	"github.com/san-kum/zetalab/internal/storage"
)

const (
	stateMenu = iota
	stateView
)

// computedMsg carries a finished computation tagged with the generation
// that started it.
type computedMsg struct {
	gen int
	set *series.Set
	err error
}

type Explorer struct {
	reg   *experiment.Registry
	store *storage.Store

	state, cursor int
	views         []string
	view          string
	cfg           *config.Config
	params        []param
	paramCursor   int
	editing       bool
	editBuf       string

	gen       int
	cancel    context.CancelFunc
	computing bool
	result    *series.Set
	err       error

	surface3D     bool
	cam           *Camera
	status        string
	width, height int

	keys keyMap
	help help.Model
}

// NewExplorer starts on the view menu. store may be nil, which disables
// saving.
func NewExplorer(reg *experiment.Registry, store *storage.Store) Explorer {
	return Explorer{
		reg:    reg,
		store:  store,
		views:  reg.ListViews(),
		cam:    NewCamera(),
		width:  100,
		height: 32,
		keys:   newKeyMap(),
		help:   help.New(),
	}
}

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case computedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.computing = false
		m.result, m.err = msg.set, msg.err
		if msg.err != nil {
			logging.L().Warn("explorer.compute_failed", "view", m.view, "err", msg.err)
		}
		return m, nil
	case tea.KeyMsg:
		if m.state == stateMenu {
			return m.menuKey(msg)
		}
		return m.viewKey(msg)
	}
	return m, nil
}

func (m Explorer) menuKey(msg tea.KeyMsg) (Explorer, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.views)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Theme):
		NextTheme()
	case key.Matches(msg, m.keys.Open):
		return m.open(m.views[m.cursor])
	}
	return m, nil
}

func (m Explorer) open(view string) (Explorer, tea.Cmd) {
	cfg := config.DefaultConfig()
	if names := config.ListPresets(view); len(names) > 0 {
		cfg = config.GetPreset(view, firstSorted(names))
	}
	cfg.View = view
	m.view, m.cfg = view, cfg
	m.params = viewParams[view]
	m.keys = newKeyMap().forView(view)
	m.state, m.paramCursor = stateView, 0
	m.result, m.err, m.status = nil, nil, ""
	return m.recompute()
}

func firstSorted(names []string) string {
	best := names[0]
	for _, n := range names[1:] {
		if n < best {
			best = n
		}
	}
	return best
}

// recompute starts a computation for the current config and cancels the one
// in flight. Results from older generations are dropped in Update.
func (m Explorer) recompute() (Explorer, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.gen++
	m.computing = true

	gen, reg := m.gen, m.reg
	cfg := *m.cfg
	cfg.Harmonics.Active = append([]int(nil), m.cfg.Harmonics.Active...)
	return m, func() tea.Msg {
		defer cancel()
		exp, err := experiment.New(reg, &cfg)
		if err != nil {
			return computedMsg{gen: gen, err: err}
		}
		set, err := exp.Run(ctx)
		return computedMsg{gen: gen, set: set, err: err}
	}
}

func (m Explorer) viewKey(msg tea.KeyMsg) (Explorer, tea.Cmd) {
	if m.editing {
		return m.editKey(msg)
	}
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		if m.cancel != nil {
			m.cancel()
		}
		m.state = stateMenu
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.paramCursor < len(m.params)-1 {
			m.paramCursor++
		}
	case key.Matches(msg, m.keys.Less, m.keys.More):
		if len(m.params) == 0 {
			return m, nil
		}
		delta := 1.0
		if key.Matches(msg, m.keys.Less) {
			delta = -1
		}
		m.params[m.paramCursor].nudge(m.cfg, delta)
		return m.recompute()
	case key.Matches(msg, m.keys.Edit):
		if len(m.params) == 0 {
			return m, nil
		}
		p := m.params[m.paramCursor]
		m.editing = true
		if p.text {
			m.editBuf = m.cfg.Formula
		} else {
			m.editBuf = strconv.FormatFloat(p.get(m.cfg), 'g', -1, 64)
		}
	case key.Matches(msg, m.keys.Theme):
		NextTheme()
	case key.Matches(msg, m.keys.Surface):
		m.surface3D = !m.surface3D
	case key.Matches(msg, m.keys.Rotate):
		switch msg.String() {
		case "W":
			m.cam.RotateX(0.1)
		case "S":
			m.cam.RotateX(-0.1)
		case "A":
			m.cam.RotateY(-0.1)
		case "D":
			m.cam.RotateY(0.1)
		}
	case key.Matches(msg, m.keys.Zoom):
		if msg.String() == "+" {
			m.cam.ZoomIn()
		} else {
			m.cam.ZoomOut()
		}
	case key.Matches(msg, m.keys.Save):
		m.status = m.save()
	case key.Matches(msg, m.keys.Toggle):
		m.toggleZero(int(msg.String()[0] - '0'))
		return m.recompute()
	}
	return m, nil
}

func (m Explorer) editKey(msg tea.KeyMsg) (Explorer, tea.Cmd) {
	p := m.params[m.paramCursor]
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		if p.text {
			m.cfg.Formula = m.editBuf
		} else if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
			p.set(m.cfg, v)
		} else {
			m.status = fmt.Sprintf("not a number: %q", m.editBuf)
			return m, nil
		}
		m.editBuf = ""
		return m.recompute()
	case tea.KeyEsc:
		m.editing, m.editBuf = false, ""
	case tea.KeyBackspace:
		if r := []rune(m.editBuf); len(r) > 0 {
			m.editBuf = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		if p.text {
			m.editBuf += " "
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if p.text || strings.ContainsRune("0123456789.-+eE", r) {
				m.editBuf += string(r)
			}
		}
	}
	return m, nil
}

// toggleZero flips zero index i (key 1..9 is γ1..γ9, 0 is γ10) in the
// mixing board.
func (m *Explorer) toggleZero(digit int) {
	idx := digit - 1
	if digit == 0 {
		idx = 9
	}
	active := m.cfg.ActiveZeros()
	out := active[:0]
	found := false
	for _, j := range active {
		if j == idx {
			found = true
			continue
		}
		out = append(out, j)
	}
	if !found {
		out = append(out, idx)
	}
	if len(out) == 0 {
		// An empty list would fall back to the first Count zeros.
		m.cfg.Harmonics.Count = 0
	}
	m.cfg.Harmonics.Active = out
}

func (m Explorer) save() string {
	if m.store == nil || m.result == nil {
		return "nothing to save"
	}
	id, err := m.store.Save(m.view, m.cfg.Formula, m.cfg.Params(), m.result)
	if err != nil {
		return "save failed: " + err.Error()
	}
	logging.L().Info("run.saved", "id", id, "view", m.view, "source", "explorer")
	return "saved " + id
}

func (m Explorer) View() string {
	if m.state == stateMenu {
		return m.viewMenu()
	}
	return m.viewPanel()
}

func (m Explorer) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + Title.Render("ZETALAB") + "\n    " + Subtle.Render("zeros of ζ and the primes") + "\n    " + Separator(26) + "\n\n")
	for i, name := range m.views {
		desc := ""
		if v, err := m.reg.Get(name); err == nil {
			desc = v.Description
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", Title.Render("▸"), Selected.Render(fmt.Sprintf("%-10s", name)), Subtitle.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", Faint.Render(fmt.Sprintf("%-10s", name)), Faint.Render(desc)))
		}
	}
	b.WriteString("\n    " + m.helpView(menuHelp{m.keys}) + "  " + Faint.Render(CurrentTheme.Name) + "\n")
	return b.String()
}

func (m Explorer) viewPanel() string {
	var b strings.Builder
	b.WriteString("\n  " + Title.Render(strings.ToUpper(m.view)))
	if m.computing {
		b.WriteString("  " + Subtle.Render("computing…"))
	}
	b.WriteString("\n\n")

	for i, p := range m.params {
		val := formatParam(p, m.cfg)
		if m.editing && i == m.paramCursor {
			val = m.editBuf + "_"
		}
		if i == m.paramCursor {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", Title.Render("▸"), Selected.Render(fmt.Sprintf("%-10s", p.name)), ValueFocus.Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", Faint.Render(fmt.Sprintf("%-10s", p.name)), Value.Render(val)))
		}
	}
	if m.view == "mix" {
		b.WriteString(fmt.Sprintf("    %s %s\n", Faint.Render(fmt.Sprintf("%-10s", "active")), Value.Render(fmt.Sprint(m.cfg.ActiveZeros()))))
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString("  " + ErrorText.Render(m.err.Error()) + "\n")
	case m.result != nil:
		b.WriteString(m.render(m.result))
		for _, w := range m.result.Warnings {
			b.WriteString("  " + ErrorText.Render(w) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n  " + Subtle.Render(m.status) + "\n")
	}
	b.WriteString("\n  " + m.helpView(m.keys) + "\n")
	return b.String()
}

func (m Explorer) helpView(k help.KeyMap) string {
	h := m.help
	h.Styles.ShortKey = KeyName
	h.Styles.ShortDesc = Subtle
	h.Styles.ShortSeparator = Faint
	h.Width = m.width
	return h.View(k)
}

func formatParam(p param, cfg *config.Config) string {
	switch {
	case p.text:
		return cfg.Formula
	case p.integer:
		return fmt.Sprintf("%d", int(p.get(cfg)))
	default:
		return fmt.Sprintf("%.3f", p.get(cfg))
	}
}

// render picks the drawing that suits the view.
func (m Explorer) render(set *series.Set) string {
	w := max(m.width-14, 20)
	h := max(m.height-len(m.params)-12, 6)
	return Render(m.view, set, w, h, m.surface3D, m.cam)
}

// Render draws set the way view is meant to be seen. It is shared by the
// explorer and the plot command.
func Render(view string, set *series.Set, width, height int, surface bool, cam *Camera) string {
	switch view {
	case "twist":
		return Scatter(set, ScatterOptions{Width: width / 2, Height: height, Joined: true, Equal: true})
	case "grid":
		return Scatter(set, ScatterOptions{Width: width / 2, Height: height, Only: []string{"primes"}})
	case "landscape":
		if surface {
			if cam == nil {
				cam = NewCamera()
			}
			return RenderSurface(set, width/2, height, cam)
		}
		return Heatmap(set, width, height)
	}
	opts := DefaultChartOptions()
	opts.Width, opts.Height = width, height
	if view == "mix" {
		opts.Only = []string{"mix"}
	}
	return Chart(set, opts)
}

// RunExplorer runs the explorer full screen until the user quits.
func RunExplorer(reg *experiment.Registry, store *storage.Store) error {
	_, err := tea.NewProgram(NewExplorer(reg, store), tea.WithAltScreen()).Run()
	return err
}
