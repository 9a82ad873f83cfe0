// Package tui implements the interactive painting session.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/axwes/Paint-Replica/internal/action"
	"github.com/axwes/Paint-Replica/internal/config"
	"github.com/axwes/Paint-Replica/internal/grid"
	"github.com/axwes/Paint-Replica/internal/history"
	"github.com/axwes/Paint-Replica/internal/layers"
	"github.com/axwes/Paint-Replica/internal/render"
	"github.com/axwes/Paint-Replica/internal/replay"
	"github.com/axwes/Paint-Replica/internal/session"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

var styleInfo = map[grid.DrawStyle]string{
	grid.DrawStyleSet:      "one layer per square, special inverts",
	grid.DrawStyleAdd:      "layers stack, special reverses",
	grid.DrawStyleSequence: "layer types toggle, special drops the median",
}

type state int

const (
	stateMenu state = iota
	stateConfig
	statePaint
)

// replayTicks is how many frames each replayed action stays on screen.
const replayTicks = 6

type model struct {
	state  state
	cursor int

	cfg         *config.Config
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string

	g        *grid.Grid
	cx, cy   int
	layerIdx int
	ts       int64

	undo   *history.UndoTracker
	replay *replay.ReplayTracker
	series []float64

	theme     render.Theme
	store     *session.Store
	sessionID string
	status    string

	replayScratch *grid.Grid // playback target while replaying
	replayWait    int

	width  int
	height int
}

// New builds the interactive app. Saved sessions go through store.
func New(cfg *config.Config, store *session.Store) *model {
	return &model{
		state:      stateMenu,
		cfg:        cfg,
		paramNames: []string{"width", "height", "brush"},
		theme:      render.GetTheme(cfg.Theme),
		store:      store,
		width:      80,
		height:     24,
	}
}

// Run starts the bubbletea program and blocks until it exits.
func Run(cfg *config.Config, store *session.Store) error {
	p := tea.NewProgram(New(cfg, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func (m *model) tick() tea.Cmd {
	fps := m.cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != statePaint {
			return m, nil
		}
		m.ts++
		if m.replayScratch != nil {
			m.replayWait--
			if m.replayWait <= 0 {
				m.replayWait = replayTicks
				if m.replay.PlayNext(m.replayScratch) {
					m.replayScratch = nil
					m.status = "replay finished"
				}
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case statePaint:
		return m.paintKey(msg)
	}
	return m, nil
}

func (m *model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(grid.DrawStyles)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.cfg.Style = string(grid.DrawStyles[m.cursor])
		m.state = stateConfig
		m.paramCursor = 0
	}
	return m, nil
}

func (m *model) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val int
			fmt.Sscanf(m.editBuf, "%d", &val)
			m.setParam(m.paramNames[m.paramCursor], val)
			m.editing = false
			m.editBuf = ""
		case "escape":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
				m.editBuf += s
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "escape":
		m.state = stateMenu
	case "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter":
		m.editing = true
		m.editBuf = fmt.Sprintf("%d", m.getParam(m.paramNames[m.paramCursor]))
	case "left", "h":
		m.setParam(m.paramNames[m.paramCursor], m.getParam(m.paramNames[m.paramCursor])-1)
	case "right", "l":
		m.setParam(m.paramNames[m.paramCursor], m.getParam(m.paramNames[m.paramCursor])+1)
	case "s", " ":
		if err := m.start(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.state = statePaint
		return m, tea.Batch(tea.ClearScreen, m.tick())
	}
	return m, nil
}

func (m *model) getParam(name string) int {
	switch name {
	case "width":
		return m.cfg.Width
	case "height":
		return m.cfg.Height
	case "brush":
		return m.cfg.Brush
	}
	return 0
}

func (m *model) setParam(name string, val int) {
	switch name {
	case "width":
		if val >= 1 && val <= 128 {
			m.cfg.Width = val
		}
	case "height":
		if val >= 1 && val <= 64 {
			m.cfg.Height = val
		}
	case "brush":
		if val >= grid.MinBrush && val <= grid.MaxBrush {
			m.cfg.Brush = val
		}
	}
}

func (m *model) start() error {
	g, err := m.cfg.NewGrid()
	if err != nil {
		return err
	}
	m.g = g
	m.cx, m.cy = g.Width/2, g.Height/2
	m.layerIdx = 0
	m.ts = 0
	m.undo = history.NewUndoTracker()
	m.replay = replay.NewReplayTracker()
	m.replayScratch = nil
	m.sessionID = ""
	m.status = ""
	m.series = nil
	m.sample()
	return nil
}

// seriesCap bounds the brightness history shown in the status sparkline.
const seriesCap = 256

// sample records the canvas brightness after a state change.
func (m *model) sample() {
	m.series = append(m.series, render.Brightness(m.g, m.theme.Background, m.ts))
	if len(m.series) > seriesCap {
		m.series = m.series[len(m.series)-seriesCap:]
	}
}

func (m *model) paintKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// During playback most keys are inert; q aborts back to painting.
	if m.replayScratch != nil {
		if s := msg.String(); s == "q" || s == "escape" {
			m.replay.Stop()
			m.replayScratch = nil
			m.status = "replay aborted"
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "escape":
		m.state = stateMenu
		return m, tea.ClearScreen
	case "up", "k":
		if m.cy > 0 {
			m.cy--
		}
	case "down", "j":
		if m.cy < m.g.Height-1 {
			m.cy++
		}
	case "left", "h":
		if m.cx > 0 {
			m.cx--
		}
	case "right", "l":
		if m.cx < m.g.Width-1 {
			m.cx++
		}
	case " ", "enter":
		m.record(action.Stroke(m.g, m.cx, m.cy, m.selectedLayer()), "painted %s")
	case "x":
		m.record(action.EraseStroke(m.g, m.cx, m.cy, m.selectedLayer()), "erased %s")
	case "s":
		a := action.SpecialAction()
		a.Apply(m.g)
		m.undo.Add(a)
		m.replay.Add(a, false)
		m.sample()
		m.status = "special!"
	case "u":
		if a := m.undo.Undo(m.g); a != nil {
			m.replay.Add(a, true)
			m.sample()
			m.status = "undo"
		} else {
			m.status = "nothing to undo"
		}
	case "y":
		if a := m.undo.Redo(m.g); a != nil {
			m.replay.Add(a, false)
			m.sample()
			m.status = "redo"
		} else {
			m.status = "nothing to redo"
		}
	case "p":
		if m.replay.Len() == 0 {
			m.status = "nothing to replay"
			break
		}
		scratch, err := m.cfg.NewGrid()
		if err != nil {
			m.status = err.Error()
			break
		}
		m.replayScratch = scratch
		m.replayWait = replayTicks
		m.replay.StartReplay()
		m.status = "replaying"
	case "tab":
		m.layerIdx = (m.layerIdx + 1) % layers.Count()
	case "shift+tab":
		m.layerIdx = (m.layerIdx + layers.Count() - 1) % layers.Count()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx < layers.Count() {
			m.layerIdx = idx
		}
	case "+", "=":
		m.g.IncreaseBrush()
	case "-", "_":
		m.g.DecreaseBrush()
	case "t":
		m.theme = render.NextTheme(m.theme.Name)
		m.cfg.Theme = m.theme.Name
	case "w":
		m.save()
	}
	return m, nil
}

func (m *model) selectedLayer() layers.Layer {
	return layers.All()[m.layerIdx]
}

// record applies bookkeeping for a freshly performed stroke.
func (m *model) record(a *action.PaintAction, format string) {
	if a == nil {
		m.status = "no change"
		return
	}
	m.undo.Add(a)
	m.replay.Add(a, false)
	m.sample()
	m.status = fmt.Sprintf(format, m.selectedLayer().Name)
}

func (m *model) save() {
	meta := session.Metadata{
		ID:     m.sessionID,
		Style:  string(m.g.Style),
		Width:  m.g.Width,
		Height: m.g.Height,
		Theme:  m.theme.Name,
	}
	id, err := m.store.Save(meta, m.replay.Entries())
	if err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.sessionID = id
	m.status = fmt.Sprintf("saved session %s", id)
}

func (m *model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case statePaint:
		return m.viewPaint()
	}
	return ""
}

func (m *model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("         " + cyan.Render("p a i n t") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, style := range grid.DrawStyles {
		desc := styleInfo[style]
		name := fmt.Sprintf("%-10s", string(style))
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(name) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(name) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter choose   q quit") + "\n")

	return b.String()
}

func (m *model) viewConfig() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.cfg.Style) + "  " + dim.Render(styleInfo[grid.DrawStyle(m.cfg.Style)]) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 34)) + "\n\n")

	for i, name := range m.paramNames {
		val := fmt.Sprintf("%6d", m.getParam(name))
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%6s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-8s", name)) + yellow.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-8s", name)) + dim.Render(val) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n      " + yellow.Render(m.status) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  s start  esc back") + "\n")

	return b.String()
}

func (m *model) viewPaint() string {
	g := m.g
	opts := render.Options{Cursor: &[2]int{m.cx, m.cy}}
	replaying := m.replayScratch != nil
	if replaying {
		g = m.replayScratch
		opts = render.Options{}
	}

	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("painting")
	if replaying {
		statusIcon = yellow.Render("▶")
		statusText = yellow.Render("replaying")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s  %s\n",
		statusIcon, cyan.Render(string(m.g.Style)), statusText, dim.Render(m.theme.Name)))

	if replaying {
		played, total := m.replay.Played(), m.replay.Len()
		bar := render.ProgressBar(float64(played)/float64(total), 30)
		b.WriteString(fmt.Sprintf("   %s %s\n\n", cyan.Render(bar), dim.Render(fmt.Sprintf("%d/%d", played, total))))
	} else {
		b.WriteString("\n")
	}

	for _, line := range strings.Split(strings.TrimRight(render.Frame(g, m.ts, m.theme, opts), "\n"), "\n") {
		b.WriteString("   " + line + "\n")
	}

	// layer palette
	b.WriteString("\n   ")
	for i, l := range layers.All() {
		sw := render.Swatch(l.Apply(m.theme.Background, m.ts, 0, 0))
		label := fmt.Sprintf("%d:%s", i+1, l.Name)
		if i == m.layerIdx {
			b.WriteString(sw + cyan.Render("▸"+label) + " ")
		} else {
			b.WriteString(sw + dim.Render(" "+label) + " ")
		}
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("   %s %s  %s %d  %s %d  %s\n",
		dim.Render("cursor"), white.Render(fmt.Sprintf("(%d,%d)", m.cx, m.cy)),
		dim.Render("brush"), m.g.Brush(),
		dim.Render("undo depth"), m.undo.Depth(),
		cyan.Render(render.Sparkline(m.series, 16))))

	if m.status != "" {
		b.WriteString("   " + yellow.Render(m.status) + "\n")
	}

	b.WriteString("\n" + dim.Render("   ↑↓←→ move  space paint  x erase  s special  u undo  y redo  p replay") + "\n")
	b.WriteString(dim.Render("   tab layer  ± brush  t theme  w save  q back") + "\n")

	return b.String()
}
