package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/editor"
	"github.com/matzehuels/wireframe/pkg/errors"
	wfio "github.com/matzehuels/wireframe/pkg/io"
	"github.com/matzehuels/wireframe/pkg/pipeline"
	"github.com/matzehuels/wireframe/pkg/render"
	"github.com/matzehuels/wireframe/pkg/render/term"
)

const (
	headerHeight = 1  // title bar above the canvas
	panelWidth   = 34 // property panel, shown on terminals at least panelMinTerm wide
	panelMinTerm = 80
)

// Panel styles
var (
	panelHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	panelKeyStyle    = lipgloss.NewStyle().Foreground(colorGray)
	panelValueStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	panelBorderStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Pointer Capture
// =============================================================================

// pointerCapture tracks whether the editor holds the pointer. While it is
// held, motion and release events reach the editor wherever they happen,
// including outside the canvas area.
type pointerCapture struct {
	held bool
}

func (c *pointerCapture) Acquire() func() {
	c.held = true
	return func() { c.held = false }
}

// =============================================================================
// Editor Model
// =============================================================================

// editorParams configures a new editor model.
type editorParams struct {
	ctx      context.Context
	config   editor.Config
	runner   *pipeline.Runner
	opts     pipeline.Options // export defaults
	script   *wfio.Script     // replayed before editing starts, may be nil
	savePath string           // default target for "save"
}

// editorModel is the bubbletea model of the terminal editor. Every event
// it dispatches is also appended to script, so a session can be saved and
// replayed with the render command.
type editorModel struct {
	ctx      context.Context
	ed       *editor.Editor
	capture  *pointerCapture
	runner   *pipeline.Runner
	opts     pipeline.Options
	script   *wfio.Script
	savePath string

	keys      keyMap
	help      help.Model
	input     textinput.Model
	palette   bool
	showPanel bool

	view   term.Viewport
	fitted bool
	width  int
	height int

	status string
	err    error
}

// exportedMsg reports the end of a background export.
type exportedMsg struct {
	paths []string
	err   error
}

func newEditorModel(p editorParams) (*editorModel, error) {
	cfg := p.config
	if p.script != nil {
		cfg = p.script.Settings.Apply(cfg)
	}
	capture := &pointerCapture{}
	snap := cfg.SnapToGrid

	input := textinput.New()
	input.Prompt = ":"
	input.Placeholder = "add rect, align left, set width 120, export out.svg"

	m := &editorModel{
		ctx:     p.ctx,
		capture: capture,
		ed: editor.New(
			editor.WithIDSource(&editor.Sequence{}),
			editor.WithConfig(cfg),
			editor.WithCapture(capture),
			editor.WithContext(p.ctx),
		),
		runner:   p.runner,
		opts:     p.opts,
		savePath: p.savePath,
		script: &wfio.Script{Settings: wfio.Settings{
			SnapToGrid: &snap,
			GridSize:   cfg.GridSize,
			Background: cfg.Background,
		}},
		keys:      newKeyMap(),
		help:      help.New(),
		input:     input,
		showPanel: true,
	}

	if p.script != nil {
		events, err := p.script.Events()
		if err != nil {
			return nil, err
		}
		for _, ev := range events {
			m.dispatch(ev)
		}
	}
	return m, nil
}

func (m *editorModel) Init() tea.Cmd {
	return nil
}

func (m *editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-2, 10)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if m.palette {
			cmd = m.updatePalette(msg)
		} else {
			cmd = m.handleKey(msg)
		}
	case exportedMsg:
		m.clearStatus()
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.status = "Exported " + strings.Join(msg.paths, ", ")
		}
	default:
		if m.palette {
			m.input, cmd = m.input.Update(msg)
		}
	}
	m.layout()
	return m, cmd
}

// dispatch applies ev and records it. Consecutive pointer moves collapse
// into the last one, which replays to the same geometry.
func (m *editorModel) dispatch(ev editor.Event) {
	m.ed.Dispatch(ev)
	if _, ok := ev.(editor.PointerMove); ok {
		if n := len(m.script.Steps); n > 0 && m.script.Steps[n-1].Name == ev.Name() {
			m.script.Steps = m.script.Steps[:n-1]
		}
	}
	m.script.Append(ev)
}

func (m *editorModel) scene() render.Scene {
	return render.SceneOf(m.ed.State())
}

// close ends any session still in progress.
func (m *editorModel) close() {
	m.ed.Close()
}

// =============================================================================
// Input
// =============================================================================

func (m *editorModel) handleMouse(msg tea.MouseMsg) {
	col, row := msg.X, msg.Y-headerHeight
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if !m.view.Contains(col, row) {
				return
			}
			m.clearStatus()
			m.dispatch(pressEvent(m.scene(), m.view, col, row, msg.Shift))
		case tea.MouseButtonWheelUp:
			m.view = m.view.Pan(0, -1)
		case tea.MouseButtonWheelDown:
			m.view = m.view.Pan(0, 1)
		case tea.MouseButtonWheelLeft:
			m.view = m.view.Pan(-2, 0)
		case tea.MouseButtonWheelRight:
			m.view = m.view.Pan(2, 0)
		}
	case tea.MouseActionMotion:
		if m.capture.held {
			m.dispatch(editor.PointerMove{Pos: m.view.ToCanvas(col, row)})
		}
	case tea.MouseActionRelease:
		if m.capture.held {
			m.dispatch(editor.PointerUp{})
		}
	}
}

// pressEvent maps a left press on a canvas cell to the pointer event for
// whatever lies under it.
func pressEvent(sc render.Scene, v term.Viewport, col, row int, shift bool) editor.Event {
	pos := v.ToCanvas(col, row)
	switch hit := term.HitTest(sc, v, col, row); hit.Kind {
	case term.HitHandle:
		return editor.HandleDown{ID: hit.ID, Handle: hit.Handle, Pos: pos}
	case term.HitElement:
		return editor.PointerDown{ID: hit.ID, Pos: pos, Shift: shift}
	}
	return editor.CanvasDown{}
}

func (m *editorModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	m.clearStatus()
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Palette):
		return m.openPalette("")
	case key.Matches(msg, k.Align):
		return m.openPalette("align ")
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, k.Panel):
		m.showPanel = !m.showPanel
	case key.Matches(msg, k.Fit):
		m.view = term.Fit(m.scene(), m.view.Cols, m.view.Rows)
	case key.Matches(msg, k.Pan):
		m.pan(msg.String())
	case key.Matches(msg, k.AddRect):
		m.dispatch(editor.AddElement{Kind: canvas.KindRectangle})
	case key.Matches(msg, k.AddText):
		m.dispatch(editor.AddElement{Kind: canvas.KindText})
	case key.Matches(msg, k.AddCircle):
		m.dispatch(editor.AddElement{Kind: canvas.KindCircle})
	case key.Matches(msg, k.Forward):
		m.dispatch(editor.BringForward{})
	case key.Matches(msg, k.Backward):
		m.dispatch(editor.SendBackward{})
	case key.Matches(msg, k.Snap):
		m.dispatch(editor.SetSnap{Enabled: !m.ed.State().Config.SnapToGrid})
	case key.Matches(msg, k.Escape):
		// Escape clears the selection; a gesture in progress ends first
		// so the capture is released.
		if m.ed.State().Session != nil {
			m.dispatch(editor.Cancel{})
		}
		m.keyCommand(editor.KeyEvent{Key: "escape"})
	case key.Matches(msg, k.Delete):
		m.keyCommand(editor.KeyEvent{Key: "delete"})
	case key.Matches(msg, k.Duplicate):
		m.keyCommand(editor.KeyEvent{Key: "d", Ctrl: true})
	}
	return nil
}

// keyCommand dispatches the event the editor binds to k, if any.
func (m *editorModel) keyCommand(k editor.KeyEvent) {
	if ev, _ := editor.KeyCommand(m.ed.State(), k); ev != nil {
		m.dispatch(ev)
	}
}

func (m *editorModel) pan(dir string) {
	switch dir {
	case "up":
		m.view = m.view.Pan(0, -2)
	case "down":
		m.view = m.view.Pan(0, 2)
	case "left":
		m.view = m.view.Pan(-4, 0)
	case "right":
		m.view = m.view.Pan(4, 0)
	}
}

// =============================================================================
// Command Palette
// =============================================================================

func (m *editorModel) openPalette(prefill string) tea.Cmd {
	m.palette = true
	m.input.SetValue(prefill)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *editorModel) closePalette() {
	m.palette = false
	m.input.Blur()
	m.input.Reset()
}

func (m *editorModel) updatePalette(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePalette()
		return nil
	case tea.KeyEnter:
		line := m.input.Value()
		m.closePalette()
		return m.execute(line)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// execute runs one palette line. Failures land in the status bar and
// leave the canvas untouched.
func (m *editorModel) execute(line string) tea.Cmd {
	m.clearStatus()
	pc, args, err := resolveCommand(line)
	if err != nil {
		m.err = err
		return nil
	}
	cmd, err := pc.run(m, args)
	if err != nil {
		m.err = err
		return nil
	}
	return cmd
}

// existing parses a single element id argument that must be on the canvas.
func (m *editorModel) existing(args []string) (canvas.ID, error) {
	if len(args) != 1 {
		return "", usageError("<command> <id>")
	}
	id := canvas.ID(args[0])
	if !m.ed.State().Elements.Has(id) {
		return "", errors.New(errors.ErrCodeNotFound, "no element %q", id)
	}
	return id, nil
}

// save writes the recorded session to args[0], or to the --record path.
func (m *editorModel) save(args []string) (tea.Cmd, error) {
	path := m.savePath
	if len(args) > 0 {
		path = args[0]
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	if err := wfio.WriteScript(path, m.script); err != nil {
		return nil, err
	}
	m.savePath = path
	m.status = fmt.Sprintf("Saved %s to %s", plural(len(m.script.Steps), "step"), path)
	return nil, nil
}

// export renders the current canvas in the background. Formats come from
// args[1], else the path's extension, else the configured defaults.
func (m *editorModel) export(args []string) (tea.Cmd, error) {
	if len(args) == 0 || len(args) > 2 {
		return nil, usageError("export <path> [formats]")
	}
	path := args[0]
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}

	opts := m.opts
	switch ext := strings.TrimPrefix(filepath.Ext(path), "."); {
	case len(args) == 2:
		opts.Formats = parseFormats(args[1])
	case pipeline.ValidFormats[ext]:
		opts.Formats = []string{ext}
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	ctx, runner, sc := m.ctx, m.runner, m.scene()
	m.status = "Exporting..."
	return func() tea.Msg {
		artifacts, err := runner.Render(ctx, sc, opts)
		if err != nil {
			return exportedMsg{err: err}
		}
		paths, err := writeExport(path, opts.Formats, artifacts)
		return exportedMsg{paths: paths, err: err}
	}, nil
}

// writeExport writes one file per format. A single format goes to path
// itself when it carries an extension.
func writeExport(path string, formats []string, artifacts map[string][]byte) ([]string, error) {
	base := basePath(path, path)
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		out := base + "." + format
		if len(formats) == 1 && filepath.Ext(path) != "" {
			out = path
		}
		if err := os.WriteFile(out, artifacts[format], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", out, err)
		}
		paths = append(paths, out)
	}
	return paths, nil
}

func (m *editorModel) clearStatus() {
	m.status = ""
	m.err = nil
}

// =============================================================================
// Layout & View
// =============================================================================

func (m *editorModel) panelCols() int {
	if !m.showPanel || m.width < panelMinTerm {
		return 0
	}
	return panelWidth
}

// layout sizes the viewport to the space left by the header, footer and
// panel. The first layout with a known size fits the viewport to the scene.
func (m *editorModel) layout() {
	if m.width == 0 {
		return
	}
	footer := 1 + lipgloss.Height(m.bottomView())
	cols := m.width - m.panelCols()
	rows := m.height - headerHeight - footer
	if !m.fitted {
		m.view = term.Fit(m.scene(), cols, rows)
		m.fitted = true
		return
	}
	m.view = m.view.Resize(cols, rows)
}

func (m *editorModel) View() string {
	if m.width == 0 {
		return ""
	}
	sc := m.scene()
	body := term.Render(sc, m.view)
	if pw := m.panelCols(); pw > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.panelView(pw, m.view.Rows))
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body, m.statusView(), m.bottomView())
}

func (m *editorModel) headerView() string {
	st := m.ed.State()

	modeStyle := StyleDim
	if st.Mode() != editor.ModeIdle {
		modeStyle = StyleWarning
	}
	snap := "snap off"
	if st.Config.SnapToGrid {
		snap = fmt.Sprintf("snap %g", st.Config.GridSize)
	}

	parts := []string{
		StyleTitle.Render(appName),
		modeStyle.Render(st.Mode().String()),
		StyleDim.Render(snap),
		StyleDim.Render(plural(st.Elements.Len(), "element")),
		StyleHighlight.Render(selectionSummary(st)),
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Join(parts, StyleDim.Render(" · ")))
}

func (m *editorModel) statusView() string {
	var line string
	switch {
	case m.err != nil:
		line = StyleError.Render(iconError + " " + errors.UserMessage(m.err))
	case m.status != "":
		line = StyleSuccess.Render(iconSuccess + " " + m.status)
	default:
		line = StyleDim.Render("click to select · shift+click to add · drag to move · drag ● to resize")
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

// bottomView is the palette input while it is open, otherwise the help.
func (m *editorModel) bottomView() string {
	if m.palette {
		return m.input.View()
	}
	return m.help.View(m.keys)
}

func (m *editorModel) panelView(width, height int) string {
	st := m.ed.State()
	content := StyleTitle.Render(selectionSummary(st)) + "\n"

	rows := propertyRows(st.SelectedElements())
	if len(rows) == 0 {
		content += StyleDim.Render("Click an element to edit it.\nUse :set <property> <value>.")
	} else {
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(panelBorderStyle).
			Headers("Property", "Value").
			Rows(rows...).
			Width(width - 1).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return panelHeaderStyle
				case col == 0:
					return panelKeyStyle
				}
				return panelValueStyle
			})
		content += t.Render()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		PaddingLeft(1).
		Render(content)
}

// selectionSummary names the single selected element or counts the
// selection.
func selectionSummary(st editor.State) string {
	switch n := st.Selection.Len(); n {
	case 0:
		return "No selection"
	case 1:
		id, _ := st.Selection.Single()
		return string(id)
	default:
		return fmt.Sprintf("%d elements selected", n)
	}
}

// propertyRows lists each property at least one element carries. Values
// that differ across the selection show as "mixed".
func propertyRows(elems []canvas.Element) [][]string {
	var rows [][]string
	for _, p := range canvas.Properties {
		var (
			val   string
			seen  bool
			mixed bool
		)
		for _, e := range elems {
			v, ok := canvas.Value(e, p)
			if !ok {
				continue
			}
			switch s := v.String(); {
			case !seen:
				val, seen = s, true
			case s != val:
				mixed = true
			}
		}
		if !seen {
			continue
		}
		if mixed {
			val = "mixed"
		}
		rows = append(rows, []string{string(p), val})
	}
	return rows
}
