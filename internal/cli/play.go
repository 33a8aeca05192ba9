package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"gonum.org/v1/gonum/num/quat"

	"github.com/cubeworks/cubeview"
	"github.com/cubeworks/cubeview/internal/predictor"
	"github.com/cubeworks/cubeview/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [N]",
	Short: "Interactive cube view",
	Long: `Open the interactive 3D cube view.

Controls:
  arrows        - rotate the view (shift+left/right spins instead)
  u d l r f b   - turn a face clockwise (uppercase for counter-clockwise)
  0-9           - select the layer depth for face turns (0 = outer)
  s             - scramble
  v             - solve with the move predictor
  z             - reset the cube (animated undo)
  x             - reset the view
  q/Esc         - quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&scrambleMoves, "moves", 6, "Number of scramble moves")
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// View rotation axes and step, matching the observed mouse/arrow feel.
var (
	axisUD    = [3]float64{1, 0, 0}
	axisLR    = [3]float64{0, -1, 0}
	axisLRAlt = [3]float64{0, 0, 1}
)

const (
	viewStep      = 0.05 // radians per arrow press
	frameInterval = 16 * time.Millisecond
	turnAnimSecs  = 0.18
	undoAnimSecs  = 0.10 // undo replays faster
)

// Messages
type frameMsg time.Time
type solvePlannedMsg struct {
	moves []cubeview.Move
	err   error
}

// pendingMove is one queued quarter turn. undo entries revert the last
// history entry instead of carrying a move of their own.
type pendingMove struct {
	move cubeview.Move
	undo bool
}

// turnAnim is the in-flight rotation: a tween from progress 0 to 1
// advanced every frame. Input stays live while it runs, and quitting
// cancels it mid-flight.
type turnAnim struct {
	pending  pendingMove
	move     cubeview.Move // the rotation shown on screen
	tween    *gween.Tween
	progress float32
	last     time.Time
}

// Model
type playModel struct {
	cube *cubeview.Cube
	rot  quat.Number
	rng  *rand.Rand

	// Solving
	pred predictor.Predictor

	// Session log
	sessions  *storage.SessionRepository
	sessionID string

	// Move pipeline
	queue []pendingMove
	anim  *turnAnim

	// Input state
	layer       int
	scrambleLen int

	// Labels
	scramble string
	solution string
	status   string
	errMsg   string

	width    int
	height   int
	quitting bool
}

func newPlayModel(cube *cubeview.Cube, pred predictor.Predictor, sessions *storage.SessionRepository, scrambleLen int) *playModel {
	return &playModel{
		cube:        cube,
		rot:         cubeview.StartOrientation(),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		pred:        pred,
		sessions:    sessions,
		scrambleLen: scrambleLen,
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// enqueue adds quarter turns to the pipeline, decomposing half turns so
// undo reverses them one quarter at a time.
func (m *playModel) enqueue(mv cubeview.Move) tea.Cmd {
	if mv.Turn == cubeview.Double {
		q := cubeview.Move{Face: mv.Face, Turn: cubeview.CW, Layer: mv.Layer}
		m.queue = append(m.queue, pendingMove{move: q}, pendingMove{move: q})
	} else {
		m.queue = append(m.queue, pendingMove{move: mv})
	}
	return m.startNext()
}

func (m *playModel) enqueueUndo(count int) tea.Cmd {
	for i := 0; i < count; i++ {
		m.queue = append(m.queue, pendingMove{undo: true})
	}
	return m.startNext()
}

// startNext begins animating the head of the queue if nothing is
// in flight.
func (m *playModel) startNext() tea.Cmd {
	if m.anim != nil || len(m.queue) == 0 {
		return nil
	}

	p := m.queue[0]
	m.queue = m.queue[1:]

	shown := p.move
	secs := float32(turnAnimSecs)
	if p.undo {
		hist := m.cube.History()
		if len(hist) == 0 {
			return m.startNext()
		}
		shown = hist[len(hist)-1].Inverse()
		secs = undoAnimSecs
	}

	m.anim = &turnAnim{
		pending: p,
		move:    shown,
		tween:   gween.New(0, 1, secs, ease.OutQuad),
		last:    time.Now(),
	}
	return m.frameCmd()
}

// finishAnim commits the in-flight move to the cube model.
func (m *playModel) finishAnim() tea.Cmd {
	p := m.anim.pending
	m.anim = nil

	if p.undo {
		m.cube.Undo()
	} else if err := m.cube.Apply(p.move); err != nil {
		m.errMsg = err.Error()
	}

	if next := m.startNext(); next != nil {
		return next
	}

	// Pipeline drained: settle the outcome.
	if m.cube.IsSolved() {
		m.status = "Solved!"
		m.endSession(true)
	}
	return nil
}

func (m *playModel) endSession(solved bool) {
	if m.sessions == nil || m.sessionID == "" {
		return
	}
	steps := 0
	if moves, err := cubeview.ParseMoves(m.solution); err == nil {
		steps = len(moves)
	}
	if err := m.sessions.End(m.sessionID, m.solution, solved, steps); err != nil {
		m.errMsg = err.Error()
	}
	m.sessionID = ""
}

func (m *playModel) rotateView(axis [3]float64, theta float64) {
	m.rot = quat.Mul(m.rot, cubeview.FromAxisAngle(axis, theta))
}

func (m *playModel) handleFaceKey(key string) tea.Cmd {
	turn := cubeview.CW
	face := key
	if key >= "A" && key <= "Z" {
		turn = cubeview.CCW
		face = string(key[0] + 'a' - 'A')
	}

	mv, err := cubeview.ParseMove(face)
	if err != nil {
		return nil
	}
	mv.Turn = turn
	mv.Layer = m.layer
	m.errMsg = ""
	return m.enqueue(mv)
}

func (m *playModel) startScramble() tea.Cmd {
	// Drop anything in flight and start from solved.
	m.queue = nil
	m.anim = nil
	m.cube.UndoAll()
	m.solution = ""
	m.status = ""
	m.errMsg = ""

	moves := make([]cubeview.Move, m.scrambleLen)
	for i := range moves {
		moves[i] = cubeview.MoveFromToken(uint8(m.rng.Intn(cubeview.VocabularySize)))
	}
	m.scramble = cubeview.FormatMoves(moves)

	if m.sessions != nil {
		id, err := m.sessions.Create(m.cube.Size(), m.scramble)
		if err != nil {
			m.errMsg = err.Error()
		} else {
			m.sessionID = id
		}
	}

	var cmd tea.Cmd
	for _, mv := range moves {
		if c := m.enqueue(mv); c != nil {
			cmd = c
		}
	}
	return cmd
}

func (m *playModel) startSolve() tea.Cmd {
	if m.pred == nil {
		m.errMsg = "no move predictor loaded (use --model)"
		return nil
	}
	if m.cube.Size() != 3 {
		m.errMsg = "the move predictor only handles 3x3 cubes"
		return nil
	}
	if m.anim != nil || len(m.queue) > 0 {
		m.status = "waiting for moves to finish..."
		return nil
	}

	m.status = "solving..."
	cube := m.cube.Clone()
	pred := m.pred
	return func() tea.Msg {
		moves, err := predictor.Solve(cube, pred)
		return solvePlannedMsg{moves: moves, err: err}
	}
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			m.endSession(false)
			return m, tea.Quit

		case "up":
			m.rotateView(axisUD, viewStep)
		case "down":
			m.rotateView(axisUD, -viewStep)
		case "left":
			m.rotateView(axisLR, -viewStep)
		case "right":
			m.rotateView(axisLR, viewStep)
		case "shift+left":
			m.rotateView(axisLRAlt, -viewStep)
		case "shift+right":
			m.rotateView(axisLRAlt, viewStep)

		case "u", "d", "l", "r", "f", "b", "U", "D", "L", "R", "F", "B":
			return m, m.handleFaceKey(key)

		case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
			depth := int(key[0] - '0')
			if depth < m.cube.Size() {
				m.layer = depth
				m.status = fmt.Sprintf("layer %d selected", depth)
			}

		case "s":
			return m, m.startScramble()

		case "v":
			return m, m.startSolve()

		case "z":
			m.status = ""
			m.solution = ""
			return m, m.enqueueUndo(len(m.cube.History()))

		case "x":
			m.rot = cubeview.StartOrientation()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case frameMsg:
		if m.anim == nil {
			return m, nil
		}
		now := time.Time(msg)
		dt := float32(now.Sub(m.anim.last).Seconds())
		m.anim.last = now

		progress, done := m.anim.tween.Update(dt)
		m.anim.progress = progress
		if done {
			return m, m.finishAnim()
		}
		return m, m.frameCmd()

	case solvePlannedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.status = ""
			return m, nil
		}
		m.solution = cubeview.FormatMoves(msg.moves)
		if len(msg.moves) == 0 {
			m.status = "already solved"
			return m, nil
		}
		m.status = fmt.Sprintf("applying %d predicted moves", len(msg.moves))
		var cmd tea.Cmd
		for _, mv := range msg.moves {
			if c := m.enqueue(mv); c != nil {
				cmd = c
			}
		}
		return m, cmd
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	gridH := m.height - 9
	if gridH < 12 {
		gridH = 12
	}
	if gridH > 40 {
		gridH = 40
	}
	gridW := gridH * 2
	if m.width > 0 && gridW > m.width {
		gridW = m.width
	}

	geo := m.cube.Geometry()
	if m.anim != nil {
		geo = m.cube.GeometryPartial(m.anim.move, float64(m.anim.progress))
	}

	s := titleStyle.Render(fmt.Sprintf("cubeview %dx%d", m.cube.Size(), m.cube.Size())) + "\n"
	s += renderCube(geo, m.rot, m.cube.Size(), gridW, gridH)

	s += labelStyle.Render("layer: ") + fmt.Sprintf("%d", m.layer)
	s += statusStyle.Render(fmt.Sprintf("   history: %d", len(m.cube.History())))
	if m.cube.IsSolved() {
		s += moveStyle.Render("   solved")
	}
	s += "\n"

	if m.scramble != "" {
		s += labelStyle.Render("scramble: ") + moveStyle.Render(m.scramble) + "\n"
	}
	if m.solution != "" {
		s += labelStyle.Render("solution: ") + moveStyle.Render(m.solution) + "\n"
	}
	if m.status != "" {
		s += statusStyle.Render(m.status) + "\n"
	}
	if m.errMsg != "" {
		s += errorStyle.Render(m.errMsg) + "\n"
	}

	s += helpStyle.Render("arrows view · udlrfb turn (shift=ccw) · 0-9 layer · s scramble · v solve · z reset cube · x reset view · q quit")
	return s
}

func runPlay(cmd *cobra.Command, args []string) error {
	n, err := parseSizeArg(args)
	if err != nil {
		return err
	}

	cube, err := cubeview.NewCube(n)
	if err != nil {
		return err
	}

	pred, err := loadPredictor()
	if err != nil {
		return err
	}

	// Session logging is best-effort in the interactive view.
	db, sessions, err := openStorage()
	if err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "warning: session log unavailable: %v\n", err)
		}
		sessions = nil
	} else {
		defer db.Close()
	}

	p := tea.NewProgram(newPlayModel(cube, pred, sessions, scrambleMoves), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
