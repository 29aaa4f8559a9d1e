package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/platterlab/internal/geom"
	"github.com/san-kum/platterlab/internal/session"
	"github.com/san-kum/platterlab/internal/viz"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600
	armNudgeDeg     = 0.8
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	onStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model owns the live deck session and its terminal rendering state.
type Model struct {
	sess       *session.Session
	dt         float64
	canvas     *viz.Canvas
	frame      session.FrameState
	yawHistory []float64
	dragging   bool
	dragIdle   int
	holdPoint  geom.Vec3
	showHelp   bool
}

// NewModel wraps an existing session for interactive use.
func NewModel(sess *session.Session, dt float64) Model {
	return Model{
		sess:       sess,
		dt:         dt,
		canvas:     viz.NewCanvas(canvasWidth, canvasHeight),
		yawHistory: make([]float64, 0, historyCapacity),
		holdPoint:  geom.Vec3{X: 2.0, Y: 2.2, Z: 3.0},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles key input and advances the session one frame per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.sess.Mechanism().ToggleStartStop()
		case "s":
			m.sess.Mechanism().ToggleSpeed()
		case "left", "h":
			m.nudgeArm(-armNudgeDeg)
		case "right", "l":
			m.nudgeArm(armNudgeDeg)
		case "up", "k":
			m.sess.Mechanism().LiftNeedle()
		case "g":
			if m.sess.VinylHeld() {
				m.sess.DropVinyl()
			} else {
				m.sess.GrabVinyl(m.holdPoint)
			}
		case "r":
			m.sess.Mechanism().ResetState()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.dragging {
			m.dragIdle++
			if m.dragIdle > 12 {
				m.sess.Mechanism().EndArmDrag()
				m.dragging = false
			}
		}
		m.frame = m.sess.Step(m.dt)
		m.yawHistory = append(m.yawHistory, m.frame.Yaw)
		if len(m.yawHistory) > historyCapacity {
			m.yawHistory = m.yawHistory[1:]
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// nudgeArm opens a drag on the first press and keeps it open while the
// user is actively steering; EndArmDrag fires after a short idle gap so
// the release snap and scrub happen once per gesture.
func (m *Model) nudgeArm(deltaDeg float64) {
	if !m.dragging {
		m.sess.Mechanism().BeginArmDrag()
		m.dragging = true
	}
	m.dragIdle = 0
	m.sess.Mechanism().DragArmBy(deltaDeg)
}

func (m Model) View() string {
	m.canvas.Clear()
	viz.RenderDeck(m.canvas, m.frame)
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("PLATTERLAB") + "\n")
	s.WriteString(m.statusLine() + "\n\n")

	if len(m.yawHistory) > 1 {
		chart := asciigraph.Plot(m.yawHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Tonearm yaw"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	mech := m.sess.Mechanism()
	sec := mech.CurrentSeconds()
	s.WriteString(labelStyle.Render("Clock") + valueStyle.Render(fmt.Sprintf("%02d:%05.2f", int(sec)/60, sec-float64(int(sec)/60*60))) + "\n")
	s.WriteString(labelStyle.Render("Yaw") + valueStyle.Render(fmt.Sprintf("%+.2f°", m.frame.Yaw)) + "\n")
	s.WriteString(labelStyle.Render("Pitch") + valueStyle.Render(fmt.Sprintf("%+.2f°", m.frame.Pitch)) + "\n")
	s.WriteString(labelStyle.Render("Platter") + valueStyle.Render(fmt.Sprintf("%.2f rad/s", m.frame.AngularVel)) + "\n")
	s.WriteString(labelStyle.Render("Rate") + valueStyle.Render(fmt.Sprintf("%.2fx", mech.PlaybackRate())) + "\n")

	s.WriteString("\n")
	s.WriteString(labelStyle.Render("Motor") + m.flag(m.frame.StartOn) + "\n")
	s.WriteString(labelStyle.Render("Playing") + m.flag(m.frame.Playing) + "\n")
	s.WriteString(labelStyle.Render("Vinyl") + valueStyle.Render(m.vinylStatus()) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Start/Stop S:Speed ←→:Arm\n↑:Lift G:Grab/Drop R:Reset\nQ:Quit ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return helpScreen + "\n\n" + mainView
	}
	return mainView
}

func (m Model) statusLine() string {
	switch {
	case m.frame.Playing:
		return "PLAYING"
	case m.frame.StartOn:
		return "SPINNING"
	default:
		return "STOPPED"
	}
}

func (m Model) flag(on bool) string {
	if on {
		return onStyle.Render("ON")
	}
	return valueStyle.Render("off")
}

func (m Model) vinylStatus() string {
	switch {
	case m.frame.VinylHeld:
		return "in hand"
	case m.frame.VinylReturning:
		return "returning"
	case m.frame.VinylOnDeck:
		return "on platter"
	default:
		return "off deck"
	}
}

const helpScreen = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Start/stop the platter   ║
║  S        - Toggle 33/45 speed       ║
║  Left/H   - Drag tonearm outward     ║
║  Right/L  - Drag tonearm inward      ║
║  Up/K     - Lift the needle          ║
║  G        - Grab / drop the vinyl    ║
║  R        - Reset the deck           ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

// Run starts the interactive view on the current terminal.
func Run(sess *session.Session, dt float64) error {
	p := tea.NewProgram(NewModel(sess, dt))
	_, err := p.Run()
	return err
}
