// Package tui renders the cube in the terminal and turns key presses into
// engine commands.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/cubeviz"
	"github.com/SeamusWaldron/cubeviz/internal/log"
)

// Messages
type frameMsg time.Time

// A mouse drag turns the view a quarter turn for every face width across
// or face height down.
const (
	dragCols = 6
	dragRows = 3
)

type dragState struct {
	active bool
	x, y   int
}

// Model is the bubbletea model of the interactive cube. Each frame runs in
// order: queued key presses, one engine tick, then View.
type Model struct {
	engine   *cubeviz.Engine
	view     View
	logger   log.Logger
	interval time.Duration

	lastFrame time.Time
	drag      dragState
	last      *cubeviz.Commit
	dropped   int
	status    string
	quitting  bool
}

// Option configures a Model.
type Option func(*Model)

// WithInterval sets the frame interval.
func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithView sets the initial viewpoint.
func WithView(v View) Option {
	return func(m *Model) {
		m.view = v
	}
}

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// New creates a model driving engine.
func New(engine *cubeviz.Engine, opts ...Option) *Model {
	m := &Model{
		engine:   engine,
		view:     NewView(),
		logger:   log.Discard(),
		interval: time.Second / 60,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.frameCmd()
}

func (m *Model) frameCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case frameMsg:
		m.advance(time.Time(msg))
		return m, m.frameCmd()
	}

	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return tea.Quit

	case "z":
		if !m.engine.Undo() {
			m.status = "nothing to undo"
			if m.engine.Busy() {
				m.status = "turn in progress"
			}
		}

	case "x":
		if m.engine.Reset() {
			m.last = nil
			m.status = "reset"
			m.logger.Infof("cube reset")
		}

	case "left":
		m.view = m.view.Turn(cubeviz.AxisY, cubeviz.Clockwise)
	case "right":
		m.view = m.view.Turn(cubeviz.AxisY, cubeviz.CounterClockwise)
	case "up":
		m.view = m.view.Turn(cubeviz.AxisX, cubeviz.CounterClockwise)
	case "down":
		m.view = m.view.Turn(cubeviz.AxisX, cubeviz.Clockwise)

	default:
		mv, ok := cubeviz.MoveForKey(key)
		if !ok {
			return nil
		}
		if !m.engine.Command(mv) {
			m.dropped++
			m.logger.WithField("move", mv.Notation()).Debugf("command dropped, turn in progress")
			return nil
		}
		m.status = ""
	}
	return nil
}

// handleMouse orbits the view while the left button is dragged.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.drag = dragState{active: true, x: msg.X, y: msg.Y}
		}

	case tea.MouseActionRelease:
		m.drag.active = false

	case tea.MouseActionMotion:
		if !m.drag.active {
			return
		}
		for msg.X-m.drag.x >= dragCols {
			m.view = m.view.Turn(cubeviz.AxisY, cubeviz.Clockwise)
			m.drag.x += dragCols
		}
		for m.drag.x-msg.X >= dragCols {
			m.view = m.view.Turn(cubeviz.AxisY, cubeviz.CounterClockwise)
			m.drag.x -= dragCols
		}
		for msg.Y-m.drag.y >= dragRows {
			m.view = m.view.Turn(cubeviz.AxisX, cubeviz.Clockwise)
			m.drag.y += dragRows
		}
		for m.drag.y-msg.Y >= dragRows {
			m.view = m.view.Turn(cubeviz.AxisX, cubeviz.CounterClockwise)
			m.drag.y -= dragRows
		}
	}
}

// advance runs one engine tick for the frame stamped t.
func (m *Model) advance(t time.Time) {
	dt := m.interval
	if !m.lastFrame.IsZero() {
		dt = t.Sub(m.lastFrame)
	}
	m.lastFrame = t

	if c, ok := m.engine.Tick(dt); ok {
		m.last = &c
		if m.engine.Cube().IsSolved() {
			m.status = "solved"
		}
	}
}

func (m *Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubeviz"))
	b.WriteString("\n\n")

	frame := m.engine.Frame()
	b.WriteString(renderNet(frame, m.view))
	b.WriteString("\n\n")

	b.WriteString(renderProgress(frame))
	b.WriteString("\n")

	moves := m.engine.Tracker().Moves()
	b.WriteString(fmt.Sprintf("Moves: %d  Speed: %.0f°/s", len(moves), m.engine.Speed()))
	if m.last != nil {
		label := m.last.Move.Notation()
		if m.last.Undo {
			label += " (undo)"
		}
		b.WriteString("  Last: " + moveStyle.Render(label))
	}
	if m.dropped > 0 {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  Ignored: %d", m.dropped)))
	}
	b.WriteString("\n")

	if len(moves) > 0 {
		start := 0
		prefix := ""
		if len(moves) > 20 {
			start = len(moves) - 20
			prefix = "... "
		}
		b.WriteString(statusStyle.Render(prefix + cubeviz.FormatMoves(moves[start:])))
		b.WriteString("\n")
	}

	if m.status == "solved" {
		b.WriteString(solvedStyle.Render("SOLVED!"))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("u d l r f b=turn  SHIFT=reverse  z=undo  x=reset  arrows/drag=view  q=quit"))
	b.WriteString("\n")

	return b.String()
}
