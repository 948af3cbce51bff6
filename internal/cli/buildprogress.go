package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cubesolve/cubesolve/internal/heuristic"
	"github.com/cubesolve/cubesolve/internal/pdb"
)

// buildProgressMsg is sent on buildCh each time pdb.Build reports progress
// on one of its three tables.
type buildProgressMsg struct {
	depth, reached, size int
}

// buildDoneMsg carries the finished heuristic. pdb.Build never returns an
// error, so the message has no error field.
type buildDoneMsg struct {
	h *heuristic.Composite
}

// buildModel drives a bubbletea progress display while the three pattern
// databases build in the background: a background goroutine feeds typed
// messages over a channel, Update reacts to them, View renders the latest
// snapshot.
type buildModel struct {
	ch      chan tea.Msg
	depth   int
	reached int
	size    int
	done    bool
	result  *heuristic.Composite
}

func newBuildModel() *buildModel {
	return &buildModel{ch: make(chan tea.Msg, 64)}
}

func (m *buildModel) Init() tea.Cmd {
	go func() {
		h := heuristic.New(pdb.Build(func(depth, reached, size int) {
			m.ch <- buildProgressMsg{depth: depth, reached: reached, size: size}
		}))
		m.ch <- buildDoneMsg{h: h}
	}()
	return m.waitForMsg
}

func (m *buildModel) waitForMsg() tea.Msg {
	return <-m.ch
}

func (m *buildModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case buildProgressMsg:
		m.depth, m.reached, m.size = msg.depth, msg.reached, msg.size
		return m, m.waitForMsg
	case buildDoneMsg:
		m.done = true
		m.result = msg.h
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *buildModel) View() string {
	if m.done {
		return statusStyle.Render("Pattern databases ready.") + "\n"
	}
	pct := 0.0
	if m.size > 0 {
		pct = 100 * float64(m.reached) / float64(m.size)
	}
	return fmt.Sprintf("%s depth %d, %d/%d keys (%.0f%%)\n",
		titleStyle.Render("Building pattern databases..."), m.depth, m.reached, m.size, pct)
}

// buildHeuristic runs the bubbletea progress program to completion and
// returns the resulting composite heuristic.
func buildHeuristic() (*heuristic.Composite, error) {
	m := newBuildModel()
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("building pattern databases: %w", err)
	}
	bm := finalModel.(*buildModel)
	if bm.result == nil {
		return nil, fmt.Errorf("pattern database build did not complete")
	}
	return bm.result, nil
}
