package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/vacuumworld/internal/config"
	"github.com/jask/vacuumworld/internal/search"
	"github.com/jask/vacuumworld/internal/service"
	"github.com/jask/vacuumworld/internal/world"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Config{
		World: config.WorldConfig{GridSize: 3, DirtProbability: 0.3},
		UI:    config.UIConfig{TickMs: 10, AnimationMs: 10},
	}
	return New(context.Background(), cfg, nil, &service.SolverService{})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(a *App, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = a.Update(key(k))
	}
	return cmd
}

func TestEditCursorStaysOnGrid(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(a, "l", "l", "l", "l")
	require.Equal(t, world.Position{X: 2, Y: 0}, a.cursor)

	press(a, "j", "j", "j", "j")
	require.Equal(t, world.Position{X: 2, Y: 2}, a.cursor)

	press(a, "h", "h", "h", "k", "k", "k")
	require.Equal(t, world.Position{}, a.cursor)
}

func TestEditToggleDirtAndPlaceAgent(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(a, "l", "j", "d")
	require.True(t, a.world.HasDirt(world.Position{X: 1, Y: 1}))

	press(a, "d")
	require.False(t, a.world.HasDirt(world.Position{X: 1, Y: 1}))

	press(a, "d", "a")
	require.Equal(t, world.Position{X: 1, Y: 1}, a.world.Agent())
}

func TestEditResizeClampsCursor(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(a, "l", "l", "j", "j")
	require.Equal(t, world.Position{X: 2, Y: 2}, a.cursor)

	press(a, "-")
	require.Equal(t, 2, a.world.GridSize())
	require.Equal(t, world.Position{X: 1, Y: 1}, a.cursor)
}

func TestAlgorithmCycling(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	require.Equal(t, search.NameBFS, a.algorithms[a.algoCursor])

	press(a, "]")
	require.Equal(t, search.NameDFS, a.algorithms[a.algoCursor])

	press(a, "[", "[")
	require.Equal(t, search.NameNearest, a.algorithms[a.algoCursor])
}

func TestSolveKeyEntersSolvingView(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(a, "d") // something to clean
	cmd := press(a, "s")
	require.Equal(t, viewSolving, a.state)
	require.NotNil(t, cmd)
}

func TestSolveDoneShowsResult(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(a, "d")

	run, err := a.solver.SolveState(a.world.State(), a.world.GridSize(), search.NameBFS, nil, false)
	require.NoError(t, err)

	a.Update(solveDoneMsg{run: run})
	require.Equal(t, viewResult, a.state)
	require.NotNil(t, a.lastRun)

	view := a.View()
	require.Contains(t, view, "Result")
	require.Contains(t, view, "BFS")
}

func TestResultExecuteAppliesPath(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(a, "l", "d") // dirt at (1,0), agent at origin

	run, err := a.solver.SolveState(a.world.State(), a.world.GridSize(), search.NameBFS, nil, false)
	require.NoError(t, err)
	a.Update(solveDoneMsg{run: run})

	press(a, "e")
	require.Equal(t, viewEdit, a.state)
	require.Zero(t, a.world.DirtCount())
	require.Equal(t, len(run.Result.Path), a.world.TotalCost())
	require.Contains(t, a.status, "executed")
}

func TestSaveModalCollectsName(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(a, "w")
	require.Equal(t, modalSaveBoard, a.modal)

	press(a, "m", "a", "z", "e")
	require.Equal(t, "maze", a.inputBuffer)

	press(a, "esc")
	require.Equal(t, modalNone, a.modal)
}

func TestSaveModalRejectsEmptyName(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(a, "w")
	cmd := press(a, "enter")
	require.Nil(t, cmd)
	require.Equal(t, modalNone, a.modal)
	require.Contains(t, a.status, "not saved")
}

func TestEditViewRendersGrid(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(a, "l", "d")

	view := a.View()
	require.Contains(t, view, "Vacuum World")
	require.Contains(t, view, "@") // agent
	require.Contains(t, view, "▒") // dirt
	require.Equal(t, 1, strings.Count(view, "▒"))
}
