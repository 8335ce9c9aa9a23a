package tui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jask/vacuumworld/internal/config"
	"github.com/jask/vacuumworld/internal/database/repository"
	"github.com/jask/vacuumworld/internal/search"
	"github.com/jask/vacuumworld/internal/service"
	"github.com/jask/vacuumworld/internal/world"
)

// App ties together the editor grid, the solver and the board library.
type App struct {
	ctx      context.Context
	cfg      config.Config
	boards   *repository.BoardRepo
	solver   *service.SolverService
	rng      *rand.Rand
	progress *search.Progress

	state  appState
	modal  modalState
	status string

	world      *world.World
	cursor     world.Position
	algoCursor int
	algorithms []string

	savedBoards []repository.Board
	boardCursor int
	inputBuffer string

	spin       spinner.Model
	lastRun    *service.SolveRun
	animStates []world.State
	animIndex  int
	animating  bool

	tickInterval time.Duration
	animInterval time.Duration
}

type appState string

const (
	viewEdit    appState = "edit"
	viewSolving appState = "solving"
	viewResult  appState = "result"
)

type modalState string

const (
	modalNone      modalState = ""
	modalSaveBoard modalState = "saveBoard"
	modalLoadBoard modalState = "loadBoard"
)

type (
	boardsMsg       []repository.Board
	statusMsg       string
	errMsg          struct{ err error }
	solveDoneMsg    struct {
		run service.SolveRun
		err error
	}
	progressTickMsg time.Time
	animTickMsg     time.Time
)

func New(ctx context.Context, cfg config.Config, boards *repository.BoardRepo, solver *service.SolverService) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle
	return &App{
		ctx:          ctx,
		cfg:          cfg,
		boards:       boards,
		solver:       solver,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		progress:     search.NewProgress(),
		state:        viewEdit,
		world:        world.New(cfg.World.GridSize),
		algorithms:   search.Names(),
		spin:         sp,
		tickInterval: time.Duration(cfg.UI.TickMs) * time.Millisecond,
		animInterval: time.Duration(cfg.UI.AnimationMs) * time.Millisecond,
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadBoards()
}

// commands

func (a *App) loadBoards() tea.Cmd {
	return func() tea.Msg {
		list, err := a.boards.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return boardsMsg(list)
	}
}

func (a *App) saveBoardCmd(name string) tea.Cmd {
	state := a.world.State()
	agent := state.Agent()
	b := repository.Board{
		ID:       uuid.NewString(),
		Name:     name,
		GridSize: a.world.GridSize(),
		AgentX:   agent.X,
		AgentY:   agent.Y,
		Dirt:     world.FormatPositions(state.Dirt()),
	}
	return func() tea.Msg {
		if err := a.boards.Save(a.ctx, b); err != nil {
			return errMsg{err}
		}
		return statusMsg(fmt.Sprintf("saved board %q", name))
	}
}

func (a *App) deleteBoardCmd(id, name string) tea.Cmd {
	return func() tea.Msg {
		if err := a.boards.Delete(a.ctx, id); err != nil {
			return errMsg{err}
		}
		return statusMsg(fmt.Sprintf("deleted board %q", name))
	}
}

func (a *App) solveCmd() tea.Cmd {
	// Snapshot everything before handing off to the worker goroutine; the
	// running search shares only the Progress handle with the UI.
	initial := a.world.State()
	gridSize := a.world.GridSize()
	algorithm := a.algorithms[a.algoCursor]
	prog := a.progress
	solver := a.solver
	return func() tea.Msg {
		run, err := solver.SolveState(initial, gridSize, algorithm, prog, true)
		return solveDoneMsg{run: run, err: err}
	}
}

func (a *App) progressTick() tea.Cmd {
	return tea.Tick(a.tickInterval, func(t time.Time) tea.Msg { return progressTickMsg(t) })
}

func (a *App) animTick() tea.Cmd {
	return tea.Tick(a.animInterval, func(t time.Time) tea.Msg { return animTickMsg(t) })
}

// update

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		switch a.state {
		case viewSolving:
			// the search is cooperative only; nothing to cancel from here
			if m.String() == "q" || m.String() == "ctrl+c" {
				return a, tea.Quit
			}
			return a, nil
		case viewResult:
			return a.handleResultKey(m)
		default:
			return a.handleEditKey(m)
		}

	case boardsMsg:
		a.savedBoards = []repository.Board(m)
		if a.boardCursor >= len(a.savedBoards) {
			a.boardCursor = 0
		}
	case statusMsg:
		a.status = string(m)
		return a, a.loadBoards()
	case errMsg:
		a.status = "error: " + m.err.Error()
	case solveDoneMsg:
		a.state = viewResult
		a.animating = false
		a.animStates = nil
		if m.err != nil {
			a.status = "error: " + m.err.Error()
			a.lastRun = nil
			return a, nil
		}
		run := m.run
		a.lastRun = &run
		a.status = ""
		return a, nil
	case progressTickMsg:
		if a.state == viewSolving {
			return a, a.progressTick()
		}
	case animTickMsg:
		if a.animating {
			if a.animIndex < len(a.animStates)-1 {
				a.animIndex++
				return a, a.animTick()
			}
			a.animating = false
			a.status = "animation finished"
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(m)
		if a.state == viewSolving {
			return a, cmd
		}
	}
	return a, nil
}

func (a *App) handleEditKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	size := a.world.GridSize()
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor.Y > 0 {
			a.cursor.Y--
		}
	case "down", "j":
		if a.cursor.Y < size-1 {
			a.cursor.Y++
		}
	case "left", "h":
		if a.cursor.X > 0 {
			a.cursor.X--
		}
	case "right", "l":
		if a.cursor.X < size-1 {
			a.cursor.X++
		}
	case " ", "d":
		a.world.ToggleDirt(a.cursor)
	case "a":
		a.world.SetAgent(a.cursor)
	case "r":
		a.world.RandomDirt(a.rng, a.cfg.World.DirtProbability)
		a.status = fmt.Sprintf("%d dirty cells", a.world.DirtCount())
	case "c":
		a.world.Reset()
		a.cursor = world.Position{}
		a.status = "board cleared"
	case "+", "=":
		a.resize(size + 1)
	case "-", "_":
		a.resize(size - 1)
	case "tab", "]":
		a.algoCursor = (a.algoCursor + 1) % len(a.algorithms)
	case "shift+tab", "[":
		a.algoCursor = (a.algoCursor - 1 + len(a.algorithms)) % len(a.algorithms)
	case "w":
		a.modal = modalSaveBoard
		a.inputBuffer = ""
	case "o":
		a.modal = modalLoadBoard
		if a.boardCursor >= len(a.savedBoards) {
			a.boardCursor = 0
		}
	case "enter", "s":
		a.state = viewSolving
		a.status = ""
		return a, tea.Batch(a.solveCmd(), a.progressTick(), a.spin.Tick)
	}
	return a, nil
}

func (a *App) handleResultKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc", "b":
		a.state = viewEdit
		a.animating = false
	case "p":
		if a.lastRun == nil || !a.lastRun.Result.Success {
			return a, nil
		}
		states, err := world.Replay(a.world.State(), a.lastRun.Result.Path, a.world.GridSize())
		if err != nil {
			// a path that does not replay means the solver and the world
			// disagree; surface it instead of papering over
			a.status = "replay error: " + err.Error()
			return a, nil
		}
		a.animStates = states
		a.animIndex = 0
		a.animating = true
		return a, a.animTick()
	case "e":
		if a.lastRun == nil || !a.lastRun.Result.Success {
			return a, nil
		}
		for _, action := range a.lastRun.Result.Path {
			a.world.Execute(action)
		}
		a.status = fmt.Sprintf("executed %d actions: cost %d, points %d", len(a.lastRun.Result.Path), a.world.TotalCost(), a.world.Points())
		a.state = viewEdit
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalSaveBoard:
		switch m.String() {
		case "esc":
			a.modal = modalNone
		case "enter":
			name := strings.TrimSpace(a.inputBuffer)
			a.modal = modalNone
			if name == "" {
				a.status = "board name empty, not saved"
				return a, nil
			}
			return a, a.saveBoardCmd(name)
		case "backspace":
			if len(a.inputBuffer) > 0 {
				a.inputBuffer = a.inputBuffer[:len(a.inputBuffer)-1]
			}
		default:
			if len(m.Runes) > 0 {
				a.inputBuffer += string(m.Runes)
			}
		}
	case modalLoadBoard:
		switch m.String() {
		case "esc":
			a.modal = modalNone
		case "up", "k":
			if a.boardCursor > 0 {
				a.boardCursor--
			}
		case "down", "j":
			if a.boardCursor < len(a.savedBoards)-1 {
				a.boardCursor++
			}
		case "x":
			if len(a.savedBoards) > 0 {
				b := a.savedBoards[a.boardCursor]
				return a, a.deleteBoardCmd(b.ID, b.Name)
			}
		case "enter":
			a.modal = modalNone
			if len(a.savedBoards) == 0 {
				return a, nil
			}
			b := a.savedBoards[a.boardCursor]
			dirt, err := world.ParsePositions(b.Dirt)
			if err != nil {
				a.status = "error: " + err.Error()
				return a, nil
			}
			a.world.Load(b.GridSize, world.Position{X: b.AgentX, Y: b.AgentY}, dirt)
			a.cursor = world.Position{}
			a.status = fmt.Sprintf("loaded board %q", b.Name)
		}
	}
	return a, nil
}

func (a *App) resize(size int) {
	a.world.Resize(size)
	if a.cursor.X >= a.world.GridSize() {
		a.cursor.X = a.world.GridSize() - 1
	}
	if a.cursor.Y >= a.world.GridSize() {
		a.cursor.Y = a.world.GridSize() - 1
	}
}

// view

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	gridStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	dirtStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	agentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

func (a *App) View() string {
	var body string
	switch a.state {
	case viewSolving:
		body = a.renderSolving()
	case viewResult:
		body = a.renderResult()
	default:
		body = a.renderEdit()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}
	if a.status != "" {
		body += "\n" + statusStyle.Render(a.status)
	}
	return body
}

func (a *App) renderEdit() string {
	title := titleStyle.Render("Vacuum World")
	grid := a.renderGrid(a.world.State(), &a.cursor)
	info := fmt.Sprintf("grid %dx%d  dirt %d  algorithm: %s",
		a.world.GridSize(), a.world.GridSize(), a.world.DirtCount(), a.algorithms[a.algoCursor])
	help := faintStyle.Render("[arrows] Move  [space] Toggle dirt  [a] Agent here  [r] Random  [c] Clear  [+/-] Resize\n[tab] Algorithm  [enter] Solve  [w] Save board  [o] Load board  [q] Quit")
	return fmt.Sprintf("%s\n%s\n%s\n%s", title, grid, info, help)
}

func (a *App) renderSolving() string {
	snap := a.progress.Snapshot()
	title := titleStyle.Render("Solving")
	line := fmt.Sprintf("%s %s  nodes %d  frontier %d  elapsed %s",
		a.spin.View(), snap.Algorithm, snap.NodesExplored, snap.FrontierSize, snap.Elapsed.Round(time.Millisecond))
	grid := a.renderGrid(a.world.State(), nil)
	return fmt.Sprintf("%s\n%s\n%s\n%s", title, grid, line, faintStyle.Render("[q] Quit"))
}

func (a *App) renderResult() string {
	title := titleStyle.Render("Result")
	if a.lastRun == nil {
		return title + "\n(no result)\n" + faintStyle.Render("[esc] Back  [q] Quit")
	}
	res := a.lastRun.Result

	display := a.world.State()
	if a.animating || len(a.animStates) > 0 {
		display = a.animStates[a.animIndex]
	}
	grid := a.renderGrid(display, nil)

	verdict := "no solution"
	if res.Success {
		verdict = fmt.Sprintf("%d steps", len(res.Path))
	}
	stats := fmt.Sprintf("%s: %s | nodes %d | frontier peak %d | %s",
		res.Algorithm, verdict, res.NodesExpanded, res.FrontierPeak, res.Duration.Round(time.Microsecond))
	if a.animating {
		stats += fmt.Sprintf("  (step %d/%d)", a.animIndex, len(a.animStates)-1)
	}
	help := faintStyle.Render("[p] Play  [e] Execute on board  [esc] Back  [q] Quit")
	return fmt.Sprintf("%s\n%s\n%s\n%s", title, grid, stats, help)
}

// renderGrid draws a state, marking the cursor cell when given.
func (a *App) renderGrid(s world.State, cursor *world.Position) string {
	size := a.world.GridSize()
	agent := s.Agent()
	var b strings.Builder
	for y := 0; y < size; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < size; x++ {
			p := world.Position{X: x, Y: y}
			cell := "·"
			style := faintStyle
			switch {
			case p == agent && s.HasDirt(p):
				cell = "@"
				style = dirtStyle
			case p == agent:
				cell = "@"
				style = agentStyle
			case s.HasDirt(p):
				cell = "▒"
				style = dirtStyle
			}
			if cursor != nil && *cursor == p {
				b.WriteString(cursorStyle.Render("[" + cell + "]"))
			} else {
				b.WriteString(" " + style.Render(cell) + " ")
			}
		}
	}
	return gridStyle.Render(b.String())
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalSaveBoard:
		return titleStyle.Render("Save board as") + fmt.Sprintf("\n%s\n%s", a.inputBuffer, faintStyle.Render("[enter] Save  [esc] Cancel"))
	case modalLoadBoard:
		out := titleStyle.Render("Load board") + "\n"
		if len(a.savedBoards) == 0 {
			return out + "(no saved boards)\n" + faintStyle.Render("[esc] Cancel")
		}
		for i, b := range a.savedBoards {
			marker := " "
			if i == a.boardCursor {
				marker = "▶"
			}
			out += fmt.Sprintf("%s %-20s %dx%d  %d dirt\n", marker, b.Name, b.GridSize, b.GridSize, countDirt(b.Dirt))
		}
		return out + faintStyle.Render("[enter] Load  [x] Delete  [esc] Cancel")
	default:
		return ""
	}
}

func countDirt(encoded string) int {
	ps, err := world.ParsePositions(encoded)
	if err != nil {
		return 0
	}
	return len(ps)
}

// Run starts the TUI and blocks until the user quits.
func Run(ctx context.Context, cfg config.Config, boards *repository.BoardRepo, solver *service.SolverService) error {
	p := tea.NewProgram(New(ctx, cfg, boards, solver), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
