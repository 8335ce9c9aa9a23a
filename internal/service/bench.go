package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jask/vacuumworld/internal/database/repository"
	"github.com/jask/vacuumworld/internal/search"
	"github.com/jask/vacuumworld/internal/world"
)

// Scenario describes a headless bench run: a set of boards crossed with a
// set of algorithms under shared limits.
type Scenario struct {
	Boards     []BoardSpec `yaml:"boards"`
	Algorithms []string    `yaml:"algorithms"`
	Limits     LimitsSpec  `yaml:"limits"`
	Capture    bool        `yaml:"capture"`
}

// BoardSpec selects a board for the bench: either a saved board by name, or
// an inline/generated layout.
type BoardSpec struct {
	Name       string  `yaml:"name"`        // saved board name
	GridSize   int     `yaml:"grid_size"`   // inline board edge length
	Agent      string  `yaml:"agent"`       // "x,y", defaults to origin
	Dirt       string  `yaml:"dirt"`        // "x,y;x,y"
	RandomDirt float64 `yaml:"random_dirt"` // per-cell dirt probability
	Seed       int64   `yaml:"seed"`        // rng seed for random_dirt
}

// LimitsSpec is the YAML shape of search.Limits; durations are strings like
// "5s" so scenario files stay readable.
type LimitsSpec struct {
	MaxDuration string `yaml:"max_duration"`
	MaxNodes    int    `yaml:"max_nodes"`
	MaxDepth    int    `yaml:"max_depth"`
}

func (l LimitsSpec) limits() (search.Limits, error) {
	out := search.Limits{MaxNodes: l.MaxNodes, MaxDepth: l.MaxDepth}
	if l.MaxDuration != "" {
		d, err := time.ParseDuration(l.MaxDuration)
		if err != nil {
			return out, fmt.Errorf("limits.max_duration: %w", err)
		}
		out.MaxDuration = d
	}
	return out, nil
}

// BenchRow is one board x algorithm outcome.
type BenchRow struct {
	Board     string
	Algorithm string
	Success   bool
	Steps     int
	Nodes     int
	Frontier  int
	Duration  time.Duration
}

// BenchService runs scenario files and reports rows for the CSV writer.
type BenchService struct {
	Boards *repository.BoardRepo
	Logger *slog.Logger
}

// LoadScenario parses a YAML scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	if len(sc.Boards) == 0 {
		return Scenario{}, fmt.Errorf("scenario lists no boards")
	}
	if len(sc.Algorithms) == 0 {
		sc.Algorithms = search.Names()
	}
	return sc, nil
}

// Run executes every board x algorithm pair in order.
func (s *BenchService) Run(ctx context.Context, sc Scenario) ([]BenchRow, error) {
	limits, err := sc.Limits.limits()
	if err != nil {
		return nil, err
	}
	var rows []BenchRow
	for _, spec := range sc.Boards {
		label, initial, gridSize, err := s.resolveBoard(ctx, spec)
		if err != nil {
			return rows, err
		}
		for _, algorithm := range sc.Algorithms {
			result, err := search.Solve(algorithm, initial, gridSize, nil, search.Options{Limits: limits, Capture: sc.Capture})
			if err != nil {
				return rows, err
			}
			if s.Logger != nil {
				s.Logger.Info("bench run",
					"board", label,
					"algorithm", result.Algorithm,
					"success", result.Success,
					"nodes", result.NodesExpanded,
					"duration", result.Duration,
				)
			}
			rows = append(rows, BenchRow{
				Board:     label,
				Algorithm: result.Algorithm,
				Success:   result.Success,
				Steps:     len(result.Path),
				Nodes:     result.NodesExpanded,
				Frontier:  result.FrontierPeak,
				Duration:  result.Duration,
			})
		}
	}
	return rows, nil
}

// resolveBoard turns a spec into an initial state: saved boards win, then
// inline dirt, then random generation.
func (s *BenchService) resolveBoard(ctx context.Context, spec BoardSpec) (string, world.State, int, error) {
	if spec.Name != "" {
		if s.Boards == nil {
			return "", world.State{}, 0, fmt.Errorf("%w: %q (no board library attached)", ErrBoardNotFound, spec.Name)
		}
		board, err := s.Boards.GetByName(ctx, spec.Name)
		if err != nil {
			return "", world.State{}, 0, fmt.Errorf("load board %q: %w", spec.Name, err)
		}
		if board == nil {
			return "", world.State{}, 0, fmt.Errorf("%w: %q", ErrBoardNotFound, spec.Name)
		}
		initial, gridSize, err := BoardState(*board)
		return board.Name, initial, gridSize, err
	}

	gridSize := spec.GridSize
	if gridSize == 0 {
		gridSize = world.DefaultGridSize
	}
	agent := world.Position{}
	if spec.Agent != "" {
		ps, err := world.ParsePositions(spec.Agent)
		if err != nil || len(ps) != 1 {
			return "", world.State{}, 0, fmt.Errorf("bad agent %q", spec.Agent)
		}
		agent = ps[0]
		if !world.InBounds(agent, gridSize) {
			return "", world.State{}, 0, fmt.Errorf("agent %s outside %dx%d grid", agent, gridSize, gridSize)
		}
	}

	if spec.RandomDirt > 0 {
		w := world.New(gridSize)
		w.SetAgent(agent)
		w.RandomDirt(rand.New(rand.NewSource(spec.Seed)), spec.RandomDirt)
		label := "random-" + strconv.Itoa(gridSize) + "x" + strconv.Itoa(gridSize) + "-" + strconv.FormatInt(spec.Seed, 10)
		return label, w.State(), gridSize, nil
	}

	dirt, err := world.ParsePositions(spec.Dirt)
	if err != nil {
		return "", world.State{}, 0, err
	}
	state := world.NewState(agent, dirt)
	if err := world.ValidateState(state, gridSize); err != nil {
		return "", world.State{}, 0, err
	}
	label := "inline-" + strconv.Itoa(gridSize) + "x" + strconv.Itoa(gridSize)
	return label, state, gridSize, nil
}

// WriteCSV renders bench rows with a header line.
func WriteCSV(w io.Writer, rows []BenchRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"board", "algorithm", "success", "steps", "nodes", "frontier_peak", "duration_ms"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Board,
			r.Algorithm,
			strconv.FormatBool(r.Success),
			strconv.Itoa(r.Steps),
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.Frontier),
			strconv.FormatFloat(float64(r.Duration)/float64(time.Millisecond), 'f', 3, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
