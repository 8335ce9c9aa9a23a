package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jask/vacuumworld/internal/database/repository"
	"github.com/jask/vacuumworld/internal/search"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScenario(t *testing.T) {
	t.Parallel()

	path := writeScenario(t, `
boards:
  - grid_size: 3
    agent: "1,1"
    dirt: "0,0;2,2"
algorithms: [BFS, "A*"]
limits:
  max_duration: 5s
  max_nodes: 10000
capture: true
`)

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	require.Len(t, sc.Boards, 1)
	require.Equal(t, []string{"BFS", "A*"}, sc.Algorithms)
	require.Equal(t, "5s", sc.Limits.MaxDuration)
	require.Equal(t, 10000, sc.Limits.MaxNodes)
	require.True(t, sc.Capture)
}

func TestLoadScenarioDefaultsToAllAlgorithms(t *testing.T) {
	t.Parallel()

	path := writeScenario(t, "boards:\n  - grid_size: 2\n    dirt: \"1,1\"\n")
	sc, err := LoadScenario(path)
	require.NoError(t, err)
	require.Equal(t, search.Names(), sc.Algorithms)
}

func TestLoadScenarioRejectsEmptyBoards(t *testing.T) {
	t.Parallel()

	path := writeScenario(t, "algorithms: [BFS]\n")
	_, err := LoadScenario(path)
	require.Error(t, err)
}

func TestBenchRunInlineBoards(t *testing.T) {
	t.Parallel()

	sc := Scenario{
		Boards: []BoardSpec{
			{GridSize: 2, Dirt: "1,1"},
			{GridSize: 3, Agent: "1,1", Dirt: "0,0;2,2"},
		},
		Algorithms: []string{search.NameBFS, search.NameNearest},
	}

	svc := &BenchService{}
	rows, err := svc.Run(context.Background(), sc)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	for _, row := range rows {
		require.True(t, row.Success, "%s on %s", row.Algorithm, row.Board)
		require.Positive(t, row.Steps)
	}
	require.Equal(t, "inline-2x2", rows[0].Board)
	require.Equal(t, search.NameBFS, rows[0].Algorithm)
	require.Equal(t, 3, rows[0].Steps)
}

func TestBenchRunRandomBoardIsSeeded(t *testing.T) {
	t.Parallel()

	sc := Scenario{
		Boards:     []BoardSpec{{GridSize: 4, RandomDirt: 0.5, Seed: 11}},
		Algorithms: []string{search.NameNearest},
	}

	svc := &BenchService{}
	first, err := svc.Run(context.Background(), sc)
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), sc)
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Equal(t, "random-4x4-11", first[0].Board)
	require.Equal(t, first[0].Steps, second[0].Steps)
	require.Equal(t, first[0].Nodes, second[0].Nodes)
}

func TestBenchRunSavedBoard(t *testing.T) {
	t.Parallel()

	boards, _, ctx := newTestLibrary(t)
	require.NoError(t, boards.Save(ctx, repository.Board{
		ID:       uuid.NewString(),
		Name:     "bench-board",
		GridSize: 3,
		Dirt:     "2,2",
	}))

	sc := Scenario{
		Boards:     []BoardSpec{{Name: "bench-board"}},
		Algorithms: []string{search.NameUCS},
	}
	svc := &BenchService{Boards: boards}
	rows, err := svc.Run(ctx, sc)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "bench-board", rows[0].Board)
	require.True(t, rows[0].Success)
}

func TestBenchRunMissingBoard(t *testing.T) {
	t.Parallel()

	sc := Scenario{
		Boards:     []BoardSpec{{Name: "ghost"}},
		Algorithms: []string{search.NameBFS},
	}

	// No library attached at all.
	svc := &BenchService{}
	_, err := svc.Run(context.Background(), sc)
	require.ErrorIs(t, err, ErrBoardNotFound)
}

func TestBenchRunRejectsOutOfBoundsBoards(t *testing.T) {
	t.Parallel()

	svc := &BenchService{}

	dirtOut := Scenario{
		Boards:     []BoardSpec{{GridSize: 3, Dirt: "9,9"}},
		Algorithms: []string{search.NameNearest},
	}
	_, err := svc.Run(context.Background(), dirtOut)
	require.Error(t, err)
	require.Contains(t, err.Error(), "dirt")

	agentOut := Scenario{
		Boards:     []BoardSpec{{GridSize: 3, Agent: "5,0", Dirt: "1,1"}},
		Algorithms: []string{search.NameNearest},
	}
	_, err = svc.Run(context.Background(), agentOut)
	require.Error(t, err)
	require.Contains(t, err.Error(), "agent")
}

func TestBenchRunBadLimits(t *testing.T) {
	t.Parallel()

	sc := Scenario{
		Boards: []BoardSpec{{GridSize: 2, Dirt: "1,1"}},
		Limits: LimitsSpec{MaxDuration: "soon"},
	}
	svc := &BenchService{}
	_, err := svc.Run(context.Background(), sc)
	require.Error(t, err)
	require.Contains(t, err.Error(), "max_duration")
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	rows := []BenchRow{
		{Board: "inline-2x2", Algorithm: "BFS", Success: true, Steps: 3, Nodes: 5, Frontier: 2, Duration: 1500 * time.Microsecond},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "board,algorithm,success,steps,nodes,frontier_peak,duration_ms", lines[0])
	require.Equal(t, "inline-2x2,BFS,true,3,5,2,1.500", lines[1])
}
