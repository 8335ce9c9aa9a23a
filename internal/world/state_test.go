package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateEqualityIgnoresDirtOrder(t *testing.T) {
	t.Parallel()

	a := NewState(Position{X: 1, Y: 1}, []Position{{X: 2, Y: 0}, {X: 0, Y: 2}})
	b := NewState(Position{X: 1, Y: 1}, []Position{{X: 0, Y: 2}, {X: 2, Y: 0}})

	require.True(t, a.Equal(b))
	require.Equal(t, a.Key(), b.Key())
}

func TestStateEqualityRequiresSameAgent(t *testing.T) {
	t.Parallel()

	a := NewState(Position{X: 0, Y: 0}, []Position{{X: 1, Y: 1}})
	b := NewState(Position{X: 1, Y: 0}, []Position{{X: 1, Y: 1}})

	require.False(t, a.Equal(b))
	require.NotEqual(t, a.Key(), b.Key())
}

func TestNewStateDeduplicatesDirt(t *testing.T) {
	t.Parallel()

	s := NewState(Position{}, []Position{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	require.Equal(t, 2, s.DirtCount())
	require.Equal(t, []Position{{X: 0, Y: 1}, {X: 1, Y: 1}}, s.Dirt())
}

func TestNewStateCopiesCallerSlice(t *testing.T) {
	t.Parallel()

	dirt := []Position{{X: 2, Y: 2}, {X: 1, Y: 1}}
	s := NewState(Position{}, dirt)
	dirt[0] = Position{X: 9, Y: 9}

	require.True(t, s.HasDirt(Position{X: 2, Y: 2}))
	require.False(t, s.HasDirt(Position{X: 9, Y: 9}))
}

func TestDirtReturnsCopy(t *testing.T) {
	t.Parallel()

	s := NewState(Position{}, []Position{{X: 1, Y: 0}})
	got := s.Dirt()
	got[0] = Position{X: 5, Y: 5}
	require.True(t, s.HasDirt(Position{X: 1, Y: 0}))
}

func TestIsGoal(t *testing.T) {
	t.Parallel()

	require.True(t, NewState(Position{X: 3, Y: 3}, nil).IsGoal())
	require.False(t, NewState(Position{}, []Position{{X: 0, Y: 0}}).IsGoal())
}

func TestValidateState(t *testing.T) {
	t.Parallel()

	ok := NewState(Position{X: 2, Y: 2}, []Position{{X: 0, Y: 0}, {X: 2, Y: 0}})
	require.NoError(t, ValidateState(ok, 3))

	badAgent := NewState(Position{X: 3, Y: 0}, nil)
	err := ValidateState(badAgent, 3)
	require.Error(t, err)
	require.Contains(t, err.Error(), "agent")

	badDirt := NewState(Position{X: 0, Y: 0}, []Position{{X: 9, Y: 9}})
	err = ValidateState(badDirt, 3)
	require.Error(t, err)
	require.Contains(t, err.Error(), "dirt")

	negative := NewState(Position{X: 0, Y: 0}, []Position{{X: -1, Y: 0}})
	require.Error(t, ValidateState(negative, 3))
}

func TestInBounds(t *testing.T) {
	t.Parallel()

	require.True(t, InBounds(Position{X: 0, Y: 0}, 3))
	require.True(t, InBounds(Position{X: 2, Y: 2}, 3))
	require.False(t, InBounds(Position{X: 3, Y: 0}, 3))
	require.False(t, InBounds(Position{X: 0, Y: -1}, 3))
}

func TestPositionEncodingRoundTrip(t *testing.T) {
	t.Parallel()

	ps := []Position{{X: 0, Y: 0}, {X: 4, Y: 2}, {X: 10, Y: 7}}
	encoded := FormatPositions(ps)
	require.Equal(t, "0,0;4,2;10,7", encoded)

	decoded, err := ParsePositions(encoded)
	require.NoError(t, err)
	require.Equal(t, ps, decoded)
}

func TestParsePositionsEmpty(t *testing.T) {
	t.Parallel()

	decoded, err := ParsePositions("")
	require.NoError(t, err)
	require.Empty(t, decoded)

	decoded, err = ParsePositions("   ")
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestParsePositionsRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"1", "1,2;3", "a,b", "1,2,3"} {
		_, err := ParsePositions(bad)
		require.Error(t, err, "input %q", bad)
	}
}
