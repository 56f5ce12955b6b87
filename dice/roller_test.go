package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/W4RH4WK/ironcopper/dice"
	icerr "github.com/W4RH4WK/ironcopper/errors"
)

func newTestRoller(t *testing.T, seed int64) dice.Roller {
	t.Helper()

	roller, err := dice.NewRoller(&dice.Config{
		Source: dice.NewSource(seed),
	})
	require.NoError(t, err)
	return roller
}

func TestNewRoller_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  *dice.Config
	}{
		{name: "nil config", cfg: nil},
		{name: "missing source", cfg: &dice.Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dice.NewRoller(tt.cfg)
			require.Error(t, err)
			assert.True(t, icerr.IsInvalidArgument(err))
		})
	}
}

func TestRoller_RollD20_DrawCountAndReduction(t *testing.T) {
	tests := []struct {
		name      string
		advantage int
		wantDice  int
	}{
		{name: "plain roll", advantage: 0, wantDice: 1},
		{name: "advantage", advantage: 1, wantDice: 2},
		{name: "double advantage", advantage: 2, wantDice: 3},
		{name: "disadvantage", advantage: -1, wantDice: 2},
		{name: "triple disadvantage", advantage: -3, wantDice: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := newTestRoller(t, 7)

			for i := 0; i < 50; i++ {
				result, err := roller.RollD20(tt.advantage)
				require.NoError(t, err)

				assert.Len(t, result.Rolls, tt.wantDice)
				for _, face := range result.Rolls {
					assert.GreaterOrEqual(t, face, 1)
					assert.LessOrEqual(t, face, 20)
				}

				want := result.Rolls[0]
				for _, face := range result.Rolls[1:] {
					if tt.advantage > 0 && face > want {
						want = face
					}
					if tt.advantage < 0 && face < want {
						want = face
					}
				}
				assert.Equal(t, want, result.Value)
				assert.Equal(t, tt.advantage, result.Advantage)
				assert.NotEmpty(t, result.ID)
			}
		})
	}
}

func TestRoller_RollD20_Reproducible(t *testing.T) {
	first := newTestRoller(t, 4242)
	second := newTestRoller(t, 4242)

	for i := 0; i < 50; i++ {
		a, err := first.RollD20(2)
		require.NoError(t, err)
		b, err := second.RollD20(2)
		require.NoError(t, err)

		assert.Equal(t, a.Rolls, b.Rolls, "roll %d diverged", i)
		assert.Equal(t, a.Value, b.Value)
	}
}

func TestRoller_RollD6_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		critical bool
		wantMin  int
		wantMax  int
	}{
		{name: "1d6", count: 1, wantMin: 1, wantMax: 6},
		{name: "3d6", count: 3, wantMin: 3, wantMax: 18},
		{name: "1d6 critical", count: 1, critical: true, wantMin: 7, wantMax: 12},
		{name: "3d6 critical", count: 3, critical: true, wantMin: 21, wantMax: 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := newTestRoller(t, 13)

			for i := 0; i < 50; i++ {
				result, err := roller.RollD6(tt.count, tt.critical)
				require.NoError(t, err)

				assert.Len(t, result.Rolls, tt.count)
				assert.GreaterOrEqual(t, result.Total, tt.wantMin)
				assert.LessOrEqual(t, result.Total, tt.wantMax)

				sum := 0
				for _, face := range result.Rolls {
					assert.GreaterOrEqual(t, face, 1)
					assert.LessOrEqual(t, face, 6)
					sum += face
				}
				if tt.critical {
					sum += 6 * tt.count
				}
				assert.Equal(t, sum, result.Total)
			}
		})
	}
}

func TestRoller_RollD6_InvalidCount(t *testing.T) {
	roller := newTestRoller(t, 1)

	for _, count := range []int{0, -1, -20} {
		_, err := roller.RollD6(count, false)
		require.Error(t, err, "count %d", count)
		assert.True(t, icerr.IsInvalidArgument(err))
	}
}

func TestRoller_RollIDs_Unique(t *testing.T) {
	roller := newTestRoller(t, 5)

	first, err := roller.RollD20(0)
	require.NoError(t, err)
	second, err := roller.RollD20(0)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
