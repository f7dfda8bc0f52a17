package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstItemReducer(t *testing.T) {
	tests := []struct {
		name    string
		current int
		action  ItemAction
		want    int
	}{
		{"next by one", 0, NextItemAction(7, 1), 1},
		{"next by page", 3, NextItemAction(7, 3), 6},
		{"next clamps to limit", 6, NextItemAction(7, 3), 7},
		{"next at limit stays", 7, NextItemAction(7, 3), 7},
		{"prev by page", 6, PrevItemAction(0, 3), 3},
		{"prev clamps to zero", 2, PrevItemAction(0, 3), 0},
		{"prev at zero stays", 0, PrevItemAction(0, 1), 0},
		{"negative limit clamps to zero", 0, NextItemAction(-2, 1), 0},
		{"negative step is no move", 4, NextItemAction(9, -3), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstItemReducer(tt.current, tt.action))
		})
	}
}

func TestFirstItemReducerStaysInRange(t *testing.T) {
	for bound := -3; bound <= 12; bound++ {
		for current := 0; current <= max(bound, 0); current++ {
			for step := 0; step <= 5; step++ {
				next := FirstItemReducer(current, NextItemAction(bound, step))
				assert.GreaterOrEqual(t, next, current, "next must not move backward")
				assert.LessOrEqual(t, next, max(bound, 0))
				assert.Equal(t, min(current+step, max(bound, 0)), next)

				prev := FirstItemReducer(current, PrevItemAction(0, step))
				assert.LessOrEqual(t, prev, current, "prev must not move forward")
				assert.Equal(t, max(current-step, 0), prev)
			}
		}
	}
}
