package carousel

// ItemAction asks the reducer to move the first visible item.
type ItemAction struct {
	Direction Direction
	// Limit is the bound the result may not pass: 0 for Prev, and
	// childCount-visibleItems for Next.
	Limit int
	Step  int
}

// NextItemAction moves forward by step, stopping at limit.
func NextItemAction(limit, step int) ItemAction {
	return ItemAction{Direction: Next, Limit: limit, Step: step}
}

// PrevItemAction moves backward by step, stopping at limit.
func PrevItemAction(limit, step int) ItemAction {
	return ItemAction{Direction: Prev, Limit: limit, Step: step}
}

// FirstItemReducer returns the first visible item after applying action.
// Next never passes the limit, Prev never drops below it, and a negative
// limit (fewer children than visible slots) is treated as zero.
func FirstItemReducer(current int, action ItemAction) int {
	limit := max(action.Limit, 0)
	step := max(action.Step, 0)

	var next int
	switch action.Direction {
	case Prev:
		next = max(current-step, limit)
	default:
		next = min(current+step, limit)
	}
	return max(next, 0)
}
