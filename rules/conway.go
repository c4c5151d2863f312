package rules

/*
ApplyConwayRules decides whether a cell is alive in the next generation given
its current state and the number of living cells among its eight neighbors.

The rules are checked in order and the first match wins:
 1. a living cell with fewer than 2 neighbors dies (isolation)
 2. a living cell with more than 3 neighbors dies (overcrowding)
 3. a dead cell with exactly 3 neighbors comes alive (birth)
 4. otherwise the cell keeps its state
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && neighbors > 3:
		return false
	case !alive && neighbors == 3:
		return true
	default:
		return alive
	}
}
