package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		wantAlive := neighbors == 2 || neighbors == 3
		if got := ApplyConwayRules(neighbors, true); got != wantAlive {
			t.Fatalf("alive cell with %d neighbors: expected %v, got %v", neighbors, wantAlive, got)
		}

		wantBorn := neighbors == 3
		if got := ApplyConwayRules(neighbors, false); got != wantBorn {
			t.Fatalf("dead cell with %d neighbors: expected %v, got %v", neighbors, wantBorn, got)
		}
	}
}
