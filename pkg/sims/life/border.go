package life

// resolveAxis maps a coordinate that may lie one step outside [0, n) back
// onto the grid for the evaluating modes. Coordinates already inside are
// returned unchanged.
func resolveAxis(mode BorderMode, v, n int) int {
	if v >= 0 && v < n {
		return v
	}
	switch mode {
	case Warp:
		v %= n
		if v < 0 {
			v += n
		}
		return v
	case Mirror:
		// Reflect across the edge cell: -1 reads 1, n reads n-2.
		if v < 0 {
			v = -v
		} else {
			v = 2*(n-1) - v
		}
		if v < 0 {
			return 0
		}
		if v >= n {
			return n - 1
		}
		return v
	}
	// Non-evaluating modes never read outside the grid.
	return v
}

// neighborsAt counts live neighbors of (x, y), resolving off-grid positions
// through the border mode. Only ring cells under Warp or Mirror come here;
// the interior goes through the unchecked row loop in step.go.
func neighborsAt(cur []uint8, w, h, x, y int, mode BorderMode) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := resolveAxis(mode, y+dy, h)
		row := cur[ny*w : ny*w+w]
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n += int(row[resolveAxis(mode, x+dx, w)])
		}
	}
	return n
}
