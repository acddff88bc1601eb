package life

// evolve computes the next generation into the scratch buffer, commits it and
// returns the number of live cells in the new generation.
//
// Interior cells read three row slices directly; nothing in that loop checks
// coordinates. The ring is handled separately according to the border mode,
// which is the only place off-grid positions are resolved.
func (l *Life) evolve() int {
	g := l.grid
	w, h := g.w, g.h
	if w == 0 || h == 0 {
		return 0
	}
	cur, nxt := g.cells(), g.scratch()
	table := &l.table
	alive := 0

	for y := 1; y < h-1; y++ {
		up := cur[(y-1)*w : y*w]
		mid := cur[y*w : (y+1)*w]
		down := cur[(y+1)*w : (y+2)*w]
		out := nxt[y*w : (y+1)*w]
		_, _, _, _ = up[w-1], mid[w-1], down[w-1], out[w-1]
		for x := 1; x < w-1; x++ {
			n := up[x-1] + up[x] + up[x+1] +
				mid[x-1] + mid[x+1] +
				down[x-1] + down[x] + down[x+1]
			v := table[mid[x]<<4|n]
			out[x] = v
			alive += int(v)
		}
	}

	mode := l.border
	switch {
	case mode.Evolves():
		visitRing(w, h, func(i, x, y int) {
			v := table[cur[i]<<4|uint8(neighborsAt(cur, w, h, x, y, mode))]
			nxt[i] = v
			alive += int(v)
		})
	default:
		if c, ok := mode.Constant(); ok {
			v := uint8(c)
			visitRing(w, h, func(i, _, _ int) {
				nxt[i] = v
				alive += int(v)
			})
			break
		}
		visitRing(w, h, func(i, _, _ int) {
			nxt[i] = cur[i]
			alive += int(cur[i])
		})
	}

	g.swap()
	return alive
}

// visitRing calls fn once for every cell of the outermost ring with its
// linear index and coordinates. Degenerate grids (one row or one column) are
// visited without duplicates.
func visitRing(w, h int, fn func(i, x, y int)) {
	for x := 0; x < w; x++ {
		fn(x, x, 0)
	}
	if h > 1 {
		base := (h - 1) * w
		for x := 0; x < w; x++ {
			fn(base+x, x, h-1)
		}
	}
	for y := 1; y < h-1; y++ {
		fn(y*w, 0, y)
		if w > 1 {
			fn(y*w+w-1, w-1, y)
		}
	}
}

// ringSize returns how many cells visitRing visits.
func ringSize(w, h int) int {
	switch {
	case w == 0 || h == 0:
		return 0
	case w == 1:
		return h
	case h == 1:
		return w
	}
	return 2*w + 2*h - 4
}
