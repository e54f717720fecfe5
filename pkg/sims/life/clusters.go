package life

// CountClusters returns the number of 8-connected groups of live cells,
// wrapping across the board edges.
func (b *Board) CountClusters() int {
	return len(b.ClusterSizes())
}

// ClusterSizes returns the cell count of every cluster in the order the
// clusters are first reached by a row-major scan.
func (b *Board) ClusterSizes() []int {
	var sizes []int
	visited := make([]bool, len(b.cur))
	var stack []int
	for start, alive := range b.cur {
		if alive == 0 || visited[start] {
			continue
		}
		visited[start] = true
		stack = append(stack[:0], start)
		size := 0
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			for _, n := range b.topo.neighbors[idx] {
				if b.cur[n] == 1 && !visited[n] {
					visited[n] = true
					stack = append(stack, n)
				}
			}
		}
		sizes = append(sizes, size)
	}
	return sizes
}
