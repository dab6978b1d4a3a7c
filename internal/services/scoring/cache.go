package scoring

// cacheKey identifies one (board, move) evaluation.
type cacheKey struct {
	board uint64
	row   int
	col   int
}

// moveCache is a bounded map with insertion-order eviction. Scoring is
// cheap, so the cache only needs to absorb the repeated evaluations a
// ranking pass makes against one board; plain FIFO is enough.
type moveCache struct {
	capacity int
	values   map[cacheKey]float64
	order    []cacheKey
}

func newMoveCache(capacity int) *moveCache {
	if capacity < 0 {
		capacity = 0
	}
	return &moveCache{
		capacity: capacity,
		values:   make(map[cacheKey]float64, capacity),
	}
}

func (c *moveCache) get(board uint64, row, col int) (float64, bool) {
	if c.capacity == 0 {
		return 0, false
	}
	v, ok := c.values[cacheKey{board: board, row: row, col: col}]
	return v, ok
}

func (c *moveCache) put(board uint64, row, col int, score float64) {
	if c.capacity == 0 {
		return
	}
	key := cacheKey{board: board, row: row, col: col}
	if _, ok := c.values[key]; ok {
		c.values[key] = score
		return
	}
	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.values, oldest)
	}
	c.values[key] = score
	c.order = append(c.order, key)
}

func (c *moveCache) len() int {
	return len(c.values)
}
