package debug

// Counter counts operations. Once Limit is reached the count restarts
// and Count reports a hit. A zero Limit never hits.
type Counter struct {
	Limit int

	count int
	total int
}

// Count one operation.
func (c *Counter) Count() (hit bool) {
	c.count++
	c.total++
	if c.Limit > 0 && c.count >= c.Limit {
		c.count = 0
		hit = true
	}
	return
}

// Pending is the count since the last hit.
func (c *Counter) Pending() int {
	return c.count
}

// Total operations since Reset.
func (c *Counter) Total() int {
	return c.total
}

func (c *Counter) Reset() {
	c.count = 0
	c.total = 0
}
