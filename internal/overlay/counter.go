package overlay

// Counter counts from 0 to Max inclusive and wraps back to 0.
type Counter struct {
	Value int
	Max   int
}

// Advance returns the counter one step on.
func (c Counter) Advance() Counter {
	next := c.Value + 1
	if next > c.Max {
		next = 0
	}
	return Counter{Value: next, Max: c.Max}
}

// In reports whether the value lies in [lo, hi].
func (c Counter) In(lo, hi int) bool {
	return c.Value >= lo && c.Value <= hi
}

// Every reports whether value+offset is a multiple of n.
func (c Counter) Every(n, offset int) bool {
	return (c.Value+offset)%n == 0
}
