package encoding

import "sync"

// destinationClaims records the destinations being written by conversions
// of the current run. Two sources that map to one destination (a.flac and
// a.ogg both becoming a.mp3) never run their encoders at the same time.
type destinationClaims struct {
	mu      sync.Mutex
	claimed map[string]struct{}
}

func newDestinationClaims() *destinationClaims {
	return &destinationClaims{claimed: make(map[string]struct{})}
}

// claim reserves path and reports whether it was free.
func (c *destinationClaims) claim(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, held := c.claimed[path]; held {
		return false
	}
	c.claimed[path] = struct{}{}
	return true
}

func (c *destinationClaims) release(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.claimed, path)
}
