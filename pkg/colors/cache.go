package colors

// metric identifies a derived value stored in a Color's memo.
type metric int

const (
	metricHex metric = iota
	metricRgb
	metricLuminance
	metricBrightness
	metricClosestName
	metricGrayscale
)

// memo lazily stores derived values for a single Color.
//
// Every derived value depends on the full channel tuple, so there is no
// partial invalidation. memo is not safe for concurrent use.
type memo struct {
	values map[metric]any
}

// getOrCompute returns the stored value for key, computing and storing it on
// first request.
func (m *memo) getOrCompute(key metric, compute func() any) any {
	if v, ok := m.values[key]; ok {
		return v
	}
	if m.values == nil {
		m.values = make(map[metric]any)
	}
	v := compute()
	m.values[key] = v
	return v
}

// invalidateAll drops every stored value.
func (m *memo) invalidateAll() {
	m.values = nil
}

// cached returns the memoized value of key for c, computing it from c's
// channels on first request.
func cached[T any](c *Color, key metric, compute func(Channels) T) T {
	return c.cache.getOrCompute(key, func() any {
		return compute(c.ch)
	}).(T)
}
