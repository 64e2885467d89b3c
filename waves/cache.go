package waves

// Cache memoizes one derived value until invalidated. It is the coherency
// point between parameter mutations and derived results: every mutation
// invalidates, every read goes through GetOrCompute. Instances are
// single-owner and not goroutine-safe.
type Cache[T any] struct {
	value T
	valid bool
}

// GetOrCompute returns the stored value when valid; otherwise it runs
// compute exactly once, stores the result, marks it valid, and returns it.
// A compute error is returned without being stored, leaving the cache
// invalid.
func (c *Cache[T]) GetOrCompute(compute func() (T, error)) (T, error) {
	if !c.valid {
		value, err := compute()
		if err != nil {
			var zero T
			return zero, err
		}
		c.value = value
		c.valid = true
	}
	return c.value, nil
}

// Invalidate unconditionally drops the stored value. Idempotent.
func (c *Cache[T]) Invalidate() {
	var zero T
	c.value = zero
	c.valid = false
}

// Valid reports whether GetOrCompute would return the stored value as-is
func (c *Cache[T]) Valid() bool {
	return c.valid
}
