package container

import "time"

// SetNow overrides the cache clock.
func (c *Cache) SetNow(now func() time.Time) { c.now = now }
