// Package namecache remembers identifiers that already passed validation so
// repeated table, symbol and column names skip the per-rune scan.
package namecache

// Cache maps xxHash64 name IDs to the validated name string. The stored
// string is compared on lookup, so a hash collision can never let an
// unvalidated name through; it only costs a revalidation.
type Cache struct {
	names map[uint64]string
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		names: make(map[uint64]string),
	}
}

// Seen reports whether name was previously added under id.
// Returns false on a hash collision (same id, different stored name).
func (c *Cache) Seen(id uint64, name string) bool {
	stored, ok := c.names[id]

	return ok && stored == name
}

// Add records name under id. An existing entry with the same id is
// overwritten; the colliding name simply loses its cache slot.
func (c *Cache) Add(id uint64, name string) {
	c.names[id] = name
}

// Len returns the number of cached names.
func (c *Cache) Len() int {
	return len(c.names)
}
