package translate

// Cache maps normalized source text to translated text. Lookups never fail;
// absence is a normal outcome. Writes are best-effort: implementations
// backed by an unavailable store drop the write rather than erroring.
type Cache interface {
	Get(key string) (string, bool)
	Put(key, value string)
}

// MemoryCache is the run-scoped cache used when no persistent store is
// configured.
type MemoryCache map[string]string

func NewMemoryCache() MemoryCache {
	return make(MemoryCache)
}

func (c MemoryCache) Get(key string) (string, bool) {
	v, ok := c[key]
	return v, ok
}

// Put records a translation. The first write for a key wins; a stale
// duplicate later in the same batch never silently overwrites it.
func (c MemoryCache) Put(key, value string) {
	if _, ok := c[key]; ok {
		return
	}
	c[key] = value
}
