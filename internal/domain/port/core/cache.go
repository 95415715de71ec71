package core

// Cache is a key/value store for fetched snapshots. Entries never expire on
// their own; they are overwritten or flushed.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Delete(key string)
	Flush()
	ItemCount() int
}
