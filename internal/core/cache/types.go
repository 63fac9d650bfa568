package cache

// Type represents the type of cache.
type Type string

const (
	// TypeMemory represents an in-process LRU cache.
	TypeMemory Type = "memory"
	// TypeRedis represents a Redis cache.
	TypeRedis Type = "redis"
)

// IsValid reports whether t names a supported backend.
func (t Type) IsValid() bool {
	return t == TypeMemory || t == TypeRedis
}
