package driven

// ConfigStore provides persistent key-value configuration.
type ConfigStore interface {
	// Get retrieves a value by key. Returns the value and whether it exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value. Returns "" if not found.
	GetString(key string) string

	// GetInt retrieves an integer value. Returns 0 if not found.
	GetInt(key string) int

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Keys returns all configured keys.
	Keys() []string
}
