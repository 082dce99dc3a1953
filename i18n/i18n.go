// Package i18n holds the UI string table. The app ships a single Arabic
// locale; lookups for unknown keys fall back to the key itself so a missing
// translation degrades to something readable instead of an empty label.
package i18n

// T returns the Arabic string for key, or the key itself when no
// translation exists.
func T(key string) string {
	if s, ok := ar[key]; ok {
		return s
	}
	return key
}
