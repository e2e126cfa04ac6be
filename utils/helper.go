package utils

// Truncate shortens s to at most n runes, appending "..." when anything was
// cut off.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
