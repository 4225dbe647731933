package phrases

// Bounds and default for the number of phrases a request may ask for.
const (
	MinCount     = 6
	MaxCount     = 20
	DefaultCount = 14
)

// ClampCount returns n limited to [MinCount, MaxCount].
func ClampCount(n int) int {
	return max(MinCount, min(MaxCount, n))
}
