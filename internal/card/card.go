package card

// Entry represents one physical card to print. Duplicate quantities of the
// same image produce multiple entries sharing a Source.
type Entry struct {
	Source     string // Path to the original image file
	RenderPath string // Path to the normalized temporary artifact, set by Normalize
}
