package card

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

// Canonical card resolution in pixels, matching a 2.5"x3.5" card at 300 DPI.
const (
	CanonicalWidth  = 750
	CanonicalHeight = 1050
)

// Normalize decodes every entry's source image, rotates landscape images to
// portrait, optionally rescales to the canonical resolution, and writes each
// result to a uniquely named temporary PNG next to its source. Duplicate
// entries get independent artifacts so each can be deleted after use.
//
// A decode or write failure aborts the run; artifacts already produced are
// removed best-effort before the error is returned.
func Normalize(deck []Entry, scale bool) ([]Entry, error) {
	rendered := make([]Entry, len(deck))
	for i, entry := range deck {
		path, err := normalizeOne(entry.Source, scale)
		if err != nil {
			RemoveArtifacts(rendered[:i])
			return nil, err
		}
		rendered[i] = Entry{Source: entry.Source, RenderPath: path}
	}
	return rendered, nil
}

// normalizeOne renders a single source image to a temporary artifact and
// returns the artifact path.
func normalizeOne(source string, scale bool) (string, error) {
	img, err := imaging.Open(source, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("error decoding image %s: %v", source, err)
	}

	// Clone to a uniform NRGBA representation, then force portrait.
	nrgba := imaging.Clone(img)
	if bounds := nrgba.Bounds(); bounds.Dx() > bounds.Dy() {
		nrgba = imaging.Rotate90(nrgba)
	}

	var final = nrgba
	if scale {
		resized := resize.Resize(CanonicalWidth, CanonicalHeight, nrgba, resize.Lanczos3)
		final = imaging.Clone(resized)
	}

	u := uuid.New()
	tempPath := fmt.Sprintf("%s_%x_temp.png", source, u[:3])
	if err := imaging.Save(final, tempPath); err != nil {
		return "", fmt.Errorf("error writing temp image %s: %v", tempPath, err)
	}

	return tempPath, nil
}

// RemoveArtifacts deletes the rendered temp files of the given entries,
// ignoring entries without one and any removal errors.
func RemoveArtifacts(entries []Entry) {
	for _, entry := range entries {
		if entry.RenderPath != "" {
			os.Remove(entry.RenderPath)
		}
	}
}
