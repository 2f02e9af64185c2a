package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/deckforge/cardpress/internal/card"
)

// Emitter renders a deck to one or more PDF files. When MaxBytes is set and
// the full render exceeds it, the deck is split into sequential part files
// sized from the measured average bytes per card.
type Emitter struct {
	Geometry   Geometry
	OutputPath string
	MaxBytes   int64 // 0 disables splitting
	Scale      bool  // rescale cards to the canonical resolution
}

// Emit normalizes the deck once, measures a full render, and writes either a
// single file or the computed number of part files. It returns the paths
// written, in order. Temporary artifacts are deleted as their last use
// completes; on error the remaining ones are removed best-effort.
func (e *Emitter) Emit(deck []card.Entry) ([]string, error) {
	rendered, err := card.Normalize(deck, e.Scale)
	if err != nil {
		return nil, err
	}

	// Guards every early return below. Artifacts deleted on the happy paths
	// have their RenderPath cleared first, so this never double-removes.
	pending := rendered
	defer func() { card.RemoveArtifacts(pending) }()

	buf, err := renderPDF(rendered, e.Geometry)
	if err != nil {
		return nil, err
	}

	if e.MaxBytes == 0 || int64(len(buf)) <= e.MaxBytes {
		if err := os.WriteFile(e.OutputPath, buf, 0644); err != nil {
			return nil, fmt.Errorf("error writing %s: %v", e.OutputPath, err)
		}
		return []string{e.OutputPath}, nil
	}

	// The measuring render is discarded; the same temp artifacts are reused
	// for the per-part renders.
	perPart := cardsPerPart(int64(len(buf)), e.MaxBytes, len(rendered))
	var written []string
	for i, part := range partition(len(rendered), perPart) {
		chunk := rendered[part.start:part.end]
		buf, err := renderPDF(chunk, e.Geometry)
		if err != nil {
			return written, err
		}

		path := partPath(e.OutputPath, i+1)
		if err := os.WriteFile(path, buf, 0644); err != nil {
			return written, fmt.Errorf("error writing %s: %v", path, err)
		}
		written = append(written, path)

		card.RemoveArtifacts(chunk)
		for j := range chunk {
			chunk[j].RenderPath = ""
		}
	}

	return written, nil
}

// cardsPerPart derives the per-file card budget from the measured full-deck
// size. The average-based estimate is approximate; a part can still exceed
// the cap when per-card compressed sizes vary widely. Clamped to at least one
// card so a cap below a single card's size still terminates.
func cardsPerPart(measured, maxBytes int64, count int) int {
	avg := measured / int64(count)
	if avg == 0 {
		return count
	}
	per := int(maxBytes / avg)
	if per < 1 {
		per = 1
	}
	return per
}

// span is a half-open index range into the deck.
type span struct {
	start, end int
}

// partition slices n items into contiguous spans of the given size. The
// spans are exhaustive and non-overlapping; the last may be shorter.
func partition(n, size int) []span {
	var spans []span
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		spans = append(spans, span{start: start, end: end})
	}
	return spans
}

// partPath appends a 1-based part index before the output path's extension.
func partPath(output string, index int) string {
	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	return fmt.Sprintf("%s-part%d%s", base, index, ext)
}
