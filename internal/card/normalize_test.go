package card

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

// writeImage creates a solid-color test image of the given pixel size.
func writeImage(t *testing.T, path string, w, h int) {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 0x80, G: 0x20, B: 0x20, A: 0xff})
	require.NoError(t, imaging.Save(img, path))
}

func TestNormalizeRotatesLandscape(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "wide.png")
	writeImage(t, src, 100, 60)

	rendered, err := Normalize([]Entry{{Source: src}}, false)
	require.NoError(t, err)
	require.Len(t, rendered, 1)
	defer RemoveArtifacts(rendered)

	out, err := imaging.Open(rendered[0].RenderPath)
	require.NoError(t, err)
	require.Equal(t, 60, out.Bounds().Dx())
	require.Equal(t, 100, out.Bounds().Dy())
}

func TestNormalizeKeepsPortrait(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tall.png")
	writeImage(t, src, 60, 100)

	rendered, err := Normalize([]Entry{{Source: src}}, false)
	require.NoError(t, err)
	defer RemoveArtifacts(rendered)

	out, err := imaging.Open(rendered[0].RenderPath)
	require.NoError(t, err)
	require.Equal(t, 60, out.Bounds().Dx())
	require.Equal(t, 100, out.Bounds().Dy())
}

func TestNormalizeScalesToCanonicalResolution(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tall.png")
	writeImage(t, src, 60, 100)

	rendered, err := Normalize([]Entry{{Source: src}}, true)
	require.NoError(t, err)
	defer RemoveArtifacts(rendered)

	out, err := imaging.Open(rendered[0].RenderPath)
	require.NoError(t, err)
	require.Equal(t, CanonicalWidth, out.Bounds().Dx())
	require.Equal(t, CanonicalHeight, out.Bounds().Dy())
}

func TestNormalizeDuplicatesGetDistinctArtifacts(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tall.png")
	writeImage(t, src, 60, 100)

	deck := []Entry{{Source: src}, {Source: src}, {Source: src}}
	rendered, err := Normalize(deck, false)
	require.NoError(t, err)
	defer RemoveArtifacts(rendered)

	seen := make(map[string]bool)
	for _, entry := range rendered {
		require.Equal(t, src, entry.Source)
		require.False(t, seen[entry.RenderPath], "artifact %s reused", entry.RenderPath)
		seen[entry.RenderPath] = true
		_, err := os.Stat(entry.RenderPath)
		require.NoError(t, err)
	}
}

func TestNormalizeDecodeFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "a-good.png")
	bad := filepath.Join(dir, "b-bad.png")
	writeImage(t, good, 60, 100)
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0644))

	_, err := Normalize([]Entry{{Source: good}, {Source: bad}}, false)
	require.Error(t, err)

	// The artifact rendered before the failure is cleaned up.
	leftovers, err := filepath.Glob(filepath.Join(dir, "*_temp.png"))
	require.NoError(t, err)
	require.Empty(t, leftovers)
}

func TestRemoveArtifacts(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tall.png")
	writeImage(t, src, 60, 100)

	rendered, err := Normalize([]Entry{{Source: src}}, false)
	require.NoError(t, err)

	RemoveArtifacts(rendered)
	_, err = os.Stat(rendered[0].RenderPath)
	require.True(t, os.IsNotExist(err))
}
