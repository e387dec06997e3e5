package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gradient/vec3"
)

func TestGradientCorners(t *testing.T) {
	cfg := Default()
	cfg.Width, cfg.Height = 64, 48

	img, err := Gradient(cfg)
	require.NoError(t, err)
	require.Equal(t, cfg.Width, img.Bounds().Dx())
	require.Equal(t, cfg.Height, img.Bounds().Dy())

	r, g, b := vec3.New(0, 0, 0.25).RGB()
	got := img.RGBAAt(0, 0)
	require.Equal(t, r, got.R)
	require.Equal(t, g, got.G)
	require.Equal(t, b, got.B)
	require.Equal(t, uint8(255), got.A)

	r, g, b = vec3.New(1, 1, 0.25).RGB()
	got = img.RGBAAt(cfg.Width-1, cfg.Height-1)
	require.Equal(t, r, got.R)
	require.Equal(t, g, got.G)
	require.Equal(t, b, got.B)
}

func TestGradientSinglePixel(t *testing.T) {
	cfg := Default()
	cfg.Width, cfg.Height = 1, 1

	img, err := Gradient(cfg)
	require.NoError(t, err)

	r, g, b := vec3.New(0, 0, 0.25).RGB()
	got := img.RGBAAt(0, 0)
	require.Equal(t, r, got.R)
	require.Equal(t, g, got.G)
	require.Equal(t, b, got.B)
}

func TestGradientRejectsEmptyImage(t *testing.T) {
	cfg := Default()
	cfg.Width = 0

	_, err := Gradient(cfg)
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yml")
	require.NoError(t, os.WriteFile(path, []byte("width: 320\nheight: 200\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 320, cfg.Width)
	require.Equal(t, 200, cfg.Height)
	// Fields absent from the file keep their defaults.
	require.Equal(t, Default().Output, cfg.Output)

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
		require.Error(t, err)
	})
}

func TestWritePNG(t *testing.T) {
	cfg := Default()
	cfg.Width, cfg.Height = 8, 8

	img, err := Gradient(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, WritePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())

	t.Run("unwritable path", func(t *testing.T) {
		err := WritePNG(filepath.Join(t.TempDir(), "no", "such", "dir.png"), img)
		require.Error(t, err)
	})
}
