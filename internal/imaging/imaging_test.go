package imaging

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, dir string, c [3]uint8) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			i := y*img.Stride + x*4
			img.Pix[i+0] = c[0]
			img.Pix[i+1] = c[1]
			img.Pix[i+2] = c[2]
			img.Pix[i+3] = 255
		}
	}
	path := filepath.Join(dir, "test.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.jpg")
	_, err := Open(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
	require.Contains(t, err.Error(), path)
}

func TestOpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.jpg")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	_, err := Open(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty")
}

func TestOpenGarbageBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))
	_, err := Open(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode")
}

func TestOpenValidPNG(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), [3]uint8{200, 100, 50})
	img, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 8, img.Bounds().Dx())
	require.Equal(t, 6, img.Bounds().Dy())
}

func TestToMatChannelOrder(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	// Pixel 0: pure red. Pixel 1: pure blue.
	img.Pix[0], img.Pix[3] = 255, 255
	img.Pix[4+2], img.Pix[4+3] = 255, 255

	mat, err := ToMat(img)
	require.NoError(t, err)
	defer mat.Close()

	require.Equal(t, 1, mat.Rows())
	require.Equal(t, 2, mat.Cols())

	b := mat.ToBytes()
	// BGR order: red pixel is (0,0,255), blue pixel is (255,0,0).
	require.Equal(t, []byte{0, 0, 255, 255, 0, 0}, b)
}

func TestToMatRejectsEmptyImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	_, err := ToMat(img)
	require.Error(t, err)
}

func TestNewViewsUniformImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = 10
		img.Pix[i+1] = 20
		img.Pix[i+2] = 30
		img.Pix[i+3] = 255
	}

	v, err := NewViews(img)
	require.NoError(t, err)
	defer v.Close()

	require.Equal(t, 4, v.RGB.Rows())
	require.Equal(t, 4, v.HSV.Rows())
	require.Equal(t, 4, v.Gray.Rows())
	require.Equal(t, 1, v.Gray.Channels())

	rgb := v.RGB.ToBytes()
	require.Equal(t, byte(10), rgb[0])
	require.Equal(t, byte(20), rgb[1])
	require.Equal(t, byte(30), rgb[2])
}
