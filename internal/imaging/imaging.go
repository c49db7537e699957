// Package imaging is the boundary between the filesystem and the
// analysis core: it validates and decodes photo files and derives the
// color-space views the feature extractor works on.
package imaging

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"
	"gocv.io/x/gocv"

	_ "golang.org/x/image/webp"
)

// Open validates and decodes an image file. Camera photos are
// auto-oriented from their EXIF tag so analysis always sees the frame
// upright. jpeg/png/gif/bmp/tiff are handled by the imaging decoder;
// webp registers through the blank import above.
func Open(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file does not exist: %s", path)
		}
		return nil, fmt.Errorf("file is not readable: %s: %w", path, err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("file is empty: %s", path)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// Views holds the derived color-space views of one decoded photo.
// All three Mats are owned by the Views and released by Close.
type Views struct {
	RGB  gocv.Mat // 8UC3, RGB channel order
	HSV  gocv.Mat // 8UC3, OpenCV HSV scale (H 0-180)
	Gray gocv.Mat // 8UC1 luminance
}

// NewViews converts a decoded image into the RGB, HSV, and gray views.
// The input image is not retained.
func NewViews(img image.Image) (*Views, error) {
	bgr, err := ToMat(img)
	if err != nil {
		return nil, err
	}
	defer bgr.Close()

	v := &Views{
		RGB:  gocv.NewMat(),
		HSV:  gocv.NewMat(),
		Gray: gocv.NewMat(),
	}
	gocv.CvtColor(bgr, &v.RGB, gocv.ColorBGRToRGB)
	gocv.CvtColor(bgr, &v.HSV, gocv.ColorBGRToHSV)
	gocv.CvtColor(v.RGB, &v.Gray, gocv.ColorRGBToGray)
	return v, nil
}

// Close releases the underlying Mats.
func (v *Views) Close() {
	v.RGB.Close()
	v.HSV.Close()
	v.Gray.Close()
}

// ToMat converts a decoded image to an 8UC3 BGR Mat (the OpenCV native
// channel order, matching what IMDecode would have produced).
func ToMat(img image.Image) (gocv.Mat, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width < 1 || height < 1 {
		return gocv.NewMat(), errors.New("empty image")
	}

	buf := make([]byte, width*height*3)

	switch src := img.(type) {
	case *image.NRGBA:
		// imaging.Open always yields NRGBA; walk the pixel buffer directly.
		for y := 0; y < height; y++ {
			row := src.Pix[y*src.Stride:]
			off := y * width * 3
			for x := 0; x < width; x++ {
				buf[off+x*3+0] = row[x*4+2] // B
				buf[off+x*3+1] = row[x*4+1] // G
				buf[off+x*3+2] = row[x*4+0] // R
			}
		}
	case *image.RGBA:
		for y := 0; y < height; y++ {
			row := src.Pix[y*src.Stride:]
			off := y * width * 3
			for x := 0; x < width; x++ {
				buf[off+x*3+0] = row[x*4+2]
				buf[off+x*3+1] = row[x*4+1]
				buf[off+x*3+2] = row[x*4+0]
			}
		}
	default:
		for y := 0; y < height; y++ {
			off := y * width * 3
			for x := 0; x < width; x++ {
				r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				buf[off+x*3+0] = uint8(b >> 8)
				buf[off+x*3+1] = uint8(g >> 8)
				buf[off+x*3+2] = uint8(r >> 8)
			}
		}
	}

	return gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC3, buf)
}
