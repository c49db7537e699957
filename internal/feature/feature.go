// Package feature derives the numeric descriptors the match engine
// scores: channel color statistics, global and block-wise gray texture,
// and Canny edge statistics.
package feature

import (
	"errors"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/stat"

	"vitascan/internal/imaging"
	"vitascan/internal/params"
)

// ColorFeatures holds per-channel mean and population standard deviation
// for the RGB and HSV views.
type ColorFeatures struct {
	MeanRGB [3]float64 `json:"mean_rgb"`
	StdRGB  [3]float64 `json:"std_rgb"`
	MeanHSV [3]float64 `json:"mean_hsv"`
	StdHSV  [3]float64 `json:"std_hsv"`
}

// BlockSample is the texture measurement of one gray tile.
type BlockSample struct {
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
}

// TextureFeatures holds the global gray statistics plus the row-major
// block samples. Only the global values feed the scorer; the blocks are
// exposed for callers that want localized texture data.
type TextureFeatures struct {
	Variance float64       `json:"variance"`
	StdDev   float64       `json:"std_dev"`
	Blocks   []BlockSample `json:"blocks"`
}

// EdgeFeatures holds whole-frame edge statistics from the Canny pass.
type EdgeFeatures struct {
	Density       float64 `json:"edge_density"`   // fraction of pixels marked as edges
	MeanIntensity float64 `json:"edge_intensity"` // mean of the edge map (0-255)
}

// Bundle groups every descriptor extracted from one photo. Immutable
// once produced.
type Bundle struct {
	Color   ColorFeatures   `json:"color"`
	Texture TextureFeatures `json:"texture"`
	Edges   EdgeFeatures    `json:"edges"`
}

// Extract computes the full feature bundle from the derived views.
func Extract(v *imaging.Views, p params.Params) (*Bundle, error) {
	if v == nil || v.Gray.Empty() {
		return nil, errors.New("empty image")
	}

	width := v.Gray.Cols()
	height := v.Gray.Rows()

	var b Bundle
	b.Color.MeanRGB, b.Color.StdRGB = channelStats(v.RGB.ToBytes(), 3)
	b.Color.MeanHSV, b.Color.StdHSV = channelStats(v.HSV.ToBytes(), 3)

	gray := bytesToFloats(v.Gray.ToBytes())
	b.Texture.Variance = stat.PopVariance(gray, nil)
	b.Texture.StdDev = stat.PopStdDev(gray, nil)
	b.Texture.Blocks = blockSamples(gray, width, height, p.TextureAnalysis.BlockSize)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(v.Gray, &edges, float32(p.EdgeDetection.LowThreshold), float32(p.EdgeDetection.HighThreshold))

	total := width * height
	b.Edges.Density = float64(gocv.CountNonZero(edges)) / float64(total)
	b.Edges.MeanIntensity = edges.Mean().Val1

	return &b, nil
}

// channelStats computes per-channel mean and population std over an
// interleaved 8-bit pixel buffer.
func channelStats(data []byte, channels int) (mean, std [3]float64) {
	if len(data) == 0 || channels < 1 {
		return mean, std
	}
	n := len(data) / channels
	planes := make([][]float64, channels)
	for c := range planes {
		planes[c] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		off := i * channels
		for c := 0; c < channels; c++ {
			planes[c][i] = float64(data[off+c])
		}
	}
	for c := 0; c < channels && c < 3; c++ {
		mean[c] = stat.Mean(planes[c], nil)
		std[c] = stat.PopStdDev(planes[c], nil)
	}
	return mean, std
}

// blockSamples partitions a gray buffer into blockSize×blockSize tiles
// and measures each. Trailing tiles shrink to the image edge; an image
// smaller than one block yields a single partial block. Order is
// row-major, top-to-bottom then left-to-right.
func blockSamples(gray []float64, width, height, blockSize int) []BlockSample {
	if blockSize < 1 || width < 1 || height < 1 {
		return nil
	}

	cols := (width + blockSize - 1) / blockSize
	rows := (height + blockSize - 1) / blockSize
	blocks := make([]BlockSample, 0, rows*cols)

	tile := make([]float64, 0, blockSize*blockSize)
	for y := 0; y < height; y += blockSize {
		y2 := y + blockSize
		if y2 > height {
			y2 = height
		}
		for x := 0; x < width; x += blockSize {
			x2 := x + blockSize
			if x2 > width {
				x2 = width
			}

			tile = tile[:0]
			for ty := y; ty < y2; ty++ {
				row := gray[ty*width:]
				tile = append(tile, row[x:x2]...)
			}
			blocks = append(blocks, BlockSample{
				Variance: stat.PopVariance(tile, nil),
				StdDev:   stat.PopStdDev(tile, nil),
			})
		}
	}
	return blocks
}

func bytesToFloats(data []byte) []float64 {
	out := make([]float64, len(data))
	for i, b := range data {
		out[i] = float64(b)
	}
	return out
}
