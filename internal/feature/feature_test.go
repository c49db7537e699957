package feature

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"vitascan/internal/imaging"
	"vitascan/internal/params"
)

func TestChannelStatsUniform(t *testing.T) {
	// Four pixels, all (10, 20, 30).
	data := []byte{10, 20, 30, 10, 20, 30, 10, 20, 30, 10, 20, 30}
	mean, std := channelStats(data, 3)
	require.Equal(t, [3]float64{10, 20, 30}, mean)
	require.Equal(t, [3]float64{0, 0, 0}, std)
}

func TestChannelStatsPopulationSemantics(t *testing.T) {
	// One channel alternating 0/255 over two pixels: population std is
	// half the range, not the sample estimate.
	data := []byte{0, 0, 0, 255, 0, 0}
	mean, std := channelStats(data, 3)
	require.InDelta(t, 127.5, mean[0], 1e-9)
	require.InDelta(t, 127.5, std[0], 1e-9)
	require.Equal(t, 0.0, std[1])
	require.Equal(t, 0.0, std[2])
}

func TestChannelStatsEmpty(t *testing.T) {
	mean, std := channelStats(nil, 3)
	require.Equal(t, [3]float64{}, mean)
	require.Equal(t, [3]float64{}, std)
}

func uniformGray(w, h int, v float64) []float64 {
	g := make([]float64, w*h)
	for i := range g {
		g[i] = v
	}
	return g
}

func TestBlockSamplesExactTiling(t *testing.T) {
	blocks := blockSamples(uniformGray(32, 16, 100), 32, 16, 16)
	require.Len(t, blocks, 2)
	for _, b := range blocks {
		require.Equal(t, 0.0, b.Variance)
		require.Equal(t, 0.0, b.StdDev)
	}
}

func TestBlockSamplesPartialTrailingTiles(t *testing.T) {
	// 20x18 with block 16 → 2 columns x 2 rows of tiles, three partial.
	blocks := blockSamples(uniformGray(20, 18, 7), 20, 18, 16)
	require.Len(t, blocks, 4)
}

func TestBlockSamplesSmallerThanOneBlock(t *testing.T) {
	blocks := blockSamples(uniformGray(5, 4, 1), 5, 4, 16)
	require.Len(t, blocks, 1)
}

func TestBlockSamplesRowMajorOrder(t *testing.T) {
	// 4x4 image, block 2: top-left tile is flat zero, the rest vary.
	gray := make([]float64, 16)
	for i := range gray {
		gray[i] = float64(i * 10)
	}
	for _, i := range []int{0, 1, 4, 5} {
		gray[i] = 0 // flatten the top-left tile
	}

	blocks := blockSamples(gray, 4, 4, 2)
	require.Len(t, blocks, 4)
	require.Equal(t, 0.0, blocks[0].Variance)
	require.Greater(t, blocks[1].Variance, 0.0)
	require.Greater(t, blocks[2].Variance, 0.0)
	require.Greater(t, blocks[3].Variance, 0.0)
}

func TestExtractUniformImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 24, 24))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = 220
		img.Pix[i+1] = 170
		img.Pix[i+2] = 140
		img.Pix[i+3] = 255
	}

	v, err := imaging.NewViews(img)
	require.NoError(t, err)
	defer v.Close()

	b, err := Extract(v, params.Default())
	require.NoError(t, err)

	// Degenerate uniform frame: zero variance, zero edges.
	require.Equal(t, 0.0, b.Texture.Variance)
	require.Equal(t, 0.0, b.Texture.StdDev)
	require.Equal(t, 0.0, b.Edges.Density)
	require.Equal(t, 0.0, b.Edges.MeanIntensity)

	require.Equal(t, [3]float64{220, 170, 140}, b.Color.MeanRGB)
	require.Equal(t, [3]float64{0, 0, 0}, b.Color.StdRGB)
	require.Equal(t, [3]float64{0, 0, 0}, b.Color.StdHSV)

	// 24/16 rounds up to 2 tiles per axis.
	require.Len(t, b.Texture.Blocks, 4)
}

func TestExtractNilViews(t *testing.T) {
	_, err := Extract(nil, params.Default())
	require.Error(t, err)
}
