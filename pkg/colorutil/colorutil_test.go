package colorutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRGBToHSVPrimaries(t *testing.T) {
	h, s, v := RGBToHSV(255, 0, 0)
	require.InDelta(t, 0, h, 0.001)
	require.InDelta(t, 255, s, 0.001)
	require.InDelta(t, 255, v, 0.001)

	h, s, v = RGBToHSV(0, 255, 0)
	require.InDelta(t, 60, h, 0.001) // 120° on the OpenCV half scale
	require.InDelta(t, 255, s, 0.001)
	require.InDelta(t, 255, v, 0.001)

	h, s, v = RGBToHSV(0, 0, 255)
	require.InDelta(t, 120, h, 0.001)
	require.InDelta(t, 255, s, 0.001)
	require.InDelta(t, 255, v, 0.001)
}

func TestRGBToHSVGrayHasNoSaturation(t *testing.T) {
	h, s, v := RGBToHSV(128, 128, 128)
	require.Equal(t, 0.0, h)
	require.Equal(t, 0.0, s)
	require.InDelta(t, 128, v, 0.001)
}

func TestRGBToHSVBlack(t *testing.T) {
	h, s, v := RGBToHSV(0, 0, 0)
	require.Equal(t, 0.0, h)
	require.Equal(t, 0.0, s)
	require.Equal(t, 0.0, v)
}

func TestRGBToHSVSkinTone(t *testing.T) {
	// A warm skin tone lands in the low-hue band the catalog targets.
	h, s, v := RGBToHSV(220, 170, 140)
	require.Greater(t, h, 0.0)
	require.Less(t, h, 30.0)
	require.Greater(t, s, 50.0)
	require.Greater(t, v, 150.0)
}

func TestRGBToGray(t *testing.T) {
	require.InDelta(t, 255, RGBToGray(255, 255, 255), 0.001)
	require.InDelta(t, 0, RGBToGray(0, 0, 0), 0.001)
	require.InDelta(t, 0.299*255, RGBToGray(255, 0, 0), 0.001)
	require.InDelta(t, 0.587*255, RGBToGray(0, 255, 0), 0.001)
	require.InDelta(t, 0.114*255, RGBToGray(0, 0, 255), 0.001)
}
