package catalog

import "vitascan/pkg/colorutil"

// RangesAroundRGB builds region ranges centered on a sampled RGB color.
// Useful when authoring profiles from example photos: the RGB bounds
// spread ±tolerance per channel and the HSV bounds are derived from the
// same color (hue tolerance halved to match the 0-180 OpenCV scale).
func RangesAroundRGB(r, g, b, tolerance float64) RegionRanges {
	h, s, v := colorutil.RGBToHSV(r, g, b)
	return RegionRanges{
		RGB: ColorRange{
			Min: [3]float64{clamp(r-tolerance, 0, 255), clamp(g-tolerance, 0, 255), clamp(b-tolerance, 0, 255)},
			Max: [3]float64{clamp(r+tolerance, 0, 255), clamp(g+tolerance, 0, 255), clamp(b+tolerance, 0, 255)},
		},
		HSV: ColorRange{
			Min: [3]float64{clamp(h-tolerance/2, 0, 180), clamp(s-tolerance, 0, 255), clamp(v-tolerance, 0, 255)},
			Max: [3]float64{clamp(h+tolerance/2, 0, 180), clamp(s+tolerance, 0, 255), clamp(v+tolerance, 0, 255)},
		},
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
