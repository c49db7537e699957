// Package params holds the tunable analysis parameters for the
// deficiency-screening pipeline.
package params

import (
	"encoding/json"
	"fmt"
	"os"
)

// EdgeDetection tunes the Canny pass used for edge features.
type EdgeDetection struct {
	LowThreshold  float64 `json:"low_threshold"`  // Canny hysteresis low threshold
	HighThreshold float64 `json:"high_threshold"` // Canny hysteresis high threshold
	ApertureSize  int     `json:"aperture_size"`  // Sobel aperture, odd, 3-7
}

// TextureAnalysis tunes the block-wise texture sampling.
type TextureAnalysis struct {
	BlockSize int `json:"block_size"` // Tile edge length in pixels
}

// Params holds the scoring weights and feature-extraction tuning.
// ColorWeight and TextureWeight are expected to sum to 1.0; that is a
// catalog-authoring convention, not enforced here.
type Params struct {
	ColorWeight         float64         `json:"color_weight"`
	TextureWeight       float64         `json:"texture_weight"`
	ConfidenceThreshold float64         `json:"confidence_threshold"` // strict-exceeds cutoff
	TextureAnalysis     TextureAnalysis `json:"texture_analysis"`
	EdgeDetection       EdgeDetection   `json:"edge_detection"`
}

// Default returns the standard analysis parameters.
func Default() Params {
	return Params{
		ColorWeight:         0.6,
		TextureWeight:       0.4,
		ConfidenceThreshold: 0.3,
		TextureAnalysis: TextureAnalysis{
			BlockSize: 16,
		},
		EdgeDetection: EdgeDetection{
			LowThreshold:  50,
			HighThreshold: 150,
			ApertureSize:  3,
		},
	}
}

// WithWeights returns a copy of params with custom scoring weights.
func (p Params) WithWeights(colorWeight, textureWeight float64) Params {
	p.ColorWeight = colorWeight
	p.TextureWeight = textureWeight
	return p
}

// WithConfidenceThreshold returns a copy of params with a custom cutoff.
func (p Params) WithConfidenceThreshold(threshold float64) Params {
	p.ConfidenceThreshold = threshold
	return p
}

// WithBlockSize returns a copy of params with a custom texture tile size.
func (p Params) WithBlockSize(blockSize int) Params {
	p.TextureAnalysis.BlockSize = blockSize
	return p
}

// Validate reports configuration defects. Called once at load time so
// the scorer never sees malformed parameters.
func (p Params) Validate() error {
	if p.ColorWeight < 0 {
		return fmt.Errorf("color_weight must be >= 0, got %v", p.ColorWeight)
	}
	if p.TextureWeight < 0 {
		return fmt.Errorf("texture_weight must be >= 0, got %v", p.TextureWeight)
	}
	if p.ConfidenceThreshold < 0 || p.ConfidenceThreshold >= 1 {
		return fmt.Errorf("confidence_threshold must be in [0, 1), got %v", p.ConfidenceThreshold)
	}
	if p.TextureAnalysis.BlockSize < 1 {
		return fmt.Errorf("texture_analysis.block_size must be positive, got %d", p.TextureAnalysis.BlockSize)
	}
	if p.EdgeDetection.LowThreshold < 0 || p.EdgeDetection.HighThreshold < 0 {
		return fmt.Errorf("edge_detection thresholds must be >= 0, got low=%v high=%v",
			p.EdgeDetection.LowThreshold, p.EdgeDetection.HighThreshold)
	}
	if p.EdgeDetection.LowThreshold > p.EdgeDetection.HighThreshold {
		return fmt.Errorf("edge_detection.low_threshold %v exceeds high_threshold %v",
			p.EdgeDetection.LowThreshold, p.EdgeDetection.HighThreshold)
	}
	switch p.EdgeDetection.ApertureSize {
	case 3, 5, 7:
	default:
		return fmt.Errorf("edge_detection.aperture_size must be 3, 5 or 7, got %d", p.EdgeDetection.ApertureSize)
	}
	return nil
}

// Load reads parameters from a JSON file. Fields absent from the file
// keep their defaults.
func Load(path string) (Params, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("unmarshal params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("invalid params in %s: %w", path, err)
	}
	return p, nil
}

// Save writes the parameters to a JSON file.
func (p Params) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal params: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
