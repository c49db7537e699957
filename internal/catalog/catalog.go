// Package catalog holds the reference data the screening engine matches
// against: per-profile color ranges, texture descriptors, and the
// descriptive text attached to findings.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// PatternType classifies the expected gray-level texture of a profile.
type PatternType string

const (
	// PatternRough expects global variance above the roughness threshold.
	PatternRough PatternType = "rough"
	// PatternSmooth expects global variance below the roughness threshold.
	PatternSmooth PatternType = "smooth"
)

// ColorRange is an inclusive per-channel [min, max] bound.
type ColorRange struct {
	Min [3]float64 `json:"min"`
	Max [3]float64 `json:"max"`
}

// Contains reports whether every channel of v falls inside the range,
// bounds inclusive.
func (r ColorRange) Contains(v [3]float64) bool {
	for i := 0; i < 3; i++ {
		if v[i] < r.Min[i] || v[i] > r.Max[i] {
			return false
		}
	}
	return true
}

// RegionRanges holds the RGB and HSV target ranges for one image region.
// HSV values use the OpenCV scale (H 0-180, S/V 0-255).
type RegionRanges struct {
	RGB ColorRange `json:"rgb"`
	HSV ColorRange `json:"hsv"`
}

// TexturePattern describes the texture criteria for one profile.
type TexturePattern struct {
	PatternType    PatternType `json:"pattern_type"`
	RoughThreshold float64     `json:"rough_threshold"`  // gray variance pivot
	EdgeDensityMin float64     `json:"edge_density_min"` // edge boost cutoff
}

// Profile is one deficiency candidate: matching criteria plus the
// descriptive text copied verbatim into findings.
type Profile struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	ColorRanges map[string]RegionRanges `json:"color_ranges"` // keyed by region; "skin" is scored
	Texture     TexturePattern          `json:"texture_patterns"`
	Symptoms    []string                `json:"symptoms"`
	RiskFactors []string                `json:"risk_factors"`
}

// SkinRegion is the only region the scorer consults.
const SkinRegion = "skin"

// SkinRanges returns the profile's skin-region ranges, if defined.
func (p Profile) SkinRanges() (RegionRanges, bool) {
	r, ok := p.ColorRanges[SkinRegion]
	return r, ok
}

// Catalog is the full reference dataset. Profiles keeps its authored
// order; the engine iterates it in order so tie-broken results stay
// deterministic.
type Catalog struct {
	Profiles        []Profile           `json:"profiles"`
	Recommendations map[string][]string `json:"recommendations"`
}

// RecommendationsFor returns the dietary recommendations for a profile,
// or nil when none are configured.
func (c *Catalog) RecommendationsFor(name string) []string {
	return c.Recommendations[name]
}

// Validate reports configuration defects in the catalog. Run once at
// load time so scoring never has to handle malformed entries.
func (c *Catalog) Validate() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("catalog has no profiles")
	}
	seen := make(map[string]bool, len(c.Profiles))
	for i, p := range c.Profiles {
		if p.Name == "" {
			return fmt.Errorf("profile %d: missing name", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("profile %q: duplicate name", p.Name)
		}
		seen[p.Name] = true

		switch p.Texture.PatternType {
		case PatternRough, PatternSmooth:
		default:
			return fmt.Errorf("profile %q: pattern_type must be %q or %q, got %q",
				p.Name, PatternRough, PatternSmooth, p.Texture.PatternType)
		}
		if p.Texture.RoughThreshold < 0 {
			return fmt.Errorf("profile %q: rough_threshold must be >= 0, got %v", p.Name, p.Texture.RoughThreshold)
		}
		if p.Texture.EdgeDensityMin < 0 || p.Texture.EdgeDensityMin > 1 {
			return fmt.Errorf("profile %q: edge_density_min must be in [0, 1], got %v", p.Name, p.Texture.EdgeDensityMin)
		}

		for region, ranges := range p.ColorRanges {
			if err := validateRange(ranges.RGB); err != nil {
				return fmt.Errorf("profile %q: region %q rgb: %w", p.Name, region, err)
			}
			if err := validateRange(ranges.HSV); err != nil {
				return fmt.Errorf("profile %q: region %q hsv: %w", p.Name, region, err)
			}
		}
	}
	return nil
}

func validateRange(r ColorRange) error {
	for i := 0; i < 3; i++ {
		if r.Min[i] > r.Max[i] {
			return fmt.Errorf("channel %d: min %v exceeds max %v", i, r.Min[i], r.Max[i])
		}
	}
	return nil
}

// Load reads and validates a catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", path, err)
	}
	return &c, nil
}

// Save writes the catalog to a JSON file.
func (c *Catalog) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
