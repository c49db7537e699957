// Package match scores extracted image features against the reference
// catalog and ranks the matching deficiency profiles.
package match

import (
	"fmt"
	"image"
	"sort"

	"github.com/sirupsen/logrus"

	"vitascan/internal/catalog"
	"vitascan/internal/feature"
	"vitascan/internal/imaging"
	"vitascan/internal/logger"
	"vitascan/internal/params"
)

// Engine evaluates photos against a read-only catalog. It holds no
// per-call state, so one Engine may serve concurrent analyses.
type Engine struct {
	catalog *catalog.Catalog
	params  params.Params
}

// New builds an engine after validating the catalog and parameters, so
// configuration defects surface here rather than mid-scoring.
func New(cat *catalog.Catalog, p params.Params) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("nil catalog")
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}
	return &Engine{catalog: cat, params: p}, nil
}

// Params returns the engine's analysis parameters.
func (e *Engine) Params() params.Params {
	return e.params
}

// AnalyzeFile loads, decodes, and analyzes an image file. Read and
// decode failures come back as error reports rather than Go errors so
// batch callers can branch on the report status alone.
func (e *Engine) AnalyzeFile(path string) Report {
	img, err := imaging.Open(path)
	if err != nil {
		return errorReport(err.Error())
	}
	return e.AnalyzeImage(img)
}

// AnalyzeImage analyzes an already-decoded image. The image is not
// retained after the call returns.
func (e *Engine) AnalyzeImage(img image.Image) Report {
	views, err := imaging.NewViews(img)
	if err != nil {
		return errorReport(fmt.Sprintf("failed to prepare image: %v", err))
	}
	defer views.Close()
	return e.Analyze(views)
}

// Analyze extracts features from prepared views and ranks the catalog.
func (e *Engine) Analyze(views *imaging.Views) Report {
	bundle, err := feature.Extract(views, e.params)
	if err != nil {
		return errorReport(fmt.Sprintf("feature extraction failed: %v", err))
	}
	return e.Rank(bundle)
}

// Rank scores every catalog profile in order, keeps those strictly above
// the confidence threshold, and sorts them descending. Ties keep catalog
// order. Idempotent for a fixed bundle and catalog.
func (e *Engine) Rank(bundle *feature.Bundle) Report {
	findings := make([]Finding, 0, len(e.catalog.Profiles))
	for _, p := range e.catalog.Profiles {
		confidence := e.Score(bundle, p)
		logger.WithFields(logrus.Fields{
			"profile":    p.Name,
			"confidence": fmt.Sprintf("%.3f", confidence),
		}).Debug("scored profile")

		if confidence <= e.params.ConfidenceThreshold {
			continue
		}
		findings = append(findings, Finding{
			Vitamin:         p.Name,
			Confidence:      confidence,
			Description:     p.Description,
			Symptoms:        p.Symptoms,
			RiskFactors:     p.RiskFactors,
			Recommendations: e.catalog.RecommendationsFor(p.Name),
		})
	}

	if len(findings) == 0 {
		return noFindingsReport()
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Confidence > findings[j].Confidence
	})
	return findingsReport(findings)
}
