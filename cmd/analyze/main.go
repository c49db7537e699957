// Command analyze screens a single photo against the deficiency catalog
// and prints the ranked findings.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"vitascan/internal/catalog"
	"vitascan/internal/logger"
	"vitascan/internal/match"
	"vitascan/internal/params"
	"vitascan/internal/version"
)

func main() {
	// .env is optional; flags override environment.
	_ = godotenv.Load()

	imagePath := flag.String("image", "", "Path to photo (JPEG, PNG, BMP, TIFF, or WebP)")
	catalogPath := flag.String("catalog", os.Getenv("VITASCAN_CATALOG"), "Path to catalog JSON (built-in when empty)")
	paramsPath := flag.String("params", os.Getenv("VITASCAN_PARAMS"), "Path to params JSON (defaults when empty)")
	asJSON := flag.Bool("json", false, "Emit the report as JSON")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	if *imagePath == "" {
		fmt.Println("Usage: analyze -image <path> [-catalog <path>] [-params <path>] [-json]")
		os.Exit(1)
	}

	engine, err := buildEngine(*catalogPath, *paramsPath)
	if err != nil {
		logger.WithField("error", err).Error("failed to configure engine")
		os.Exit(1)
	}

	report := engine.AnalyzeFile(*imagePath)

	if *asJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode report: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	} else {
		printReport(*imagePath, report)
	}

	if report.Status == match.StatusError {
		os.Exit(1)
	}
}

func buildEngine(catalogPath, paramsPath string) (*match.Engine, error) {
	cat := catalog.Default()
	if catalogPath != "" {
		loaded, err := catalog.Load(catalogPath)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		cat = loaded
	}

	p := params.Default()
	if paramsPath != "" {
		loaded, err := params.Load(paramsPath)
		if err != nil {
			return nil, fmt.Errorf("load params: %w", err)
		}
		p = loaded
	}

	return match.New(cat, p)
}

func printReport(path string, report match.Report) {
	fmt.Printf("Analyzed: %s\n", path)

	switch report.Status {
	case match.StatusError:
		fmt.Printf("Error: %s\n", report.Error)
	case match.StatusNoFindings:
		fmt.Println(report.Message)
	case match.StatusFindings:
		for _, f := range report.Findings {
			fmt.Printf("\n%s (confidence %.1f%%)\n", f.Vitamin, f.Confidence*100)
			if f.Description != "" {
				fmt.Printf("  %s\n", f.Description)
			}
			printList("Symptoms", f.Symptoms)
			printList("Risk factors", f.RiskFactors)
			printList("Recommendations", f.Recommendations)
		}
		fmt.Println("\nNote: this screening is advisory only; consult a healthcare provider for diagnosis.")
	}
}

func printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("  %s:\n", title)
	for _, item := range items {
		fmt.Printf("    - %s\n", item)
	}
}
