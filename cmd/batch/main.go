// Command batch screens every photo in a directory and prints a
// per-file summary, counting errors and empty results separately.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"vitascan/internal/catalog"
	"vitascan/internal/logger"
	"vitascan/internal/match"
	"vitascan/internal/params"
	"vitascan/internal/version"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

func main() {
	_ = godotenv.Load()

	dir := flag.String("dir", "", "Directory of photos to screen")
	catalogPath := flag.String("catalog", os.Getenv("VITASCAN_CATALOG"), "Path to catalog JSON (built-in when empty)")
	paramsPath := flag.String("params", os.Getenv("VITASCAN_PARAMS"), "Path to params JSON (defaults when empty)")
	top := flag.Int("top", 3, "Max findings to print per image")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	if *dir == "" {
		fmt.Println("Usage: batch -dir <path> [-catalog <path>] [-params <path>] [-top 3]")
		os.Exit(1)
	}

	engine, err := buildEngine(*catalogPath, *paramsPath)
	if err != nil {
		logger.WithField("error", err).Error("failed to configure engine")
		os.Exit(1)
	}

	paths, err := listImages(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list %s: %v\n", *dir, err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Printf("No images found in %s\n", *dir)
		return
	}

	var found, empty, failed int
	for _, path := range paths {
		report := engine.AnalyzeFile(path)
		name := filepath.Base(path)

		switch report.Status {
		case match.StatusError:
			failed++
			fmt.Printf("%-40s ERROR: %s\n", name, report.Error)
		case match.StatusNoFindings:
			empty++
			fmt.Printf("%-40s no significant findings\n", name)
		case match.StatusFindings:
			found++
			labels := make([]string, 0, *top)
			for i, f := range report.Findings {
				if i >= *top {
					break
				}
				labels = append(labels, fmt.Sprintf("%s %.1f%%", f.Vitamin, f.Confidence*100))
			}
			fmt.Printf("%-40s %s\n", name, strings.Join(labels, ", "))
		}
	}

	fmt.Printf("\n%d images: %d with findings, %d clean, %d failed\n",
		len(paths), found, empty, failed)
	if failed > 0 {
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

func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
