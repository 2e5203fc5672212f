package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/pyqdeck/pyqdeck-api/internal/config"
	"github.com/pyqdeck/pyqdeck-api/internal/extraction"
)

func main() {
	_ = godotenv.Load()
	config.Init()
	log := config.Logger()

	all := flag.Bool("all", false, "process every PDF in the input directory")
	file := flag.String("file", "", "process a single named PDF")
	flag.Parse()

	if os.Getenv("GEMINI_API_KEY") == "" {
		log.Fatal("GEMINI_API_KEY environment variable is required")
	}

	inputDir := config.GetEnv("EXAM_PAPERS_DIR", "exam papers")
	outputDir := config.GetEnv("EXTRACT_OUTPUT_DIR", filepath.Join("scripts", "extracted"))

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		log.Fatalf("failed to read input directory %s: %v", inputDir, err)
	}

	var pdfFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".pdf") {
			pdfFiles = append(pdfFiles, entry.Name())
		}
	}
	if len(pdfFiles) == 0 {
		log.Fatalf("no PDF files found in %s", inputDir)
	}
	log.Infof("found %d PDF files in %s", len(pdfFiles), inputDir)

	var filesToProcess []string
	switch {
	case *all:
		filesToProcess = pdfFiles
	case *file != "":
		for _, name := range pdfFiles {
			if name == *file {
				filesToProcess = []string{name}
				break
			}
		}
		if len(filesToProcess) == 0 {
			log.Errorf("file not found: %s", *file)
			log.Error("available files:")
			for _, name := range pdfFiles {
				log.Errorf("  - %s", name)
			}
			os.Exit(1)
		}
	default:
		// Smoke test: one file, so a bad prompt or credential fails fast
		// before anyone burns quota on a full run.
		filesToProcess = pdfFiles[:1]
		log.Info("no arguments provided, processing first file as a test")
		log.Info("use --all to process all files or --file <filename> for a specific file")
	}

	ctx := context.Background()

	provider, err := extraction.NewGeminiProvider(ctx)
	if err != nil {
		log.Fatalf("failed to initialize model provider: %v", err)
	}

	runner := extraction.NewRunner(extraction.NewExtractor(provider), inputDir, outputDir)
	summary := runner.Run(ctx, filesToProcess)

	log.Infof("output directory: %s", outputDir)
	if summary.Failed > 0 {
		log.Warnf("%d of %d files failed", summary.Failed, summary.Processed)
	}
}
