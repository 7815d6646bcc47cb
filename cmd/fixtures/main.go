package main

import (
	"flag"
	"log"

	"hyperdrive-backend/internal/fixtures"
)

func main() {
	var (
		outDir string
		seed   int64
	)
	flag.StringVar(&outDir, "out", "test_files", "directory to write fixture files into")
	flag.Int64Var(&seed, "seed", 42, "seed for the synthetic model weights")
	flag.Parse()

	log.Printf("generating fixture files in %s", outDir)

	summary, err := fixtures.Write(outDir, seed)
	if err != nil {
		log.Fatalf("error generating fixtures: %v", err)
	}

	log.Printf("model: %s (%d bytes)", summary.ModelPath, summary.ModelBytes)
	log.Printf("calibration: %s (%d bytes, %d samples)", summary.CalibrationPath, summary.CalibrationBytes, summary.Samples)
	log.Printf("done")
}
