// Package fixtures writes sample files for manually exercising the upload
// flow: a synthetic model binary, a calibration dataset, and a metadata
// index. The model binary is an in-house mock format, not a real framework
// checkpoint; the backend never parses uploads, so only the shape matters.
package fixtures

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hyperdrive-backend/internal/genrand"
)

const (
	ModelFileName       = "model.bin"
	CalibrationFileName = "calibration_data.jsonl"
	MetadataFileName    = "metadata.json"

	modelMagic         = "HDRVMOCK"
	calibrationSamples = 100
)

// mockLayers defines the synthetic model's layers and their weight counts.
// Loosely mirrors a small conv net; the exact numbers are cosmetic.
var mockLayers = []struct {
	Name    string
	Weights int
}{
	{"conv1", 896},
	{"conv2", 18496},
	{"fc1", 4224},
	{"fc2", 1290},
}

type Summary struct {
	ModelPath        string
	ModelBytes       int64
	CalibrationPath  string
	CalibrationBytes int64
	Samples          int
}

// Write produces all fixture files under dir, creating it if needed. Output
// is deterministic for a given seed.
func Write(dir string, seed int64) (Summary, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Summary{}, fmt.Errorf("creating fixture dir: %w", err)
	}

	var summary Summary
	summary.Samples = calibrationSamples

	modelPath := filepath.Join(dir, ModelFileName)
	modelBytes, err := writeModel(modelPath, seed)
	if err != nil {
		return Summary{}, err
	}
	summary.ModelPath = modelPath
	summary.ModelBytes = modelBytes

	calibrationPath := filepath.Join(dir, CalibrationFileName)
	calibrationBytes, err := writeCalibration(calibrationPath)
	if err != nil {
		return Summary{}, err
	}
	summary.CalibrationPath = calibrationPath
	summary.CalibrationBytes = calibrationBytes

	if err := writeMetadata(filepath.Join(dir, MetadataFileName), summary); err != nil {
		return Summary{}, err
	}

	return summary, nil
}

// writeModel emits the mock model binary: magic, layer count, then per layer
// a length-prefixed name and float32 weights drawn from a seeded stream.
func writeModel(path string, seed int64) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating model file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	stream := genrand.NewStream(seed)

	if _, err := w.WriteString(modelMagic); err != nil {
		return 0, fmt.Errorf("writing model header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(mockLayers))); err != nil {
		return 0, fmt.Errorf("writing layer count: %w", err)
	}

	for _, layer := range mockLayers {
		if err := binary.Write(w, binary.LittleEndian, uint32(len(layer.Name))); err != nil {
			return 0, fmt.Errorf("writing layer %s: %w", layer.Name, err)
		}
		if _, err := w.WriteString(layer.Name); err != nil {
			return 0, fmt.Errorf("writing layer %s: %w", layer.Name, err)
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(layer.Weights)); err != nil {
			return 0, fmt.Errorf("writing layer %s: %w", layer.Name, err)
		}
		for i := 0; i < layer.Weights; i++ {
			weight := float32(stream.Float64()*2 - 1)
			if err := binary.Write(w, binary.LittleEndian, weight); err != nil {
				return 0, fmt.Errorf("writing layer %s weights: %w", layer.Name, err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("flushing model file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat model file: %w", err)
	}
	return info.Size(), nil
}

type inputSpec struct {
	Shape []int   `json:"shape"`
	Dtype string  `json:"dtype"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

type outputSpec struct {
	Shape []int  `json:"shape"`
	Dtype string `json:"dtype"`
	Class int    `json:"class"`
}

type calibrationSample struct {
	Id       string         `json:"id"`
	Input    inputSpec      `json:"input"`
	Output   outputSpec     `json:"output"`
	Metadata sampleMetadata `json:"metadata"`
}

type sampleMetadata struct {
	Dataset      string `json:"dataset"`
	Augmentation bool   `json:"augmentation"`
	Timestamp    string `json:"timestamp"`
}

// writeCalibration emits one JSON object per line; sample values derive from
// the index alone, so the file is identical on every run.
func writeCalibration(path string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating calibration file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for i := 0; i < calibrationSamples; i++ {
		sample := calibrationSample{
			Id: fmt.Sprintf("sample_%04d", i),
			Input: inputSpec{
				Shape: []int{1, 3, 32, 32},
				Dtype: "float32",
				Min:   -1.0 + float64(i%5)*0.1,
				Max:   1.0 - float64(i%5)*0.1,
			},
			Output: outputSpec{
				Shape: []int{1, 10},
				Dtype: "float32",
				Class: i % 10,
			},
			Metadata: sampleMetadata{
				Dataset:      "ImageNet",
				Augmentation: i%2 == 0,
				Timestamp:    fmt.Sprintf("2024-12-05T10:%02d:00Z", i%60),
			},
		}
		if err := enc.Encode(sample); err != nil {
			return 0, fmt.Errorf("writing calibration sample %d: %w", i, err)
		}
	}

	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("flushing calibration file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat calibration file: %w", err)
	}
	return info.Size(), nil
}

func writeMetadata(path string, summary Summary) error {
	metadata := map[string]any{
		"model": map[string]any{
			"name":       "hyperdrive-mock-net",
			"format":     "hdrv-mock-v1",
			"size_bytes": summary.ModelBytes,
			"path":       summary.ModelPath,
		},
		"calibration": map[string]any{
			"dataset":    "CIFAR-10",
			"samples":    summary.Samples,
			"size_bytes": summary.CalibrationBytes,
			"path":       summary.CalibrationPath,
		},
		"test_jobs": []map[string]string{
			{"job_id": "test-1", "name": "Quantization INT8"},
			{"job_id": "test-2", "name": "Pruning 50%"},
			{"job_id": "test-3", "name": "Distillation"},
		},
	}

	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing metadata file: %w", err)
	}
	return nil
}
