// Package synth generates the deterministic synthetic datasets served to the
// frontend: per-layer sensitivity profiles and architecture graphs, both
// keyed on an opaque job identifier.
package synth

import (
	"fmt"
	"math"

	"hyperdrive-backend/internal/genrand"
	"hyperdrive-backend/pkg/api"
)

// SensitivitySeedMultiplier and GraphSeedMultiplier keep the two endpoints'
// streams decorrelated for the same identifier.
const (
	SensitivitySeedMultiplier = 1
	GraphSeedMultiplier       = 7
)

// Tuning constants for the sensitivity profile. The values are arbitrary;
// they only shape how the mock data looks when plotted.
const (
	minLayers        = 6
	maxLayers        = 12
	baseErrorScale   = 0.08
	spikeProbability = 0.08
	spikeErrorScale  = 0.4
)

var layerTypes = []string{"Conv", "Attn", "Dense", "LayerNorm"}

// Sensitivity returns per-layer error scores for a job identifier, in
// generation order. High errors are rare so the plot resembles a real
// sensitivity profile. Deterministic per identifier.
//
// The draw order per layer is fixed: type, base error, spike check, spike
// magnitude (only when the spike fires). Reordering any draw shifts every
// value after it, so additions must go after the existing draws.
func Sensitivity(jobID string) []api.SensitivityRecord {
	stream := genrand.NewStream(genrand.Seed(jobID, SensitivitySeedMultiplier))

	numLayers := stream.IntRange(minLayers, maxLayers)
	records := make([]api.SensitivityRecord, 0, numLayers)
	for i := 1; i <= numLayers; i++ {
		name := fmt.Sprintf("%s_%d", stream.Choice(layerTypes), i)

		base := stream.Float64() * baseErrorScale
		score := base
		if stream.Float64() < spikeProbability {
			score = base + stream.Float64()*spikeErrorScale
		}

		records = append(records, api.SensitivityRecord{Layer: name, Error: round3(score)})
	}
	return records
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
