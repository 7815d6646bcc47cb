package synth

import "hyperdrive-backend/pkg/api"

var hardwareOptions = []api.HardwareOption{
	{Name: "cpu-small", CostPerHour: 0.10, ThroughputTokensS: 20},
	{Name: "cpu-large", CostPerHour: 0.50, ThroughputTokensS: 60},
	{Name: "gpu-v100", CostPerHour: 2.40, ThroughputTokensS: 400},
	{Name: "gpu-a10", CostPerHour: 1.80, ThroughputTokensS: 320},
	{Name: "tpu-small", CostPerHour: 3.20, ThroughputTokensS: 600},
	{Name: "edge-rt", CostPerHour: 0.75, ThroughputTokensS: 150},
}

// HardwareMatrix returns the static hardware catalog used for cost vs.
// throughput plots. Returned as a copy so callers cannot mutate the table.
func HardwareMatrix() []api.HardwareOption {
	out := make([]api.HardwareOption, len(hardwareOptions))
	copy(out, hardwareOptions)
	return out
}
