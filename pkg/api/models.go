package api

type SensitivityRecord struct {
	Layer string  `json:"layer"`
	Error float64 `json:"error"`
}

type NodeData struct {
	Label string `json:"label"`
	Fused bool   `json:"fused"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type GraphNode struct {
	Id       string         `json:"id"`
	Data     NodeData       `json:"data"`
	Position Position       `json:"position"`
	Style    map[string]any `json:"style"`
}

type GraphEdge struct {
	Id       string `json:"id"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Animated bool   `json:"animated"`
}

type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

type HardwareOption struct {
	Name              string  `json:"name"`
	CostPerHour       float64 `json:"cost_per_hour"`
	ThroughputTokensS float64 `json:"throughput_tokens_s"`
}

type UploadedFileInfo struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

type UploadResponse struct {
	Status          string            `json:"status"`
	File            UploadedFileInfo  `json:"file"`
	CalibrationFile *UploadedFileInfo `json:"calibration_file"`
	Metadata        *string           `json:"metadata"`
}
