package synth

import (
	"fmt"
	"strings"

	"hyperdrive-backend/internal/genrand"
	"hyperdrive-backend/pkg/api"
)

// fusionProbability is the chance a Conv node is flagged as fused with a
// neighboring op. Arbitrary tuning value.
const fusionProbability = 0.25

// Node placement for a left-to-right flow layout. The y stagger alternates
// rows purely so edges stay visible; it carries no meaning.
const (
	nodeXStart   = 50
	nodeXGap     = 220
	nodeYStart   = 100
	nodeYStagger = 30
)

var architectureLabels = []string{"Input", "Conv_1", "Conv_2", "Pool", "Attn_1", "Dense", "Output"}

// Graph returns the toy architecture graph for a job identifier, shaped for
// a React Flow style renderer: a single chain over the fixed label catalog,
// with fusion flags randomized on the Conv nodes only. Deterministic per
// identifier.
//
// The fusion draw happens only for labels containing "Conv"; drawing for the
// other labels would shift the stream and change which nodes end up fused.
func Graph(jobID string) api.Graph {
	stream := genrand.NewStream(genrand.Seed(jobID, GraphSeedMultiplier))

	nodes := make([]api.GraphNode, 0, len(architectureLabels))
	edges := make([]api.GraphEdge, 0, len(architectureLabels)-1)
	for idx, label := range architectureLabels {
		fused := false
		if strings.Contains(label, "Conv") && stream.Float64() < fusionProbability {
			fused = true
		}

		nodes = append(nodes, api.GraphNode{
			Id:       fmt.Sprintf("n%d", idx),
			Data:     api.NodeData{Label: label, Fused: fused},
			Position: api.Position{X: nodeXStart + idx*nodeXGap, Y: nodeYStart + (idx%2)*nodeYStagger},
			Style:    map[string]any{},
		})
		if idx > 0 {
			edges = append(edges, api.GraphEdge{
				Id:     fmt.Sprintf("e%d", idx-1),
				Source: fmt.Sprintf("n%d", idx-1),
				Target: fmt.Sprintf("n%d", idx),
			})
		}
	}

	return api.Graph{Nodes: nodes, Edges: edges}
}
