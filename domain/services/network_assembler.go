// Package services holds stateless domain services. The network
// assembler is the read-model core of the system: it turns the flat
// connection records for one viewer into the node/edge graph the
// rendering widget consumes.
package services

import (
	"math"

	"polyamgraph/domain/core/entities"
	"polyamgraph/domain/core/valueobjects"
)

// Layout constants for the initial placement. The rendering widget owns
// all movement after the first paint.
const (
	anchorX      = 400.0
	anchorY      = 300.0
	layoutRadius = 200.0
)

const (
	primaryEdgeWidth = 2
	metaEdgeWidth    = 1
	metaEdgeDash     = "5,5"
	edgeCurve        = "smoothstep"
	nodeKind         = "person"
)

// NetworkGraph is the renderable output: plain data, no behavior.
type NetworkGraph struct {
	Nodes []NetworkNode `json:"nodes"`
	Edges []NetworkEdge `json:"edges"`
}

// NetworkNode is one person in the rendered network
type NetworkNode struct {
	ID       string                `json:"id"`
	Type     string                `json:"type"`
	Position valueobjects.Position `json:"position"`
	Data     NetworkNodeData       `json:"data"`
}

// NetworkNodeData carries the profile snapshot behind a node
type NetworkNodeData struct {
	Profile       *entities.Profile `json:"profile"`
	IsCurrentUser bool              `json:"isCurrentUser"`
}

// NetworkEdge is one rendered link between two nodes
type NetworkEdge struct {
	ID     string    `json:"id"`
	Source string    `json:"source"`
	Target string    `json:"target"`
	Type   string    `json:"type"`
	Label  string    `json:"label"`
	Style  EdgeStyle `json:"style"`
}

// EdgeStyle holds the line styling for an edge
type EdgeStyle struct {
	Stroke          string `json:"stroke"`
	StrokeWidth     int    `json:"strokeWidth"`
	StrokeDasharray string `json:"strokeDasharray,omitempty"`
}

// AssembleNetwork builds the viewer-centric graph from raw connection
// records. It is pure and deterministic: the same input always yields
// the same node identities, positions and edge identities.
//
// Only accepted, visible connections are rendered. A connection whose
// far-side profile snapshot is missing is skipped entirely rather than
// reported as an error. A nil viewer yields an empty graph.
func AssembleNetwork(viewer *entities.Profile, connections []entities.Connection) *NetworkGraph {
	graph := &NetworkGraph{
		Nodes: []NetworkNode{},
		Edges: []NetworkEdge{},
	}

	if viewer == nil {
		return graph
	}

	graph.Nodes = append(graph.Nodes, NetworkNode{
		ID:       viewer.UserID,
		Type:     nodeKind,
		Position: valueobjects.NewPosition(anchorX, anchorY),
		Data: NetworkNodeData{
			Profile:       viewer,
			IsCurrentUser: true,
		},
	})

	// First-degree placement only considers the viewer's own records;
	// records between two other people feed the second-degree pass.
	visible := make([]entities.Connection, 0, len(connections))
	for _, c := range connections {
		if c.IsDisplayable() && c.Involves(viewer.UserID) {
			visible = append(visible, c)
		}
	}

	// The angular step divides the circle by the number of distinct
	// resolvable other-parties, so repeat connections to the same person
	// do not leave gaps in the ring.
	distinct := countDistinctOthers(viewer.UserID, visible)
	angleStep := 2 * math.Pi / math.Max(float64(distinct), 1)

	placed := map[string]bool{viewer.UserID: true}
	seen := 0

	for _, conn := range visible {
		other := conn.OtherProfile(viewer.UserID)
		if other == nil {
			// Join failed for this endpoint: no node, no edge.
			continue
		}

		if !placed[other.UserID] {
			angle := float64(seen) * angleStep
			graph.Nodes = append(graph.Nodes, NetworkNode{
				ID:   other.UserID,
				Type: nodeKind,
				Position: valueobjects.NewPosition(
					anchorX+layoutRadius*math.Cos(angle),
					anchorY+layoutRadius*math.Sin(angle),
				),
				Data: NetworkNodeData{
					Profile:       other,
					IsCurrentUser: false,
				},
			})
			placed[other.UserID] = true
			seen++
		}

		graph.Edges = append(graph.Edges, NetworkEdge{
			ID:     conn.ID,
			Source: conn.RequesterID,
			Target: conn.AddresseeID,
			Type:   edgeCurve,
			Label:  conn.RelationshipType.String(),
			Style: EdgeStyle{
				Stroke:      conn.RelationshipType.Color(),
				StrokeWidth: primaryEdgeWidth,
			},
		})
	}

	graph.Edges = append(graph.Edges, secondDegreeEdges(viewer.UserID, visible, connections)...)

	return graph
}

// secondDegreeEdges emits the dashed metamour-style edges: for each
// unordered pair of the viewer's visible connections, if the two far
// parties are themselves directly connected (accepted and visible,
// looked up in the full record list), a single dashed edge links them.
func secondDegreeEdges(viewerID string, visible, all []entities.Connection) []NetworkEdge {
	edges := []NetworkEdge{}
	emitted := map[string]bool{}

	for i := 0; i < len(visible); i++ {
		p1 := visible[i].OtherProfile(viewerID)
		if p1 == nil {
			continue
		}
		for j := i + 1; j < len(visible); j++ {
			p2 := visible[j].OtherProfile(viewerID)
			if p2 == nil || p1.UserID == p2.UserID {
				continue
			}

			mutual := findDisplayableBetween(all, p1.UserID, p2.UserID)
			if mutual == nil {
				continue
			}

			id := metaEdgeID(p1.UserID, p2.UserID)
			if emitted[id] {
				continue
			}
			emitted[id] = true

			edges = append(edges, NetworkEdge{
				ID:     id,
				Source: p1.UserID,
				Target: p2.UserID,
				Type:   edgeCurve,
				Label:  mutual.RelationshipType.String(),
				Style: EdgeStyle{
					Stroke:          mutual.RelationshipType.Color(),
					StrokeWidth:     metaEdgeWidth,
					StrokeDasharray: metaEdgeDash,
				},
			})
		}
	}

	return edges
}

// metaEdgeID derives the same identifier for a pair regardless of the
// order the endpoints are encountered in.
func metaEdgeID(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return "meta-" + a + "-" + b
}

func findDisplayableBetween(connections []entities.Connection, a, b string) *entities.Connection {
	for i := range connections {
		if connections[i].Between(a, b) && connections[i].IsDisplayable() {
			return &connections[i]
		}
	}
	return nil
}

func countDistinctOthers(viewerID string, visible []entities.Connection) int {
	ids := map[string]bool{}
	for _, c := range visible {
		if other := c.OtherProfile(viewerID); other != nil {
			ids[other.UserID] = true
		}
	}
	return len(ids)
}
