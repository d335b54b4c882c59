// Package viz renders interaction networks as Cytoscape.js data and
// standalone HTML pages.
package viz

import (
	"encoding/json"
	"fmt"

	"github.com/genomicmedlab/dgigo/internal/netgraph"
)

// CytoscapeElements is the Cytoscape.js elements payload.
type CytoscapeElements struct {
	Nodes []CytoscapeNode `json:"nodes"`
	Edges []CytoscapeEdge `json:"edges"`
}

// CytoscapeNode is a node element, optionally carrying preset coordinates.
type CytoscapeNode struct {
	Data     NodeData  `json:"data"`
	Position *Position `json:"position,omitempty"`
}

// NodeData contains the node data fields.
type NodeData struct {
	ID     string `json:"id"`
	Label  string `json:"label,omitempty"`
	IsGene *bool  `json:"isGene,omitempty"`
	Degree int    `json:"degree"`

	// Parent nests the node under a compound group node.
	Parent string `json:"parent,omitempty"`
}

// Position is a preset node coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CytoscapeEdge is an edge element.
type CytoscapeEdge struct {
	Data EdgeData `json:"data"`
}

// EdgeData contains the edge data fields.
type EdgeData struct {
	ID         string              `json:"id"`
	Source     string              `json:"source"`
	Target     string              `json:"target"`
	Approved   bool                `json:"approval"`
	Score      float64             `json:"score"`
	Attributes map[string][]string `json:"attributes,omitempty"`
	Sources    []string            `json:"sourcedata,omitempty"`
	PMIDs      []int               `json:"pmid,omitempty"`
}

// Elements converts an interaction network to Cytoscape.js elements.
// Grouped nodes gain a parent reference, and one compound node is emitted
// per distinct group so the renderer can draw neighbor-set clusters.
func Elements(g *netgraph.Graph) CytoscapeElements {
	elements := CytoscapeElements{
		Nodes: make([]CytoscapeNode, 0, len(g.Nodes)),
		Edges: make([]CytoscapeEdge, 0, len(g.Edges)),
	}

	var groups []string
	seenGroups := make(map[string]bool)
	for _, n := range g.Nodes {
		isGene := n.IsGene
		elements.Nodes = append(elements.Nodes, CytoscapeNode{
			Data: NodeData{
				ID:     n.ID,
				Label:  n.Label,
				IsGene: &isGene,
				Degree: n.Degree,
				Parent: n.Group,
			},
			Position: &Position{X: n.X, Y: n.Y},
		})

		if n.Group != "" && !seenGroups[n.Group] {
			seenGroups[n.Group] = true
			groups = append(groups, n.Group)
		}
	}

	for _, group := range groups {
		elements.Nodes = append(elements.Nodes, CytoscapeNode{Data: NodeData{ID: group}})
	}

	for _, e := range g.Edges {
		elements.Edges = append(elements.Edges, CytoscapeEdge{
			Data: EdgeData{
				ID:         e.ID,
				Source:     e.Source,
				Target:     e.Target,
				Approved:   e.Approved,
				Score:      e.Score,
				Attributes: e.Attributes,
				Sources:    e.Sources,
				PMIDs:      e.PMIDs,
			},
		})
	}

	return elements
}

// ToCytoscapeJSON converts an interaction network to Cytoscape.js JSON.
func ToCytoscapeJSON(g *netgraph.Graph) (string, error) {
	jsonBytes, err := json.Marshal(Elements(g))
	if err != nil {
		return "", fmt.Errorf("marshaling Cytoscape elements to JSON: %w", err)
	}
	return string(jsonBytes), nil
}
