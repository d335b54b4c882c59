// Package netgraph builds gene-drug interaction networks from flattened
// query results.
package netgraph

import (
	"strings"

	"github.com/genomicmedlab/dgigo/internal/dgidb"
)

// Node is a gene or drug in the interaction network.
type Node struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	IsGene bool   `json:"isGene"`
	Degree int    `json:"degree"`

	// Group names the neighbor set for nodes opposite the search mode,
	// e.g. "Group: BRAF-EREG". Empty for nodes on the queried side.
	Group string `json:"group,omitempty"`

	// Layout coordinates, populated by SpringLayout.
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Edge is a drug-gene interaction between two nodes.
type Edge struct {
	ID         string              `json:"id"`
	Source     string              `json:"source"`
	Target     string              `json:"target"`
	Approved   bool                `json:"approval"`
	Score      float64             `json:"score"`
	Attributes map[string][]string `json:"attributes"`
	Sources    []string            `json:"sourcedata"`
	PMIDs      []int               `json:"pmid"`
}

// Graph is an undirected bipartite gene-drug interaction network. Node and
// edge order follows first appearance in the input rows.
type Graph struct {
	Mode  dgidb.SearchMode `json:"mode"`
	Nodes []*Node          `json:"nodes"`
	Edges []*Edge          `json:"edges"`

	byID      map[string]*Node
	neighbors map[string][]string
	edgeByKey map[string]*Edge
}

// New constructs an interaction network from flattened interaction rows.
// Queried terms with no matching interactions still get nodes in the
// partition matching the search mode.
func New(interactions []dgidb.Interaction, terms []string, mode dgidb.SearchMode) *Graph {
	g := &Graph{
		Mode:      mode,
		byID:      make(map[string]*Node),
		neighbors: make(map[string][]string),
		edgeByKey: make(map[string]*Edge),
	}

	matched := make(map[string]bool)
	for _, row := range interactions {
		if mode == dgidb.SearchGenes {
			matched[row.GeneName] = true
		} else {
			matched[row.DrugName] = true
		}
		g.addNode(row.GeneName, true)
		g.addNode(row.DrugName, false)
		g.addEdge(row)
	}

	for _, term := range terms {
		if !matched[term] {
			g.addNode(term, mode == dgidb.SearchGenes)
		}
	}

	g.annotate()
	return g
}

// NodeByID returns the node with the given ID, or nil.
func (g *Graph) NodeByID(id string) *Node {
	return g.byID[id]
}

// Neighbors returns the neighbor IDs of a node in insertion order.
func (g *Graph) Neighbors(id string) []string {
	return g.neighbors[id]
}

// EdgeBetween returns the edge connecting a gene and a drug, or nil.
func (g *Graph) EdgeBetween(geneName, drugName string) *Edge {
	return g.edgeByKey[edgeKey(geneName, drugName)]
}

// IsEmpty returns true if the graph has no nodes.
func (g *Graph) IsEmpty() bool {
	return len(g.Nodes) == 0
}

func (g *Graph) addNode(name string, isGene bool) *Node {
	if node, ok := g.byID[name]; ok {
		return node
	}
	node := &Node{ID: name, Label: name, IsGene: isGene}
	g.byID[name] = node
	g.Nodes = append(g.Nodes, node)
	return node
}

// addEdge records an interaction edge. Repeated (gene, drug) pairs update
// the existing edge in place rather than adding parallel edges.
func (g *Graph) addEdge(row dgidb.Interaction) {
	key := edgeKey(row.GeneName, row.DrugName)
	if edge, ok := g.edgeByKey[key]; ok {
		edge.Approved = row.DrugApproved
		edge.Score = row.Score
		edge.Attributes = row.Attributes
		edge.Sources = row.Sources
		edge.PMIDs = row.PMIDs
		return
	}

	edge := &Edge{
		ID:         row.GeneName + " - " + row.DrugName,
		Source:     row.GeneName,
		Target:     row.DrugName,
		Approved:   row.DrugApproved,
		Score:      row.Score,
		Attributes: row.Attributes,
		Sources:    row.Sources,
		PMIDs:      row.PMIDs,
	}
	g.edgeByKey[key] = edge
	g.Edges = append(g.Edges, edge)
	g.neighbors[row.GeneName] = append(g.neighbors[row.GeneName], row.DrugName)
	g.neighbors[row.DrugName] = append(g.neighbors[row.DrugName], row.GeneName)
}

// annotate fills in node degrees and neighbor-set group keys. Nodes on the
// side opposite the search mode are grouped by their neighbor set so the
// visualization can nest them under compound parents.
func (g *Graph) annotate() {
	for _, node := range g.Nodes {
		node.Degree = len(g.neighbors[node.ID])

		opposite := (g.Mode == dgidb.SearchGenes && !node.IsGene) ||
			(g.Mode == dgidb.SearchDrugs && node.IsGene)
		if opposite && node.Degree > 0 {
			node.Group = "Group: " + strings.Join(g.neighbors[node.ID], "-")
		}
	}
}

func edgeKey(geneName, drugName string) string {
	return geneName + "\x00" + drugName
}
