// Package scene holds the retained vector scene produced by the renderer and
// compiles it into draw commands for a presentation layer.
package scene

import "github.com/designspace/designspace/internal/geometry"

// NodeType is the kind of primitive a node draws.
type NodeType string

const (
	NodeGroup   NodeType = "group"
	NodePolygon NodeType = "polygon"
	NodeLine    NodeType = "line"
	NodeCircle  NodeType = "circle"
	NodeText    NodeType = "text"
	NodeHandle  NodeType = "handle"
	NodeRect    NodeType = "rect"
)

// Graph is the render-ready scene of a chart at a given scale.
type Graph struct {
	Width  float64
	Height float64

	// Placeholder is set instead of any nodes when there is nothing to draw.
	Placeholder string

	Patterns  []Pattern
	Root      *Node
	NodesByID map[string]*Node
}

// Pattern is a fill texture tile in user-space units.
type Pattern struct {
	ID       string
	Width    float64
	Height   float64
	Children []*Node
}

// Node is a resolved primitive with its style.
type Node struct {
	ID   string
	Type NodeType

	// Geometry. Points holds polygon vertices; From/To a line; Center and
	// Radius a circle or handle; Center a text anchor; Rect a rectangle.
	Points []geometry.Point
	From   geometry.Point
	To     geometry.Point
	Center geometry.Point
	Radius float64
	Rect   Rect

	Fill        string
	FillOpacity float64
	Opacity     float64
	Stroke      string
	StrokeWidth float64

	// Text.
	Text       string
	FontSize   float64
	FontWeight string
	HaloWidth  float64

	// Handle accessibility metadata.
	Handle *HandleInfo

	Transform geometry.Matrix2D
	Children  []*Node
}

// HandleInfo describes an interactive handle as a numeric range control.
type HandleInfo struct {
	DataPointIndex int    `json:"dataPointIndex"`
	DimensionID    int    `json:"dimensionId"`
	Label          string `json:"label"`
	Value          int    `json:"value"`
	Min            int    `json:"min"`
	Max            int    `json:"max"`
}

// Rect represents an axis-aligned box.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	RX     float64 `json:"rx,omitempty"`
}

// NewGraph creates an empty scene of the given size.
func NewGraph(width, height float64) *Graph {
	return &Graph{
		Width:     width,
		Height:    height,
		Root:      &Node{ID: "root", Type: NodeGroup, Transform: geometry.Identity()},
		NodesByID: make(map[string]*Node),
	}
}

// Empty reports whether the graph is a placeholder.
func (g *Graph) Empty() bool {
	return g.Placeholder != ""
}

// Add appends n to the root group and indexes it by id.
func (g *Graph) Add(n *Node) *Node {
	g.Root.Children = append(g.Root.Children, n)
	g.index(n)
	return n
}

func (g *Graph) index(n *Node) {
	if n.ID != "" {
		g.NodesByID[n.ID] = n
	}
	for _, c := range n.Children {
		g.index(c)
	}
}

// Count returns the number of nodes of type t, recursively.
func (g *Graph) Count(t NodeType) int {
	if g.Root == nil {
		return 0
	}
	return countNodes(g.Root, t)
}

func countNodes(n *Node, t NodeType) int {
	c := 0
	if n.Type == t {
		c++
	}
	for _, child := range n.Children {
		c += countNodes(child, t)
	}
	return c
}

// Nodes returns every node of type t in painter's order.
func (g *Graph) Nodes(t NodeType) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Type == t {
			out = append(out, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	if g.Root != nil {
		walk(g.Root)
	}
	return out
}
