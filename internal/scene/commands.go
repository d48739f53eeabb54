package scene

import (
	"encoding/json"

	"github.com/designspace/designspace/internal/geometry"
)

// DrawCommand represents a single drawing operation for the frontend to execute.
// The frontend receives a list of these in painter's order.
type DrawCommand struct {
	Op          string           `json:"op"`                    // "pattern", "path", "line", "circle", "rect", "text", "handle", "save", "restore"
	ID          string           `json:"id,omitempty"`          // Node or pattern id
	Transform   []float64        `json:"transform,omitempty"`   // [a, b, c, d, e, f] affine matrix
	Points      []geometry.Point `json:"points,omitempty"`      // Polygon vertices or line endpoints
	Center      *geometry.Point  `json:"center,omitempty"`      // Circle, handle or text anchor
	Radius      float64          `json:"radius,omitempty"`      // Circle or handle radius
	Rect        *Rect            `json:"rect,omitempty"`        // Rectangle or pattern tile
	Fill        string           `json:"fill,omitempty"`        // Fill color or url(#pattern)
	FillOpacity float64          `json:"fillOpacity,omitempty"` // Fill alpha
	Opacity     float64          `json:"opacity,omitempty"`     // Global alpha
	Stroke      string           `json:"stroke,omitempty"`      // Stroke color
	StrokeWidth float64          `json:"strokeWidth,omitempty"` // Stroke width
	Text        string           `json:"text,omitempty"`        // Label text
	FontSize    float64          `json:"fontSize,omitempty"`    // Label size
	FontWeight  string           `json:"fontWeight,omitempty"`  // Label weight
	HaloWidth   float64          `json:"haloWidth,omitempty"`   // Label outline behind the glyphs
	Handle      *HandleInfo      `json:"handle,omitempty"`      // Interactive handle metadata
	Children    []DrawCommand    `json:"children,omitempty"`    // Pattern tile contents
}

// Frame is the serialized form of a scene handed to the frontend.
type Frame struct {
	Width       float64       `json:"width"`
	Height      float64       `json:"height"`
	Placeholder string        `json:"placeholder,omitempty"`
	Commands    []DrawCommand `json:"commands"`
}

// CompileDrawCommands generates a draw command buffer from a scene graph.
// Pattern definitions come first, then nodes in painter's order.
func CompileDrawCommands(g *Graph) []DrawCommand {
	if g == nil || g.Empty() {
		return nil
	}

	var commands []DrawCommand
	for _, p := range g.Patterns {
		cmd := DrawCommand{
			Op:   "pattern",
			ID:   p.ID,
			Rect: &Rect{Width: p.Width, Height: p.Height},
		}
		for _, c := range p.Children {
			compileNode(c, &cmd.Children)
		}
		commands = append(commands, cmd)
	}
	if g.Root != nil {
		compileNode(g.Root, &commands)
	}
	return commands
}

// compileNode recursively generates draw commands for a node and its children.
func compileNode(n *Node, commands *[]DrawCommand) {
	if n == nil {
		return
	}

	transformed := n.Type == NodeGroup && !n.Transform.IsIdentity() && n.Transform != (geometry.Matrix2D{})
	if transformed {
		*commands = append(*commands, DrawCommand{Op: "save", Transform: n.Transform.ToSlice()})
	}

	cmd := DrawCommand{
		ID:          n.ID,
		Fill:        n.Fill,
		FillOpacity: n.FillOpacity,
		Opacity:     n.Opacity,
		Stroke:      n.Stroke,
		StrokeWidth: n.StrokeWidth,
	}
	switch n.Type {
	case NodePolygon:
		cmd.Op = "path"
		cmd.Points = n.Points
	case NodeLine:
		cmd.Op = "line"
		cmd.Points = []geometry.Point{n.From, n.To}
	case NodeCircle, NodeHandle:
		cmd.Op = string(n.Type)
		center := n.Center
		cmd.Center = &center
		cmd.Radius = n.Radius
		cmd.Handle = n.Handle
	case NodeRect:
		cmd.Op = "rect"
		r := n.Rect
		cmd.Rect = &r
	case NodeText:
		cmd.Op = "text"
		center := n.Center
		cmd.Center = &center
		cmd.Text = n.Text
		cmd.FontSize = n.FontSize
		cmd.FontWeight = n.FontWeight
		cmd.HaloWidth = n.HaloWidth
	}
	if cmd.Op != "" {
		*commands = append(*commands, cmd)
	}

	for _, child := range n.Children {
		compileNode(child, commands)
	}

	if transformed {
		*commands = append(*commands, DrawCommand{Op: "restore"})
	}
}

// Compile returns the frame for g.
func Compile(g *Graph) Frame {
	f := Frame{Commands: []DrawCommand{}}
	if g == nil {
		return f
	}
	f.Width, f.Height, f.Placeholder = g.Width, g.Height, g.Placeholder
	if cmds := CompileDrawCommands(g); cmds != nil {
		f.Commands = cmds
	}
	return f
}

// FrameToJSON serializes the frame for g.
func FrameToJSON(g *Graph) (string, error) {
	data, err := json.Marshal(Compile(g))
	if err != nil {
		return `{"commands":[]}`, err
	}
	return string(data), nil
}
