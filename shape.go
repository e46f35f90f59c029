package levelmesh

// Stroke describes a shape outline. The outline color selects the wall
// region; Width is informational, walls are extruded from the contour
// itself.
type Stroke struct {
	Color RGBA
	Width float64
}

// FillRule decides which areas enclosed by overlapping or nested contours
// of one path are filled. The zero value is FillNonZero, the SVG default.
type FillRule int

const (
	// FillNonZero fills a point whose contours wind around it a non-zero
	// number of times, counting one orientation positive and the other
	// negative.
	FillNonZero FillRule = iota

	// FillEvenOdd fills a point enclosed by an odd number of contours,
	// whatever their orientation.
	FillEvenOdd
)

// Fills reports whether an area with the given winding number is inside.
func (r FillRule) Fills(winding int) bool {
	if r == FillEvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

// String returns the SVG fill-rule name.
func (r FillRule) String() string {
	if r == FillEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Shape is one drawable element of an illustration.
//
// Fill and Stroke are independent: a shape with a solid fill feeds a floor
// region, a shape with a stroke feeds a wall region, and a shape with both
// feeds one of each. FillRule applies to the fill only.
type Shape struct {
	Path     *Path
	Fill     Brush
	FillRule FillRule
	Stroke   *Stroke
}

// Node is a node of the illustration tree. Transform is local to the
// parent node; the zero Matrix is read as the identity.
type Node struct {
	Name      string
	Transform Matrix
	Shapes    []*Shape
	Children  []*Node
}

// NewNode creates a node with an identity transform.
func NewNode(name string) *Node {
	return &Node{Name: name, Transform: Identity()}
}

// AddShape appends a shape to the node and returns the node.
func (n *Node) AddShape(s *Shape) *Node {
	n.Shapes = append(n.Shapes, s)
	return n
}

// AddChild appends a child node and returns the parent.
func (n *Node) AddChild(c *Node) *Node {
	n.Children = append(n.Children, c)
	return n
}

// localTransform returns the node's transform, substituting the identity
// for an unset matrix.
func (n *Node) localTransform() Matrix {
	if n.Transform.isZero() {
		return Identity()
	}
	return n.Transform
}
