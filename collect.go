package levelmesh

import "log/slog"

// ShapeEntry pairs a filled shape with its composed scene transform.
type ShapeEntry struct {
	Shape     *Shape
	Transform Matrix
}

// WallPath is a closed polygon loop in scene space, built from the anchor
// points of one stroked contour. The last point connects back to the first.
type WallPath struct {
	Points []Point
}

// minWallPoints is the smallest anchor count that encloses an area.
const minWallPoints = 3

// Extrudable reports whether the loop has enough points to form a wall.
func (w WallPath) Extrudable() bool {
	return len(w.Points) >= minWallPoints
}

// Collection is the output of Collect: shapes bucketed by fill color and
// wall loops bucketed by stroke color. Keys are kept in first-seen
// traversal order so that every run over the same tree emits regions in
// the same order.
type Collection struct {
	Floors map[ColorKey][]ShapeEntry
	Walls  map[ColorKey][]WallPath

	floorKeys []ColorKey
	wallKeys  []ColorKey
	bounds    Rect
}

func newCollection() *Collection {
	return &Collection{
		Floors: make(map[ColorKey][]ShapeEntry),
		Walls:  make(map[ColorKey][]WallPath),
	}
}

// FloorKeys returns the fill colors in first-seen order.
func (c *Collection) FloorKeys() []ColorKey {
	return c.floorKeys
}

// WallKeys returns the stroke colors in first-seen order.
func (c *Collection) WallKeys() []ColorKey {
	return c.wallKeys
}

// Bounds returns the scene-space bounding rectangle of every collected path.
func (c *Collection) Bounds() Rect {
	return c.bounds
}

// Empty reports whether nothing was collected.
func (c *Collection) Empty() bool {
	return len(c.Floors) == 0 && len(c.Walls) == 0
}

func (c *Collection) addFloor(key ColorKey, e ShapeEntry) {
	if _, ok := c.Floors[key]; !ok {
		c.floorKeys = append(c.floorKeys, key)
	}
	c.Floors[key] = append(c.Floors[key], e)
}

func (c *Collection) addWall(key ColorKey, w WallPath) {
	if _, ok := c.Walls[key]; !ok {
		c.wallKeys = append(c.wallKeys, key)
	}
	c.Walls[key] = append(c.Walls[key], w)
}

// Collect walks the illustration tree depth-first, composing node
// transforms from an identity root, and buckets solid fills into floor
// groups and closed stroked contours into wall groups.
//
// An empty tree yields an empty Collection. A nil root is a precondition
// violation and returns ErrNilTree.
func Collect(root *Node) (*Collection, error) {
	if root == nil {
		return nil, ErrNilTree
	}
	c := newCollection()
	c.visit(root, Identity())
	Logger().Debug("levelmesh: collected shapes",
		slog.Int("floorColors", len(c.Floors)),
		slog.Int("wallColors", len(c.Walls)))
	return c, nil
}

func (c *Collection) visit(n *Node, parent Matrix) {
	if n == nil {
		return
	}
	effective := Compose(parent, n.localTransform())

	for _, s := range n.Shapes {
		if s == nil {
			continue
		}
		c.collectShape(s, effective)
	}

	for _, child := range n.Children {
		c.visit(child, effective)
	}
}

func (c *Collection) collectShape(s *Shape, m Matrix) {
	contributed := false

	if col, ok := solidColor(s.Fill); ok {
		c.addFloor(KeyOf(col), ShapeEntry{Shape: s, Transform: m})
		contributed = true
	}

	if s.Stroke != nil && s.Path != nil {
		key := KeyOf(s.Stroke.Color)
		for _, contour := range s.Path.Contours() {
			if !contour.Closed() {
				continue
			}
			anchors := contour.Anchors()
			pts := make([]Point, len(anchors))
			for i, a := range anchors {
				pts[i] = m.TransformPoint(a)
			}
			c.addWall(key, WallPath{Points: pts})
			contributed = true
		}
	}

	if contributed && s.Path != nil {
		c.bounds = c.bounds.Union(s.Path.Transform(m).Bounds())
	}
}
