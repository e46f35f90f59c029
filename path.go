package levelmesh

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing. It starts a new contour.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current contour.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path made of one or more contours.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current contour
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current contour by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Transform returns a copy of the path with m applied to every point.
// Bezier curves are affine invariant, so transforming control points is exact.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Polygon adds a closed polygon through pts to the path.
// Fewer than two points add nothing.
func (p *Path) Polygon(pts ...Point) {
	if len(pts) < 2 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}

// Contours splits the path into its contours. Each contour starts at a
// MoveTo; elements before the first MoveTo are dropped.
func (p *Path) Contours() []Contour {
	if p == nil {
		return nil
	}
	var (
		contours []Contour
		cur      []PathElement
	)
	flush := func() {
		if len(cur) > 0 {
			contours = append(contours, Contour{Elements: cur})
		}
		cur = nil
	}
	for _, elem := range p.elements {
		switch elem.(type) {
		case MoveTo:
			flush()
			cur = append(cur, elem)
		case Close:
			if cur != nil {
				cur = append(cur, elem)
				flush()
			}
		default:
			if cur != nil {
				cur = append(cur, elem)
			}
		}
	}
	flush()
	return contours
}

// Bounds returns the bounding rectangle of every point of the path,
// control points included.
func (p *Path) Bounds() Rect {
	var r Rect
	if p == nil {
		return r
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			r = r.Extend(e.Point)
		case LineTo:
			r = r.Extend(e.Point)
		case QuadTo:
			r = r.Extend(e.Control).Extend(e.Point)
		case CubicTo:
			r = r.Extend(e.Control1).Extend(e.Control2).Extend(e.Point)
		}
	}
	return r
}

// Contour is one loop of a path: a MoveTo followed by segments, optionally
// terminated by Close.
type Contour struct {
	Elements []PathElement
}

// Anchors returns the ordered anchor points of the contour: the start point
// and every segment end point. Control points are not anchors. When the last
// anchor repeats the first, the duplicate is dropped.
func (c Contour) Anchors() []Point {
	pts := make([]Point, 0, len(c.Elements))
	for _, elem := range c.Elements {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case QuadTo:
			pts = append(pts, e.Point)
		case CubicTo:
			pts = append(pts, e.Point)
		}
	}
	if n := len(pts); n > 1 && pts[n-1] == pts[0] {
		pts = pts[:n-1]
	}
	return pts
}

// Closed reports whether the contour forms a loop, either through an
// explicit Close or by ending on its start point.
func (c Contour) Closed() bool {
	if len(c.Elements) == 0 {
		return false
	}
	if _, ok := c.Elements[len(c.Elements)-1].(Close); ok {
		return true
	}
	var start, end Point
	n := 0
	for _, elem := range c.Elements {
		switch e := elem.(type) {
		case MoveTo:
			start, end = e.Point, e.Point
		case LineTo:
			end = e.Point
		case QuadTo:
			end = e.Point
		case CubicTo:
			end = e.Point
		default:
			continue
		}
		n++
	}
	return n > 2 && start == end
}
