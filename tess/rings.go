package tess

import (
	"math"
	"sort"

	"github.com/appen-isen/levelmesh"
	"github.com/appen-isen/levelmesh/internal/path"
)

// weldEpsilon is the distance below which consecutive points are merged.
// poly2tri rejects repeated points.
const weldEpsilon = 1e-9

// ring is a closed polyline without a repeated closing point.
type ring []path.Point

// polygon is an outline with the holes directly inside it.
type polygon struct {
	outer ring
	holes []ring
}

// flattenPath converts every contour of p into a ring. Fill treats open
// contours as implicitly closed. Rings with fewer than three distinct points
// enclose nothing and are dropped.
func flattenPath(p *levelmesh.Path, f path.Flattener) []ring {
	var rings []ring
	for _, c := range p.Contours() {
		var (
			pts     []path.Point
			current path.Point
		)
		for _, elem := range c.Elements {
			switch e := elem.(type) {
			case levelmesh.MoveTo:
				current = pt(e.Point)
				pts = append(pts, current)
			case levelmesh.LineTo:
				current = pt(e.Point)
				pts = append(pts, current)
			case levelmesh.QuadTo:
				pts = f.AppendQuadratic(pts, current, pt(e.Control), pt(e.Point))
				current = pt(e.Point)
			case levelmesh.CubicTo:
				pts = f.AppendCubic(pts, current, pt(e.Control1), pt(e.Control2), pt(e.Point))
				current = pt(e.Point)
			}
		}
		if r := clean(pts); len(r) >= 3 && math.Abs(signedArea(r)) > 0 {
			rings = append(rings, r)
		}
	}
	return rings
}

func pt(p levelmesh.Point) path.Point {
	return path.Point{X: p.X, Y: p.Y}
}

// clean drops consecutive duplicates and the closing duplicate.
func clean(pts []path.Point) ring {
	out := make(ring, 0, len(pts))
	for _, p := range pts {
		if n := len(out); n > 0 && out[n-1].Distance(p) <= weldEpsilon {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1].Distance(out[0]) <= weldEpsilon {
		out = out[:len(out)-1]
	}
	return out
}

// signedArea returns the shoelace area of r; its sign gives the orientation.
func signedArea(r ring) float64 {
	var a float64
	for i := range r {
		j := (i + 1) % len(r)
		a += r[i].X*r[j].Y - r[j].X*r[i].Y
	}
	return a / 2
}

// contains reports whether p lies strictly inside r (even-odd crossing test).
func contains(r ring, p path.Point) bool {
	in := false
	for i, j := 0, len(r)-1; i < len(r); j, i = i, i+1 {
		a, b := r[i], r[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				in = !in
			}
		}
	}
	return in
}

// orientation returns +1 or -1 for the winding direction of r.
func orientation(r ring) int {
	if signedArea(r) < 0 {
		return -1
	}
	return 1
}

// nest sorts rings into outlines and holes under rule.
//
// Rings are assumed not to cross. Each ring's parent is the smallest ring
// containing it, and the area just inside a ring has the winding number of
// its parent plus the ring's own orientation. A ring where the area goes
// from unfilled to filled starts an outline; one where it goes from filled
// to unfilled is a hole of the outline it sits in. Rings with the same fill
// on both sides are not boundaries and are dropped.
func nest(rings []ring, rule levelmesh.FillRule) []polygon {
	type node struct {
		r       ring
		area    float64
		winding int
		owner   int // polygon filling the area just inside, or -1
	}

	nodes := make([]node, len(rings))
	for i, r := range rings {
		nodes[i] = node{r: r, area: math.Abs(signedArea(r)), owner: -1}
	}
	// Larger rings first so a parent is always resolved before its children.
	order := make([]int, len(nodes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return nodes[order[a]].area > nodes[order[b]].area
	})

	var polys []polygon
	for k, i := range order {
		parent := -1
		first := nodes[i].r[0]
		// The smallest already-placed ring containing this one is its parent.
		for m := k - 1; m >= 0; m-- {
			j := order[m]
			if nodes[j].area > nodes[i].area && contains(nodes[j].r, first) {
				parent = j
				break
			}
		}

		outside, owner := 0, -1
		if parent >= 0 {
			outside, owner = nodes[parent].winding, nodes[parent].owner
		}
		n := &nodes[i]
		n.winding = outside + orientation(n.r)

		switch was, is := rule.Fills(outside), rule.Fills(n.winding); {
		case !was && is:
			n.owner = len(polys)
			polys = append(polys, polygon{outer: n.r})
		case was && !is:
			polys[owner].holes = append(polys[owner].holes, n.r)
		case was && is:
			n.owner = owner
		}
	}
	return polys
}
