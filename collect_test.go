package levelmesh

import (
	"errors"
	"reflect"
	"testing"
)

var unitTriangle = []Point{{0, 0}, {1, 0}, {0, 1}}

func TestCollectNilTree(t *testing.T) {
	c, err := Collect(nil)
	if !errors.Is(err, ErrNilTree) {
		t.Fatalf("Collect(nil) error = %v, want ErrNilTree", err)
	}
	if c != nil {
		t.Errorf("Collect(nil) returned a collection")
	}
}

func TestCollectEmptyTree(t *testing.T) {
	c, err := Collect(NewNode("root"))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if !c.Empty() {
		t.Errorf("empty tree collected %d floors and %d walls", len(c.Floors), len(c.Walls))
	}
	if !c.Bounds().Empty() {
		t.Errorf("empty tree has bounds %+v", c.Bounds())
	}
}

func TestCollectFillAndStroke(t *testing.T) {
	shape := &Shape{
		Path:   polygonPath(unitTriangle...),
		Fill:   Solid(Red),
		Stroke: &Stroke{Color: Blue},
	}
	c, err := Collect(NewNode("root").AddShape(shape))
	if err != nil {
		t.Fatal(err)
	}
	red, blue := KeyOf(Red), KeyOf(Blue)
	if got := len(c.Floors[red]); got != 1 {
		t.Errorf("floor bucket size = %d, want 1", got)
	}
	if got := len(c.Walls[blue]); got != 1 {
		t.Fatalf("wall bucket size = %d, want 1", got)
	}
	if got := c.Walls[blue][0].Points; !reflect.DeepEqual(got, unitTriangle) {
		t.Errorf("wall points = %v, want %v", got, unitTriangle)
	}
	if _, ok := c.Floors[blue]; ok {
		t.Error("stroke color leaked into floor groups")
	}
}

func TestCollectIgnoresUnpaintedShapes(t *testing.T) {
	root := NewNode("root").
		AddShape(&Shape{Path: polygonPath(unitTriangle...)}).
		AddShape(&Shape{Path: polygonPath(unitTriangle...), Fill: GradientBrush{Stops: []GradientStop{{0, Red}, {1, Blue}}}}).
		AddShape(nil)
	c, err := Collect(root)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Empty() {
		t.Errorf("collected %d floors and %d walls, want none", len(c.Floors), len(c.Walls))
	}
}

func TestCollectSkipsOpenContours(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Rectangle(20, 20, 5, 5)
	root := NewNode("root").AddShape(&Shape{Path: p, Stroke: &Stroke{Color: Green}})

	c, err := Collect(root)
	if err != nil {
		t.Fatal(err)
	}
	walls := c.Walls[KeyOf(Green)]
	if len(walls) != 1 {
		t.Fatalf("got %d wall paths, want 1 (open contour skipped)", len(walls))
	}
	if got := len(walls[0].Points); got != 4 {
		t.Errorf("wall path has %d points, want 4", got)
	}
}

func TestCollectComposesNestedTransforms(t *testing.T) {
	leaf := NewNode("leaf").AddShape(stroked(Red, unitTriangle...))
	leaf.Transform = Scale(2, 2)
	mid := NewNode("mid").AddChild(leaf)
	mid.Transform = Translate(10, 0)
	root := NewNode("root").AddChild(mid)
	root.Transform = Translate(0, 5)

	c, err := Collect(root)
	if err != nil {
		t.Fatal(err)
	}
	got := c.Walls[KeyOf(Red)][0].Points
	want := []Point{{10, 5}, {12, 5}, {10, 7}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("scene-space points = %v, want %v", got, want)
	}
}

func TestCollectZeroTransformIsIdentity(t *testing.T) {
	root := &Node{Shapes: []*Shape{filled(Red, unitTriangle...)}}
	c, err := Collect(root)
	if err != nil {
		t.Fatal(err)
	}
	if m := c.Floors[KeyOf(Red)][0].Transform; !m.IsIdentity() {
		t.Errorf("transform = %+v, want identity", m)
	}
}

func TestCollectSameColorDifferentTransforms(t *testing.T) {
	a := NewNode("a").AddShape(filled(Red, unitTriangle...))
	a.Transform = Translate(5, 0)
	b := NewNode("b").AddShape(filled(RGB(1, 1e-6, 0), unitTriangle...))
	b.Transform = Translate(0, 5)

	c, err := Collect(NewNode("root").AddChild(a).AddChild(b))
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Floors) != 1 {
		t.Fatalf("got %d floor groups, want 1", len(c.Floors))
	}
	entries := c.Floors[KeyOf(Red)]
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Transform != Translate(5, 0) || entries[1].Transform != Translate(0, 5) {
		t.Errorf("entry transforms = %+v, %+v", entries[0].Transform, entries[1].Transform)
	}
}

func TestCollectGroupingStableUnderReordering(t *testing.T) {
	shapes := []*Shape{
		filled(Red, unitTriangle...),
		filled(Blue, unitTriangle...),
		filled(Red, unitTriangle...),
		stroked(Green, unitTriangle...),
		filled(Blue, unitTriangle...),
	}
	members := func(order []int) map[ColorKey]map[*Shape]bool {
		root := NewNode("root")
		for _, i := range order {
			root.AddShape(shapes[i])
		}
		c, err := Collect(root)
		if err != nil {
			t.Fatal(err)
		}
		out := make(map[ColorKey]map[*Shape]bool)
		for key, entries := range c.Floors {
			out[key] = make(map[*Shape]bool)
			for _, e := range entries {
				out[key][e.Shape] = true
			}
		}
		return out
	}

	want := members([]int{0, 1, 2, 3, 4})
	for _, order := range [][]int{{4, 3, 2, 1, 0}, {2, 0, 4, 1, 3}, {3, 1, 4, 0, 2}} {
		if got := members(order); !reflect.DeepEqual(got, want) {
			t.Errorf("order %v: groups = %v, want %v", order, got, want)
		}
	}
}

func TestCollectKeyOrderIsFirstSeen(t *testing.T) {
	root := NewNode("root").
		AddShape(filled(Blue, unitTriangle...)).
		AddShape(filled(Red, unitTriangle...)).
		AddShape(filled(Blue, unitTriangle...)).
		AddShape(stroked(Green, unitTriangle...)).
		AddShape(stroked(Red, unitTriangle...))
	c, err := Collect(root)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.FloorKeys(), []ColorKey{KeyOf(Blue), KeyOf(Red)}; !reflect.DeepEqual(got, want) {
		t.Errorf("FloorKeys() = %v, want %v", got, want)
	}
	if got, want := c.WallKeys(), []ColorKey{KeyOf(Green), KeyOf(Red)}; !reflect.DeepEqual(got, want) {
		t.Errorf("WallKeys() = %v, want %v", got, want)
	}
}

func TestCollectBounds(t *testing.T) {
	n := NewNode("n").AddShape(filled(Red, Pt(0, 0), Pt(10, 0), Pt(10, 4)))
	n.Transform = Translate(-5, 1)
	c, err := Collect(NewNode("root").AddChild(n))
	if err != nil {
		t.Fatal(err)
	}
	b := c.Bounds()
	if b.Min != Pt(-5, 1) || b.Max != Pt(5, 5) {
		t.Errorf("Bounds() = %+v..%+v, want (-5,1)..(5,5)", b.Min, b.Max)
	}
}
