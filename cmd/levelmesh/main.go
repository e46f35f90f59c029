// Command levelmesh builds level meshes from a sample layout and prints a
// summary, optionally writing them as a Wavefront OBJ file.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/appen-isen/levelmesh"
	"github.com/appen-isen/levelmesh/tess"
)

func main() {
	var (
		scale   = flag.Float64("scale", 0.01, "world units per illustration unit")
		height  = flag.Float64("height", 300, "wall height in illustration units")
		rotY    = flag.Float64("rot-y", 0, "rotation around Y in degrees")
		workers = flag.Int("workers", 1, "goroutines building color groups")
		output  = flag.String("obj", "", "write meshes to this OBJ file")
		verbose = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	levelmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	g := levelmesh.NewGenerator(tess.New(),
		levelmesh.WithScale(*scale),
		levelmesh.WithWallHeight(*height),
		levelmesh.WithRotation(levelmesh.Rotation{Y: *rotY}),
		levelmesh.WithWorkers(*workers),
	)

	records, err := g.Generate(sampleLevel())
	if err != nil {
		log.Fatalf("Failed to generate: %v", err)
	}

	for _, r := range records {
		log.Println(summary(r))
	}

	if *output == "" {
		return
	}
	if err := writeOBJFile(*output, records); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Meshes saved to %s\n", *output)
}

// summary describes one record and the GPU buffer layout it uploads with.
func summary(r levelmesh.MeshRecord) string {
	layout, prim := r.Mesh.VertexLayout(), r.Mesh.PrimitiveState()
	return fmt.Sprintf("%-16s %6d vertices %6d triangles (%s indices, stride %d, %d x %s, %s)",
		r.Name, r.Mesh.VertexCount(), r.Mesh.TriangleCount(), r.Mesh.IndexFormat(),
		layout.ArrayStride, len(layout.Attributes), layout.Attributes[0].Format, prim.Topology)
}

// sampleLevel lays out two rooms joined by a corridor, with a round pillar
// carved out of the hall floor and a storeroom set at an angle in the east
// wing.
func sampleLevel() *levelmesh.Node {
	wall := &levelmesh.Stroke{Color: levelmesh.Hex("#202020"), Width: 4}

	hall := levelmesh.NewPath()
	hall.Rectangle(0, 0, 400, 300)
	hall.Circle(200, 150, 40)

	pillar := levelmesh.NewPath()
	pillar.Circle(200, 150, 40)

	corridor := levelmesh.NewPath()
	corridor.Rectangle(400, 125, 200, 50)

	room := levelmesh.NewPath()
	room.Rectangle(0, 0, 250, 250)

	store := levelmesh.NewPath()
	store.Rectangle(-30, -20, 60, 40)

	storeroom := levelmesh.NewNode("storeroom").
		AddShape(&levelmesh.Shape{Path: store, Fill: levelmesh.SolidHex("#C0A080"), Stroke: wall})
	storeroom.Transform = levelmesh.Translate(125, 125).Multiply(levelmesh.Rotate(math.Pi / 6))

	east := levelmesh.NewNode("east wing").
		AddShape(&levelmesh.Shape{Path: room, Fill: levelmesh.SolidHex("#8080C0"), Stroke: wall}).
		AddChild(storeroom)
	east.Transform = levelmesh.Translate(600, 25)

	return levelmesh.NewNode("level").
		AddShape(&levelmesh.Shape{Path: hall, Fill: levelmesh.SolidHex("#808080"), FillRule: levelmesh.FillEvenOdd, Stroke: wall}).
		AddShape(&levelmesh.Shape{Path: pillar, Stroke: &levelmesh.Stroke{Color: levelmesh.Hex("#A05020"), Width: 2}}).
		AddShape(&levelmesh.Shape{Path: corridor, Fill: levelmesh.SolidHex("#808080")}).
		AddChild(east)
}
