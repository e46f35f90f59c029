// Package levelmesh turns a vector illustration into level geometry.
//
// # Overview
//
// Level designers draw a layout as 2D vector art. levelmesh reads the parsed
// illustration tree and produces one flat floor mesh per distinct fill color
// and one extruded, double-sided wall mesh per distinct stroke color. The
// meshes are plain buffers; placing them in a scene and attaching renderers
// or colliders is left to the caller.
//
// # Quick Start
//
//	import (
//	    "github.com/appen-isen/levelmesh"
//	    "github.com/appen-isen/levelmesh/tess"
//	)
//
//	root := levelmesh.NewNode("level")
//	room := levelmesh.NewPath()
//	room.Rectangle(0, 0, 400, 300)
//	root.AddShape(&levelmesh.Shape{
//	    Path:   room,
//	    Fill:   levelmesh.SolidHex("#808080"),
//	    Stroke: &levelmesh.Stroke{Color: levelmesh.Black},
//	})
//
//	g := levelmesh.NewGenerator(tess.New(), levelmesh.WithScale(0.01))
//	records, err := g.Generate(root)
//
// # Pipeline
//
//   - Collect walks the tree, composes node transforms and groups shapes by
//     quantized color (ColorKey).
//   - A Tessellator triangulates each floor color; tess provides one.
//   - BuildFloorMesh maps the triangles onto the XZ plane with a single
//     winding order.
//   - BuildWallMesh extrudes each closed stroked contour into a ribbon.
//   - Generator.GenerateRegions names and validates the results.
//
// # Coordinate System
//
// Illustration coordinates have Y growing downward. Output meshes lie on
// the XZ plane with Y up: the point (x, y) maps to (x, 0, -y) before
// centering, scaling and rotation.
package levelmesh
