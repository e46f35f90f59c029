package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/appen-isen/levelmesh"
)

func writeOBJFile(name string, records []levelmesh.MeshRecord) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := writeOBJ(f, records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// writeOBJ writes one object per record. OBJ indices are 1-based and
// global across objects.
func writeOBJ(w io.Writer, records []levelmesh.MeshRecord) error {
	bw := bufio.NewWriter(w)
	base := 1
	for _, r := range records {
		m := r.Mesh
		fmt.Fprintf(bw, "o %s\n", r.Name)
		for _, p := range m.Positions {
			fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2])
		}
		for _, n := range m.Normals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
		}
		for t := 0; t+2 < len(m.Indices); t += 3 {
			a, b, c := base+int(m.Indices[t]), base+int(m.Indices[t+1]), base+int(m.Indices[t+2])
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		}
		base += m.VertexCount()
	}
	return bw.Flush()
}
