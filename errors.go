package levelmesh

import (
	"errors"
	"fmt"
)

// ErrNilTree is returned by Collect and Generate when no illustration tree
// is supplied.
var ErrNilTree = errors.New("levelmesh: nil shape tree")

// IndexRangeError reports a mesh index that does not address a vertex.
// Builders never produce one for valid input; seeing it means a bug.
type IndexRangeError struct {
	Position    int    // position in the index buffer
	Index       uint32 // offending index
	VertexCount int
}

func (e *IndexRangeError) Error() string {
	return fmt.Sprintf("levelmesh: index %d at position %d out of range (%d vertices)",
		e.Index, e.Position, e.VertexCount)
}

// TriangleListError reports an index buffer whose length is not a
// multiple of three.
type TriangleListError struct {
	IndexCount int
}

func (e *TriangleListError) Error() string {
	return fmt.Sprintf("levelmesh: index count %d is not a multiple of 3", e.IndexCount)
}
