package mesh

import (
	"structs"
	"unsafe"
)

// Vertex is a single vertex as read by the vertex shader.
type Vertex struct {
	_ structs.HostLayout

	Position [3]float32
	Color    [3]float32
}

// AttributeFormat identifies the type of a vertex attribute.
type AttributeFormat uint32

const (
	Float32x3 AttributeFormat = iota
)

type Attribute struct {
	Format         AttributeFormat
	Offset         uint64
	ShaderLocation uint32
}

// Layout describes how a vertex buffer is read by the pipeline.
type Layout struct {
	ArrayStride uint64
	Attributes  []Attribute
}

var VertexLayout = Layout{
	ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
	Attributes: []Attribute{
		{
			// position
			Format:         Float32x3,
			Offset:         uint64(unsafe.Offsetof(Vertex{}.Position)),
			ShaderLocation: 0,
		},
		{
			// color
			Format:         Float32x3,
			Offset:         uint64(unsafe.Offsetof(Vertex{}.Color)),
			ShaderLocation: 1,
		},
	},
}

// VertexBytes returns the raw memory of the vertices.
func VertexBytes(vertices []Vertex) []byte {
	if len(vertices) == 0 {
		return nil
	}

	size := uintptr(len(vertices)) * unsafe.Sizeof(Vertex{})
	return unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), size)
}

// IndexBytes returns the raw memory of the indices, padded to a multiple
// of four bytes as required for buffer writes.
func IndexBytes(indices []uint16) []byte {
	if len(indices) == 0 {
		return nil
	}

	raw := unsafe.Slice((*byte)(unsafe.Pointer(&indices[0])), len(indices)*2)
	if len(raw)%4 == 0 {
		return raw
	}

	padded := make([]byte, len(raw)+2)
	copy(padded, raw)
	return padded
}
