// Package mesh contains the cpu side geometry of the rendered scene.
package mesh

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// DrawCall describes the single draw issued per frame.
type DrawCall struct {
	Indexed bool

	// number of indices if Indexed is set, number of vertices otherwise
	Count uint32
}

func (m Mesh) DrawCall() DrawCall {
	if len(m.Indices) > 0 {
		return DrawCall{Indexed: true, Count: uint32(len(m.Indices))}
	}

	return DrawCall{Count: uint32(len(m.Vertices))}
}

var purple = [3]float32{0.5, 0.0, 0.5}

// Pentagon returns a pentagon in the xy plane made of three triangles,
// wound counter clockwise.
func Pentagon() Mesh {
	return Mesh{
		Vertices: []Vertex{
			{Position: [3]float32{-0.0868241, 0.49240386, 0.0}, Color: purple},
			{Position: [3]float32{-0.49513406, 0.06958647, 0.0}, Color: purple},
			{Position: [3]float32{-0.21918549, -0.44939706, 0.0}, Color: purple},
			{Position: [3]float32{0.35966998, -0.3473291, 0.0}, Color: purple},
			{Position: [3]float32{0.44147372, 0.2347359, 0.0}, Color: purple},
		},
		Indices: []uint16{
			0, 1, 4,
			1, 2, 4,
			2, 3, 4,
		},
	}
}
