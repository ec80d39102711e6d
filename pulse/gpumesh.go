package pulse

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/pentagon/mesh"
)

// GpuMesh holds the vertex and index buffers of an uploaded mesh.
// The buffers are immutable after creation.
type GpuMesh struct {
	Vertices *wgpu.Buffer
	Indices  *wgpu.Buffer

	Draw mesh.DrawCall
}

func NewGpuMesh(ctx *Context, m mesh.Mesh) (*GpuMesh, error) {
	if len(m.Vertices) == 0 {
		return nil, errors.New("mesh has no vertices")
	}

	vertices, err := ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Mesh.Vertices",
		Contents: mesh.VertexBytes(m.Vertices),
		Usage:    wgpu.BufferUsageVertex,
	})

	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}

	vertexGuard := NewReleaseGuard(vertices)
	defer vertexGuard.Release()

	gm := &GpuMesh{Vertices: vertices, Draw: m.DrawCall()}

	if len(m.Indices) > 0 {
		gm.Indices, err = ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    "Mesh.Indices",
			Contents: mesh.IndexBytes(m.Indices),
			Usage:    wgpu.BufferUsageIndex,
		})

		if err != nil {
			return nil, fmt.Errorf("create index buffer: %w", err)
		}
	}

	vertexGuard.Keep()

	return gm, nil
}

// Bind sets the buffers of the mesh and issues the draw call.
func (gm *GpuMesh) Bind(pass *wgpu.RenderPassEncoder, draw mesh.DrawCall) {
	pass.SetVertexBuffer(0, gm.Vertices, 0, wgpu.WholeSize)

	if draw.Indexed && gm.Indices != nil {
		pass.SetIndexBuffer(gm.Indices, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
		pass.DrawIndexed(draw.Count, 1, 0, 0, 0)
	} else {
		pass.Draw(draw.Count, 1, 0, 0)
	}
}

func (gm *GpuMesh) Release() {
	if gm.Indices != nil {
		gm.Indices.Release()
		gm.Indices = nil
	}

	if gm.Vertices != nil {
		gm.Vertices.Release()
		gm.Vertices = nil
	}
}
