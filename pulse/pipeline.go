package pulse

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/pentagon/mesh"
	"github.com/oliverbestmann/pentagon/shader"
)

var ErrUnsupportedAttributeFormat = errors.New("unsupported vertex attribute format")

// PipelineDescriptor describes the render pipeline. It is comparable
// and used as key into the PipelineCache, a different target format
// results in a new pipeline.
type PipelineDescriptor struct {
	ShaderSource string
	VertexLayout *mesh.Layout

	Topology  wgpu.PrimitiveTopology
	FrontFace wgpu.FrontFace
	CullMode  wgpu.CullMode
	Blend     wgpu.BlendState

	TargetFormat wgpu.TextureFormat
}

// DefaultPipeline returns the descriptor of the pipeline drawing the
// pentagon mesh into a target of the given format.
func DefaultPipeline(format wgpu.TextureFormat, cullBackFaces bool) PipelineDescriptor {
	cullMode := wgpu.CullModeNone
	if cullBackFaces {
		cullMode = wgpu.CullModeBack
	}

	return PipelineDescriptor{
		ShaderSource: shader.Source,
		VertexLayout: &mesh.VertexLayout,
		Topology:     wgpu.PrimitiveTopologyTriangleList,
		FrontFace:    wgpu.FrontFaceCCW,
		CullMode:     cullMode,
		Blend:        wgpu.BlendStateReplace,
		TargetFormat: format,
	}
}

func (conf PipelineDescriptor) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline",
		slog.Any("format", conf.TargetFormat),
		slog.Any("cullMode", conf.CullMode),
	)

	if err := shader.Validate(conf.ShaderSource); err != nil {
		return nil, fmt.Errorf("validate shader: %w", err)
	}

	vertexLayout, err := vertexBufferLayout(conf.VertexLayout)
	if err != nil {
		return nil, err
	}

	module, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Pentagon.Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: conf.ShaderSource},
	})
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}

	defer module.Release()

	desc := &wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Pentagon.%s", conf.TargetFormat),
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: shader.VertexEntryPoint,
			Buffers:    []wgpu.VertexBufferLayout{vertexLayout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: shader.FragmentEntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     &conf.Blend,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  conf.Topology,
			FrontFace: conf.FrontFace,
			CullMode:  conf.CullMode,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}

	pipeline, err := dev.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("build render pipeline: %w", err)
	}

	return pipeline, nil
}

func vertexBufferLayout(layout *mesh.Layout) (wgpu.VertexBufferLayout, error) {
	attributes := make([]wgpu.VertexAttribute, 0, len(layout.Attributes))
	for _, attr := range layout.Attributes {
		format, err := vertexFormat(attr.Format)
		if err != nil {
			return wgpu.VertexBufferLayout{}, fmt.Errorf("attribute at location %d: %w", attr.ShaderLocation, err)
		}

		attributes = append(attributes, wgpu.VertexAttribute{
			Format:         format,
			Offset:         attr.Offset,
			ShaderLocation: attr.ShaderLocation,
		})
	}

	return wgpu.VertexBufferLayout{
		ArrayStride: layout.ArrayStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attributes,
	}, nil
}

func vertexFormat(format mesh.AttributeFormat) (wgpu.VertexFormat, error) {
	switch format {
	case mesh.Float32x3:
		return wgpu.VertexFormatFloat32x3, nil
	default:
		return 0, fmt.Errorf("%w %d", ErrUnsupportedAttributeFormat, format)
	}
}
