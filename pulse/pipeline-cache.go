package pulse

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/hashicorp/golang-lru/v2"
)

// CachedPipeline is a pipeline together with the bind group layouts
// that were derived from it.
type CachedPipeline struct {
	Pipeline   *wgpu.RenderPipeline
	bindGroups *lru.Cache[uint32, *wgpu.BindGroupLayout]
}

// GetBindGroupLayout returns the layout of the bind group at idx, as
// derived by the automatic pipeline layout.
func (pc *CachedPipeline) GetBindGroupLayout(idx uint32) *wgpu.BindGroupLayout {
	bindGroup, ok := pc.bindGroups.Get(idx)
	if ok {
		return bindGroup
	}

	bindGroup = pc.Pipeline.GetBindGroupLayout(idx)
	pc.bindGroups.Add(idx, bindGroup)

	return bindGroup
}

type PipelineConfig interface {
	comparable

	// Specialize creates a specialized pipeline for the
	// current PipelineConfig
	Specialize(def *wgpu.Device) (*wgpu.RenderPipeline, error)
}

// PipelineCache builds pipelines on first use. Evicted pipelines are
// released together with their bind group layouts.
type PipelineCache[C PipelineConfig] struct {
	device *wgpu.Device
	cache  *lru.Cache[C, CachedPipeline]

	// number of pipelines built so far
	builds int
}

func NewPipelineCache[C PipelineConfig](ctx *Context) *PipelineCache[C] {
	var device *wgpu.Device
	if ctx != nil {
		device = ctx.Device
	}

	cache, _ := lru.NewWithEvict[C, CachedPipeline](16, releasePipelineOnEviction[C])

	return &PipelineCache[C]{
		device: device,
		cache:  cache,
	}
}

func (p *PipelineCache[C]) Get(conf C) (CachedPipeline, error) {
	if cached, ok := p.cache.Get(conf); ok {
		return cached, nil
	}

	pipeline, err := conf.Specialize(p.device)
	if err != nil {
		return CachedPipeline{}, fmt.Errorf("build pipeline: %w", err)
	}

	p.builds++

	slog.Debug("Pipeline added to cache",
		slog.Int("builds", p.builds),
		slog.Int("cached", p.cache.Len()+1),
	)

	bindGroupsCache, _ := lru.NewWithEvict[uint32, *wgpu.BindGroupLayout](4, releaseBindGroupLayoutOnEviction)

	pc := CachedPipeline{Pipeline: pipeline, bindGroups: bindGroupsCache}
	p.cache.Add(conf, pc)

	return pc, nil
}

func (p *PipelineCache[C]) Builds() int {
	return p.builds
}

// Purge releases all cached pipelines.
func (p *PipelineCache[C]) Purge() {
	p.cache.Purge()
}

func releasePipelineOnEviction[C any](_config C, pipe CachedPipeline) {
	pipe.bindGroups.Purge()

	if pipe.Pipeline != nil {
		pipe.Pipeline.Release()
	}
}

func releaseBindGroupLayoutOnEviction(_ uint32, ev *wgpu.BindGroupLayout) {
	if ev != nil {
		ev.Release()
	}
}
