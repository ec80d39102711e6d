package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/oliverbestmann/pentagon/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildViewProjectionIsDeterministic(t *testing.T) {
	state := Default(800, 600)

	first := state.BuildViewProjection()
	for range 16 {
		require.Equal(t, first, state.BuildViewProjection())
	}

	// bit identical, not only equal
	second := state.BuildViewProjection()
	for idx := range first {
		assert.Equal(t, math.Float32bits(first[idx]), math.Float32bits(second[idx]))
	}
}

func TestBuildViewProjectionDepth(t *testing.T) {
	state := Default(800, 600)
	mvp := state.BuildViewProjection()

	forward := state.Target.Sub(state.Eye).Normalize()

	tests := []struct {
		name     string
		distance float32
		depth    float32
	}{
		{name: "near plane", distance: state.Near, depth: 0},
		{name: "far plane", distance: state.Far, depth: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point := state.Eye.Add(forward.MulScalar(tt.distance))
			ndc := mvp.TransformPoint(point).PerspectiveDivide()
			assert.InDelta(t, tt.depth, ndc[2], 1e-4)
			assert.InDelta(t, 0, ndc[0], 1e-4)
			assert.InDelta(t, 0, ndc[1], 1e-4)
		})
	}
}

func TestAspectRatio(t *testing.T) {
	assert.InDelta(t, 800.0/600.0, AspectRatio(800, 600), 1e-6)
	assert.Equal(t, float32(1), AspectRatio(400, 400))
	assert.Equal(t, float32(1), AspectRatio(400, 0))
}

func TestAspectRatioChangesMatrix(t *testing.T) {
	wide := Default(800, 600)
	square := wide
	square.AspectRatio = AspectRatio(400, 400)

	assert.NotEqual(t, wide.BuildViewProjection(), square.BuildViewProjection())
	assert.Equal(t, Default(400, 400).BuildViewProjection(), square.BuildViewProjection())
}

func TestUniformBytesRoundTrip(t *testing.T) {
	state := Default(800, 600)
	uniform := UniformOf(state)

	raw := uniform.Bytes()
	require.Len(t, raw, 64)
	require.Equal(t, uint64(64), UniformSize)

	var decoded glm.Mat4f
	for idx := range decoded {
		bits := binary.LittleEndian.Uint32(raw[idx*4:])
		decoded[idx] = math.Float32frombits(bits)
	}

	assert.Equal(t, state.BuildViewProjection(), decoded)
}

func TestOrbit(t *testing.T) {
	state := Default(800, 600)
	orbited := state.Orbit(math.Pi / 2)

	// distance to the target is preserved
	before := state.Eye.Sub(state.Target).Length()
	after := orbited.Eye.Sub(orbited.Target).Length()
	assert.InDelta(t, before, after, 1e-5)

	// eye at (0, 1, 3) rotated a quarter turn ends up at (3, 1, 0)
	assert.InDelta(t, 3, orbited.Eye[0], 1e-5)
	assert.InDelta(t, 1, orbited.Eye[1], 1e-5)
	assert.InDelta(t, 0, orbited.Eye[2], 1e-5)

	// the original is not modified
	assert.Equal(t, glm.Vec3f{0, 1, 3}, state.Eye)
}
