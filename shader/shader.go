// Package shader holds the wgsl program used to draw the mesh.
package shader

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shader.wgsl
var Source string

const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

var ErrInvalid = errors.New("invalid shader")

// Validate parses and compiles the wgsl source to check it for errors
// before it is handed to the device.
func Validate(source string) error {
	if source == "" {
		return fmt.Errorf("%w: empty source", ErrInvalid)
	}

	spirv, err := naga.Compile(source)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if len(spirv) == 0 {
		return fmt.Errorf("%w: empty module", ErrInvalid)
	}

	return nil
}
