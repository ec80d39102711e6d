package frame

import (
	"github.com/oliverbestmann/pentagon/camera"
)

type fakeFrame struct {
	id        int
	discarded int
}

func (f *fakeFrame) Discard() {
	f.discarded++
}

type fakeCommands struct {
	released bool
}

func (c *fakeCommands) Release() {
	c.released = true
}

// fakeDevice records every call in order. Acquire results are taken from
// the statuses queue, AcquireSuccess once the queue is empty.
type fakeDevice struct {
	log []string

	configs   []SurfaceConfig
	cameras   []camera.Uniform
	passes    []RenderPass
	frames    []*fakeFrame
	presented []*fakeFrame
	commands  []*fakeCommands

	statuses []AcquireStatus

	configureErr error
	cameraErr    error
	encodeErr    error
	submitErr    error
	presentErr   error

	// number of Encode calls failing with errDevice before encodeErr applies
	encodeFailures int

	onEncode func()
}

func (d *fakeDevice) PreferredConfig(width, height uint32) SurfaceConfig {
	return SurfaceConfig{
		Format:      7,
		Width:       width,
		Height:      height,
		PresentMode: PresentModeFifo,
		AlphaMode:   1,
	}
}

func (d *fakeDevice) Configure(config SurfaceConfig) error {
	d.log = append(d.log, "configure")
	if d.configureErr != nil {
		return d.configureErr
	}

	d.configs = append(d.configs, config)
	return nil
}

func (d *fakeDevice) AcquireFrame() (Frame, AcquireStatus) {
	d.log = append(d.log, "acquire")

	status := AcquireSuccess
	if len(d.statuses) > 0 {
		status = d.statuses[0]
		d.statuses = d.statuses[1:]
	}

	if status != AcquireSuccess {
		return nil, status
	}

	frame := &fakeFrame{id: len(d.frames)}
	d.frames = append(d.frames, frame)

	return frame, status
}

func (d *fakeDevice) WriteCamera(uniform camera.Uniform) error {
	d.log = append(d.log, "camera")
	if d.cameraErr != nil {
		return d.cameraErr
	}

	d.cameras = append(d.cameras, uniform)
	return nil
}

func (d *fakeDevice) Encode(frame Frame, pass RenderPass) (Commands, error) {
	d.log = append(d.log, "encode")

	if d.onEncode != nil {
		d.onEncode()
	}

	if d.encodeFailures > 0 {
		d.encodeFailures--
		return nil, errDevice
	}

	if d.encodeErr != nil {
		return nil, d.encodeErr
	}

	d.passes = append(d.passes, pass)

	cmds := &fakeCommands{}
	d.commands = append(d.commands, cmds)
	return cmds, nil
}

func (d *fakeDevice) Submit(cmds Commands) error {
	d.log = append(d.log, "submit")
	return d.submitErr
}

func (d *fakeDevice) Present(frame Frame) error {
	d.log = append(d.log, "present")
	if d.presentErr != nil {
		return d.presentErr
	}

	d.presented = append(d.presented, frame.(*fakeFrame))
	return nil
}

// reset clears the call log, keeping the recorded resources.
func (d *fakeDevice) reset() {
	d.log = nil
}
