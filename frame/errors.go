package frame

import "errors"

var (
	// ErrInitialization is returned if the device, surface or pipeline
	// could not be created. The frame loop is never entered.
	ErrInitialization = errors.New("initialization failed")

	ErrOutOfMemory   = errors.New("out of memory")
	ErrFrameConsumed = errors.New("frame already consumed")
	ErrInvalidSize   = errors.New("invalid surface size")
)
