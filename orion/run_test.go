package orion

import (
	"testing"

	"github.com/oliverbestmann/pentagon/config"
	"github.com/stretchr/testify/assert"
)

func TestRunRejectsInvalidOptions(t *testing.T) {
	opts := config.Default()
	opts.Camera.Near = opts.Camera.Far

	err := Run(opts)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestStartProfileDisabled(t *testing.T) {
	assert.Nil(t, startProfile(""))
}
